// Code generated by ent, DO NOT EDIT.

package payingauthority

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldLTE(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v uuid.UUID) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldContractID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldRole, v))
}

// PaymentMode applies equality check predicate on the "payment_mode" field. It's identical to PaymentModeEQ.
func PaymentMode(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldPaymentMode, v))
}

// Designation applies equality check predicate on the "designation" field. It's identical to DesignationEQ.
func Designation(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldDesignation, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldEmail, v))
}

// Gstin applies equality check predicate on the "gstin" field. It's identical to GstinEQ.
func Gstin(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldGstin, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldAddress, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v uuid.UUID) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v uuid.UUID) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...uuid.UUID) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...uuid.UUID) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNotIn(FieldContractID, vs...))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldContainsFold(FieldRole, v))
}

// PaymentModeEQ applies the EQ predicate on the "payment_mode" field.
func PaymentModeEQ(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldPaymentMode, v))
}

// PaymentModeNEQ applies the NEQ predicate on the "payment_mode" field.
func PaymentModeNEQ(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNEQ(FieldPaymentMode, v))
}

// PaymentModeIn applies the In predicate on the "payment_mode" field.
func PaymentModeIn(vs ...string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldIn(FieldPaymentMode, vs...))
}

// PaymentModeNotIn applies the NotIn predicate on the "payment_mode" field.
func PaymentModeNotIn(vs ...string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNotIn(FieldPaymentMode, vs...))
}

// PaymentModeGT applies the GT predicate on the "payment_mode" field.
func PaymentModeGT(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldGT(FieldPaymentMode, v))
}

// PaymentModeGTE applies the GTE predicate on the "payment_mode" field.
func PaymentModeGTE(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldGTE(FieldPaymentMode, v))
}

// PaymentModeLT applies the LT predicate on the "payment_mode" field.
func PaymentModeLT(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldLT(FieldPaymentMode, v))
}

// PaymentModeLTE applies the LTE predicate on the "payment_mode" field.
func PaymentModeLTE(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldLTE(FieldPaymentMode, v))
}

// PaymentModeContains applies the Contains predicate on the "payment_mode" field.
func PaymentModeContains(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldContains(FieldPaymentMode, v))
}

// PaymentModeHasPrefix applies the HasPrefix predicate on the "payment_mode" field.
func PaymentModeHasPrefix(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldHasPrefix(FieldPaymentMode, v))
}

// PaymentModeHasSuffix applies the HasSuffix predicate on the "payment_mode" field.
func PaymentModeHasSuffix(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldHasSuffix(FieldPaymentMode, v))
}

// PaymentModeIsNil applies the IsNil predicate on the "payment_mode" field.
func PaymentModeIsNil() predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldIsNull(FieldPaymentMode))
}

// PaymentModeNotNil applies the NotNil predicate on the "payment_mode" field.
func PaymentModeNotNil() predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNotNull(FieldPaymentMode))
}

// PaymentModeEqualFold applies the EqualFold predicate on the "payment_mode" field.
func PaymentModeEqualFold(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEqualFold(FieldPaymentMode, v))
}

// PaymentModeContainsFold applies the ContainsFold predicate on the "payment_mode" field.
func PaymentModeContainsFold(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldContainsFold(FieldPaymentMode, v))
}

// DesignationEQ applies the EQ predicate on the "designation" field.
func DesignationEQ(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldDesignation, v))
}

// DesignationNEQ applies the NEQ predicate on the "designation" field.
func DesignationNEQ(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNEQ(FieldDesignation, v))
}

// DesignationIn applies the In predicate on the "designation" field.
func DesignationIn(vs ...string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldIn(FieldDesignation, vs...))
}

// DesignationNotIn applies the NotIn predicate on the "designation" field.
func DesignationNotIn(vs ...string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNotIn(FieldDesignation, vs...))
}

// DesignationGT applies the GT predicate on the "designation" field.
func DesignationGT(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldGT(FieldDesignation, v))
}

// DesignationGTE applies the GTE predicate on the "designation" field.
func DesignationGTE(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldGTE(FieldDesignation, v))
}

// DesignationLT applies the LT predicate on the "designation" field.
func DesignationLT(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldLT(FieldDesignation, v))
}

// DesignationLTE applies the LTE predicate on the "designation" field.
func DesignationLTE(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldLTE(FieldDesignation, v))
}

// DesignationContains applies the Contains predicate on the "designation" field.
func DesignationContains(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldContains(FieldDesignation, v))
}

// DesignationHasPrefix applies the HasPrefix predicate on the "designation" field.
func DesignationHasPrefix(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldHasPrefix(FieldDesignation, v))
}

// DesignationHasSuffix applies the HasSuffix predicate on the "designation" field.
func DesignationHasSuffix(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldHasSuffix(FieldDesignation, v))
}

// DesignationIsNil applies the IsNil predicate on the "designation" field.
func DesignationIsNil() predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldIsNull(FieldDesignation))
}

// DesignationNotNil applies the NotNil predicate on the "designation" field.
func DesignationNotNil() predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNotNull(FieldDesignation))
}

// DesignationEqualFold applies the EqualFold predicate on the "designation" field.
func DesignationEqualFold(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEqualFold(FieldDesignation, v))
}

// DesignationContainsFold applies the ContainsFold predicate on the "designation" field.
func DesignationContainsFold(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldContainsFold(FieldDesignation, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldContainsFold(FieldEmail, v))
}

// GstinEQ applies the EQ predicate on the "gstin" field.
func GstinEQ(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldGstin, v))
}

// GstinNEQ applies the NEQ predicate on the "gstin" field.
func GstinNEQ(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNEQ(FieldGstin, v))
}

// GstinIn applies the In predicate on the "gstin" field.
func GstinIn(vs ...string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldIn(FieldGstin, vs...))
}

// GstinNotIn applies the NotIn predicate on the "gstin" field.
func GstinNotIn(vs ...string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNotIn(FieldGstin, vs...))
}

// GstinGT applies the GT predicate on the "gstin" field.
func GstinGT(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldGT(FieldGstin, v))
}

// GstinGTE applies the GTE predicate on the "gstin" field.
func GstinGTE(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldGTE(FieldGstin, v))
}

// GstinLT applies the LT predicate on the "gstin" field.
func GstinLT(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldLT(FieldGstin, v))
}

// GstinLTE applies the LTE predicate on the "gstin" field.
func GstinLTE(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldLTE(FieldGstin, v))
}

// GstinContains applies the Contains predicate on the "gstin" field.
func GstinContains(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldContains(FieldGstin, v))
}

// GstinHasPrefix applies the HasPrefix predicate on the "gstin" field.
func GstinHasPrefix(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldHasPrefix(FieldGstin, v))
}

// GstinHasSuffix applies the HasSuffix predicate on the "gstin" field.
func GstinHasSuffix(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldHasSuffix(FieldGstin, v))
}

// GstinIsNil applies the IsNil predicate on the "gstin" field.
func GstinIsNil() predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldIsNull(FieldGstin))
}

// GstinNotNil applies the NotNil predicate on the "gstin" field.
func GstinNotNil() predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNotNull(FieldGstin))
}

// GstinEqualFold applies the EqualFold predicate on the "gstin" field.
func GstinEqualFold(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEqualFold(FieldGstin, v))
}

// GstinContainsFold applies the ContainsFold predicate on the "gstin" field.
func GstinContainsFold(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldContainsFold(FieldGstin, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.FieldContainsFold(FieldAddress, v))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.PayingAuthority {
	return predicate.PayingAuthority(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.PayingAuthority {
	return predicate.PayingAuthority(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PayingAuthority) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PayingAuthority) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PayingAuthority) predicate.PayingAuthority {
	return predicate.PayingAuthority(sql.NotPredicates(p))
}
