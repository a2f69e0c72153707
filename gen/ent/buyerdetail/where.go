// Code generated by ent, DO NOT EDIT.

package buyerdetail

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldLTE(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v uuid.UUID) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEQ(FieldContractID, v))
}

// Designation applies equality check predicate on the "designation" field. It's identical to DesignationEQ.
func Designation(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEQ(FieldDesignation, v))
}

// ContactNo applies equality check predicate on the "contact_no" field. It's identical to ContactNoEQ.
func ContactNo(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEQ(FieldContactNo, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEQ(FieldEmail, v))
}

// Gstin applies equality check predicate on the "gstin" field. It's identical to GstinEQ.
func Gstin(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEQ(FieldGstin, v))
}

// Address applies equality check predicate on the "address" field. It's identical to AddressEQ.
func Address(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEQ(FieldAddress, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v uuid.UUID) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v uuid.UUID) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...uuid.UUID) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...uuid.UUID) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNotIn(FieldContractID, vs...))
}

// DesignationEQ applies the EQ predicate on the "designation" field.
func DesignationEQ(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEQ(FieldDesignation, v))
}

// DesignationNEQ applies the NEQ predicate on the "designation" field.
func DesignationNEQ(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNEQ(FieldDesignation, v))
}

// DesignationIn applies the In predicate on the "designation" field.
func DesignationIn(vs ...string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldIn(FieldDesignation, vs...))
}

// DesignationNotIn applies the NotIn predicate on the "designation" field.
func DesignationNotIn(vs ...string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNotIn(FieldDesignation, vs...))
}

// DesignationGT applies the GT predicate on the "designation" field.
func DesignationGT(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldGT(FieldDesignation, v))
}

// DesignationGTE applies the GTE predicate on the "designation" field.
func DesignationGTE(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldGTE(FieldDesignation, v))
}

// DesignationLT applies the LT predicate on the "designation" field.
func DesignationLT(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldLT(FieldDesignation, v))
}

// DesignationLTE applies the LTE predicate on the "designation" field.
func DesignationLTE(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldLTE(FieldDesignation, v))
}

// DesignationContains applies the Contains predicate on the "designation" field.
func DesignationContains(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldContains(FieldDesignation, v))
}

// DesignationHasPrefix applies the HasPrefix predicate on the "designation" field.
func DesignationHasPrefix(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldHasPrefix(FieldDesignation, v))
}

// DesignationHasSuffix applies the HasSuffix predicate on the "designation" field.
func DesignationHasSuffix(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldHasSuffix(FieldDesignation, v))
}

// DesignationIsNil applies the IsNil predicate on the "designation" field.
func DesignationIsNil() predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldIsNull(FieldDesignation))
}

// DesignationNotNil applies the NotNil predicate on the "designation" field.
func DesignationNotNil() predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNotNull(FieldDesignation))
}

// DesignationEqualFold applies the EqualFold predicate on the "designation" field.
func DesignationEqualFold(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEqualFold(FieldDesignation, v))
}

// DesignationContainsFold applies the ContainsFold predicate on the "designation" field.
func DesignationContainsFold(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldContainsFold(FieldDesignation, v))
}

// ContactNoEQ applies the EQ predicate on the "contact_no" field.
func ContactNoEQ(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEQ(FieldContactNo, v))
}

// ContactNoNEQ applies the NEQ predicate on the "contact_no" field.
func ContactNoNEQ(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNEQ(FieldContactNo, v))
}

// ContactNoIn applies the In predicate on the "contact_no" field.
func ContactNoIn(vs ...string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldIn(FieldContactNo, vs...))
}

// ContactNoNotIn applies the NotIn predicate on the "contact_no" field.
func ContactNoNotIn(vs ...string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNotIn(FieldContactNo, vs...))
}

// ContactNoGT applies the GT predicate on the "contact_no" field.
func ContactNoGT(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldGT(FieldContactNo, v))
}

// ContactNoGTE applies the GTE predicate on the "contact_no" field.
func ContactNoGTE(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldGTE(FieldContactNo, v))
}

// ContactNoLT applies the LT predicate on the "contact_no" field.
func ContactNoLT(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldLT(FieldContactNo, v))
}

// ContactNoLTE applies the LTE predicate on the "contact_no" field.
func ContactNoLTE(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldLTE(FieldContactNo, v))
}

// ContactNoContains applies the Contains predicate on the "contact_no" field.
func ContactNoContains(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldContains(FieldContactNo, v))
}

// ContactNoHasPrefix applies the HasPrefix predicate on the "contact_no" field.
func ContactNoHasPrefix(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldHasPrefix(FieldContactNo, v))
}

// ContactNoHasSuffix applies the HasSuffix predicate on the "contact_no" field.
func ContactNoHasSuffix(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldHasSuffix(FieldContactNo, v))
}

// ContactNoIsNil applies the IsNil predicate on the "contact_no" field.
func ContactNoIsNil() predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldIsNull(FieldContactNo))
}

// ContactNoNotNil applies the NotNil predicate on the "contact_no" field.
func ContactNoNotNil() predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNotNull(FieldContactNo))
}

// ContactNoEqualFold applies the EqualFold predicate on the "contact_no" field.
func ContactNoEqualFold(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEqualFold(FieldContactNo, v))
}

// ContactNoContainsFold applies the ContainsFold predicate on the "contact_no" field.
func ContactNoContainsFold(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldContainsFold(FieldContactNo, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldContainsFold(FieldEmail, v))
}

// GstinEQ applies the EQ predicate on the "gstin" field.
func GstinEQ(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEQ(FieldGstin, v))
}

// GstinNEQ applies the NEQ predicate on the "gstin" field.
func GstinNEQ(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNEQ(FieldGstin, v))
}

// GstinIn applies the In predicate on the "gstin" field.
func GstinIn(vs ...string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldIn(FieldGstin, vs...))
}

// GstinNotIn applies the NotIn predicate on the "gstin" field.
func GstinNotIn(vs ...string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNotIn(FieldGstin, vs...))
}

// GstinGT applies the GT predicate on the "gstin" field.
func GstinGT(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldGT(FieldGstin, v))
}

// GstinGTE applies the GTE predicate on the "gstin" field.
func GstinGTE(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldGTE(FieldGstin, v))
}

// GstinLT applies the LT predicate on the "gstin" field.
func GstinLT(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldLT(FieldGstin, v))
}

// GstinLTE applies the LTE predicate on the "gstin" field.
func GstinLTE(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldLTE(FieldGstin, v))
}

// GstinContains applies the Contains predicate on the "gstin" field.
func GstinContains(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldContains(FieldGstin, v))
}

// GstinHasPrefix applies the HasPrefix predicate on the "gstin" field.
func GstinHasPrefix(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldHasPrefix(FieldGstin, v))
}

// GstinHasSuffix applies the HasSuffix predicate on the "gstin" field.
func GstinHasSuffix(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldHasSuffix(FieldGstin, v))
}

// GstinIsNil applies the IsNil predicate on the "gstin" field.
func GstinIsNil() predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldIsNull(FieldGstin))
}

// GstinNotNil applies the NotNil predicate on the "gstin" field.
func GstinNotNil() predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNotNull(FieldGstin))
}

// GstinEqualFold applies the EqualFold predicate on the "gstin" field.
func GstinEqualFold(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEqualFold(FieldGstin, v))
}

// GstinContainsFold applies the ContainsFold predicate on the "gstin" field.
func GstinContainsFold(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldContainsFold(FieldGstin, v))
}

// AddressEQ applies the EQ predicate on the "address" field.
func AddressEQ(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEQ(FieldAddress, v))
}

// AddressNEQ applies the NEQ predicate on the "address" field.
func AddressNEQ(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNEQ(FieldAddress, v))
}

// AddressIn applies the In predicate on the "address" field.
func AddressIn(vs ...string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldIn(FieldAddress, vs...))
}

// AddressNotIn applies the NotIn predicate on the "address" field.
func AddressNotIn(vs ...string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNotIn(FieldAddress, vs...))
}

// AddressGT applies the GT predicate on the "address" field.
func AddressGT(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldGT(FieldAddress, v))
}

// AddressGTE applies the GTE predicate on the "address" field.
func AddressGTE(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldGTE(FieldAddress, v))
}

// AddressLT applies the LT predicate on the "address" field.
func AddressLT(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldLT(FieldAddress, v))
}

// AddressLTE applies the LTE predicate on the "address" field.
func AddressLTE(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldLTE(FieldAddress, v))
}

// AddressContains applies the Contains predicate on the "address" field.
func AddressContains(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldContains(FieldAddress, v))
}

// AddressHasPrefix applies the HasPrefix predicate on the "address" field.
func AddressHasPrefix(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldHasPrefix(FieldAddress, v))
}

// AddressHasSuffix applies the HasSuffix predicate on the "address" field.
func AddressHasSuffix(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldHasSuffix(FieldAddress, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldNotNull(FieldAddress))
}

// AddressEqualFold applies the EqualFold predicate on the "address" field.
func AddressEqualFold(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldEqualFold(FieldAddress, v))
}

// AddressContainsFold applies the ContainsFold predicate on the "address" field.
func AddressContainsFold(v string) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.FieldContainsFold(FieldAddress, v))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.BuyerDetail {
	return predicate.BuyerDetail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.BuyerDetail {
	return predicate.BuyerDetail(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BuyerDetail) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BuyerDetail) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BuyerDetail) predicate.BuyerDetail {
	return predicate.BuyerDetail(sql.NotPredicates(p))
}
