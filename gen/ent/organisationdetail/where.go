// Code generated by ent, DO NOT EDIT.

package organisationdetail

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldLTE(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v uuid.UUID) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEQ(FieldContractID, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEQ(FieldType, v))
}

// Ministry applies equality check predicate on the "ministry" field. It's identical to MinistryEQ.
func Ministry(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEQ(FieldMinistry, v))
}

// Department applies equality check predicate on the "department" field. It's identical to DepartmentEQ.
func Department(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEQ(FieldDepartment, v))
}

// OrganisationName applies equality check predicate on the "organisation_name" field. It's identical to OrganisationNameEQ.
func OrganisationName(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEQ(FieldOrganisationName, v))
}

// OfficeZone applies equality check predicate on the "office_zone" field. It's identical to OfficeZoneEQ.
func OfficeZone(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEQ(FieldOfficeZone, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v uuid.UUID) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v uuid.UUID) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...uuid.UUID) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...uuid.UUID) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNotIn(FieldContractID, vs...))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldHasSuffix(FieldType, v))
}

// TypeIsNil applies the IsNil predicate on the "type" field.
func TypeIsNil() predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldIsNull(FieldType))
}

// TypeNotNil applies the NotNil predicate on the "type" field.
func TypeNotNil() predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNotNull(FieldType))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldContainsFold(FieldType, v))
}

// MinistryEQ applies the EQ predicate on the "ministry" field.
func MinistryEQ(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEQ(FieldMinistry, v))
}

// MinistryNEQ applies the NEQ predicate on the "ministry" field.
func MinistryNEQ(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNEQ(FieldMinistry, v))
}

// MinistryIn applies the In predicate on the "ministry" field.
func MinistryIn(vs ...string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldIn(FieldMinistry, vs...))
}

// MinistryNotIn applies the NotIn predicate on the "ministry" field.
func MinistryNotIn(vs ...string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNotIn(FieldMinistry, vs...))
}

// MinistryGT applies the GT predicate on the "ministry" field.
func MinistryGT(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldGT(FieldMinistry, v))
}

// MinistryGTE applies the GTE predicate on the "ministry" field.
func MinistryGTE(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldGTE(FieldMinistry, v))
}

// MinistryLT applies the LT predicate on the "ministry" field.
func MinistryLT(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldLT(FieldMinistry, v))
}

// MinistryLTE applies the LTE predicate on the "ministry" field.
func MinistryLTE(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldLTE(FieldMinistry, v))
}

// MinistryContains applies the Contains predicate on the "ministry" field.
func MinistryContains(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldContains(FieldMinistry, v))
}

// MinistryHasPrefix applies the HasPrefix predicate on the "ministry" field.
func MinistryHasPrefix(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldHasPrefix(FieldMinistry, v))
}

// MinistryHasSuffix applies the HasSuffix predicate on the "ministry" field.
func MinistryHasSuffix(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldHasSuffix(FieldMinistry, v))
}

// MinistryIsNil applies the IsNil predicate on the "ministry" field.
func MinistryIsNil() predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldIsNull(FieldMinistry))
}

// MinistryNotNil applies the NotNil predicate on the "ministry" field.
func MinistryNotNil() predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNotNull(FieldMinistry))
}

// MinistryEqualFold applies the EqualFold predicate on the "ministry" field.
func MinistryEqualFold(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEqualFold(FieldMinistry, v))
}

// MinistryContainsFold applies the ContainsFold predicate on the "ministry" field.
func MinistryContainsFold(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldContainsFold(FieldMinistry, v))
}

// DepartmentEQ applies the EQ predicate on the "department" field.
func DepartmentEQ(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEQ(FieldDepartment, v))
}

// DepartmentNEQ applies the NEQ predicate on the "department" field.
func DepartmentNEQ(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNEQ(FieldDepartment, v))
}

// DepartmentIn applies the In predicate on the "department" field.
func DepartmentIn(vs ...string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldIn(FieldDepartment, vs...))
}

// DepartmentNotIn applies the NotIn predicate on the "department" field.
func DepartmentNotIn(vs ...string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNotIn(FieldDepartment, vs...))
}

// DepartmentGT applies the GT predicate on the "department" field.
func DepartmentGT(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldGT(FieldDepartment, v))
}

// DepartmentGTE applies the GTE predicate on the "department" field.
func DepartmentGTE(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldGTE(FieldDepartment, v))
}

// DepartmentLT applies the LT predicate on the "department" field.
func DepartmentLT(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldLT(FieldDepartment, v))
}

// DepartmentLTE applies the LTE predicate on the "department" field.
func DepartmentLTE(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldLTE(FieldDepartment, v))
}

// DepartmentContains applies the Contains predicate on the "department" field.
func DepartmentContains(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldContains(FieldDepartment, v))
}

// DepartmentHasPrefix applies the HasPrefix predicate on the "department" field.
func DepartmentHasPrefix(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldHasPrefix(FieldDepartment, v))
}

// DepartmentHasSuffix applies the HasSuffix predicate on the "department" field.
func DepartmentHasSuffix(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldHasSuffix(FieldDepartment, v))
}

// DepartmentIsNil applies the IsNil predicate on the "department" field.
func DepartmentIsNil() predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldIsNull(FieldDepartment))
}

// DepartmentNotNil applies the NotNil predicate on the "department" field.
func DepartmentNotNil() predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNotNull(FieldDepartment))
}

// DepartmentEqualFold applies the EqualFold predicate on the "department" field.
func DepartmentEqualFold(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEqualFold(FieldDepartment, v))
}

// DepartmentContainsFold applies the ContainsFold predicate on the "department" field.
func DepartmentContainsFold(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldContainsFold(FieldDepartment, v))
}

// OrganisationNameEQ applies the EQ predicate on the "organisation_name" field.
func OrganisationNameEQ(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEQ(FieldOrganisationName, v))
}

// OrganisationNameNEQ applies the NEQ predicate on the "organisation_name" field.
func OrganisationNameNEQ(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNEQ(FieldOrganisationName, v))
}

// OrganisationNameIn applies the In predicate on the "organisation_name" field.
func OrganisationNameIn(vs ...string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldIn(FieldOrganisationName, vs...))
}

// OrganisationNameNotIn applies the NotIn predicate on the "organisation_name" field.
func OrganisationNameNotIn(vs ...string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNotIn(FieldOrganisationName, vs...))
}

// OrganisationNameGT applies the GT predicate on the "organisation_name" field.
func OrganisationNameGT(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldGT(FieldOrganisationName, v))
}

// OrganisationNameGTE applies the GTE predicate on the "organisation_name" field.
func OrganisationNameGTE(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldGTE(FieldOrganisationName, v))
}

// OrganisationNameLT applies the LT predicate on the "organisation_name" field.
func OrganisationNameLT(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldLT(FieldOrganisationName, v))
}

// OrganisationNameLTE applies the LTE predicate on the "organisation_name" field.
func OrganisationNameLTE(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldLTE(FieldOrganisationName, v))
}

// OrganisationNameContains applies the Contains predicate on the "organisation_name" field.
func OrganisationNameContains(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldContains(FieldOrganisationName, v))
}

// OrganisationNameHasPrefix applies the HasPrefix predicate on the "organisation_name" field.
func OrganisationNameHasPrefix(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldHasPrefix(FieldOrganisationName, v))
}

// OrganisationNameHasSuffix applies the HasSuffix predicate on the "organisation_name" field.
func OrganisationNameHasSuffix(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldHasSuffix(FieldOrganisationName, v))
}

// OrganisationNameIsNil applies the IsNil predicate on the "organisation_name" field.
func OrganisationNameIsNil() predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldIsNull(FieldOrganisationName))
}

// OrganisationNameNotNil applies the NotNil predicate on the "organisation_name" field.
func OrganisationNameNotNil() predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNotNull(FieldOrganisationName))
}

// OrganisationNameEqualFold applies the EqualFold predicate on the "organisation_name" field.
func OrganisationNameEqualFold(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEqualFold(FieldOrganisationName, v))
}

// OrganisationNameContainsFold applies the ContainsFold predicate on the "organisation_name" field.
func OrganisationNameContainsFold(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldContainsFold(FieldOrganisationName, v))
}

// OfficeZoneEQ applies the EQ predicate on the "office_zone" field.
func OfficeZoneEQ(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEQ(FieldOfficeZone, v))
}

// OfficeZoneNEQ applies the NEQ predicate on the "office_zone" field.
func OfficeZoneNEQ(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNEQ(FieldOfficeZone, v))
}

// OfficeZoneIn applies the In predicate on the "office_zone" field.
func OfficeZoneIn(vs ...string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldIn(FieldOfficeZone, vs...))
}

// OfficeZoneNotIn applies the NotIn predicate on the "office_zone" field.
func OfficeZoneNotIn(vs ...string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNotIn(FieldOfficeZone, vs...))
}

// OfficeZoneGT applies the GT predicate on the "office_zone" field.
func OfficeZoneGT(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldGT(FieldOfficeZone, v))
}

// OfficeZoneGTE applies the GTE predicate on the "office_zone" field.
func OfficeZoneGTE(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldGTE(FieldOfficeZone, v))
}

// OfficeZoneLT applies the LT predicate on the "office_zone" field.
func OfficeZoneLT(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldLT(FieldOfficeZone, v))
}

// OfficeZoneLTE applies the LTE predicate on the "office_zone" field.
func OfficeZoneLTE(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldLTE(FieldOfficeZone, v))
}

// OfficeZoneContains applies the Contains predicate on the "office_zone" field.
func OfficeZoneContains(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldContains(FieldOfficeZone, v))
}

// OfficeZoneHasPrefix applies the HasPrefix predicate on the "office_zone" field.
func OfficeZoneHasPrefix(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldHasPrefix(FieldOfficeZone, v))
}

// OfficeZoneHasSuffix applies the HasSuffix predicate on the "office_zone" field.
func OfficeZoneHasSuffix(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldHasSuffix(FieldOfficeZone, v))
}

// OfficeZoneIsNil applies the IsNil predicate on the "office_zone" field.
func OfficeZoneIsNil() predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldIsNull(FieldOfficeZone))
}

// OfficeZoneNotNil applies the NotNil predicate on the "office_zone" field.
func OfficeZoneNotNil() predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldNotNull(FieldOfficeZone))
}

// OfficeZoneEqualFold applies the EqualFold predicate on the "office_zone" field.
func OfficeZoneEqualFold(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldEqualFold(FieldOfficeZone, v))
}

// OfficeZoneContainsFold applies the ContainsFold predicate on the "office_zone" field.
func OfficeZoneContainsFold(v string) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.FieldContainsFold(FieldOfficeZone, v))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.OrganisationDetail {
	return predicate.OrganisationDetail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OrganisationDetail) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OrganisationDetail) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OrganisationDetail) predicate.OrganisationDetail {
	return predicate.OrganisationDetail(sql.NotPredicates(p))
}
