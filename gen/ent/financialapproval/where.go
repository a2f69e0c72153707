// Code generated by ent, DO NOT EDIT.

package financialapproval

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldLTE(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v uuid.UUID) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldEQ(FieldContractID, v))
}

// IfdConcurrence applies equality check predicate on the "ifd_concurrence" field. It's identical to IfdConcurrenceEQ.
func IfdConcurrence(v bool) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldEQ(FieldIfdConcurrence, v))
}

// AdminApprovalDesignation applies equality check predicate on the "admin_approval_designation" field. It's identical to AdminApprovalDesignationEQ.
func AdminApprovalDesignation(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldEQ(FieldAdminApprovalDesignation, v))
}

// FinancialApprovalDesignation applies equality check predicate on the "financial_approval_designation" field. It's identical to FinancialApprovalDesignationEQ.
func FinancialApprovalDesignation(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldEQ(FieldFinancialApprovalDesignation, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v uuid.UUID) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v uuid.UUID) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...uuid.UUID) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...uuid.UUID) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldNotIn(FieldContractID, vs...))
}

// IfdConcurrenceEQ applies the EQ predicate on the "ifd_concurrence" field.
func IfdConcurrenceEQ(v bool) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldEQ(FieldIfdConcurrence, v))
}

// IfdConcurrenceNEQ applies the NEQ predicate on the "ifd_concurrence" field.
func IfdConcurrenceNEQ(v bool) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldNEQ(FieldIfdConcurrence, v))
}

// AdminApprovalDesignationEQ applies the EQ predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationEQ(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldEQ(FieldAdminApprovalDesignation, v))
}

// AdminApprovalDesignationNEQ applies the NEQ predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationNEQ(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldNEQ(FieldAdminApprovalDesignation, v))
}

// AdminApprovalDesignationIn applies the In predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationIn(vs ...string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldIn(FieldAdminApprovalDesignation, vs...))
}

// AdminApprovalDesignationNotIn applies the NotIn predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationNotIn(vs ...string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldNotIn(FieldAdminApprovalDesignation, vs...))
}

// AdminApprovalDesignationGT applies the GT predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationGT(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldGT(FieldAdminApprovalDesignation, v))
}

// AdminApprovalDesignationGTE applies the GTE predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationGTE(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldGTE(FieldAdminApprovalDesignation, v))
}

// AdminApprovalDesignationLT applies the LT predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationLT(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldLT(FieldAdminApprovalDesignation, v))
}

// AdminApprovalDesignationLTE applies the LTE predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationLTE(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldLTE(FieldAdminApprovalDesignation, v))
}

// AdminApprovalDesignationContains applies the Contains predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationContains(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldContains(FieldAdminApprovalDesignation, v))
}

// AdminApprovalDesignationHasPrefix applies the HasPrefix predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationHasPrefix(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldHasPrefix(FieldAdminApprovalDesignation, v))
}

// AdminApprovalDesignationHasSuffix applies the HasSuffix predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationHasSuffix(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldHasSuffix(FieldAdminApprovalDesignation, v))
}

// AdminApprovalDesignationIsNil applies the IsNil predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationIsNil() predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldIsNull(FieldAdminApprovalDesignation))
}

// AdminApprovalDesignationNotNil applies the NotNil predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationNotNil() predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldNotNull(FieldAdminApprovalDesignation))
}

// AdminApprovalDesignationEqualFold applies the EqualFold predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationEqualFold(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldEqualFold(FieldAdminApprovalDesignation, v))
}

// AdminApprovalDesignationContainsFold applies the ContainsFold predicate on the "admin_approval_designation" field.
func AdminApprovalDesignationContainsFold(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldContainsFold(FieldAdminApprovalDesignation, v))
}

// FinancialApprovalDesignationEQ applies the EQ predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationEQ(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldEQ(FieldFinancialApprovalDesignation, v))
}

// FinancialApprovalDesignationNEQ applies the NEQ predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationNEQ(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldNEQ(FieldFinancialApprovalDesignation, v))
}

// FinancialApprovalDesignationIn applies the In predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationIn(vs ...string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldIn(FieldFinancialApprovalDesignation, vs...))
}

// FinancialApprovalDesignationNotIn applies the NotIn predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationNotIn(vs ...string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldNotIn(FieldFinancialApprovalDesignation, vs...))
}

// FinancialApprovalDesignationGT applies the GT predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationGT(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldGT(FieldFinancialApprovalDesignation, v))
}

// FinancialApprovalDesignationGTE applies the GTE predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationGTE(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldGTE(FieldFinancialApprovalDesignation, v))
}

// FinancialApprovalDesignationLT applies the LT predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationLT(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldLT(FieldFinancialApprovalDesignation, v))
}

// FinancialApprovalDesignationLTE applies the LTE predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationLTE(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldLTE(FieldFinancialApprovalDesignation, v))
}

// FinancialApprovalDesignationContains applies the Contains predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationContains(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldContains(FieldFinancialApprovalDesignation, v))
}

// FinancialApprovalDesignationHasPrefix applies the HasPrefix predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationHasPrefix(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldHasPrefix(FieldFinancialApprovalDesignation, v))
}

// FinancialApprovalDesignationHasSuffix applies the HasSuffix predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationHasSuffix(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldHasSuffix(FieldFinancialApprovalDesignation, v))
}

// FinancialApprovalDesignationIsNil applies the IsNil predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationIsNil() predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldIsNull(FieldFinancialApprovalDesignation))
}

// FinancialApprovalDesignationNotNil applies the NotNil predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationNotNil() predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldNotNull(FieldFinancialApprovalDesignation))
}

// FinancialApprovalDesignationEqualFold applies the EqualFold predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationEqualFold(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldEqualFold(FieldFinancialApprovalDesignation, v))
}

// FinancialApprovalDesignationContainsFold applies the ContainsFold predicate on the "financial_approval_designation" field.
func FinancialApprovalDesignationContainsFold(v string) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.FieldContainsFold(FieldFinancialApprovalDesignation, v))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.FinancialApproval {
	return predicate.FinancialApproval(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.FinancialApproval {
	return predicate.FinancialApproval(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FinancialApproval) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FinancialApproval) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FinancialApproval) predicate.FinancialApproval {
	return predicate.FinancialApproval(sql.NotPredicates(p))
}
