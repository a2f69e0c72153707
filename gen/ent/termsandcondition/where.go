// Code generated by ent, DO NOT EDIT.

package termsandcondition

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldLTE(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v uuid.UUID) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldEQ(FieldContractID, v))
}

// ClauseText applies equality check predicate on the "clause_text" field. It's identical to ClauseTextEQ.
func ClauseText(v string) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldEQ(FieldClauseText, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v uuid.UUID) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v uuid.UUID) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...uuid.UUID) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...uuid.UUID) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldNotIn(FieldContractID, vs...))
}

// ClauseTextEQ applies the EQ predicate on the "clause_text" field.
func ClauseTextEQ(v string) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldEQ(FieldClauseText, v))
}

// ClauseTextNEQ applies the NEQ predicate on the "clause_text" field.
func ClauseTextNEQ(v string) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldNEQ(FieldClauseText, v))
}

// ClauseTextIn applies the In predicate on the "clause_text" field.
func ClauseTextIn(vs ...string) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldIn(FieldClauseText, vs...))
}

// ClauseTextNotIn applies the NotIn predicate on the "clause_text" field.
func ClauseTextNotIn(vs ...string) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldNotIn(FieldClauseText, vs...))
}

// ClauseTextGT applies the GT predicate on the "clause_text" field.
func ClauseTextGT(v string) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldGT(FieldClauseText, v))
}

// ClauseTextGTE applies the GTE predicate on the "clause_text" field.
func ClauseTextGTE(v string) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldGTE(FieldClauseText, v))
}

// ClauseTextLT applies the LT predicate on the "clause_text" field.
func ClauseTextLT(v string) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldLT(FieldClauseText, v))
}

// ClauseTextLTE applies the LTE predicate on the "clause_text" field.
func ClauseTextLTE(v string) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldLTE(FieldClauseText, v))
}

// ClauseTextContains applies the Contains predicate on the "clause_text" field.
func ClauseTextContains(v string) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldContains(FieldClauseText, v))
}

// ClauseTextHasPrefix applies the HasPrefix predicate on the "clause_text" field.
func ClauseTextHasPrefix(v string) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldHasPrefix(FieldClauseText, v))
}

// ClauseTextHasSuffix applies the HasSuffix predicate on the "clause_text" field.
func ClauseTextHasSuffix(v string) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldHasSuffix(FieldClauseText, v))
}

// ClauseTextEqualFold applies the EqualFold predicate on the "clause_text" field.
func ClauseTextEqualFold(v string) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldEqualFold(FieldClauseText, v))
}

// ClauseTextContainsFold applies the ContainsFold predicate on the "clause_text" field.
func ClauseTextContainsFold(v string) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.FieldContainsFold(FieldClauseText, v))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.TermsAndCondition {
	return predicate.TermsAndCondition(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TermsAndCondition) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TermsAndCondition) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TermsAndCondition) predicate.TermsAndCondition {
	return predicate.TermsAndCondition(sql.NotPredicates(p))
}
