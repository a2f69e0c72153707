// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldID, id))
}

// ContractNo applies equality check predicate on the "contract_no" field. It's identical to ContractNoEQ.
func ContractNo(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractNo, v))
}

// GeneratedDate applies equality check predicate on the "generated_date" field. It's identical to GeneratedDateEQ.
func GeneratedDate(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldGeneratedDate, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldRawText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// ContractNoEQ applies the EQ predicate on the "contract_no" field.
func ContractNoEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldContractNo, v))
}

// ContractNoNEQ applies the NEQ predicate on the "contract_no" field.
func ContractNoNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldContractNo, v))
}

// ContractNoIn applies the In predicate on the "contract_no" field.
func ContractNoIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldContractNo, vs...))
}

// ContractNoNotIn applies the NotIn predicate on the "contract_no" field.
func ContractNoNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldContractNo, vs...))
}

// ContractNoGT applies the GT predicate on the "contract_no" field.
func ContractNoGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldContractNo, v))
}

// ContractNoGTE applies the GTE predicate on the "contract_no" field.
func ContractNoGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldContractNo, v))
}

// ContractNoLT applies the LT predicate on the "contract_no" field.
func ContractNoLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldContractNo, v))
}

// ContractNoLTE applies the LTE predicate on the "contract_no" field.
func ContractNoLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldContractNo, v))
}

// ContractNoContains applies the Contains predicate on the "contract_no" field.
func ContractNoContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldContractNo, v))
}

// ContractNoHasPrefix applies the HasPrefix predicate on the "contract_no" field.
func ContractNoHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldContractNo, v))
}

// ContractNoHasSuffix applies the HasSuffix predicate on the "contract_no" field.
func ContractNoHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldContractNo, v))
}

// ContractNoEqualFold applies the EqualFold predicate on the "contract_no" field.
func ContractNoEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldContractNo, v))
}

// ContractNoContainsFold applies the ContainsFold predicate on the "contract_no" field.
func ContractNoContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldContractNo, v))
}

// GeneratedDateEQ applies the EQ predicate on the "generated_date" field.
func GeneratedDateEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldGeneratedDate, v))
}

// GeneratedDateNEQ applies the NEQ predicate on the "generated_date" field.
func GeneratedDateNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldGeneratedDate, v))
}

// GeneratedDateIn applies the In predicate on the "generated_date" field.
func GeneratedDateIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldGeneratedDate, vs...))
}

// GeneratedDateNotIn applies the NotIn predicate on the "generated_date" field.
func GeneratedDateNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldGeneratedDate, vs...))
}

// GeneratedDateGT applies the GT predicate on the "generated_date" field.
func GeneratedDateGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldGeneratedDate, v))
}

// GeneratedDateGTE applies the GTE predicate on the "generated_date" field.
func GeneratedDateGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldGeneratedDate, v))
}

// GeneratedDateLT applies the LT predicate on the "generated_date" field.
func GeneratedDateLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldGeneratedDate, v))
}

// GeneratedDateLTE applies the LTE predicate on the "generated_date" field.
func GeneratedDateLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldGeneratedDate, v))
}

// GeneratedDateIsNil applies the IsNil predicate on the "generated_date" field.
func GeneratedDateIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldGeneratedDate))
}

// GeneratedDateNotNil applies the NotNil predicate on the "generated_date" field.
func GeneratedDateNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldGeneratedDate))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Contract {
	return predicate.Contract(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Contract {
	return predicate.Contract(sql.FieldContainsFold(FieldRawText, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.Contract {
	return predicate.Contract(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.Contract {
	return predicate.Contract(sql.FieldNotNull(FieldEmbedding))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Contract {
	return predicate.Contract(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOrganisation applies the HasEdge predicate on the "organisation" edge.
func HasOrganisation() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, OrganisationTable, OrganisationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrganisationWith applies the HasEdge predicate on the "organisation" edge with a given conditions (other predicates).
func HasOrganisationWith(preds ...predicate.OrganisationDetail) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newOrganisationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBuyer applies the HasEdge predicate on the "buyer" edge.
func HasBuyer() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, BuyerTable, BuyerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBuyerWith applies the HasEdge predicate on the "buyer" edge with a given conditions (other predicates).
func HasBuyerWith(preds ...predicate.BuyerDetail) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newBuyerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFinancialApproval applies the HasEdge predicate on the "financial_approval" edge.
func HasFinancialApproval() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, FinancialApprovalTable, FinancialApprovalColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFinancialApprovalWith applies the HasEdge predicate on the "financial_approval" edge with a given conditions (other predicates).
func HasFinancialApprovalWith(preds ...predicate.FinancialApproval) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newFinancialApprovalStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPayingAuthority applies the HasEdge predicate on the "paying_authority" edge.
func HasPayingAuthority() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, PayingAuthorityTable, PayingAuthorityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPayingAuthorityWith applies the HasEdge predicate on the "paying_authority" edge with a given conditions (other predicates).
func HasPayingAuthorityWith(preds ...predicate.PayingAuthority) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newPayingAuthorityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSeller applies the HasEdge predicate on the "seller" edge.
func HasSeller() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, SellerTable, SellerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSellerWith applies the HasEdge predicate on the "seller" edge with a given conditions (other predicates).
func HasSellerWith(preds ...predicate.SellerDetail) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newSellerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEpbg applies the HasEdge predicate on the "epbg" edge.
func HasEpbg() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, EpbgTable, EpbgColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEpbgWith applies the HasEdge predicate on the "epbg" edge with a given conditions (other predicates).
func HasEpbgWith(preds ...predicate.EPBGDetail) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newEpbgStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProducts applies the HasEdge predicate on the "products" edge.
func HasProducts() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProductsTable, ProductsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductsWith applies the HasEdge predicate on the "products" edge with a given conditions (other predicates).
func HasProductsWith(preds ...predicate.Product) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newProductsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTerms applies the HasEdge predicate on the "terms" edge.
func HasTerms() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TermsTable, TermsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTermsWith applies the HasEdge predicate on the "terms" edge with a given conditions (other predicates).
func HasTermsWith(preds ...predicate.TermsAndCondition) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newTermsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Contract {
	return predicate.Contract(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Contract) predicate.Contract {
	return predicate.Contract(sql.NotPredicates(p))
}
