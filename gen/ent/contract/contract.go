// Code generated by ent, DO NOT EDIT.

package contract

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the contract type in the database.
	Label = "contract"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContractNo holds the string denoting the contract_no field in the database.
	FieldContractNo = "contract_no"
	// FieldGeneratedDate holds the string denoting the generated_date field in the database.
	FieldGeneratedDate = "generated_date"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeOrganisation holds the string denoting the organisation edge name in mutations.
	EdgeOrganisation = "organisation"
	// EdgeBuyer holds the string denoting the buyer edge name in mutations.
	EdgeBuyer = "buyer"
	// EdgeFinancialApproval holds the string denoting the financial_approval edge name in mutations.
	EdgeFinancialApproval = "financial_approval"
	// EdgePayingAuthority holds the string denoting the paying_authority edge name in mutations.
	EdgePayingAuthority = "paying_authority"
	// EdgeSeller holds the string denoting the seller edge name in mutations.
	EdgeSeller = "seller"
	// EdgeEpbg holds the string denoting the epbg edge name in mutations.
	EdgeEpbg = "epbg"
	// EdgeProducts holds the string denoting the products edge name in mutations.
	EdgeProducts = "products"
	// EdgeTerms holds the string denoting the terms edge name in mutations.
	EdgeTerms = "terms"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the contract in the database.
	Table = "contracts"
	// OrganisationTable is the table that holds the organisation relation/edge.
	OrganisationTable = "organisation_details"
	// OrganisationInverseTable is the table name for the OrganisationDetail entity.
	// It exists in this package in order to avoid circular dependency with the "organisationdetail" package.
	OrganisationInverseTable = "organisation_details"
	// OrganisationColumn is the table column denoting the organisation relation/edge.
	OrganisationColumn = "contract_id"
	// BuyerTable is the table that holds the buyer relation/edge.
	BuyerTable = "buyer_details"
	// BuyerInverseTable is the table name for the BuyerDetail entity.
	// It exists in this package in order to avoid circular dependency with the "buyerdetail" package.
	BuyerInverseTable = "buyer_details"
	// BuyerColumn is the table column denoting the buyer relation/edge.
	BuyerColumn = "contract_id"
	// FinancialApprovalTable is the table that holds the financial_approval relation/edge.
	FinancialApprovalTable = "financial_approvals"
	// FinancialApprovalInverseTable is the table name for the FinancialApproval entity.
	// It exists in this package in order to avoid circular dependency with the "financialapproval" package.
	FinancialApprovalInverseTable = "financial_approvals"
	// FinancialApprovalColumn is the table column denoting the financial_approval relation/edge.
	FinancialApprovalColumn = "contract_id"
	// PayingAuthorityTable is the table that holds the paying_authority relation/edge.
	PayingAuthorityTable = "paying_authorities"
	// PayingAuthorityInverseTable is the table name for the PayingAuthority entity.
	// It exists in this package in order to avoid circular dependency with the "payingauthority" package.
	PayingAuthorityInverseTable = "paying_authorities"
	// PayingAuthorityColumn is the table column denoting the paying_authority relation/edge.
	PayingAuthorityColumn = "contract_id"
	// SellerTable is the table that holds the seller relation/edge.
	SellerTable = "seller_details"
	// SellerInverseTable is the table name for the SellerDetail entity.
	// It exists in this package in order to avoid circular dependency with the "sellerdetail" package.
	SellerInverseTable = "seller_details"
	// SellerColumn is the table column denoting the seller relation/edge.
	SellerColumn = "contract_id"
	// EpbgTable is the table that holds the epbg relation/edge.
	EpbgTable = "epbg_details"
	// EpbgInverseTable is the table name for the EPBGDetail entity.
	// It exists in this package in order to avoid circular dependency with the "epbgdetail" package.
	EpbgInverseTable = "epbg_details"
	// EpbgColumn is the table column denoting the epbg relation/edge.
	EpbgColumn = "contract_id"
	// ProductsTable is the table that holds the products relation/edge.
	ProductsTable = "products"
	// ProductsInverseTable is the table name for the Product entity.
	// It exists in this package in order to avoid circular dependency with the "product" package.
	ProductsInverseTable = "products"
	// ProductsColumn is the table column denoting the products relation/edge.
	ProductsColumn = "contract_id"
	// TermsTable is the table that holds the terms relation/edge.
	TermsTable = "terms_and_conditions"
	// TermsInverseTable is the table name for the TermsAndCondition entity.
	// It exists in this package in order to avoid circular dependency with the "termsandcondition" package.
	TermsInverseTable = "terms_and_conditions"
	// TermsColumn is the table column denoting the terms relation/edge.
	TermsColumn = "contract_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "extract_jobs"
	// JobsInverseTable is the table name for the ExtractJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractjob" package.
	JobsInverseTable = "extract_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "contract_id"
)

// Columns holds all SQL columns for contract fields.
var Columns = []string{
	FieldID,
	FieldContractNo,
	FieldGeneratedDate,
	FieldRawText,
	FieldEmbedding,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ContractNoValidator is a validator for the "contract_no" field. It is called by the builders before save.
	ContractNoValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Contract queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContractNo orders the results by the contract_no field.
func ByContractNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractNo, opts...).ToFunc()
}

// ByGeneratedDate orders the results by the generated_date field.
func ByGeneratedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedDate, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByOrganisationField orders the results by organisation field.
func ByOrganisationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOrganisationStep(), sql.OrderByField(field, opts...))
	}
}

// ByBuyerField orders the results by buyer field.
func ByBuyerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBuyerStep(), sql.OrderByField(field, opts...))
	}
}

// ByFinancialApprovalField orders the results by financial_approval field.
func ByFinancialApprovalField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFinancialApprovalStep(), sql.OrderByField(field, opts...))
	}
}

// ByPayingAuthorityField orders the results by paying_authority field.
func ByPayingAuthorityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPayingAuthorityStep(), sql.OrderByField(field, opts...))
	}
}

// BySellerField orders the results by seller field.
func BySellerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSellerStep(), sql.OrderByField(field, opts...))
	}
}

// ByEpbgField orders the results by epbg field.
func ByEpbgField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEpbgStep(), sql.OrderByField(field, opts...))
	}
}

// ByProductsCount orders the results by products count.
func ByProductsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProductsStep(), opts...)
	}
}

// ByProducts orders the results by products terms.
func ByProducts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProductsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTermsCount orders the results by terms count.
func ByTermsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTermsStep(), opts...)
	}
}

// ByTerms orders the results by terms terms.
func ByTerms(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTermsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newOrganisationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OrganisationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, OrganisationTable, OrganisationColumn),
	)
}
func newBuyerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BuyerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, BuyerTable, BuyerColumn),
	)
}
func newFinancialApprovalStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FinancialApprovalInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, FinancialApprovalTable, FinancialApprovalColumn),
	)
}
func newPayingAuthorityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PayingAuthorityInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, PayingAuthorityTable, PayingAuthorityColumn),
	)
}
func newSellerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SellerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SellerTable, SellerColumn),
	)
}
func newEpbgStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EpbgInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, EpbgTable, EpbgColumn),
	)
}
func newProductsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProductsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProductsTable, ProductsColumn),
	)
}
func newTermsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TermsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TermsTable, TermsColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
