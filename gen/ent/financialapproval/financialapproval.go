// Code generated by ent, DO NOT EDIT.

package financialapproval

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the financialapproval type in the database.
	Label = "financial_approval"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContractID holds the string denoting the contract_id field in the database.
	FieldContractID = "contract_id"
	// FieldIfdConcurrence holds the string denoting the ifd_concurrence field in the database.
	FieldIfdConcurrence = "ifd_concurrence"
	// FieldAdminApprovalDesignation holds the string denoting the admin_approval_designation field in the database.
	FieldAdminApprovalDesignation = "admin_approval_designation"
	// FieldFinancialApprovalDesignation holds the string denoting the financial_approval_designation field in the database.
	FieldFinancialApprovalDesignation = "financial_approval_designation"
	// EdgeContract holds the string denoting the contract edge name in mutations.
	EdgeContract = "contract"
	// Table holds the table name of the financialapproval in the database.
	Table = "financial_approvals"
	// ContractTable is the table that holds the contract relation/edge.
	ContractTable = "financial_approvals"
	// ContractInverseTable is the table name for the Contract entity.
	// It exists in this package in order to avoid circular dependency with the "contract" package.
	ContractInverseTable = "contracts"
	// ContractColumn is the table column denoting the contract relation/edge.
	ContractColumn = "contract_id"
)

// Columns holds all SQL columns for financialapproval fields.
var Columns = []string{
	FieldID,
	FieldContractID,
	FieldIfdConcurrence,
	FieldAdminApprovalDesignation,
	FieldFinancialApprovalDesignation,
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
	// DefaultIfdConcurrence holds the default value on creation for the "ifd_concurrence" field.
	DefaultIfdConcurrence bool
	// AdminApprovalDesignationValidator is a validator for the "admin_approval_designation" field. It is called by the builders before save.
	AdminApprovalDesignationValidator func(string) error
	// FinancialApprovalDesignationValidator is a validator for the "financial_approval_designation" field. It is called by the builders before save.
	FinancialApprovalDesignationValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the FinancialApproval queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContractID orders the results by the contract_id field.
func ByContractID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractID, opts...).ToFunc()
}

// ByIfdConcurrence orders the results by the ifd_concurrence field.
func ByIfdConcurrence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIfdConcurrence, opts...).ToFunc()
}

// ByAdminApprovalDesignation orders the results by the admin_approval_designation field.
func ByAdminApprovalDesignation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminApprovalDesignation, opts...).ToFunc()
}

// ByFinancialApprovalDesignation orders the results by the financial_approval_designation field.
func ByFinancialApprovalDesignation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinancialApprovalDesignation, opts...).ToFunc()
}

// ByContractField orders the results by contract field.
func ByContractField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContractStep(), sql.OrderByField(field, opts...))
	}
}
func newContractStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContractInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, ContractTable, ContractColumn),
	)
}
