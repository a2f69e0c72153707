// Code generated by ent, DO NOT EDIT.

package buyerdetail

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the buyerdetail type in the database.
	Label = "buyer_detail"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContractID holds the string denoting the contract_id field in the database.
	FieldContractID = "contract_id"
	// FieldDesignation holds the string denoting the designation field in the database.
	FieldDesignation = "designation"
	// FieldContactNo holds the string denoting the contact_no field in the database.
	FieldContactNo = "contact_no"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldGstin holds the string denoting the gstin field in the database.
	FieldGstin = "gstin"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// EdgeContract holds the string denoting the contract edge name in mutations.
	EdgeContract = "contract"
	// Table holds the table name of the buyerdetail in the database.
	Table = "buyer_details"
	// ContractTable is the table that holds the contract relation/edge.
	ContractTable = "buyer_details"
	// ContractInverseTable is the table name for the Contract entity.
	// It exists in this package in order to avoid circular dependency with the "contract" package.
	ContractInverseTable = "contracts"
	// ContractColumn is the table column denoting the contract relation/edge.
	ContractColumn = "contract_id"
)

// Columns holds all SQL columns for buyerdetail fields.
var Columns = []string{
	FieldID,
	FieldContractID,
	FieldDesignation,
	FieldContactNo,
	FieldEmail,
	FieldGstin,
	FieldAddress,
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
	// DesignationValidator is a validator for the "designation" field. It is called by the builders before save.
	DesignationValidator func(string) error
	// ContactNoValidator is a validator for the "contact_no" field. It is called by the builders before save.
	ContactNoValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// GstinValidator is a validator for the "gstin" field. It is called by the builders before save.
	GstinValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BuyerDetail queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContractID orders the results by the contract_id field.
func ByContractID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractID, opts...).ToFunc()
}

// ByDesignation orders the results by the designation field.
func ByDesignation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDesignation, opts...).ToFunc()
}

// ByContactNo orders the results by the contact_no field.
func ByContactNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactNo, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByGstin orders the results by the gstin field.
func ByGstin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGstin, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
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
