// Code generated by ent, DO NOT EDIT.

package sellerdetail

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the sellerdetail type in the database.
	Label = "seller_detail"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContractID holds the string denoting the contract_id field in the database.
	FieldContractID = "contract_id"
	// FieldGemSellerID holds the string denoting the gem_seller_id field in the database.
	FieldGemSellerID = "gem_seller_id"
	// FieldCompanyName holds the string denoting the company_name field in the database.
	FieldCompanyName = "company_name"
	// FieldContactNo holds the string denoting the contact_no field in the database.
	FieldContactNo = "contact_no"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldMsmeRegistrationNumber holds the string denoting the msme_registration_number field in the database.
	FieldMsmeRegistrationNumber = "msme_registration_number"
	// FieldGstin holds the string denoting the gstin field in the database.
	FieldGstin = "gstin"
	// EdgeContract holds the string denoting the contract edge name in mutations.
	EdgeContract = "contract"
	// Table holds the table name of the sellerdetail in the database.
	Table = "seller_details"
	// ContractTable is the table that holds the contract relation/edge.
	ContractTable = "seller_details"
	// ContractInverseTable is the table name for the Contract entity.
	// It exists in this package in order to avoid circular dependency with the "contract" package.
	ContractInverseTable = "contracts"
	// ContractColumn is the table column denoting the contract relation/edge.
	ContractColumn = "contract_id"
)

// Columns holds all SQL columns for sellerdetail fields.
var Columns = []string{
	FieldID,
	FieldContractID,
	FieldGemSellerID,
	FieldCompanyName,
	FieldContactNo,
	FieldEmail,
	FieldAddress,
	FieldMsmeRegistrationNumber,
	FieldGstin,
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
	// GemSellerIDValidator is a validator for the "gem_seller_id" field. It is called by the builders before save.
	GemSellerIDValidator func(string) error
	// CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	CompanyNameValidator func(string) error
	// ContactNoValidator is a validator for the "contact_no" field. It is called by the builders before save.
	ContactNoValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// MsmeRegistrationNumberValidator is a validator for the "msme_registration_number" field. It is called by the builders before save.
	MsmeRegistrationNumberValidator func(string) error
	// GstinValidator is a validator for the "gstin" field. It is called by the builders before save.
	GstinValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the SellerDetail queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContractID orders the results by the contract_id field.
func ByContractID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractID, opts...).ToFunc()
}

// ByGemSellerID orders the results by the gem_seller_id field.
func ByGemSellerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGemSellerID, opts...).ToFunc()
}

// ByCompanyName orders the results by the company_name field.
func ByCompanyName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompanyName, opts...).ToFunc()
}

// ByContactNo orders the results by the contact_no field.
func ByContactNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactNo, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByMsmeRegistrationNumber orders the results by the msme_registration_number field.
func ByMsmeRegistrationNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMsmeRegistrationNumber, opts...).ToFunc()
}

// ByGstin orders the results by the gstin field.
func ByGstin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGstin, opts...).ToFunc()
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
