// Code generated by ent, DO NOT EDIT.

package organisationdetail

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the organisationdetail type in the database.
	Label = "organisation_detail"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContractID holds the string denoting the contract_id field in the database.
	FieldContractID = "contract_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldMinistry holds the string denoting the ministry field in the database.
	FieldMinistry = "ministry"
	// FieldDepartment holds the string denoting the department field in the database.
	FieldDepartment = "department"
	// FieldOrganisationName holds the string denoting the organisation_name field in the database.
	FieldOrganisationName = "organisation_name"
	// FieldOfficeZone holds the string denoting the office_zone field in the database.
	FieldOfficeZone = "office_zone"
	// EdgeContract holds the string denoting the contract edge name in mutations.
	EdgeContract = "contract"
	// Table holds the table name of the organisationdetail in the database.
	Table = "organisation_details"
	// ContractTable is the table that holds the contract relation/edge.
	ContractTable = "organisation_details"
	// ContractInverseTable is the table name for the Contract entity.
	// It exists in this package in order to avoid circular dependency with the "contract" package.
	ContractInverseTable = "contracts"
	// ContractColumn is the table column denoting the contract relation/edge.
	ContractColumn = "contract_id"
)

// Columns holds all SQL columns for organisationdetail fields.
var Columns = []string{
	FieldID,
	FieldContractID,
	FieldType,
	FieldMinistry,
	FieldDepartment,
	FieldOrganisationName,
	FieldOfficeZone,
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
	// TypeValidator is a validator for the "type" field. It is called by the builders before save.
	TypeValidator func(string) error
	// MinistryValidator is a validator for the "ministry" field. It is called by the builders before save.
	MinistryValidator func(string) error
	// DepartmentValidator is a validator for the "department" field. It is called by the builders before save.
	DepartmentValidator func(string) error
	// OrganisationNameValidator is a validator for the "organisation_name" field. It is called by the builders before save.
	OrganisationNameValidator func(string) error
	// OfficeZoneValidator is a validator for the "office_zone" field. It is called by the builders before save.
	OfficeZoneValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the OrganisationDetail queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContractID orders the results by the contract_id field.
func ByContractID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByMinistry orders the results by the ministry field.
func ByMinistry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinistry, opts...).ToFunc()
}

// ByDepartment orders the results by the department field.
func ByDepartment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepartment, opts...).ToFunc()
}

// ByOrganisationName orders the results by the organisation_name field.
func ByOrganisationName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganisationName, opts...).ToFunc()
}

// ByOfficeZone orders the results by the office_zone field.
func ByOfficeZone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOfficeZone, opts...).ToFunc()
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
