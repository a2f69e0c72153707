// Code generated by ent, DO NOT EDIT.

package consigneedetail

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the consigneedetail type in the database.
	Label = "consignee_detail"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProductID holds the string denoting the product_id field in the database.
	FieldProductID = "product_id"
	// FieldSNo holds the string denoting the s_no field in the database.
	FieldSNo = "s_no"
	// FieldDesignation holds the string denoting the designation field in the database.
	FieldDesignation = "designation"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldContact holds the string denoting the contact field in the database.
	FieldContact = "contact"
	// FieldGstin holds the string denoting the gstin field in the database.
	FieldGstin = "gstin"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldLotNo holds the string denoting the lot_no field in the database.
	FieldLotNo = "lot_no"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldDeliveryStart holds the string denoting the delivery_start field in the database.
	FieldDeliveryStart = "delivery_start"
	// FieldDeliveryEnd holds the string denoting the delivery_end field in the database.
	FieldDeliveryEnd = "delivery_end"
	// FieldDeliveryTo holds the string denoting the delivery_to field in the database.
	FieldDeliveryTo = "delivery_to"
	// EdgeProduct holds the string denoting the product edge name in mutations.
	EdgeProduct = "product"
	// Table holds the table name of the consigneedetail in the database.
	Table = "consignee_details"
	// ProductTable is the table that holds the product relation/edge.
	ProductTable = "consignee_details"
	// ProductInverseTable is the table name for the Product entity.
	// It exists in this package in order to avoid circular dependency with the "product" package.
	ProductInverseTable = "products"
	// ProductColumn is the table column denoting the product relation/edge.
	ProductColumn = "product_id"
)

// Columns holds all SQL columns for consigneedetail fields.
var Columns = []string{
	FieldID,
	FieldProductID,
	FieldSNo,
	FieldDesignation,
	FieldEmail,
	FieldContact,
	FieldGstin,
	FieldAddress,
	FieldLotNo,
	FieldQuantity,
	FieldDeliveryStart,
	FieldDeliveryEnd,
	FieldDeliveryTo,
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
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// ContactValidator is a validator for the "contact" field. It is called by the builders before save.
	ContactValidator func(string) error
	// GstinValidator is a validator for the "gstin" field. It is called by the builders before save.
	GstinValidator func(string) error
	// LotNoValidator is a validator for the "lot_no" field. It is called by the builders before save.
	LotNoValidator func(string) error
	// DeliveryToValidator is a validator for the "delivery_to" field. It is called by the builders before save.
	DeliveryToValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ConsigneeDetail queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProductID orders the results by the product_id field.
func ByProductID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductID, opts...).ToFunc()
}

// BySNo orders the results by the s_no field.
func BySNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSNo, opts...).ToFunc()
}

// ByDesignation orders the results by the designation field.
func ByDesignation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDesignation, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByContact orders the results by the contact field.
func ByContact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContact, opts...).ToFunc()
}

// ByGstin orders the results by the gstin field.
func ByGstin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGstin, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByLotNo orders the results by the lot_no field.
func ByLotNo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLotNo, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByDeliveryStart orders the results by the delivery_start field.
func ByDeliveryStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryStart, opts...).ToFunc()
}

// ByDeliveryEnd orders the results by the delivery_end field.
func ByDeliveryEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryEnd, opts...).ToFunc()
}

// ByDeliveryTo orders the results by the delivery_to field.
func ByDeliveryTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryTo, opts...).ToFunc()
}

// ByProductField orders the results by product field.
func ByProductField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProductStep(), sql.OrderByField(field, opts...))
	}
}
func newProductStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProductInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProductTable, ProductColumn),
	)
}
