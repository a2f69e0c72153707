// Code generated by ent, DO NOT EDIT.

package product

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the product type in the database.
	Label = "product"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContractID holds the string denoting the contract_id field in the database.
	FieldContractID = "contract_id"
	// FieldProductName holds the string denoting the product_name field in the database.
	FieldProductName = "product_name"
	// FieldBrand holds the string denoting the brand field in the database.
	FieldBrand = "brand"
	// FieldBrandType holds the string denoting the brand_type field in the database.
	FieldBrandType = "brand_type"
	// FieldCatalogueStatus holds the string denoting the catalogue_status field in the database.
	FieldCatalogueStatus = "catalogue_status"
	// FieldSellingAs holds the string denoting the selling_as field in the database.
	FieldSellingAs = "selling_as"
	// FieldCategoryNameQuadrant holds the string denoting the category_name_quadrant field in the database.
	FieldCategoryNameQuadrant = "category_name_quadrant"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldHsnCode holds the string denoting the hsn_code field in the database.
	FieldHsnCode = "hsn_code"
	// FieldOrderedQuantity holds the string denoting the ordered_quantity field in the database.
	FieldOrderedQuantity = "ordered_quantity"
	// FieldUnit holds the string denoting the unit field in the database.
	FieldUnit = "unit"
	// FieldUnitPrice holds the string denoting the unit_price field in the database.
	FieldUnitPrice = "unit_price"
	// FieldTaxBifurcation holds the string denoting the tax_bifurcation field in the database.
	FieldTaxBifurcation = "tax_bifurcation"
	// FieldTotalPrice holds the string denoting the total_price field in the database.
	FieldTotalPrice = "total_price"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeContract holds the string denoting the contract edge name in mutations.
	EdgeContract = "contract"
	// EdgeSpecifications holds the string denoting the specifications edge name in mutations.
	EdgeSpecifications = "specifications"
	// EdgeConsignees holds the string denoting the consignees edge name in mutations.
	EdgeConsignees = "consignees"
	// Table holds the table name of the product in the database.
	Table = "products"
	// ContractTable is the table that holds the contract relation/edge.
	ContractTable = "products"
	// ContractInverseTable is the table name for the Contract entity.
	// It exists in this package in order to avoid circular dependency with the "contract" package.
	ContractInverseTable = "contracts"
	// ContractColumn is the table column denoting the contract relation/edge.
	ContractColumn = "contract_id"
	// SpecificationsTable is the table that holds the specifications relation/edge.
	SpecificationsTable = "product_specifications"
	// SpecificationsInverseTable is the table name for the ProductSpecification entity.
	// It exists in this package in order to avoid circular dependency with the "productspecification" package.
	SpecificationsInverseTable = "product_specifications"
	// SpecificationsColumn is the table column denoting the specifications relation/edge.
	SpecificationsColumn = "product_id"
	// ConsigneesTable is the table that holds the consignees relation/edge.
	ConsigneesTable = "consignee_details"
	// ConsigneesInverseTable is the table name for the ConsigneeDetail entity.
	// It exists in this package in order to avoid circular dependency with the "consigneedetail" package.
	ConsigneesInverseTable = "consignee_details"
	// ConsigneesColumn is the table column denoting the consignees relation/edge.
	ConsigneesColumn = "product_id"
)

// Columns holds all SQL columns for product fields.
var Columns = []string{
	FieldID,
	FieldContractID,
	FieldProductName,
	FieldBrand,
	FieldBrandType,
	FieldCatalogueStatus,
	FieldSellingAs,
	FieldCategoryNameQuadrant,
	FieldModel,
	FieldHsnCode,
	FieldOrderedQuantity,
	FieldUnit,
	FieldUnitPrice,
	FieldTaxBifurcation,
	FieldTotalPrice,
	FieldNote,
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
	// ProductNameValidator is a validator for the "product_name" field. It is called by the builders before save.
	ProductNameValidator func(string) error
	// BrandValidator is a validator for the "brand" field. It is called by the builders before save.
	BrandValidator func(string) error
	// BrandTypeValidator is a validator for the "brand_type" field. It is called by the builders before save.
	BrandTypeValidator func(string) error
	// CatalogueStatusValidator is a validator for the "catalogue_status" field. It is called by the builders before save.
	CatalogueStatusValidator func(string) error
	// SellingAsValidator is a validator for the "selling_as" field. It is called by the builders before save.
	SellingAsValidator func(string) error
	// CategoryNameQuadrantValidator is a validator for the "category_name_quadrant" field. It is called by the builders before save.
	CategoryNameQuadrantValidator func(string) error
	// ModelValidator is a validator for the "model" field. It is called by the builders before save.
	ModelValidator func(string) error
	// HsnCodeValidator is a validator for the "hsn_code" field. It is called by the builders before save.
	HsnCodeValidator func(string) error
	// OrderedQuantityValidator is a validator for the "ordered_quantity" field. It is called by the builders before save.
	OrderedQuantityValidator func(string) error
	// UnitValidator is a validator for the "unit" field. It is called by the builders before save.
	UnitValidator func(string) error
	// UnitPriceValidator is a validator for the "unit_price" field. It is called by the builders before save.
	UnitPriceValidator func(string) error
	// TaxBifurcationValidator is a validator for the "tax_bifurcation" field. It is called by the builders before save.
	TaxBifurcationValidator func(string) error
	// TotalPriceValidator is a validator for the "total_price" field. It is called by the builders before save.
	TotalPriceValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Product queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContractID orders the results by the contract_id field.
func ByContractID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractID, opts...).ToFunc()
}

// ByProductName orders the results by the product_name field.
func ByProductName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductName, opts...).ToFunc()
}

// ByBrand orders the results by the brand field.
func ByBrand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrand, opts...).ToFunc()
}

// ByBrandType orders the results by the brand_type field.
func ByBrandType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBrandType, opts...).ToFunc()
}

// ByCatalogueStatus orders the results by the catalogue_status field.
func ByCatalogueStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCatalogueStatus, opts...).ToFunc()
}

// BySellingAs orders the results by the selling_as field.
func BySellingAs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSellingAs, opts...).ToFunc()
}

// ByCategoryNameQuadrant orders the results by the category_name_quadrant field.
func ByCategoryNameQuadrant(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryNameQuadrant, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByHsnCode orders the results by the hsn_code field.
func ByHsnCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHsnCode, opts...).ToFunc()
}

// ByOrderedQuantity orders the results by the ordered_quantity field.
func ByOrderedQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrderedQuantity, opts...).ToFunc()
}

// ByUnit orders the results by the unit field.
func ByUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnit, opts...).ToFunc()
}

// ByUnitPrice orders the results by the unit_price field.
func ByUnitPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitPrice, opts...).ToFunc()
}

// ByTaxBifurcation orders the results by the tax_bifurcation field.
func ByTaxBifurcation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxBifurcation, opts...).ToFunc()
}

// ByTotalPrice orders the results by the total_price field.
func ByTotalPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalPrice, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByContractField orders the results by contract field.
func ByContractField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContractStep(), sql.OrderByField(field, opts...))
	}
}

// BySpecificationsCount orders the results by specifications count.
func BySpecificationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSpecificationsStep(), opts...)
	}
}

// BySpecifications orders the results by specifications terms.
func BySpecifications(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSpecificationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByConsigneesCount orders the results by consignees count.
func ByConsigneesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConsigneesStep(), opts...)
	}
}

// ByConsignees orders the results by consignees terms.
func ByConsignees(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConsigneesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newContractStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContractInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
	)
}
func newSpecificationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SpecificationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SpecificationsTable, SpecificationsColumn),
	)
}
func newConsigneesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConsigneesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConsigneesTable, ConsigneesColumn),
	)
}
