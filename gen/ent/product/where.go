// Code generated by ent, DO NOT EDIT.

package product

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldID, id))
}

// ContractID applies equality check predicate on the "contract_id" field. It's identical to ContractIDEQ.
func ContractID(v uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldContractID, v))
}

// ProductName applies equality check predicate on the "product_name" field. It's identical to ProductNameEQ.
func ProductName(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldProductName, v))
}

// Brand applies equality check predicate on the "brand" field. It's identical to BrandEQ.
func Brand(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldBrand, v))
}

// BrandType applies equality check predicate on the "brand_type" field. It's identical to BrandTypeEQ.
func BrandType(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldBrandType, v))
}

// CatalogueStatus applies equality check predicate on the "catalogue_status" field. It's identical to CatalogueStatusEQ.
func CatalogueStatus(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCatalogueStatus, v))
}

// SellingAs applies equality check predicate on the "selling_as" field. It's identical to SellingAsEQ.
func SellingAs(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSellingAs, v))
}

// CategoryNameQuadrant applies equality check predicate on the "category_name_quadrant" field. It's identical to CategoryNameQuadrantEQ.
func CategoryNameQuadrant(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCategoryNameQuadrant, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldModel, v))
}

// HsnCode applies equality check predicate on the "hsn_code" field. It's identical to HsnCodeEQ.
func HsnCode(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldHsnCode, v))
}

// OrderedQuantity applies equality check predicate on the "ordered_quantity" field. It's identical to OrderedQuantityEQ.
func OrderedQuantity(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldOrderedQuantity, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUnit, v))
}

// UnitPrice applies equality check predicate on the "unit_price" field. It's identical to UnitPriceEQ.
func UnitPrice(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUnitPrice, v))
}

// TaxBifurcation applies equality check predicate on the "tax_bifurcation" field. It's identical to TaxBifurcationEQ.
func TaxBifurcation(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldTaxBifurcation, v))
}

// TotalPrice applies equality check predicate on the "total_price" field. It's identical to TotalPriceEQ.
func TotalPrice(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldTotalPrice, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUpdatedAt, v))
}

// ContractIDEQ applies the EQ predicate on the "contract_id" field.
func ContractIDEQ(v uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldContractID, v))
}

// ContractIDNEQ applies the NEQ predicate on the "contract_id" field.
func ContractIDNEQ(v uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldContractID, v))
}

// ContractIDIn applies the In predicate on the "contract_id" field.
func ContractIDIn(vs ...uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldContractID, vs...))
}

// ContractIDNotIn applies the NotIn predicate on the "contract_id" field.
func ContractIDNotIn(vs ...uuid.UUID) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldContractID, vs...))
}

// ProductNameEQ applies the EQ predicate on the "product_name" field.
func ProductNameEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldProductName, v))
}

// ProductNameNEQ applies the NEQ predicate on the "product_name" field.
func ProductNameNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldProductName, v))
}

// ProductNameIn applies the In predicate on the "product_name" field.
func ProductNameIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldProductName, vs...))
}

// ProductNameNotIn applies the NotIn predicate on the "product_name" field.
func ProductNameNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldProductName, vs...))
}

// ProductNameGT applies the GT predicate on the "product_name" field.
func ProductNameGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldProductName, v))
}

// ProductNameGTE applies the GTE predicate on the "product_name" field.
func ProductNameGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldProductName, v))
}

// ProductNameLT applies the LT predicate on the "product_name" field.
func ProductNameLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldProductName, v))
}

// ProductNameLTE applies the LTE predicate on the "product_name" field.
func ProductNameLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldProductName, v))
}

// ProductNameContains applies the Contains predicate on the "product_name" field.
func ProductNameContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldProductName, v))
}

// ProductNameHasPrefix applies the HasPrefix predicate on the "product_name" field.
func ProductNameHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldProductName, v))
}

// ProductNameHasSuffix applies the HasSuffix predicate on the "product_name" field.
func ProductNameHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldProductName, v))
}

// ProductNameEqualFold applies the EqualFold predicate on the "product_name" field.
func ProductNameEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldProductName, v))
}

// ProductNameContainsFold applies the ContainsFold predicate on the "product_name" field.
func ProductNameContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldProductName, v))
}

// BrandEQ applies the EQ predicate on the "brand" field.
func BrandEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldBrand, v))
}

// BrandNEQ applies the NEQ predicate on the "brand" field.
func BrandNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldBrand, v))
}

// BrandIn applies the In predicate on the "brand" field.
func BrandIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldBrand, vs...))
}

// BrandNotIn applies the NotIn predicate on the "brand" field.
func BrandNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldBrand, vs...))
}

// BrandGT applies the GT predicate on the "brand" field.
func BrandGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldBrand, v))
}

// BrandGTE applies the GTE predicate on the "brand" field.
func BrandGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldBrand, v))
}

// BrandLT applies the LT predicate on the "brand" field.
func BrandLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldBrand, v))
}

// BrandLTE applies the LTE predicate on the "brand" field.
func BrandLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldBrand, v))
}

// BrandContains applies the Contains predicate on the "brand" field.
func BrandContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldBrand, v))
}

// BrandHasPrefix applies the HasPrefix predicate on the "brand" field.
func BrandHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldBrand, v))
}

// BrandHasSuffix applies the HasSuffix predicate on the "brand" field.
func BrandHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldBrand, v))
}

// BrandIsNil applies the IsNil predicate on the "brand" field.
func BrandIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldBrand))
}

// BrandNotNil applies the NotNil predicate on the "brand" field.
func BrandNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldBrand))
}

// BrandEqualFold applies the EqualFold predicate on the "brand" field.
func BrandEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldBrand, v))
}

// BrandContainsFold applies the ContainsFold predicate on the "brand" field.
func BrandContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldBrand, v))
}

// BrandTypeEQ applies the EQ predicate on the "brand_type" field.
func BrandTypeEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldBrandType, v))
}

// BrandTypeNEQ applies the NEQ predicate on the "brand_type" field.
func BrandTypeNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldBrandType, v))
}

// BrandTypeIn applies the In predicate on the "brand_type" field.
func BrandTypeIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldBrandType, vs...))
}

// BrandTypeNotIn applies the NotIn predicate on the "brand_type" field.
func BrandTypeNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldBrandType, vs...))
}

// BrandTypeGT applies the GT predicate on the "brand_type" field.
func BrandTypeGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldBrandType, v))
}

// BrandTypeGTE applies the GTE predicate on the "brand_type" field.
func BrandTypeGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldBrandType, v))
}

// BrandTypeLT applies the LT predicate on the "brand_type" field.
func BrandTypeLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldBrandType, v))
}

// BrandTypeLTE applies the LTE predicate on the "brand_type" field.
func BrandTypeLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldBrandType, v))
}

// BrandTypeContains applies the Contains predicate on the "brand_type" field.
func BrandTypeContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldBrandType, v))
}

// BrandTypeHasPrefix applies the HasPrefix predicate on the "brand_type" field.
func BrandTypeHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldBrandType, v))
}

// BrandTypeHasSuffix applies the HasSuffix predicate on the "brand_type" field.
func BrandTypeHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldBrandType, v))
}

// BrandTypeIsNil applies the IsNil predicate on the "brand_type" field.
func BrandTypeIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldBrandType))
}

// BrandTypeNotNil applies the NotNil predicate on the "brand_type" field.
func BrandTypeNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldBrandType))
}

// BrandTypeEqualFold applies the EqualFold predicate on the "brand_type" field.
func BrandTypeEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldBrandType, v))
}

// BrandTypeContainsFold applies the ContainsFold predicate on the "brand_type" field.
func BrandTypeContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldBrandType, v))
}

// CatalogueStatusEQ applies the EQ predicate on the "catalogue_status" field.
func CatalogueStatusEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCatalogueStatus, v))
}

// CatalogueStatusNEQ applies the NEQ predicate on the "catalogue_status" field.
func CatalogueStatusNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldCatalogueStatus, v))
}

// CatalogueStatusIn applies the In predicate on the "catalogue_status" field.
func CatalogueStatusIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldCatalogueStatus, vs...))
}

// CatalogueStatusNotIn applies the NotIn predicate on the "catalogue_status" field.
func CatalogueStatusNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldCatalogueStatus, vs...))
}

// CatalogueStatusGT applies the GT predicate on the "catalogue_status" field.
func CatalogueStatusGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldCatalogueStatus, v))
}

// CatalogueStatusGTE applies the GTE predicate on the "catalogue_status" field.
func CatalogueStatusGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldCatalogueStatus, v))
}

// CatalogueStatusLT applies the LT predicate on the "catalogue_status" field.
func CatalogueStatusLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldCatalogueStatus, v))
}

// CatalogueStatusLTE applies the LTE predicate on the "catalogue_status" field.
func CatalogueStatusLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldCatalogueStatus, v))
}

// CatalogueStatusContains applies the Contains predicate on the "catalogue_status" field.
func CatalogueStatusContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldCatalogueStatus, v))
}

// CatalogueStatusHasPrefix applies the HasPrefix predicate on the "catalogue_status" field.
func CatalogueStatusHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldCatalogueStatus, v))
}

// CatalogueStatusHasSuffix applies the HasSuffix predicate on the "catalogue_status" field.
func CatalogueStatusHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldCatalogueStatus, v))
}

// CatalogueStatusIsNil applies the IsNil predicate on the "catalogue_status" field.
func CatalogueStatusIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldCatalogueStatus))
}

// CatalogueStatusNotNil applies the NotNil predicate on the "catalogue_status" field.
func CatalogueStatusNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldCatalogueStatus))
}

// CatalogueStatusEqualFold applies the EqualFold predicate on the "catalogue_status" field.
func CatalogueStatusEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldCatalogueStatus, v))
}

// CatalogueStatusContainsFold applies the ContainsFold predicate on the "catalogue_status" field.
func CatalogueStatusContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldCatalogueStatus, v))
}

// SellingAsEQ applies the EQ predicate on the "selling_as" field.
func SellingAsEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldSellingAs, v))
}

// SellingAsNEQ applies the NEQ predicate on the "selling_as" field.
func SellingAsNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldSellingAs, v))
}

// SellingAsIn applies the In predicate on the "selling_as" field.
func SellingAsIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldSellingAs, vs...))
}

// SellingAsNotIn applies the NotIn predicate on the "selling_as" field.
func SellingAsNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldSellingAs, vs...))
}

// SellingAsGT applies the GT predicate on the "selling_as" field.
func SellingAsGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldSellingAs, v))
}

// SellingAsGTE applies the GTE predicate on the "selling_as" field.
func SellingAsGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldSellingAs, v))
}

// SellingAsLT applies the LT predicate on the "selling_as" field.
func SellingAsLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldSellingAs, v))
}

// SellingAsLTE applies the LTE predicate on the "selling_as" field.
func SellingAsLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldSellingAs, v))
}

// SellingAsContains applies the Contains predicate on the "selling_as" field.
func SellingAsContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldSellingAs, v))
}

// SellingAsHasPrefix applies the HasPrefix predicate on the "selling_as" field.
func SellingAsHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldSellingAs, v))
}

// SellingAsHasSuffix applies the HasSuffix predicate on the "selling_as" field.
func SellingAsHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldSellingAs, v))
}

// SellingAsIsNil applies the IsNil predicate on the "selling_as" field.
func SellingAsIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldSellingAs))
}

// SellingAsNotNil applies the NotNil predicate on the "selling_as" field.
func SellingAsNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldSellingAs))
}

// SellingAsEqualFold applies the EqualFold predicate on the "selling_as" field.
func SellingAsEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldSellingAs, v))
}

// SellingAsContainsFold applies the ContainsFold predicate on the "selling_as" field.
func SellingAsContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldSellingAs, v))
}

// CategoryNameQuadrantEQ applies the EQ predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCategoryNameQuadrant, v))
}

// CategoryNameQuadrantNEQ applies the NEQ predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldCategoryNameQuadrant, v))
}

// CategoryNameQuadrantIn applies the In predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldCategoryNameQuadrant, vs...))
}

// CategoryNameQuadrantNotIn applies the NotIn predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldCategoryNameQuadrant, vs...))
}

// CategoryNameQuadrantGT applies the GT predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldCategoryNameQuadrant, v))
}

// CategoryNameQuadrantGTE applies the GTE predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldCategoryNameQuadrant, v))
}

// CategoryNameQuadrantLT applies the LT predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldCategoryNameQuadrant, v))
}

// CategoryNameQuadrantLTE applies the LTE predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldCategoryNameQuadrant, v))
}

// CategoryNameQuadrantContains applies the Contains predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldCategoryNameQuadrant, v))
}

// CategoryNameQuadrantHasPrefix applies the HasPrefix predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldCategoryNameQuadrant, v))
}

// CategoryNameQuadrantHasSuffix applies the HasSuffix predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldCategoryNameQuadrant, v))
}

// CategoryNameQuadrantIsNil applies the IsNil predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldCategoryNameQuadrant))
}

// CategoryNameQuadrantNotNil applies the NotNil predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldCategoryNameQuadrant))
}

// CategoryNameQuadrantEqualFold applies the EqualFold predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldCategoryNameQuadrant, v))
}

// CategoryNameQuadrantContainsFold applies the ContainsFold predicate on the "category_name_quadrant" field.
func CategoryNameQuadrantContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldCategoryNameQuadrant, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldModel, v))
}

// HsnCodeEQ applies the EQ predicate on the "hsn_code" field.
func HsnCodeEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldHsnCode, v))
}

// HsnCodeNEQ applies the NEQ predicate on the "hsn_code" field.
func HsnCodeNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldHsnCode, v))
}

// HsnCodeIn applies the In predicate on the "hsn_code" field.
func HsnCodeIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldHsnCode, vs...))
}

// HsnCodeNotIn applies the NotIn predicate on the "hsn_code" field.
func HsnCodeNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldHsnCode, vs...))
}

// HsnCodeGT applies the GT predicate on the "hsn_code" field.
func HsnCodeGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldHsnCode, v))
}

// HsnCodeGTE applies the GTE predicate on the "hsn_code" field.
func HsnCodeGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldHsnCode, v))
}

// HsnCodeLT applies the LT predicate on the "hsn_code" field.
func HsnCodeLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldHsnCode, v))
}

// HsnCodeLTE applies the LTE predicate on the "hsn_code" field.
func HsnCodeLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldHsnCode, v))
}

// HsnCodeContains applies the Contains predicate on the "hsn_code" field.
func HsnCodeContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldHsnCode, v))
}

// HsnCodeHasPrefix applies the HasPrefix predicate on the "hsn_code" field.
func HsnCodeHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldHsnCode, v))
}

// HsnCodeHasSuffix applies the HasSuffix predicate on the "hsn_code" field.
func HsnCodeHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldHsnCode, v))
}

// HsnCodeIsNil applies the IsNil predicate on the "hsn_code" field.
func HsnCodeIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldHsnCode))
}

// HsnCodeNotNil applies the NotNil predicate on the "hsn_code" field.
func HsnCodeNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldHsnCode))
}

// HsnCodeEqualFold applies the EqualFold predicate on the "hsn_code" field.
func HsnCodeEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldHsnCode, v))
}

// HsnCodeContainsFold applies the ContainsFold predicate on the "hsn_code" field.
func HsnCodeContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldHsnCode, v))
}

// OrderedQuantityEQ applies the EQ predicate on the "ordered_quantity" field.
func OrderedQuantityEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldOrderedQuantity, v))
}

// OrderedQuantityNEQ applies the NEQ predicate on the "ordered_quantity" field.
func OrderedQuantityNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldOrderedQuantity, v))
}

// OrderedQuantityIn applies the In predicate on the "ordered_quantity" field.
func OrderedQuantityIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldOrderedQuantity, vs...))
}

// OrderedQuantityNotIn applies the NotIn predicate on the "ordered_quantity" field.
func OrderedQuantityNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldOrderedQuantity, vs...))
}

// OrderedQuantityGT applies the GT predicate on the "ordered_quantity" field.
func OrderedQuantityGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldOrderedQuantity, v))
}

// OrderedQuantityGTE applies the GTE predicate on the "ordered_quantity" field.
func OrderedQuantityGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldOrderedQuantity, v))
}

// OrderedQuantityLT applies the LT predicate on the "ordered_quantity" field.
func OrderedQuantityLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldOrderedQuantity, v))
}

// OrderedQuantityLTE applies the LTE predicate on the "ordered_quantity" field.
func OrderedQuantityLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldOrderedQuantity, v))
}

// OrderedQuantityContains applies the Contains predicate on the "ordered_quantity" field.
func OrderedQuantityContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldOrderedQuantity, v))
}

// OrderedQuantityHasPrefix applies the HasPrefix predicate on the "ordered_quantity" field.
func OrderedQuantityHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldOrderedQuantity, v))
}

// OrderedQuantityHasSuffix applies the HasSuffix predicate on the "ordered_quantity" field.
func OrderedQuantityHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldOrderedQuantity, v))
}

// OrderedQuantityIsNil applies the IsNil predicate on the "ordered_quantity" field.
func OrderedQuantityIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldOrderedQuantity))
}

// OrderedQuantityNotNil applies the NotNil predicate on the "ordered_quantity" field.
func OrderedQuantityNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldOrderedQuantity))
}

// OrderedQuantityEqualFold applies the EqualFold predicate on the "ordered_quantity" field.
func OrderedQuantityEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldOrderedQuantity, v))
}

// OrderedQuantityContainsFold applies the ContainsFold predicate on the "ordered_quantity" field.
func OrderedQuantityContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldOrderedQuantity, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldUnit, v))
}

// UnitPriceEQ applies the EQ predicate on the "unit_price" field.
func UnitPriceEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUnitPrice, v))
}

// UnitPriceNEQ applies the NEQ predicate on the "unit_price" field.
func UnitPriceNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldUnitPrice, v))
}

// UnitPriceIn applies the In predicate on the "unit_price" field.
func UnitPriceIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldUnitPrice, vs...))
}

// UnitPriceNotIn applies the NotIn predicate on the "unit_price" field.
func UnitPriceNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldUnitPrice, vs...))
}

// UnitPriceGT applies the GT predicate on the "unit_price" field.
func UnitPriceGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldUnitPrice, v))
}

// UnitPriceGTE applies the GTE predicate on the "unit_price" field.
func UnitPriceGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldUnitPrice, v))
}

// UnitPriceLT applies the LT predicate on the "unit_price" field.
func UnitPriceLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldUnitPrice, v))
}

// UnitPriceLTE applies the LTE predicate on the "unit_price" field.
func UnitPriceLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldUnitPrice, v))
}

// UnitPriceContains applies the Contains predicate on the "unit_price" field.
func UnitPriceContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldUnitPrice, v))
}

// UnitPriceHasPrefix applies the HasPrefix predicate on the "unit_price" field.
func UnitPriceHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldUnitPrice, v))
}

// UnitPriceHasSuffix applies the HasSuffix predicate on the "unit_price" field.
func UnitPriceHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldUnitPrice, v))
}

// UnitPriceIsNil applies the IsNil predicate on the "unit_price" field.
func UnitPriceIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldUnitPrice))
}

// UnitPriceNotNil applies the NotNil predicate on the "unit_price" field.
func UnitPriceNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldUnitPrice))
}

// UnitPriceEqualFold applies the EqualFold predicate on the "unit_price" field.
func UnitPriceEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldUnitPrice, v))
}

// UnitPriceContainsFold applies the ContainsFold predicate on the "unit_price" field.
func UnitPriceContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldUnitPrice, v))
}

// TaxBifurcationEQ applies the EQ predicate on the "tax_bifurcation" field.
func TaxBifurcationEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldTaxBifurcation, v))
}

// TaxBifurcationNEQ applies the NEQ predicate on the "tax_bifurcation" field.
func TaxBifurcationNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldTaxBifurcation, v))
}

// TaxBifurcationIn applies the In predicate on the "tax_bifurcation" field.
func TaxBifurcationIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldTaxBifurcation, vs...))
}

// TaxBifurcationNotIn applies the NotIn predicate on the "tax_bifurcation" field.
func TaxBifurcationNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldTaxBifurcation, vs...))
}

// TaxBifurcationGT applies the GT predicate on the "tax_bifurcation" field.
func TaxBifurcationGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldTaxBifurcation, v))
}

// TaxBifurcationGTE applies the GTE predicate on the "tax_bifurcation" field.
func TaxBifurcationGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldTaxBifurcation, v))
}

// TaxBifurcationLT applies the LT predicate on the "tax_bifurcation" field.
func TaxBifurcationLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldTaxBifurcation, v))
}

// TaxBifurcationLTE applies the LTE predicate on the "tax_bifurcation" field.
func TaxBifurcationLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldTaxBifurcation, v))
}

// TaxBifurcationContains applies the Contains predicate on the "tax_bifurcation" field.
func TaxBifurcationContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldTaxBifurcation, v))
}

// TaxBifurcationHasPrefix applies the HasPrefix predicate on the "tax_bifurcation" field.
func TaxBifurcationHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldTaxBifurcation, v))
}

// TaxBifurcationHasSuffix applies the HasSuffix predicate on the "tax_bifurcation" field.
func TaxBifurcationHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldTaxBifurcation, v))
}

// TaxBifurcationIsNil applies the IsNil predicate on the "tax_bifurcation" field.
func TaxBifurcationIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldTaxBifurcation))
}

// TaxBifurcationNotNil applies the NotNil predicate on the "tax_bifurcation" field.
func TaxBifurcationNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldTaxBifurcation))
}

// TaxBifurcationEqualFold applies the EqualFold predicate on the "tax_bifurcation" field.
func TaxBifurcationEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldTaxBifurcation, v))
}

// TaxBifurcationContainsFold applies the ContainsFold predicate on the "tax_bifurcation" field.
func TaxBifurcationContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldTaxBifurcation, v))
}

// TotalPriceEQ applies the EQ predicate on the "total_price" field.
func TotalPriceEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldTotalPrice, v))
}

// TotalPriceNEQ applies the NEQ predicate on the "total_price" field.
func TotalPriceNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldTotalPrice, v))
}

// TotalPriceIn applies the In predicate on the "total_price" field.
func TotalPriceIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldTotalPrice, vs...))
}

// TotalPriceNotIn applies the NotIn predicate on the "total_price" field.
func TotalPriceNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldTotalPrice, vs...))
}

// TotalPriceGT applies the GT predicate on the "total_price" field.
func TotalPriceGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldTotalPrice, v))
}

// TotalPriceGTE applies the GTE predicate on the "total_price" field.
func TotalPriceGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldTotalPrice, v))
}

// TotalPriceLT applies the LT predicate on the "total_price" field.
func TotalPriceLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldTotalPrice, v))
}

// TotalPriceLTE applies the LTE predicate on the "total_price" field.
func TotalPriceLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldTotalPrice, v))
}

// TotalPriceContains applies the Contains predicate on the "total_price" field.
func TotalPriceContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldTotalPrice, v))
}

// TotalPriceHasPrefix applies the HasPrefix predicate on the "total_price" field.
func TotalPriceHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldTotalPrice, v))
}

// TotalPriceHasSuffix applies the HasSuffix predicate on the "total_price" field.
func TotalPriceHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldTotalPrice, v))
}

// TotalPriceIsNil applies the IsNil predicate on the "total_price" field.
func TotalPriceIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldTotalPrice))
}

// TotalPriceNotNil applies the NotNil predicate on the "total_price" field.
func TotalPriceNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldTotalPrice))
}

// TotalPriceEqualFold applies the EqualFold predicate on the "total_price" field.
func TotalPriceEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldTotalPrice, v))
}

// TotalPriceContainsFold applies the ContainsFold predicate on the "total_price" field.
func TotalPriceContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldTotalPrice, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.Product {
	return predicate.Product(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.Product {
	return predicate.Product(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.Product {
	return predicate.Product(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.Product {
	return predicate.Product(sql.FieldContainsFold(FieldNote, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.Product {
	return predicate.Product(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.Product {
	return predicate.Product(sql.FieldNotNull(FieldEmbedding))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Product {
	return predicate.Product(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Product {
	return predicate.Product(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasContract applies the HasEdge predicate on the "contract" edge.
func HasContract() predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ContractTable, ContractColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasContractWith applies the HasEdge predicate on the "contract" edge with a given conditions (other predicates).
func HasContractWith(preds ...predicate.Contract) predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := newContractStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSpecifications applies the HasEdge predicate on the "specifications" edge.
func HasSpecifications() predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SpecificationsTable, SpecificationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSpecificationsWith applies the HasEdge predicate on the "specifications" edge with a given conditions (other predicates).
func HasSpecificationsWith(preds ...predicate.ProductSpecification) predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := newSpecificationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConsignees applies the HasEdge predicate on the "consignees" edge.
func HasConsignees() predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConsigneesTable, ConsigneesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConsigneesWith applies the HasEdge predicate on the "consignees" edge with a given conditions (other predicates).
func HasConsigneesWith(preds ...predicate.ConsigneeDetail) predicate.Product {
	return predicate.Product(func(s *sql.Selector) {
		step := newConsigneesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Product) predicate.Product {
	return predicate.Product(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Product) predicate.Product {
	return predicate.Product(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Product) predicate.Product {
	return predicate.Product(sql.NotPredicates(p))
}
