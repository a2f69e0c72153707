// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/consigneedetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/gemdocs/procurement-tracker/gen/ent/product"
	"github.com/gemdocs/procurement-tracker/gen/ent/productspecification"
	"github.com/google/uuid"
)

// ProductUpdate is the builder for updating Product entities.
type ProductUpdate struct {
	config
	hooks    []Hook
	mutation *ProductMutation
}

// Where appends a list predicates to the ProductUpdate builder.
func (_u *ProductUpdate) Where(ps ...predicate.Product) *ProductUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *ProductUpdate) SetContractID(v uuid.UUID) *ProductUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableContractID(v *uuid.UUID) *ProductUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *ProductUpdate) SetProductName(v string) *ProductUpdate {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableProductName(v *string) *ProductUpdate {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// SetBrand sets the "brand" field.
func (_u *ProductUpdate) SetBrand(v string) *ProductUpdate {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableBrand(v *string) *ProductUpdate {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// ClearBrand clears the value of the "brand" field.
func (_u *ProductUpdate) ClearBrand() *ProductUpdate {
	_u.mutation.ClearBrand()
	return _u
}

// SetBrandType sets the "brand_type" field.
func (_u *ProductUpdate) SetBrandType(v string) *ProductUpdate {
	_u.mutation.SetBrandType(v)
	return _u
}

// SetNillableBrandType sets the "brand_type" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableBrandType(v *string) *ProductUpdate {
	if v != nil {
		_u.SetBrandType(*v)
	}
	return _u
}

// ClearBrandType clears the value of the "brand_type" field.
func (_u *ProductUpdate) ClearBrandType() *ProductUpdate {
	_u.mutation.ClearBrandType()
	return _u
}

// SetCatalogueStatus sets the "catalogue_status" field.
func (_u *ProductUpdate) SetCatalogueStatus(v string) *ProductUpdate {
	_u.mutation.SetCatalogueStatus(v)
	return _u
}

// SetNillableCatalogueStatus sets the "catalogue_status" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableCatalogueStatus(v *string) *ProductUpdate {
	if v != nil {
		_u.SetCatalogueStatus(*v)
	}
	return _u
}

// ClearCatalogueStatus clears the value of the "catalogue_status" field.
func (_u *ProductUpdate) ClearCatalogueStatus() *ProductUpdate {
	_u.mutation.ClearCatalogueStatus()
	return _u
}

// SetSellingAs sets the "selling_as" field.
func (_u *ProductUpdate) SetSellingAs(v string) *ProductUpdate {
	_u.mutation.SetSellingAs(v)
	return _u
}

// SetNillableSellingAs sets the "selling_as" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableSellingAs(v *string) *ProductUpdate {
	if v != nil {
		_u.SetSellingAs(*v)
	}
	return _u
}

// ClearSellingAs clears the value of the "selling_as" field.
func (_u *ProductUpdate) ClearSellingAs() *ProductUpdate {
	_u.mutation.ClearSellingAs()
	return _u
}

// SetCategoryNameQuadrant sets the "category_name_quadrant" field.
func (_u *ProductUpdate) SetCategoryNameQuadrant(v string) *ProductUpdate {
	_u.mutation.SetCategoryNameQuadrant(v)
	return _u
}

// SetNillableCategoryNameQuadrant sets the "category_name_quadrant" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableCategoryNameQuadrant(v *string) *ProductUpdate {
	if v != nil {
		_u.SetCategoryNameQuadrant(*v)
	}
	return _u
}

// ClearCategoryNameQuadrant clears the value of the "category_name_quadrant" field.
func (_u *ProductUpdate) ClearCategoryNameQuadrant() *ProductUpdate {
	_u.mutation.ClearCategoryNameQuadrant()
	return _u
}

// SetModel sets the "model" field.
func (_u *ProductUpdate) SetModel(v string) *ProductUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableModel(v *string) *ProductUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *ProductUpdate) ClearModel() *ProductUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetHsnCode sets the "hsn_code" field.
func (_u *ProductUpdate) SetHsnCode(v string) *ProductUpdate {
	_u.mutation.SetHsnCode(v)
	return _u
}

// SetNillableHsnCode sets the "hsn_code" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableHsnCode(v *string) *ProductUpdate {
	if v != nil {
		_u.SetHsnCode(*v)
	}
	return _u
}

// ClearHsnCode clears the value of the "hsn_code" field.
func (_u *ProductUpdate) ClearHsnCode() *ProductUpdate {
	_u.mutation.ClearHsnCode()
	return _u
}

// SetOrderedQuantity sets the "ordered_quantity" field.
func (_u *ProductUpdate) SetOrderedQuantity(v string) *ProductUpdate {
	_u.mutation.SetOrderedQuantity(v)
	return _u
}

// SetNillableOrderedQuantity sets the "ordered_quantity" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableOrderedQuantity(v *string) *ProductUpdate {
	if v != nil {
		_u.SetOrderedQuantity(*v)
	}
	return _u
}

// ClearOrderedQuantity clears the value of the "ordered_quantity" field.
func (_u *ProductUpdate) ClearOrderedQuantity() *ProductUpdate {
	_u.mutation.ClearOrderedQuantity()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *ProductUpdate) SetUnit(v string) *ProductUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableUnit(v *string) *ProductUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *ProductUpdate) ClearUnit() *ProductUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *ProductUpdate) SetUnitPrice(v string) *ProductUpdate {
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableUnitPrice(v *string) *ProductUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (_u *ProductUpdate) ClearUnitPrice() *ProductUpdate {
	_u.mutation.ClearUnitPrice()
	return _u
}

// SetTaxBifurcation sets the "tax_bifurcation" field.
func (_u *ProductUpdate) SetTaxBifurcation(v string) *ProductUpdate {
	_u.mutation.SetTaxBifurcation(v)
	return _u
}

// SetNillableTaxBifurcation sets the "tax_bifurcation" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableTaxBifurcation(v *string) *ProductUpdate {
	if v != nil {
		_u.SetTaxBifurcation(*v)
	}
	return _u
}

// ClearTaxBifurcation clears the value of the "tax_bifurcation" field.
func (_u *ProductUpdate) ClearTaxBifurcation() *ProductUpdate {
	_u.mutation.ClearTaxBifurcation()
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *ProductUpdate) SetTotalPrice(v string) *ProductUpdate {
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableTotalPrice(v *string) *ProductUpdate {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// ClearTotalPrice clears the value of the "total_price" field.
func (_u *ProductUpdate) ClearTotalPrice() *ProductUpdate {
	_u.mutation.ClearTotalPrice()
	return _u
}

// SetNote sets the "note" field.
func (_u *ProductUpdate) SetNote(v string) *ProductUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableNote(v *string) *ProductUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *ProductUpdate) ClearNote() *ProductUpdate {
	_u.mutation.ClearNote()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ProductUpdate) SetEmbedding(v []float32) *ProductUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *ProductUpdate) AppendEmbedding(v []float32) *ProductUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ProductUpdate) ClearEmbedding() *ProductUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProductUpdate) SetCreatedAt(v time.Time) *ProductUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProductUpdate) SetNillableCreatedAt(v *time.Time) *ProductUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductUpdate) SetUpdatedAt(v time.Time) *ProductUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *ProductUpdate) SetContract(v *Contract) *ProductUpdate {
	return _u.SetContractID(v.ID)
}

// AddSpecificationIDs adds the "specifications" edge to the ProductSpecification entity by IDs.
func (_u *ProductUpdate) AddSpecificationIDs(ids ...uuid.UUID) *ProductUpdate {
	_u.mutation.AddSpecificationIDs(ids...)
	return _u
}

// AddSpecifications adds the "specifications" edges to the ProductSpecification entity.
func (_u *ProductUpdate) AddSpecifications(v ...*ProductSpecification) *ProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpecificationIDs(ids...)
}

// AddConsigneeIDs adds the "consignees" edge to the ConsigneeDetail entity by IDs.
func (_u *ProductUpdate) AddConsigneeIDs(ids ...uuid.UUID) *ProductUpdate {
	_u.mutation.AddConsigneeIDs(ids...)
	return _u
}

// AddConsignees adds the "consignees" edges to the ConsigneeDetail entity.
func (_u *ProductUpdate) AddConsignees(v ...*ConsigneeDetail) *ProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConsigneeIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_u *ProductUpdate) Mutation() *ProductMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *ProductUpdate) ClearContract() *ProductUpdate {
	_u.mutation.ClearContract()
	return _u
}

// ClearSpecifications clears all "specifications" edges to the ProductSpecification entity.
func (_u *ProductUpdate) ClearSpecifications() *ProductUpdate {
	_u.mutation.ClearSpecifications()
	return _u
}

// RemoveSpecificationIDs removes the "specifications" edge to ProductSpecification entities by IDs.
func (_u *ProductUpdate) RemoveSpecificationIDs(ids ...uuid.UUID) *ProductUpdate {
	_u.mutation.RemoveSpecificationIDs(ids...)
	return _u
}

// RemoveSpecifications removes "specifications" edges to ProductSpecification entities.
func (_u *ProductUpdate) RemoveSpecifications(v ...*ProductSpecification) *ProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpecificationIDs(ids...)
}

// ClearConsignees clears all "consignees" edges to the ConsigneeDetail entity.
func (_u *ProductUpdate) ClearConsignees() *ProductUpdate {
	_u.mutation.ClearConsignees()
	return _u
}

// RemoveConsigneeIDs removes the "consignees" edge to ConsigneeDetail entities by IDs.
func (_u *ProductUpdate) RemoveConsigneeIDs(ids ...uuid.UUID) *ProductUpdate {
	_u.mutation.RemoveConsigneeIDs(ids...)
	return _u
}

// RemoveConsignees removes "consignees" edges to ConsigneeDetail entities.
func (_u *ProductUpdate) RemoveConsignees(v ...*ConsigneeDetail) *ProductUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConsigneeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := product.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductUpdate) check() error {
	if v, ok := _u.mutation.ProductName(); ok {
		if err := product.ProductNameValidator(v); err != nil {
			return &ValidationError{Name: "product_name", err: fmt.Errorf(`ent: validator failed for field "Product.product_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Brand(); ok {
		if err := product.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`ent: validator failed for field "Product.brand": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BrandType(); ok {
		if err := product.BrandTypeValidator(v); err != nil {
			return &ValidationError{Name: "brand_type", err: fmt.Errorf(`ent: validator failed for field "Product.brand_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CatalogueStatus(); ok {
		if err := product.CatalogueStatusValidator(v); err != nil {
			return &ValidationError{Name: "catalogue_status", err: fmt.Errorf(`ent: validator failed for field "Product.catalogue_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SellingAs(); ok {
		if err := product.SellingAsValidator(v); err != nil {
			return &ValidationError{Name: "selling_as", err: fmt.Errorf(`ent: validator failed for field "Product.selling_as": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryNameQuadrant(); ok {
		if err := product.CategoryNameQuadrantValidator(v); err != nil {
			return &ValidationError{Name: "category_name_quadrant", err: fmt.Errorf(`ent: validator failed for field "Product.category_name_quadrant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := product.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "Product.model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HsnCode(); ok {
		if err := product.HsnCodeValidator(v); err != nil {
			return &ValidationError{Name: "hsn_code", err: fmt.Errorf(`ent: validator failed for field "Product.hsn_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderedQuantity(); ok {
		if err := product.OrderedQuantityValidator(v); err != nil {
			return &ValidationError{Name: "ordered_quantity", err: fmt.Errorf(`ent: validator failed for field "Product.ordered_quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := product.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "Product.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := product.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`ent: validator failed for field "Product.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaxBifurcation(); ok {
		if err := product.TaxBifurcationValidator(v); err != nil {
			return &ValidationError{Name: "tax_bifurcation", err: fmt.Errorf(`ent: validator failed for field "Product.tax_bifurcation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPrice(); ok {
		if err := product.TotalPriceValidator(v); err != nil {
			return &ValidationError{Name: "total_price", err: fmt.Errorf(`ent: validator failed for field "Product.total_price": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Product.contract"`)
	}
	return nil
}

func (_u *ProductUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(product.Table, product.Columns, sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(product.FieldProductName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(product.FieldBrand, field.TypeString, value)
	}
	if _u.mutation.BrandCleared() {
		_spec.ClearField(product.FieldBrand, field.TypeString)
	}
	if value, ok := _u.mutation.BrandType(); ok {
		_spec.SetField(product.FieldBrandType, field.TypeString, value)
	}
	if _u.mutation.BrandTypeCleared() {
		_spec.ClearField(product.FieldBrandType, field.TypeString)
	}
	if value, ok := _u.mutation.CatalogueStatus(); ok {
		_spec.SetField(product.FieldCatalogueStatus, field.TypeString, value)
	}
	if _u.mutation.CatalogueStatusCleared() {
		_spec.ClearField(product.FieldCatalogueStatus, field.TypeString)
	}
	if value, ok := _u.mutation.SellingAs(); ok {
		_spec.SetField(product.FieldSellingAs, field.TypeString, value)
	}
	if _u.mutation.SellingAsCleared() {
		_spec.ClearField(product.FieldSellingAs, field.TypeString)
	}
	if value, ok := _u.mutation.CategoryNameQuadrant(); ok {
		_spec.SetField(product.FieldCategoryNameQuadrant, field.TypeString, value)
	}
	if _u.mutation.CategoryNameQuadrantCleared() {
		_spec.ClearField(product.FieldCategoryNameQuadrant, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(product.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(product.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.HsnCode(); ok {
		_spec.SetField(product.FieldHsnCode, field.TypeString, value)
	}
	if _u.mutation.HsnCodeCleared() {
		_spec.ClearField(product.FieldHsnCode, field.TypeString)
	}
	if value, ok := _u.mutation.OrderedQuantity(); ok {
		_spec.SetField(product.FieldOrderedQuantity, field.TypeString, value)
	}
	if _u.mutation.OrderedQuantityCleared() {
		_spec.ClearField(product.FieldOrderedQuantity, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(product.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(product.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(product.FieldUnitPrice, field.TypeString, value)
	}
	if _u.mutation.UnitPriceCleared() {
		_spec.ClearField(product.FieldUnitPrice, field.TypeString)
	}
	if value, ok := _u.mutation.TaxBifurcation(); ok {
		_spec.SetField(product.FieldTaxBifurcation, field.TypeString, value)
	}
	if _u.mutation.TaxBifurcationCleared() {
		_spec.ClearField(product.FieldTaxBifurcation, field.TypeString)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(product.FieldTotalPrice, field.TypeString, value)
	}
	if _u.mutation.TotalPriceCleared() {
		_spec.ClearField(product.FieldTotalPrice, field.TypeString)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(product.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(product.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(product.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, product.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(product.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(product.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   product.ContractTable,
			Columns: []string{product.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   product.ContractTable,
			Columns: []string{product.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SpecificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.SpecificationsTable,
			Columns: []string{product.SpecificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productspecification.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpecificationsIDs(); len(nodes) > 0 && !_u.mutation.SpecificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.SpecificationsTable,
			Columns: []string{product.SpecificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productspecification.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpecificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.SpecificationsTable,
			Columns: []string{product.SpecificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productspecification.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConsigneesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.ConsigneesTable,
			Columns: []string{product.ConsigneesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consigneedetail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConsigneesIDs(); len(nodes) > 0 && !_u.mutation.ConsigneesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.ConsigneesTable,
			Columns: []string{product.ConsigneesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consigneedetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConsigneesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.ConsigneesTable,
			Columns: []string{product.ConsigneesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consigneedetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{product.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductUpdateOne is the builder for updating a single Product entity.
type ProductUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductMutation
}

// SetContractID sets the "contract_id" field.
func (_u *ProductUpdateOne) SetContractID(v uuid.UUID) *ProductUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableContractID(v *uuid.UUID) *ProductUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetProductName sets the "product_name" field.
func (_u *ProductUpdateOne) SetProductName(v string) *ProductUpdateOne {
	_u.mutation.SetProductName(v)
	return _u
}

// SetNillableProductName sets the "product_name" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableProductName(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetProductName(*v)
	}
	return _u
}

// SetBrand sets the "brand" field.
func (_u *ProductUpdateOne) SetBrand(v string) *ProductUpdateOne {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableBrand(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// ClearBrand clears the value of the "brand" field.
func (_u *ProductUpdateOne) ClearBrand() *ProductUpdateOne {
	_u.mutation.ClearBrand()
	return _u
}

// SetBrandType sets the "brand_type" field.
func (_u *ProductUpdateOne) SetBrandType(v string) *ProductUpdateOne {
	_u.mutation.SetBrandType(v)
	return _u
}

// SetNillableBrandType sets the "brand_type" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableBrandType(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetBrandType(*v)
	}
	return _u
}

// ClearBrandType clears the value of the "brand_type" field.
func (_u *ProductUpdateOne) ClearBrandType() *ProductUpdateOne {
	_u.mutation.ClearBrandType()
	return _u
}

// SetCatalogueStatus sets the "catalogue_status" field.
func (_u *ProductUpdateOne) SetCatalogueStatus(v string) *ProductUpdateOne {
	_u.mutation.SetCatalogueStatus(v)
	return _u
}

// SetNillableCatalogueStatus sets the "catalogue_status" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableCatalogueStatus(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetCatalogueStatus(*v)
	}
	return _u
}

// ClearCatalogueStatus clears the value of the "catalogue_status" field.
func (_u *ProductUpdateOne) ClearCatalogueStatus() *ProductUpdateOne {
	_u.mutation.ClearCatalogueStatus()
	return _u
}

// SetSellingAs sets the "selling_as" field.
func (_u *ProductUpdateOne) SetSellingAs(v string) *ProductUpdateOne {
	_u.mutation.SetSellingAs(v)
	return _u
}

// SetNillableSellingAs sets the "selling_as" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableSellingAs(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetSellingAs(*v)
	}
	return _u
}

// ClearSellingAs clears the value of the "selling_as" field.
func (_u *ProductUpdateOne) ClearSellingAs() *ProductUpdateOne {
	_u.mutation.ClearSellingAs()
	return _u
}

// SetCategoryNameQuadrant sets the "category_name_quadrant" field.
func (_u *ProductUpdateOne) SetCategoryNameQuadrant(v string) *ProductUpdateOne {
	_u.mutation.SetCategoryNameQuadrant(v)
	return _u
}

// SetNillableCategoryNameQuadrant sets the "category_name_quadrant" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableCategoryNameQuadrant(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetCategoryNameQuadrant(*v)
	}
	return _u
}

// ClearCategoryNameQuadrant clears the value of the "category_name_quadrant" field.
func (_u *ProductUpdateOne) ClearCategoryNameQuadrant() *ProductUpdateOne {
	_u.mutation.ClearCategoryNameQuadrant()
	return _u
}

// SetModel sets the "model" field.
func (_u *ProductUpdateOne) SetModel(v string) *ProductUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableModel(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *ProductUpdateOne) ClearModel() *ProductUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetHsnCode sets the "hsn_code" field.
func (_u *ProductUpdateOne) SetHsnCode(v string) *ProductUpdateOne {
	_u.mutation.SetHsnCode(v)
	return _u
}

// SetNillableHsnCode sets the "hsn_code" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableHsnCode(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetHsnCode(*v)
	}
	return _u
}

// ClearHsnCode clears the value of the "hsn_code" field.
func (_u *ProductUpdateOne) ClearHsnCode() *ProductUpdateOne {
	_u.mutation.ClearHsnCode()
	return _u
}

// SetOrderedQuantity sets the "ordered_quantity" field.
func (_u *ProductUpdateOne) SetOrderedQuantity(v string) *ProductUpdateOne {
	_u.mutation.SetOrderedQuantity(v)
	return _u
}

// SetNillableOrderedQuantity sets the "ordered_quantity" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableOrderedQuantity(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetOrderedQuantity(*v)
	}
	return _u
}

// ClearOrderedQuantity clears the value of the "ordered_quantity" field.
func (_u *ProductUpdateOne) ClearOrderedQuantity() *ProductUpdateOne {
	_u.mutation.ClearOrderedQuantity()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *ProductUpdateOne) SetUnit(v string) *ProductUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableUnit(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *ProductUpdateOne) ClearUnit() *ProductUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *ProductUpdateOne) SetUnitPrice(v string) *ProductUpdateOne {
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableUnitPrice(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// ClearUnitPrice clears the value of the "unit_price" field.
func (_u *ProductUpdateOne) ClearUnitPrice() *ProductUpdateOne {
	_u.mutation.ClearUnitPrice()
	return _u
}

// SetTaxBifurcation sets the "tax_bifurcation" field.
func (_u *ProductUpdateOne) SetTaxBifurcation(v string) *ProductUpdateOne {
	_u.mutation.SetTaxBifurcation(v)
	return _u
}

// SetNillableTaxBifurcation sets the "tax_bifurcation" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableTaxBifurcation(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetTaxBifurcation(*v)
	}
	return _u
}

// ClearTaxBifurcation clears the value of the "tax_bifurcation" field.
func (_u *ProductUpdateOne) ClearTaxBifurcation() *ProductUpdateOne {
	_u.mutation.ClearTaxBifurcation()
	return _u
}

// SetTotalPrice sets the "total_price" field.
func (_u *ProductUpdateOne) SetTotalPrice(v string) *ProductUpdateOne {
	_u.mutation.SetTotalPrice(v)
	return _u
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableTotalPrice(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetTotalPrice(*v)
	}
	return _u
}

// ClearTotalPrice clears the value of the "total_price" field.
func (_u *ProductUpdateOne) ClearTotalPrice() *ProductUpdateOne {
	_u.mutation.ClearTotalPrice()
	return _u
}

// SetNote sets the "note" field.
func (_u *ProductUpdateOne) SetNote(v string) *ProductUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableNote(v *string) *ProductUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// ClearNote clears the value of the "note" field.
func (_u *ProductUpdateOne) ClearNote() *ProductUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ProductUpdateOne) SetEmbedding(v []float32) *ProductUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *ProductUpdateOne) AppendEmbedding(v []float32) *ProductUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ProductUpdateOne) ClearEmbedding() *ProductUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProductUpdateOne) SetCreatedAt(v time.Time) *ProductUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProductUpdateOne) SetNillableCreatedAt(v *time.Time) *ProductUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProductUpdateOne) SetUpdatedAt(v time.Time) *ProductUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *ProductUpdateOne) SetContract(v *Contract) *ProductUpdateOne {
	return _u.SetContractID(v.ID)
}

// AddSpecificationIDs adds the "specifications" edge to the ProductSpecification entity by IDs.
func (_u *ProductUpdateOne) AddSpecificationIDs(ids ...uuid.UUID) *ProductUpdateOne {
	_u.mutation.AddSpecificationIDs(ids...)
	return _u
}

// AddSpecifications adds the "specifications" edges to the ProductSpecification entity.
func (_u *ProductUpdateOne) AddSpecifications(v ...*ProductSpecification) *ProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSpecificationIDs(ids...)
}

// AddConsigneeIDs adds the "consignees" edge to the ConsigneeDetail entity by IDs.
func (_u *ProductUpdateOne) AddConsigneeIDs(ids ...uuid.UUID) *ProductUpdateOne {
	_u.mutation.AddConsigneeIDs(ids...)
	return _u
}

// AddConsignees adds the "consignees" edges to the ConsigneeDetail entity.
func (_u *ProductUpdateOne) AddConsignees(v ...*ConsigneeDetail) *ProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConsigneeIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_u *ProductUpdateOne) Mutation() *ProductMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *ProductUpdateOne) ClearContract() *ProductUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// ClearSpecifications clears all "specifications" edges to the ProductSpecification entity.
func (_u *ProductUpdateOne) ClearSpecifications() *ProductUpdateOne {
	_u.mutation.ClearSpecifications()
	return _u
}

// RemoveSpecificationIDs removes the "specifications" edge to ProductSpecification entities by IDs.
func (_u *ProductUpdateOne) RemoveSpecificationIDs(ids ...uuid.UUID) *ProductUpdateOne {
	_u.mutation.RemoveSpecificationIDs(ids...)
	return _u
}

// RemoveSpecifications removes "specifications" edges to ProductSpecification entities.
func (_u *ProductUpdateOne) RemoveSpecifications(v ...*ProductSpecification) *ProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSpecificationIDs(ids...)
}

// ClearConsignees clears all "consignees" edges to the ConsigneeDetail entity.
func (_u *ProductUpdateOne) ClearConsignees() *ProductUpdateOne {
	_u.mutation.ClearConsignees()
	return _u
}

// RemoveConsigneeIDs removes the "consignees" edge to ConsigneeDetail entities by IDs.
func (_u *ProductUpdateOne) RemoveConsigneeIDs(ids ...uuid.UUID) *ProductUpdateOne {
	_u.mutation.RemoveConsigneeIDs(ids...)
	return _u
}

// RemoveConsignees removes "consignees" edges to ConsigneeDetail entities.
func (_u *ProductUpdateOne) RemoveConsignees(v ...*ConsigneeDetail) *ProductUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConsigneeIDs(ids...)
}

// Where appends a list predicates to the ProductUpdate builder.
func (_u *ProductUpdateOne) Where(ps ...predicate.Product) *ProductUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductUpdateOne) Select(field string, fields ...string) *ProductUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Product entity.
func (_u *ProductUpdateOne) Save(ctx context.Context) (*Product, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductUpdateOne) SaveX(ctx context.Context) *Product {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProductUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := product.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductUpdateOne) check() error {
	if v, ok := _u.mutation.ProductName(); ok {
		if err := product.ProductNameValidator(v); err != nil {
			return &ValidationError{Name: "product_name", err: fmt.Errorf(`ent: validator failed for field "Product.product_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Brand(); ok {
		if err := product.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`ent: validator failed for field "Product.brand": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BrandType(); ok {
		if err := product.BrandTypeValidator(v); err != nil {
			return &ValidationError{Name: "brand_type", err: fmt.Errorf(`ent: validator failed for field "Product.brand_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CatalogueStatus(); ok {
		if err := product.CatalogueStatusValidator(v); err != nil {
			return &ValidationError{Name: "catalogue_status", err: fmt.Errorf(`ent: validator failed for field "Product.catalogue_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SellingAs(); ok {
		if err := product.SellingAsValidator(v); err != nil {
			return &ValidationError{Name: "selling_as", err: fmt.Errorf(`ent: validator failed for field "Product.selling_as": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryNameQuadrant(); ok {
		if err := product.CategoryNameQuadrantValidator(v); err != nil {
			return &ValidationError{Name: "category_name_quadrant", err: fmt.Errorf(`ent: validator failed for field "Product.category_name_quadrant": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := product.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "Product.model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HsnCode(); ok {
		if err := product.HsnCodeValidator(v); err != nil {
			return &ValidationError{Name: "hsn_code", err: fmt.Errorf(`ent: validator failed for field "Product.hsn_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OrderedQuantity(); ok {
		if err := product.OrderedQuantityValidator(v); err != nil {
			return &ValidationError{Name: "ordered_quantity", err: fmt.Errorf(`ent: validator failed for field "Product.ordered_quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Unit(); ok {
		if err := product.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "Product.unit": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := product.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`ent: validator failed for field "Product.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaxBifurcation(); ok {
		if err := product.TaxBifurcationValidator(v); err != nil {
			return &ValidationError{Name: "tax_bifurcation", err: fmt.Errorf(`ent: validator failed for field "Product.tax_bifurcation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalPrice(); ok {
		if err := product.TotalPriceValidator(v); err != nil {
			return &ValidationError{Name: "total_price", err: fmt.Errorf(`ent: validator failed for field "Product.total_price": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Product.contract"`)
	}
	return nil
}

func (_u *ProductUpdateOne) sqlSave(ctx context.Context) (_node *Product, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(product.Table, product.Columns, sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Product.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, product.FieldID)
		for _, f := range fields {
			if !product.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != product.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProductName(); ok {
		_spec.SetField(product.FieldProductName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(product.FieldBrand, field.TypeString, value)
	}
	if _u.mutation.BrandCleared() {
		_spec.ClearField(product.FieldBrand, field.TypeString)
	}
	if value, ok := _u.mutation.BrandType(); ok {
		_spec.SetField(product.FieldBrandType, field.TypeString, value)
	}
	if _u.mutation.BrandTypeCleared() {
		_spec.ClearField(product.FieldBrandType, field.TypeString)
	}
	if value, ok := _u.mutation.CatalogueStatus(); ok {
		_spec.SetField(product.FieldCatalogueStatus, field.TypeString, value)
	}
	if _u.mutation.CatalogueStatusCleared() {
		_spec.ClearField(product.FieldCatalogueStatus, field.TypeString)
	}
	if value, ok := _u.mutation.SellingAs(); ok {
		_spec.SetField(product.FieldSellingAs, field.TypeString, value)
	}
	if _u.mutation.SellingAsCleared() {
		_spec.ClearField(product.FieldSellingAs, field.TypeString)
	}
	if value, ok := _u.mutation.CategoryNameQuadrant(); ok {
		_spec.SetField(product.FieldCategoryNameQuadrant, field.TypeString, value)
	}
	if _u.mutation.CategoryNameQuadrantCleared() {
		_spec.ClearField(product.FieldCategoryNameQuadrant, field.TypeString)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(product.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(product.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.HsnCode(); ok {
		_spec.SetField(product.FieldHsnCode, field.TypeString, value)
	}
	if _u.mutation.HsnCodeCleared() {
		_spec.ClearField(product.FieldHsnCode, field.TypeString)
	}
	if value, ok := _u.mutation.OrderedQuantity(); ok {
		_spec.SetField(product.FieldOrderedQuantity, field.TypeString, value)
	}
	if _u.mutation.OrderedQuantityCleared() {
		_spec.ClearField(product.FieldOrderedQuantity, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(product.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(product.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(product.FieldUnitPrice, field.TypeString, value)
	}
	if _u.mutation.UnitPriceCleared() {
		_spec.ClearField(product.FieldUnitPrice, field.TypeString)
	}
	if value, ok := _u.mutation.TaxBifurcation(); ok {
		_spec.SetField(product.FieldTaxBifurcation, field.TypeString, value)
	}
	if _u.mutation.TaxBifurcationCleared() {
		_spec.ClearField(product.FieldTaxBifurcation, field.TypeString)
	}
	if value, ok := _u.mutation.TotalPrice(); ok {
		_spec.SetField(product.FieldTotalPrice, field.TypeString, value)
	}
	if _u.mutation.TotalPriceCleared() {
		_spec.ClearField(product.FieldTotalPrice, field.TypeString)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(product.FieldNote, field.TypeString, value)
	}
	if _u.mutation.NoteCleared() {
		_spec.ClearField(product.FieldNote, field.TypeString)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(product.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, product.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(product.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(product.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ContractCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   product.ContractTable,
			Columns: []string{product.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   product.ContractTable,
			Columns: []string{product.ContractColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contract.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SpecificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.SpecificationsTable,
			Columns: []string{product.SpecificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productspecification.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSpecificationsIDs(); len(nodes) > 0 && !_u.mutation.SpecificationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.SpecificationsTable,
			Columns: []string{product.SpecificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productspecification.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SpecificationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.SpecificationsTable,
			Columns: []string{product.SpecificationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productspecification.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConsigneesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.ConsigneesTable,
			Columns: []string{product.ConsigneesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consigneedetail.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConsigneesIDs(); len(nodes) > 0 && !_u.mutation.ConsigneesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.ConsigneesTable,
			Columns: []string{product.ConsigneesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consigneedetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConsigneesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   product.ConsigneesTable,
			Columns: []string{product.ConsigneesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consigneedetail.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Product{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{product.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
