// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/consigneedetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/product"
	"github.com/gemdocs/procurement-tracker/gen/ent/productspecification"
	"github.com/google/uuid"
)

// ProductCreate is the builder for creating a Product entity.
type ProductCreate struct {
	config
	mutation *ProductMutation
	hooks    []Hook
}

// SetContractID sets the "contract_id" field.
func (_c *ProductCreate) SetContractID(v uuid.UUID) *ProductCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetProductName sets the "product_name" field.
func (_c *ProductCreate) SetProductName(v string) *ProductCreate {
	_c.mutation.SetProductName(v)
	return _c
}

// SetBrand sets the "brand" field.
func (_c *ProductCreate) SetBrand(v string) *ProductCreate {
	_c.mutation.SetBrand(v)
	return _c
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_c *ProductCreate) SetNillableBrand(v *string) *ProductCreate {
	if v != nil {
		_c.SetBrand(*v)
	}
	return _c
}

// SetBrandType sets the "brand_type" field.
func (_c *ProductCreate) SetBrandType(v string) *ProductCreate {
	_c.mutation.SetBrandType(v)
	return _c
}

// SetNillableBrandType sets the "brand_type" field if the given value is not nil.
func (_c *ProductCreate) SetNillableBrandType(v *string) *ProductCreate {
	if v != nil {
		_c.SetBrandType(*v)
	}
	return _c
}

// SetCatalogueStatus sets the "catalogue_status" field.
func (_c *ProductCreate) SetCatalogueStatus(v string) *ProductCreate {
	_c.mutation.SetCatalogueStatus(v)
	return _c
}

// SetNillableCatalogueStatus sets the "catalogue_status" field if the given value is not nil.
func (_c *ProductCreate) SetNillableCatalogueStatus(v *string) *ProductCreate {
	if v != nil {
		_c.SetCatalogueStatus(*v)
	}
	return _c
}

// SetSellingAs sets the "selling_as" field.
func (_c *ProductCreate) SetSellingAs(v string) *ProductCreate {
	_c.mutation.SetSellingAs(v)
	return _c
}

// SetNillableSellingAs sets the "selling_as" field if the given value is not nil.
func (_c *ProductCreate) SetNillableSellingAs(v *string) *ProductCreate {
	if v != nil {
		_c.SetSellingAs(*v)
	}
	return _c
}

// SetCategoryNameQuadrant sets the "category_name_quadrant" field.
func (_c *ProductCreate) SetCategoryNameQuadrant(v string) *ProductCreate {
	_c.mutation.SetCategoryNameQuadrant(v)
	return _c
}

// SetNillableCategoryNameQuadrant sets the "category_name_quadrant" field if the given value is not nil.
func (_c *ProductCreate) SetNillableCategoryNameQuadrant(v *string) *ProductCreate {
	if v != nil {
		_c.SetCategoryNameQuadrant(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *ProductCreate) SetModel(v string) *ProductCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *ProductCreate) SetNillableModel(v *string) *ProductCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetHsnCode sets the "hsn_code" field.
func (_c *ProductCreate) SetHsnCode(v string) *ProductCreate {
	_c.mutation.SetHsnCode(v)
	return _c
}

// SetNillableHsnCode sets the "hsn_code" field if the given value is not nil.
func (_c *ProductCreate) SetNillableHsnCode(v *string) *ProductCreate {
	if v != nil {
		_c.SetHsnCode(*v)
	}
	return _c
}

// SetOrderedQuantity sets the "ordered_quantity" field.
func (_c *ProductCreate) SetOrderedQuantity(v string) *ProductCreate {
	_c.mutation.SetOrderedQuantity(v)
	return _c
}

// SetNillableOrderedQuantity sets the "ordered_quantity" field if the given value is not nil.
func (_c *ProductCreate) SetNillableOrderedQuantity(v *string) *ProductCreate {
	if v != nil {
		_c.SetOrderedQuantity(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *ProductCreate) SetUnit(v string) *ProductCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *ProductCreate) SetNillableUnit(v *string) *ProductCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *ProductCreate) SetUnitPrice(v string) *ProductCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_c *ProductCreate) SetNillableUnitPrice(v *string) *ProductCreate {
	if v != nil {
		_c.SetUnitPrice(*v)
	}
	return _c
}

// SetTaxBifurcation sets the "tax_bifurcation" field.
func (_c *ProductCreate) SetTaxBifurcation(v string) *ProductCreate {
	_c.mutation.SetTaxBifurcation(v)
	return _c
}

// SetNillableTaxBifurcation sets the "tax_bifurcation" field if the given value is not nil.
func (_c *ProductCreate) SetNillableTaxBifurcation(v *string) *ProductCreate {
	if v != nil {
		_c.SetTaxBifurcation(*v)
	}
	return _c
}

// SetTotalPrice sets the "total_price" field.
func (_c *ProductCreate) SetTotalPrice(v string) *ProductCreate {
	_c.mutation.SetTotalPrice(v)
	return _c
}

// SetNillableTotalPrice sets the "total_price" field if the given value is not nil.
func (_c *ProductCreate) SetNillableTotalPrice(v *string) *ProductCreate {
	if v != nil {
		_c.SetTotalPrice(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *ProductCreate) SetNote(v string) *ProductCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *ProductCreate) SetNillableNote(v *string) *ProductCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *ProductCreate) SetEmbedding(v []float32) *ProductCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProductCreate) SetCreatedAt(v time.Time) *ProductCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProductCreate) SetNillableCreatedAt(v *time.Time) *ProductCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProductCreate) SetUpdatedAt(v time.Time) *ProductCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProductCreate) SetNillableUpdatedAt(v *time.Time) *ProductCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProductCreate) SetID(v uuid.UUID) *ProductCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProductCreate) SetNillableID(v *uuid.UUID) *ProductCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *ProductCreate) SetContract(v *Contract) *ProductCreate {
	return _c.SetContractID(v.ID)
}

// AddSpecificationIDs adds the "specifications" edge to the ProductSpecification entity by IDs.
func (_c *ProductCreate) AddSpecificationIDs(ids ...uuid.UUID) *ProductCreate {
	_c.mutation.AddSpecificationIDs(ids...)
	return _c
}

// AddSpecifications adds the "specifications" edges to the ProductSpecification entity.
func (_c *ProductCreate) AddSpecifications(v ...*ProductSpecification) *ProductCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSpecificationIDs(ids...)
}

// AddConsigneeIDs adds the "consignees" edge to the ConsigneeDetail entity by IDs.
func (_c *ProductCreate) AddConsigneeIDs(ids ...uuid.UUID) *ProductCreate {
	_c.mutation.AddConsigneeIDs(ids...)
	return _c
}

// AddConsignees adds the "consignees" edges to the ConsigneeDetail entity.
func (_c *ProductCreate) AddConsignees(v ...*ConsigneeDetail) *ProductCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConsigneeIDs(ids...)
}

// Mutation returns the ProductMutation object of the builder.
func (_c *ProductCreate) Mutation() *ProductMutation {
	return _c.mutation
}

// Save creates the Product in the database.
func (_c *ProductCreate) Save(ctx context.Context) (*Product, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProductCreate) SaveX(ctx context.Context) *Product {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProductCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := product.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := product.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := product.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProductCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "Product.contract_id"`)}
	}
	if _, ok := _c.mutation.ProductName(); !ok {
		return &ValidationError{Name: "product_name", err: errors.New(`ent: missing required field "Product.product_name"`)}
	}
	if v, ok := _c.mutation.ProductName(); ok {
		if err := product.ProductNameValidator(v); err != nil {
			return &ValidationError{Name: "product_name", err: fmt.Errorf(`ent: validator failed for field "Product.product_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Brand(); ok {
		if err := product.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`ent: validator failed for field "Product.brand": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BrandType(); ok {
		if err := product.BrandTypeValidator(v); err != nil {
			return &ValidationError{Name: "brand_type", err: fmt.Errorf(`ent: validator failed for field "Product.brand_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CatalogueStatus(); ok {
		if err := product.CatalogueStatusValidator(v); err != nil {
			return &ValidationError{Name: "catalogue_status", err: fmt.Errorf(`ent: validator failed for field "Product.catalogue_status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SellingAs(); ok {
		if err := product.SellingAsValidator(v); err != nil {
			return &ValidationError{Name: "selling_as", err: fmt.Errorf(`ent: validator failed for field "Product.selling_as": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CategoryNameQuadrant(); ok {
		if err := product.CategoryNameQuadrantValidator(v); err != nil {
			return &ValidationError{Name: "category_name_quadrant", err: fmt.Errorf(`ent: validator failed for field "Product.category_name_quadrant": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := product.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`ent: validator failed for field "Product.model": %w`, err)}
		}
	}
	if v, ok := _c.mutation.HsnCode(); ok {
		if err := product.HsnCodeValidator(v); err != nil {
			return &ValidationError{Name: "hsn_code", err: fmt.Errorf(`ent: validator failed for field "Product.hsn_code": %w`, err)}
		}
	}
	if v, ok := _c.mutation.OrderedQuantity(); ok {
		if err := product.OrderedQuantityValidator(v); err != nil {
			return &ValidationError{Name: "ordered_quantity", err: fmt.Errorf(`ent: validator failed for field "Product.ordered_quantity": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Unit(); ok {
		if err := product.UnitValidator(v); err != nil {
			return &ValidationError{Name: "unit", err: fmt.Errorf(`ent: validator failed for field "Product.unit": %w`, err)}
		}
	}
	if v, ok := _c.mutation.UnitPrice(); ok {
		if err := product.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`ent: validator failed for field "Product.unit_price": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TaxBifurcation(); ok {
		if err := product.TaxBifurcationValidator(v); err != nil {
			return &ValidationError{Name: "tax_bifurcation", err: fmt.Errorf(`ent: validator failed for field "Product.tax_bifurcation": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TotalPrice(); ok {
		if err := product.TotalPriceValidator(v); err != nil {
			return &ValidationError{Name: "total_price", err: fmt.Errorf(`ent: validator failed for field "Product.total_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Product.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Product.updated_at"`)}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "Product.contract"`)}
	}
	return nil
}

func (_c *ProductCreate) sqlSave(ctx context.Context) (*Product, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProductCreate) createSpec() (*Product, *sqlgraph.CreateSpec) {
	var (
		_node = &Product{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(product.Table, sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProductName(); ok {
		_spec.SetField(product.FieldProductName, field.TypeString, value)
		_node.ProductName = value
	}
	if value, ok := _c.mutation.Brand(); ok {
		_spec.SetField(product.FieldBrand, field.TypeString, value)
		_node.Brand = value
	}
	if value, ok := _c.mutation.BrandType(); ok {
		_spec.SetField(product.FieldBrandType, field.TypeString, value)
		_node.BrandType = value
	}
	if value, ok := _c.mutation.CatalogueStatus(); ok {
		_spec.SetField(product.FieldCatalogueStatus, field.TypeString, value)
		_node.CatalogueStatus = value
	}
	if value, ok := _c.mutation.SellingAs(); ok {
		_spec.SetField(product.FieldSellingAs, field.TypeString, value)
		_node.SellingAs = value
	}
	if value, ok := _c.mutation.CategoryNameQuadrant(); ok {
		_spec.SetField(product.FieldCategoryNameQuadrant, field.TypeString, value)
		_node.CategoryNameQuadrant = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(product.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.HsnCode(); ok {
		_spec.SetField(product.FieldHsnCode, field.TypeString, value)
		_node.HsnCode = value
	}
	if value, ok := _c.mutation.OrderedQuantity(); ok {
		_spec.SetField(product.FieldOrderedQuantity, field.TypeString, value)
		_node.OrderedQuantity = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(product.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(product.FieldUnitPrice, field.TypeString, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.TaxBifurcation(); ok {
		_spec.SetField(product.FieldTaxBifurcation, field.TypeString, value)
		_node.TaxBifurcation = value
	}
	if value, ok := _c.mutation.TotalPrice(); ok {
		_spec.SetField(product.FieldTotalPrice, field.TypeString, value)
		_node.TotalPrice = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(product.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(product.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(product.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(product.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
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
		_node.ContractID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SpecificationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConsigneesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProductCreateBulk is the builder for creating many Product entities in bulk.
type ProductCreateBulk struct {
	config
	err      error
	builders []*ProductCreate
}

// Save creates the Product entities in the database.
func (_c *ProductCreateBulk) Save(ctx context.Context) ([]*Product, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Product, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProductMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProductCreateBulk) SaveX(ctx context.Context) []*Product {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
