// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/product"
	"github.com/gemdocs/procurement-tracker/gen/ent/productspecification"
	"github.com/google/uuid"
)

// ProductSpecificationCreate is the builder for creating a ProductSpecification entity.
type ProductSpecificationCreate struct {
	config
	mutation *ProductSpecificationMutation
	hooks    []Hook
}

// SetProductID sets the "product_id" field.
func (_c *ProductSpecificationCreate) SetProductID(v uuid.UUID) *ProductSpecificationCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ProductSpecificationCreate) SetCategory(v string) *ProductSpecificationCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ProductSpecificationCreate) SetNillableCategory(v *string) *ProductSpecificationCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetSubSpec sets the "sub_spec" field.
func (_c *ProductSpecificationCreate) SetSubSpec(v string) *ProductSpecificationCreate {
	_c.mutation.SetSubSpec(v)
	return _c
}

// SetNillableSubSpec sets the "sub_spec" field if the given value is not nil.
func (_c *ProductSpecificationCreate) SetNillableSubSpec(v *string) *ProductSpecificationCreate {
	if v != nil {
		_c.SetSubSpec(*v)
	}
	return _c
}

// SetValue sets the "value" field.
func (_c *ProductSpecificationCreate) SetValue(v string) *ProductSpecificationCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *ProductSpecificationCreate) SetNillableValue(v *string) *ProductSpecificationCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProductSpecificationCreate) SetID(v uuid.UUID) *ProductSpecificationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProductSpecificationCreate) SetNillableID(v *uuid.UUID) *ProductSpecificationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProduct sets the "product" edge to the Product entity.
func (_c *ProductSpecificationCreate) SetProduct(v *Product) *ProductSpecificationCreate {
	return _c.SetProductID(v.ID)
}

// Mutation returns the ProductSpecificationMutation object of the builder.
func (_c *ProductSpecificationCreate) Mutation() *ProductSpecificationMutation {
	return _c.mutation
}

// Save creates the ProductSpecification in the database.
func (_c *ProductSpecificationCreate) Save(ctx context.Context) (*ProductSpecification, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProductSpecificationCreate) SaveX(ctx context.Context) *ProductSpecification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductSpecificationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductSpecificationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProductSpecificationCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := productspecification.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProductSpecificationCreate) check() error {
	if _, ok := _c.mutation.ProductID(); !ok {
		return &ValidationError{Name: "product_id", err: errors.New(`ent: missing required field "ProductSpecification.product_id"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := productspecification.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ProductSpecification.category": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SubSpec(); ok {
		if err := productspecification.SubSpecValidator(v); err != nil {
			return &ValidationError{Name: "sub_spec", err: fmt.Errorf(`ent: validator failed for field "ProductSpecification.sub_spec": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := productspecification.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "ProductSpecification.value": %w`, err)}
		}
	}
	if len(_c.mutation.ProductIDs()) == 0 {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required edge "ProductSpecification.product"`)}
	}
	return nil
}

func (_c *ProductSpecificationCreate) sqlSave(ctx context.Context) (*ProductSpecification, error) {
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

func (_c *ProductSpecificationCreate) createSpec() (*ProductSpecification, *sqlgraph.CreateSpec) {
	var (
		_node = &ProductSpecification{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(productspecification.Table, sqlgraph.NewFieldSpec(productspecification.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(productspecification.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.SubSpec(); ok {
		_spec.SetField(productspecification.FieldSubSpec, field.TypeString, value)
		_node.SubSpec = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(productspecification.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if nodes := _c.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   productspecification.ProductTable,
			Columns: []string{productspecification.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProductID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProductSpecificationCreateBulk is the builder for creating many ProductSpecification entities in bulk.
type ProductSpecificationCreateBulk struct {
	config
	err      error
	builders []*ProductSpecificationCreate
}

// Save creates the ProductSpecification entities in the database.
func (_c *ProductSpecificationCreateBulk) Save(ctx context.Context) ([]*ProductSpecification, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProductSpecification, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProductSpecificationMutation)
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
func (_c *ProductSpecificationCreateBulk) SaveX(ctx context.Context) []*ProductSpecification {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductSpecificationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductSpecificationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
