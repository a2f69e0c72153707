// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/gemdocs/procurement-tracker/gen/ent/product"
	"github.com/gemdocs/procurement-tracker/gen/ent/productspecification"
	"github.com/google/uuid"
)

// ProductSpecificationUpdate is the builder for updating ProductSpecification entities.
type ProductSpecificationUpdate struct {
	config
	hooks    []Hook
	mutation *ProductSpecificationMutation
}

// Where appends a list predicates to the ProductSpecificationUpdate builder.
func (_u *ProductSpecificationUpdate) Where(ps ...predicate.ProductSpecification) *ProductSpecificationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *ProductSpecificationUpdate) SetProductID(v uuid.UUID) *ProductSpecificationUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *ProductSpecificationUpdate) SetNillableProductID(v *uuid.UUID) *ProductSpecificationUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ProductSpecificationUpdate) SetCategory(v string) *ProductSpecificationUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ProductSpecificationUpdate) SetNillableCategory(v *string) *ProductSpecificationUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ProductSpecificationUpdate) ClearCategory() *ProductSpecificationUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetSubSpec sets the "sub_spec" field.
func (_u *ProductSpecificationUpdate) SetSubSpec(v string) *ProductSpecificationUpdate {
	_u.mutation.SetSubSpec(v)
	return _u
}

// SetNillableSubSpec sets the "sub_spec" field if the given value is not nil.
func (_u *ProductSpecificationUpdate) SetNillableSubSpec(v *string) *ProductSpecificationUpdate {
	if v != nil {
		_u.SetSubSpec(*v)
	}
	return _u
}

// ClearSubSpec clears the value of the "sub_spec" field.
func (_u *ProductSpecificationUpdate) ClearSubSpec() *ProductSpecificationUpdate {
	_u.mutation.ClearSubSpec()
	return _u
}

// SetValue sets the "value" field.
func (_u *ProductSpecificationUpdate) SetValue(v string) *ProductSpecificationUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ProductSpecificationUpdate) SetNillableValue(v *string) *ProductSpecificationUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *ProductSpecificationUpdate) ClearValue() *ProductSpecificationUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *ProductSpecificationUpdate) SetProduct(v *Product) *ProductSpecificationUpdate {
	return _u.SetProductID(v.ID)
}

// Mutation returns the ProductSpecificationMutation object of the builder.
func (_u *ProductSpecificationUpdate) Mutation() *ProductSpecificationMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *ProductSpecificationUpdate) ClearProduct() *ProductSpecificationUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductSpecificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductSpecificationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductSpecificationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductSpecificationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductSpecificationUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := productspecification.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ProductSpecification.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubSpec(); ok {
		if err := productspecification.SubSpecValidator(v); err != nil {
			return &ValidationError{Name: "sub_spec", err: fmt.Errorf(`ent: validator failed for field "ProductSpecification.sub_spec": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := productspecification.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "ProductSpecification.value": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProductSpecification.product"`)
	}
	return nil
}

func (_u *ProductSpecificationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productspecification.Table, productspecification.Columns, sqlgraph.NewFieldSpec(productspecification.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(productspecification.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(productspecification.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.SubSpec(); ok {
		_spec.SetField(productspecification.FieldSubSpec, field.TypeString, value)
	}
	if _u.mutation.SubSpecCleared() {
		_spec.ClearField(productspecification.FieldSubSpec, field.TypeString)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(productspecification.FieldValue, field.TypeString, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(productspecification.FieldValue, field.TypeString)
	}
	if _u.mutation.ProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productspecification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductSpecificationUpdateOne is the builder for updating a single ProductSpecification entity.
type ProductSpecificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductSpecificationMutation
}

// SetProductID sets the "product_id" field.
func (_u *ProductSpecificationUpdateOne) SetProductID(v uuid.UUID) *ProductSpecificationUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *ProductSpecificationUpdateOne) SetNillableProductID(v *uuid.UUID) *ProductSpecificationUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ProductSpecificationUpdateOne) SetCategory(v string) *ProductSpecificationUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ProductSpecificationUpdateOne) SetNillableCategory(v *string) *ProductSpecificationUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ProductSpecificationUpdateOne) ClearCategory() *ProductSpecificationUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetSubSpec sets the "sub_spec" field.
func (_u *ProductSpecificationUpdateOne) SetSubSpec(v string) *ProductSpecificationUpdateOne {
	_u.mutation.SetSubSpec(v)
	return _u
}

// SetNillableSubSpec sets the "sub_spec" field if the given value is not nil.
func (_u *ProductSpecificationUpdateOne) SetNillableSubSpec(v *string) *ProductSpecificationUpdateOne {
	if v != nil {
		_u.SetSubSpec(*v)
	}
	return _u
}

// ClearSubSpec clears the value of the "sub_spec" field.
func (_u *ProductSpecificationUpdateOne) ClearSubSpec() *ProductSpecificationUpdateOne {
	_u.mutation.ClearSubSpec()
	return _u
}

// SetValue sets the "value" field.
func (_u *ProductSpecificationUpdateOne) SetValue(v string) *ProductSpecificationUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ProductSpecificationUpdateOne) SetNillableValue(v *string) *ProductSpecificationUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *ProductSpecificationUpdateOne) ClearValue() *ProductSpecificationUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *ProductSpecificationUpdateOne) SetProduct(v *Product) *ProductSpecificationUpdateOne {
	return _u.SetProductID(v.ID)
}

// Mutation returns the ProductSpecificationMutation object of the builder.
func (_u *ProductSpecificationUpdateOne) Mutation() *ProductSpecificationMutation {
	return _u.mutation
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *ProductSpecificationUpdateOne) ClearProduct() *ProductSpecificationUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// Where appends a list predicates to the ProductSpecificationUpdate builder.
func (_u *ProductSpecificationUpdateOne) Where(ps ...predicate.ProductSpecification) *ProductSpecificationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductSpecificationUpdateOne) Select(field string, fields ...string) *ProductSpecificationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProductSpecification entity.
func (_u *ProductSpecificationUpdateOne) Save(ctx context.Context) (*ProductSpecification, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductSpecificationUpdateOne) SaveX(ctx context.Context) *ProductSpecification {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductSpecificationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductSpecificationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductSpecificationUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := productspecification.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ProductSpecification.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubSpec(); ok {
		if err := productspecification.SubSpecValidator(v); err != nil {
			return &ValidationError{Name: "sub_spec", err: fmt.Errorf(`ent: validator failed for field "ProductSpecification.sub_spec": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := productspecification.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "ProductSpecification.value": %w`, err)}
		}
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProductSpecification.product"`)
	}
	return nil
}

func (_u *ProductSpecificationUpdateOne) sqlSave(ctx context.Context) (_node *ProductSpecification, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productspecification.Table, productspecification.Columns, sqlgraph.NewFieldSpec(productspecification.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProductSpecification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, productspecification.FieldID)
		for _, f := range fields {
			if !productspecification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != productspecification.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(productspecification.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(productspecification.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.SubSpec(); ok {
		_spec.SetField(productspecification.FieldSubSpec, field.TypeString, value)
	}
	if _u.mutation.SubSpecCleared() {
		_spec.ClearField(productspecification.FieldSubSpec, field.TypeString)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(productspecification.FieldValue, field.TypeString, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(productspecification.FieldValue, field.TypeString)
	}
	if _u.mutation.ProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProductSpecification{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productspecification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
