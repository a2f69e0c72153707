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
	"github.com/gemdocs/procurement-tracker/gen/ent/product"
	"github.com/google/uuid"
)

// ConsigneeDetailCreate is the builder for creating a ConsigneeDetail entity.
type ConsigneeDetailCreate struct {
	config
	mutation *ConsigneeDetailMutation
	hooks    []Hook
}

// SetProductID sets the "product_id" field.
func (_c *ConsigneeDetailCreate) SetProductID(v uuid.UUID) *ConsigneeDetailCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetSNo sets the "s_no" field.
func (_c *ConsigneeDetailCreate) SetSNo(v int) *ConsigneeDetailCreate {
	_c.mutation.SetSNo(v)
	return _c
}

// SetNillableSNo sets the "s_no" field if the given value is not nil.
func (_c *ConsigneeDetailCreate) SetNillableSNo(v *int) *ConsigneeDetailCreate {
	if v != nil {
		_c.SetSNo(*v)
	}
	return _c
}

// SetDesignation sets the "designation" field.
func (_c *ConsigneeDetailCreate) SetDesignation(v string) *ConsigneeDetailCreate {
	_c.mutation.SetDesignation(v)
	return _c
}

// SetNillableDesignation sets the "designation" field if the given value is not nil.
func (_c *ConsigneeDetailCreate) SetNillableDesignation(v *string) *ConsigneeDetailCreate {
	if v != nil {
		_c.SetDesignation(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ConsigneeDetailCreate) SetEmail(v string) *ConsigneeDetailCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ConsigneeDetailCreate) SetNillableEmail(v *string) *ConsigneeDetailCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetContact sets the "contact" field.
func (_c *ConsigneeDetailCreate) SetContact(v string) *ConsigneeDetailCreate {
	_c.mutation.SetContact(v)
	return _c
}

// SetNillableContact sets the "contact" field if the given value is not nil.
func (_c *ConsigneeDetailCreate) SetNillableContact(v *string) *ConsigneeDetailCreate {
	if v != nil {
		_c.SetContact(*v)
	}
	return _c
}

// SetGstin sets the "gstin" field.
func (_c *ConsigneeDetailCreate) SetGstin(v string) *ConsigneeDetailCreate {
	_c.mutation.SetGstin(v)
	return _c
}

// SetNillableGstin sets the "gstin" field if the given value is not nil.
func (_c *ConsigneeDetailCreate) SetNillableGstin(v *string) *ConsigneeDetailCreate {
	if v != nil {
		_c.SetGstin(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *ConsigneeDetailCreate) SetAddress(v string) *ConsigneeDetailCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *ConsigneeDetailCreate) SetNillableAddress(v *string) *ConsigneeDetailCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetLotNo sets the "lot_no" field.
func (_c *ConsigneeDetailCreate) SetLotNo(v string) *ConsigneeDetailCreate {
	_c.mutation.SetLotNo(v)
	return _c
}

// SetNillableLotNo sets the "lot_no" field if the given value is not nil.
func (_c *ConsigneeDetailCreate) SetNillableLotNo(v *string) *ConsigneeDetailCreate {
	if v != nil {
		_c.SetLotNo(*v)
	}
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *ConsigneeDetailCreate) SetQuantity(v int) *ConsigneeDetailCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *ConsigneeDetailCreate) SetNillableQuantity(v *int) *ConsigneeDetailCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetDeliveryStart sets the "delivery_start" field.
func (_c *ConsigneeDetailCreate) SetDeliveryStart(v time.Time) *ConsigneeDetailCreate {
	_c.mutation.SetDeliveryStart(v)
	return _c
}

// SetNillableDeliveryStart sets the "delivery_start" field if the given value is not nil.
func (_c *ConsigneeDetailCreate) SetNillableDeliveryStart(v *time.Time) *ConsigneeDetailCreate {
	if v != nil {
		_c.SetDeliveryStart(*v)
	}
	return _c
}

// SetDeliveryEnd sets the "delivery_end" field.
func (_c *ConsigneeDetailCreate) SetDeliveryEnd(v time.Time) *ConsigneeDetailCreate {
	_c.mutation.SetDeliveryEnd(v)
	return _c
}

// SetNillableDeliveryEnd sets the "delivery_end" field if the given value is not nil.
func (_c *ConsigneeDetailCreate) SetNillableDeliveryEnd(v *time.Time) *ConsigneeDetailCreate {
	if v != nil {
		_c.SetDeliveryEnd(*v)
	}
	return _c
}

// SetDeliveryTo sets the "delivery_to" field.
func (_c *ConsigneeDetailCreate) SetDeliveryTo(v string) *ConsigneeDetailCreate {
	_c.mutation.SetDeliveryTo(v)
	return _c
}

// SetNillableDeliveryTo sets the "delivery_to" field if the given value is not nil.
func (_c *ConsigneeDetailCreate) SetNillableDeliveryTo(v *string) *ConsigneeDetailCreate {
	if v != nil {
		_c.SetDeliveryTo(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConsigneeDetailCreate) SetID(v uuid.UUID) *ConsigneeDetailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ConsigneeDetailCreate) SetNillableID(v *uuid.UUID) *ConsigneeDetailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProduct sets the "product" edge to the Product entity.
func (_c *ConsigneeDetailCreate) SetProduct(v *Product) *ConsigneeDetailCreate {
	return _c.SetProductID(v.ID)
}

// Mutation returns the ConsigneeDetailMutation object of the builder.
func (_c *ConsigneeDetailCreate) Mutation() *ConsigneeDetailMutation {
	return _c.mutation
}

// Save creates the ConsigneeDetail in the database.
func (_c *ConsigneeDetailCreate) Save(ctx context.Context) (*ConsigneeDetail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConsigneeDetailCreate) SaveX(ctx context.Context) *ConsigneeDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsigneeDetailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsigneeDetailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConsigneeDetailCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := consigneedetail.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConsigneeDetailCreate) check() error {
	if _, ok := _c.mutation.ProductID(); !ok {
		return &ValidationError{Name: "product_id", err: errors.New(`ent: missing required field "ConsigneeDetail.product_id"`)}
	}
	if v, ok := _c.mutation.Designation(); ok {
		if err := consigneedetail.DesignationValidator(v); err != nil {
			return &ValidationError{Name: "designation", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.designation": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := consigneedetail.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Contact(); ok {
		if err := consigneedetail.ContactValidator(v); err != nil {
			return &ValidationError{Name: "contact", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.contact": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Gstin(); ok {
		if err := consigneedetail.GstinValidator(v); err != nil {
			return &ValidationError{Name: "gstin", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.gstin": %w`, err)}
		}
	}
	if v, ok := _c.mutation.LotNo(); ok {
		if err := consigneedetail.LotNoValidator(v); err != nil {
			return &ValidationError{Name: "lot_no", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.lot_no": %w`, err)}
		}
	}
	if v, ok := _c.mutation.DeliveryTo(); ok {
		if err := consigneedetail.DeliveryToValidator(v); err != nil {
			return &ValidationError{Name: "delivery_to", err: fmt.Errorf(`ent: validator failed for field "ConsigneeDetail.delivery_to": %w`, err)}
		}
	}
	if len(_c.mutation.ProductIDs()) == 0 {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required edge "ConsigneeDetail.product"`)}
	}
	return nil
}

func (_c *ConsigneeDetailCreate) sqlSave(ctx context.Context) (*ConsigneeDetail, error) {
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

func (_c *ConsigneeDetailCreate) createSpec() (*ConsigneeDetail, *sqlgraph.CreateSpec) {
	var (
		_node = &ConsigneeDetail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(consigneedetail.Table, sqlgraph.NewFieldSpec(consigneedetail.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SNo(); ok {
		_spec.SetField(consigneedetail.FieldSNo, field.TypeInt, value)
		_node.SNo = &value
	}
	if value, ok := _c.mutation.Designation(); ok {
		_spec.SetField(consigneedetail.FieldDesignation, field.TypeString, value)
		_node.Designation = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(consigneedetail.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Contact(); ok {
		_spec.SetField(consigneedetail.FieldContact, field.TypeString, value)
		_node.Contact = value
	}
	if value, ok := _c.mutation.Gstin(); ok {
		_spec.SetField(consigneedetail.FieldGstin, field.TypeString, value)
		_node.Gstin = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(consigneedetail.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.LotNo(); ok {
		_spec.SetField(consigneedetail.FieldLotNo, field.TypeString, value)
		_node.LotNo = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(consigneedetail.FieldQuantity, field.TypeInt, value)
		_node.Quantity = &value
	}
	if value, ok := _c.mutation.DeliveryStart(); ok {
		_spec.SetField(consigneedetail.FieldDeliveryStart, field.TypeTime, value)
		_node.DeliveryStart = &value
	}
	if value, ok := _c.mutation.DeliveryEnd(); ok {
		_spec.SetField(consigneedetail.FieldDeliveryEnd, field.TypeTime, value)
		_node.DeliveryEnd = &value
	}
	if value, ok := _c.mutation.DeliveryTo(); ok {
		_spec.SetField(consigneedetail.FieldDeliveryTo, field.TypeString, value)
		_node.DeliveryTo = value
	}
	if nodes := _c.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   consigneedetail.ProductTable,
			Columns: []string{consigneedetail.ProductColumn},
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

// ConsigneeDetailCreateBulk is the builder for creating many ConsigneeDetail entities in bulk.
type ConsigneeDetailCreateBulk struct {
	config
	err      error
	builders []*ConsigneeDetailCreate
}

// Save creates the ConsigneeDetail entities in the database.
func (_c *ConsigneeDetailCreateBulk) Save(ctx context.Context) ([]*ConsigneeDetail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConsigneeDetail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConsigneeDetailMutation)
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
func (_c *ConsigneeDetailCreateBulk) SaveX(ctx context.Context) []*ConsigneeDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsigneeDetailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsigneeDetailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
