// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/buyerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/google/uuid"
)

// BuyerDetailCreate is the builder for creating a BuyerDetail entity.
type BuyerDetailCreate struct {
	config
	mutation *BuyerDetailMutation
	hooks    []Hook
}

// SetContractID sets the "contract_id" field.
func (_c *BuyerDetailCreate) SetContractID(v uuid.UUID) *BuyerDetailCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetDesignation sets the "designation" field.
func (_c *BuyerDetailCreate) SetDesignation(v string) *BuyerDetailCreate {
	_c.mutation.SetDesignation(v)
	return _c
}

// SetNillableDesignation sets the "designation" field if the given value is not nil.
func (_c *BuyerDetailCreate) SetNillableDesignation(v *string) *BuyerDetailCreate {
	if v != nil {
		_c.SetDesignation(*v)
	}
	return _c
}

// SetContactNo sets the "contact_no" field.
func (_c *BuyerDetailCreate) SetContactNo(v string) *BuyerDetailCreate {
	_c.mutation.SetContactNo(v)
	return _c
}

// SetNillableContactNo sets the "contact_no" field if the given value is not nil.
func (_c *BuyerDetailCreate) SetNillableContactNo(v *string) *BuyerDetailCreate {
	if v != nil {
		_c.SetContactNo(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *BuyerDetailCreate) SetEmail(v string) *BuyerDetailCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *BuyerDetailCreate) SetNillableEmail(v *string) *BuyerDetailCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetGstin sets the "gstin" field.
func (_c *BuyerDetailCreate) SetGstin(v string) *BuyerDetailCreate {
	_c.mutation.SetGstin(v)
	return _c
}

// SetNillableGstin sets the "gstin" field if the given value is not nil.
func (_c *BuyerDetailCreate) SetNillableGstin(v *string) *BuyerDetailCreate {
	if v != nil {
		_c.SetGstin(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *BuyerDetailCreate) SetAddress(v string) *BuyerDetailCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *BuyerDetailCreate) SetNillableAddress(v *string) *BuyerDetailCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BuyerDetailCreate) SetID(v uuid.UUID) *BuyerDetailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BuyerDetailCreate) SetNillableID(v *uuid.UUID) *BuyerDetailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *BuyerDetailCreate) SetContract(v *Contract) *BuyerDetailCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the BuyerDetailMutation object of the builder.
func (_c *BuyerDetailCreate) Mutation() *BuyerDetailMutation {
	return _c.mutation
}

// Save creates the BuyerDetail in the database.
func (_c *BuyerDetailCreate) Save(ctx context.Context) (*BuyerDetail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BuyerDetailCreate) SaveX(ctx context.Context) *BuyerDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuyerDetailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuyerDetailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BuyerDetailCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := buyerdetail.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BuyerDetailCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "BuyerDetail.contract_id"`)}
	}
	if v, ok := _c.mutation.Designation(); ok {
		if err := buyerdetail.DesignationValidator(v); err != nil {
			return &ValidationError{Name: "designation", err: fmt.Errorf(`ent: validator failed for field "BuyerDetail.designation": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ContactNo(); ok {
		if err := buyerdetail.ContactNoValidator(v); err != nil {
			return &ValidationError{Name: "contact_no", err: fmt.Errorf(`ent: validator failed for field "BuyerDetail.contact_no": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := buyerdetail.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "BuyerDetail.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Gstin(); ok {
		if err := buyerdetail.GstinValidator(v); err != nil {
			return &ValidationError{Name: "gstin", err: fmt.Errorf(`ent: validator failed for field "BuyerDetail.gstin": %w`, err)}
		}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "BuyerDetail.contract"`)}
	}
	return nil
}

func (_c *BuyerDetailCreate) sqlSave(ctx context.Context) (*BuyerDetail, error) {
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

func (_c *BuyerDetailCreate) createSpec() (*BuyerDetail, *sqlgraph.CreateSpec) {
	var (
		_node = &BuyerDetail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(buyerdetail.Table, sqlgraph.NewFieldSpec(buyerdetail.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Designation(); ok {
		_spec.SetField(buyerdetail.FieldDesignation, field.TypeString, value)
		_node.Designation = value
	}
	if value, ok := _c.mutation.ContactNo(); ok {
		_spec.SetField(buyerdetail.FieldContactNo, field.TypeString, value)
		_node.ContactNo = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(buyerdetail.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Gstin(); ok {
		_spec.SetField(buyerdetail.FieldGstin, field.TypeString, value)
		_node.Gstin = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(buyerdetail.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   buyerdetail.ContractTable,
			Columns: []string{buyerdetail.ContractColumn},
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
	return _node, _spec
}

// BuyerDetailCreateBulk is the builder for creating many BuyerDetail entities in bulk.
type BuyerDetailCreateBulk struct {
	config
	err      error
	builders []*BuyerDetailCreate
}

// Save creates the BuyerDetail entities in the database.
func (_c *BuyerDetailCreateBulk) Save(ctx context.Context) ([]*BuyerDetail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BuyerDetail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BuyerDetailMutation)
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
func (_c *BuyerDetailCreateBulk) SaveX(ctx context.Context) []*BuyerDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuyerDetailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuyerDetailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
