// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/payingauthority"
	"github.com/google/uuid"
)

// PayingAuthorityCreate is the builder for creating a PayingAuthority entity.
type PayingAuthorityCreate struct {
	config
	mutation *PayingAuthorityMutation
	hooks    []Hook
}

// SetContractID sets the "contract_id" field.
func (_c *PayingAuthorityCreate) SetContractID(v uuid.UUID) *PayingAuthorityCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *PayingAuthorityCreate) SetRole(v string) *PayingAuthorityCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *PayingAuthorityCreate) SetNillableRole(v *string) *PayingAuthorityCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetPaymentMode sets the "payment_mode" field.
func (_c *PayingAuthorityCreate) SetPaymentMode(v string) *PayingAuthorityCreate {
	_c.mutation.SetPaymentMode(v)
	return _c
}

// SetNillablePaymentMode sets the "payment_mode" field if the given value is not nil.
func (_c *PayingAuthorityCreate) SetNillablePaymentMode(v *string) *PayingAuthorityCreate {
	if v != nil {
		_c.SetPaymentMode(*v)
	}
	return _c
}

// SetDesignation sets the "designation" field.
func (_c *PayingAuthorityCreate) SetDesignation(v string) *PayingAuthorityCreate {
	_c.mutation.SetDesignation(v)
	return _c
}

// SetNillableDesignation sets the "designation" field if the given value is not nil.
func (_c *PayingAuthorityCreate) SetNillableDesignation(v *string) *PayingAuthorityCreate {
	if v != nil {
		_c.SetDesignation(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *PayingAuthorityCreate) SetEmail(v string) *PayingAuthorityCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *PayingAuthorityCreate) SetNillableEmail(v *string) *PayingAuthorityCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetGstin sets the "gstin" field.
func (_c *PayingAuthorityCreate) SetGstin(v string) *PayingAuthorityCreate {
	_c.mutation.SetGstin(v)
	return _c
}

// SetNillableGstin sets the "gstin" field if the given value is not nil.
func (_c *PayingAuthorityCreate) SetNillableGstin(v *string) *PayingAuthorityCreate {
	if v != nil {
		_c.SetGstin(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *PayingAuthorityCreate) SetAddress(v string) *PayingAuthorityCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *PayingAuthorityCreate) SetNillableAddress(v *string) *PayingAuthorityCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PayingAuthorityCreate) SetID(v uuid.UUID) *PayingAuthorityCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PayingAuthorityCreate) SetNillableID(v *uuid.UUID) *PayingAuthorityCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *PayingAuthorityCreate) SetContract(v *Contract) *PayingAuthorityCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the PayingAuthorityMutation object of the builder.
func (_c *PayingAuthorityCreate) Mutation() *PayingAuthorityMutation {
	return _c.mutation
}

// Save creates the PayingAuthority in the database.
func (_c *PayingAuthorityCreate) Save(ctx context.Context) (*PayingAuthority, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PayingAuthorityCreate) SaveX(ctx context.Context) *PayingAuthority {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayingAuthorityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayingAuthorityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PayingAuthorityCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := payingauthority.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PayingAuthorityCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "PayingAuthority.contract_id"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := payingauthority.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.role": %w`, err)}
		}
	}
	if v, ok := _c.mutation.PaymentMode(); ok {
		if err := payingauthority.PaymentModeValidator(v); err != nil {
			return &ValidationError{Name: "payment_mode", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.payment_mode": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Designation(); ok {
		if err := payingauthority.DesignationValidator(v); err != nil {
			return &ValidationError{Name: "designation", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.designation": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := payingauthority.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Gstin(); ok {
		if err := payingauthority.GstinValidator(v); err != nil {
			return &ValidationError{Name: "gstin", err: fmt.Errorf(`ent: validator failed for field "PayingAuthority.gstin": %w`, err)}
		}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "PayingAuthority.contract"`)}
	}
	return nil
}

func (_c *PayingAuthorityCreate) sqlSave(ctx context.Context) (*PayingAuthority, error) {
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

func (_c *PayingAuthorityCreate) createSpec() (*PayingAuthority, *sqlgraph.CreateSpec) {
	var (
		_node = &PayingAuthority{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(payingauthority.Table, sqlgraph.NewFieldSpec(payingauthority.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(payingauthority.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.PaymentMode(); ok {
		_spec.SetField(payingauthority.FieldPaymentMode, field.TypeString, value)
		_node.PaymentMode = value
	}
	if value, ok := _c.mutation.Designation(); ok {
		_spec.SetField(payingauthority.FieldDesignation, field.TypeString, value)
		_node.Designation = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(payingauthority.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Gstin(); ok {
		_spec.SetField(payingauthority.FieldGstin, field.TypeString, value)
		_node.Gstin = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(payingauthority.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   payingauthority.ContractTable,
			Columns: []string{payingauthority.ContractColumn},
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

// PayingAuthorityCreateBulk is the builder for creating many PayingAuthority entities in bulk.
type PayingAuthorityCreateBulk struct {
	config
	err      error
	builders []*PayingAuthorityCreate
}

// Save creates the PayingAuthority entities in the database.
func (_c *PayingAuthorityCreateBulk) Save(ctx context.Context) ([]*PayingAuthority, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PayingAuthority, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PayingAuthorityMutation)
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
func (_c *PayingAuthorityCreateBulk) SaveX(ctx context.Context) []*PayingAuthority {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PayingAuthorityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PayingAuthorityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
