// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/financialapproval"
	"github.com/google/uuid"
)

// FinancialApprovalCreate is the builder for creating a FinancialApproval entity.
type FinancialApprovalCreate struct {
	config
	mutation *FinancialApprovalMutation
	hooks    []Hook
}

// SetContractID sets the "contract_id" field.
func (_c *FinancialApprovalCreate) SetContractID(v uuid.UUID) *FinancialApprovalCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetIfdConcurrence sets the "ifd_concurrence" field.
func (_c *FinancialApprovalCreate) SetIfdConcurrence(v bool) *FinancialApprovalCreate {
	_c.mutation.SetIfdConcurrence(v)
	return _c
}

// SetNillableIfdConcurrence sets the "ifd_concurrence" field if the given value is not nil.
func (_c *FinancialApprovalCreate) SetNillableIfdConcurrence(v *bool) *FinancialApprovalCreate {
	if v != nil {
		_c.SetIfdConcurrence(*v)
	}
	return _c
}

// SetAdminApprovalDesignation sets the "admin_approval_designation" field.
func (_c *FinancialApprovalCreate) SetAdminApprovalDesignation(v string) *FinancialApprovalCreate {
	_c.mutation.SetAdminApprovalDesignation(v)
	return _c
}

// SetNillableAdminApprovalDesignation sets the "admin_approval_designation" field if the given value is not nil.
func (_c *FinancialApprovalCreate) SetNillableAdminApprovalDesignation(v *string) *FinancialApprovalCreate {
	if v != nil {
		_c.SetAdminApprovalDesignation(*v)
	}
	return _c
}

// SetFinancialApprovalDesignation sets the "financial_approval_designation" field.
func (_c *FinancialApprovalCreate) SetFinancialApprovalDesignation(v string) *FinancialApprovalCreate {
	_c.mutation.SetFinancialApprovalDesignation(v)
	return _c
}

// SetNillableFinancialApprovalDesignation sets the "financial_approval_designation" field if the given value is not nil.
func (_c *FinancialApprovalCreate) SetNillableFinancialApprovalDesignation(v *string) *FinancialApprovalCreate {
	if v != nil {
		_c.SetFinancialApprovalDesignation(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FinancialApprovalCreate) SetID(v uuid.UUID) *FinancialApprovalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FinancialApprovalCreate) SetNillableID(v *uuid.UUID) *FinancialApprovalCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *FinancialApprovalCreate) SetContract(v *Contract) *FinancialApprovalCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the FinancialApprovalMutation object of the builder.
func (_c *FinancialApprovalCreate) Mutation() *FinancialApprovalMutation {
	return _c.mutation
}

// Save creates the FinancialApproval in the database.
func (_c *FinancialApprovalCreate) Save(ctx context.Context) (*FinancialApproval, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FinancialApprovalCreate) SaveX(ctx context.Context) *FinancialApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinancialApprovalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinancialApprovalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FinancialApprovalCreate) defaults() {
	if _, ok := _c.mutation.IfdConcurrence(); !ok {
		v := financialapproval.DefaultIfdConcurrence
		_c.mutation.SetIfdConcurrence(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := financialapproval.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FinancialApprovalCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "FinancialApproval.contract_id"`)}
	}
	if _, ok := _c.mutation.IfdConcurrence(); !ok {
		return &ValidationError{Name: "ifd_concurrence", err: errors.New(`ent: missing required field "FinancialApproval.ifd_concurrence"`)}
	}
	if v, ok := _c.mutation.AdminApprovalDesignation(); ok {
		if err := financialapproval.AdminApprovalDesignationValidator(v); err != nil {
			return &ValidationError{Name: "admin_approval_designation", err: fmt.Errorf(`ent: validator failed for field "FinancialApproval.admin_approval_designation": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FinancialApprovalDesignation(); ok {
		if err := financialapproval.FinancialApprovalDesignationValidator(v); err != nil {
			return &ValidationError{Name: "financial_approval_designation", err: fmt.Errorf(`ent: validator failed for field "FinancialApproval.financial_approval_designation": %w`, err)}
		}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "FinancialApproval.contract"`)}
	}
	return nil
}

func (_c *FinancialApprovalCreate) sqlSave(ctx context.Context) (*FinancialApproval, error) {
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

func (_c *FinancialApprovalCreate) createSpec() (*FinancialApproval, *sqlgraph.CreateSpec) {
	var (
		_node = &FinancialApproval{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(financialapproval.Table, sqlgraph.NewFieldSpec(financialapproval.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.IfdConcurrence(); ok {
		_spec.SetField(financialapproval.FieldIfdConcurrence, field.TypeBool, value)
		_node.IfdConcurrence = value
	}
	if value, ok := _c.mutation.AdminApprovalDesignation(); ok {
		_spec.SetField(financialapproval.FieldAdminApprovalDesignation, field.TypeString, value)
		_node.AdminApprovalDesignation = value
	}
	if value, ok := _c.mutation.FinancialApprovalDesignation(); ok {
		_spec.SetField(financialapproval.FieldFinancialApprovalDesignation, field.TypeString, value)
		_node.FinancialApprovalDesignation = value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   financialapproval.ContractTable,
			Columns: []string{financialapproval.ContractColumn},
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

// FinancialApprovalCreateBulk is the builder for creating many FinancialApproval entities in bulk.
type FinancialApprovalCreateBulk struct {
	config
	err      error
	builders []*FinancialApprovalCreate
}

// Save creates the FinancialApproval entities in the database.
func (_c *FinancialApprovalCreateBulk) Save(ctx context.Context) ([]*FinancialApproval, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FinancialApproval, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FinancialApprovalMutation)
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
func (_c *FinancialApprovalCreateBulk) SaveX(ctx context.Context) []*FinancialApproval {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinancialApprovalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinancialApprovalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
