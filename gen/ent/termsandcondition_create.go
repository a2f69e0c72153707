// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/termsandcondition"
	"github.com/google/uuid"
)

// TermsAndConditionCreate is the builder for creating a TermsAndCondition entity.
type TermsAndConditionCreate struct {
	config
	mutation *TermsAndConditionMutation
	hooks    []Hook
}

// SetContractID sets the "contract_id" field.
func (_c *TermsAndConditionCreate) SetContractID(v uuid.UUID) *TermsAndConditionCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetClauseText sets the "clause_text" field.
func (_c *TermsAndConditionCreate) SetClauseText(v string) *TermsAndConditionCreate {
	_c.mutation.SetClauseText(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TermsAndConditionCreate) SetID(v uuid.UUID) *TermsAndConditionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TermsAndConditionCreate) SetNillableID(v *uuid.UUID) *TermsAndConditionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *TermsAndConditionCreate) SetContract(v *Contract) *TermsAndConditionCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the TermsAndConditionMutation object of the builder.
func (_c *TermsAndConditionCreate) Mutation() *TermsAndConditionMutation {
	return _c.mutation
}

// Save creates the TermsAndCondition in the database.
func (_c *TermsAndConditionCreate) Save(ctx context.Context) (*TermsAndCondition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TermsAndConditionCreate) SaveX(ctx context.Context) *TermsAndCondition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TermsAndConditionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TermsAndConditionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TermsAndConditionCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := termsandcondition.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TermsAndConditionCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "TermsAndCondition.contract_id"`)}
	}
	if _, ok := _c.mutation.ClauseText(); !ok {
		return &ValidationError{Name: "clause_text", err: errors.New(`ent: missing required field "TermsAndCondition.clause_text"`)}
	}
	if v, ok := _c.mutation.ClauseText(); ok {
		if err := termsandcondition.ClauseTextValidator(v); err != nil {
			return &ValidationError{Name: "clause_text", err: fmt.Errorf(`ent: validator failed for field "TermsAndCondition.clause_text": %w`, err)}
		}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "TermsAndCondition.contract"`)}
	}
	return nil
}

func (_c *TermsAndConditionCreate) sqlSave(ctx context.Context) (*TermsAndCondition, error) {
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

func (_c *TermsAndConditionCreate) createSpec() (*TermsAndCondition, *sqlgraph.CreateSpec) {
	var (
		_node = &TermsAndCondition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(termsandcondition.Table, sqlgraph.NewFieldSpec(termsandcondition.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ClauseText(); ok {
		_spec.SetField(termsandcondition.FieldClauseText, field.TypeString, value)
		_node.ClauseText = value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   termsandcondition.ContractTable,
			Columns: []string{termsandcondition.ContractColumn},
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

// TermsAndConditionCreateBulk is the builder for creating many TermsAndCondition entities in bulk.
type TermsAndConditionCreateBulk struct {
	config
	err      error
	builders []*TermsAndConditionCreate
}

// Save creates the TermsAndCondition entities in the database.
func (_c *TermsAndConditionCreateBulk) Save(ctx context.Context) ([]*TermsAndCondition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TermsAndCondition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TermsAndConditionMutation)
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
func (_c *TermsAndConditionCreateBulk) SaveX(ctx context.Context) []*TermsAndCondition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TermsAndConditionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TermsAndConditionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
