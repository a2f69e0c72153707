// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/epbgdetail"
	"github.com/google/uuid"
)

// EPBGDetailCreate is the builder for creating a EPBGDetail entity.
type EPBGDetailCreate struct {
	config
	mutation *EPBGDetailMutation
	hooks    []Hook
}

// SetContractID sets the "contract_id" field.
func (_c *EPBGDetailCreate) SetContractID(v uuid.UUID) *EPBGDetailCreate {
	_c.mutation.SetContractID(v)
	return _c
}

// SetDetail sets the "detail" field.
func (_c *EPBGDetailCreate) SetDetail(v string) *EPBGDetailCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *EPBGDetailCreate) SetNillableDetail(v *string) *EPBGDetailCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EPBGDetailCreate) SetID(v uuid.UUID) *EPBGDetailCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EPBGDetailCreate) SetNillableID(v *uuid.UUID) *EPBGDetailCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetContract sets the "contract" edge to the Contract entity.
func (_c *EPBGDetailCreate) SetContract(v *Contract) *EPBGDetailCreate {
	return _c.SetContractID(v.ID)
}

// Mutation returns the EPBGDetailMutation object of the builder.
func (_c *EPBGDetailCreate) Mutation() *EPBGDetailMutation {
	return _c.mutation
}

// Save creates the EPBGDetail in the database.
func (_c *EPBGDetailCreate) Save(ctx context.Context) (*EPBGDetail, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EPBGDetailCreate) SaveX(ctx context.Context) *EPBGDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EPBGDetailCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EPBGDetailCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EPBGDetailCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := epbgdetail.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EPBGDetailCreate) check() error {
	if _, ok := _c.mutation.ContractID(); !ok {
		return &ValidationError{Name: "contract_id", err: errors.New(`ent: missing required field "EPBGDetail.contract_id"`)}
	}
	if len(_c.mutation.ContractIDs()) == 0 {
		return &ValidationError{Name: "contract", err: errors.New(`ent: missing required edge "EPBGDetail.contract"`)}
	}
	return nil
}

func (_c *EPBGDetailCreate) sqlSave(ctx context.Context) (*EPBGDetail, error) {
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

func (_c *EPBGDetailCreate) createSpec() (*EPBGDetail, *sqlgraph.CreateSpec) {
	var (
		_node = &EPBGDetail{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(epbgdetail.Table, sqlgraph.NewFieldSpec(epbgdetail.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(epbgdetail.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	if nodes := _c.mutation.ContractIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   epbgdetail.ContractTable,
			Columns: []string{epbgdetail.ContractColumn},
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

// EPBGDetailCreateBulk is the builder for creating many EPBGDetail entities in bulk.
type EPBGDetailCreateBulk struct {
	config
	err      error
	builders []*EPBGDetailCreate
}

// Save creates the EPBGDetail entities in the database.
func (_c *EPBGDetailCreateBulk) Save(ctx context.Context) ([]*EPBGDetail, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EPBGDetail, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EPBGDetailMutation)
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
func (_c *EPBGDetailCreateBulk) SaveX(ctx context.Context) []*EPBGDetail {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EPBGDetailCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EPBGDetailCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
