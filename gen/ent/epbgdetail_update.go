// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/contract"
	"github.com/gemdocs/procurement-tracker/gen/ent/epbgdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// EPBGDetailUpdate is the builder for updating EPBGDetail entities.
type EPBGDetailUpdate struct {
	config
	hooks    []Hook
	mutation *EPBGDetailMutation
}

// Where appends a list predicates to the EPBGDetailUpdate builder.
func (_u *EPBGDetailUpdate) Where(ps ...predicate.EPBGDetail) *EPBGDetailUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *EPBGDetailUpdate) SetContractID(v uuid.UUID) *EPBGDetailUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *EPBGDetailUpdate) SetNillableContractID(v *uuid.UUID) *EPBGDetailUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *EPBGDetailUpdate) SetDetail(v string) *EPBGDetailUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *EPBGDetailUpdate) SetNillableDetail(v *string) *EPBGDetailUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *EPBGDetailUpdate) ClearDetail() *EPBGDetailUpdate {
	_u.mutation.ClearDetail()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *EPBGDetailUpdate) SetContract(v *Contract) *EPBGDetailUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the EPBGDetailMutation object of the builder.
func (_u *EPBGDetailUpdate) Mutation() *EPBGDetailMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *EPBGDetailUpdate) ClearContract() *EPBGDetailUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EPBGDetailUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EPBGDetailUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EPBGDetailUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EPBGDetailUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EPBGDetailUpdate) check() error {
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EPBGDetail.contract"`)
	}
	return nil
}

func (_u *EPBGDetailUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(epbgdetail.Table, epbgdetail.Columns, sqlgraph.NewFieldSpec(epbgdetail.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(epbgdetail.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(epbgdetail.FieldDetail, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{epbgdetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EPBGDetailUpdateOne is the builder for updating a single EPBGDetail entity.
type EPBGDetailUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EPBGDetailMutation
}

// SetContractID sets the "contract_id" field.
func (_u *EPBGDetailUpdateOne) SetContractID(v uuid.UUID) *EPBGDetailUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *EPBGDetailUpdateOne) SetNillableContractID(v *uuid.UUID) *EPBGDetailUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *EPBGDetailUpdateOne) SetDetail(v string) *EPBGDetailUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *EPBGDetailUpdateOne) SetNillableDetail(v *string) *EPBGDetailUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// ClearDetail clears the value of the "detail" field.
func (_u *EPBGDetailUpdateOne) ClearDetail() *EPBGDetailUpdateOne {
	_u.mutation.ClearDetail()
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *EPBGDetailUpdateOne) SetContract(v *Contract) *EPBGDetailUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the EPBGDetailMutation object of the builder.
func (_u *EPBGDetailUpdateOne) Mutation() *EPBGDetailMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *EPBGDetailUpdateOne) ClearContract() *EPBGDetailUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the EPBGDetailUpdate builder.
func (_u *EPBGDetailUpdateOne) Where(ps ...predicate.EPBGDetail) *EPBGDetailUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EPBGDetailUpdateOne) Select(field string, fields ...string) *EPBGDetailUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EPBGDetail entity.
func (_u *EPBGDetailUpdateOne) Save(ctx context.Context) (*EPBGDetail, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EPBGDetailUpdateOne) SaveX(ctx context.Context) *EPBGDetail {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EPBGDetailUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EPBGDetailUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EPBGDetailUpdateOne) check() error {
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EPBGDetail.contract"`)
	}
	return nil
}

func (_u *EPBGDetailUpdateOne) sqlSave(ctx context.Context) (_node *EPBGDetail, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(epbgdetail.Table, epbgdetail.Columns, sqlgraph.NewFieldSpec(epbgdetail.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EPBGDetail.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, epbgdetail.FieldID)
		for _, f := range fields {
			if !epbgdetail.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != epbgdetail.FieldID {
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
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(epbgdetail.FieldDetail, field.TypeString, value)
	}
	if _u.mutation.DetailCleared() {
		_spec.ClearField(epbgdetail.FieldDetail, field.TypeString)
	}
	if _u.mutation.ContractCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EPBGDetail{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{epbgdetail.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
