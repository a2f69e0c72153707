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
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/gemdocs/procurement-tracker/gen/ent/termsandcondition"
	"github.com/google/uuid"
)

// TermsAndConditionUpdate is the builder for updating TermsAndCondition entities.
type TermsAndConditionUpdate struct {
	config
	hooks    []Hook
	mutation *TermsAndConditionMutation
}

// Where appends a list predicates to the TermsAndConditionUpdate builder.
func (_u *TermsAndConditionUpdate) Where(ps ...predicate.TermsAndCondition) *TermsAndConditionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContractID sets the "contract_id" field.
func (_u *TermsAndConditionUpdate) SetContractID(v uuid.UUID) *TermsAndConditionUpdate {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *TermsAndConditionUpdate) SetNillableContractID(v *uuid.UUID) *TermsAndConditionUpdate {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetClauseText sets the "clause_text" field.
func (_u *TermsAndConditionUpdate) SetClauseText(v string) *TermsAndConditionUpdate {
	_u.mutation.SetClauseText(v)
	return _u
}

// SetNillableClauseText sets the "clause_text" field if the given value is not nil.
func (_u *TermsAndConditionUpdate) SetNillableClauseText(v *string) *TermsAndConditionUpdate {
	if v != nil {
		_u.SetClauseText(*v)
	}
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *TermsAndConditionUpdate) SetContract(v *Contract) *TermsAndConditionUpdate {
	return _u.SetContractID(v.ID)
}

// Mutation returns the TermsAndConditionMutation object of the builder.
func (_u *TermsAndConditionUpdate) Mutation() *TermsAndConditionMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *TermsAndConditionUpdate) ClearContract() *TermsAndConditionUpdate {
	_u.mutation.ClearContract()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TermsAndConditionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TermsAndConditionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TermsAndConditionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TermsAndConditionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TermsAndConditionUpdate) check() error {
	if v, ok := _u.mutation.ClauseText(); ok {
		if err := termsandcondition.ClauseTextValidator(v); err != nil {
			return &ValidationError{Name: "clause_text", err: fmt.Errorf(`ent: validator failed for field "TermsAndCondition.clause_text": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TermsAndCondition.contract"`)
	}
	return nil
}

func (_u *TermsAndConditionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(termsandcondition.Table, termsandcondition.Columns, sqlgraph.NewFieldSpec(termsandcondition.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClauseText(); ok {
		_spec.SetField(termsandcondition.FieldClauseText, field.TypeString, value)
	}
	if _u.mutation.ContractCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{termsandcondition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TermsAndConditionUpdateOne is the builder for updating a single TermsAndCondition entity.
type TermsAndConditionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TermsAndConditionMutation
}

// SetContractID sets the "contract_id" field.
func (_u *TermsAndConditionUpdateOne) SetContractID(v uuid.UUID) *TermsAndConditionUpdateOne {
	_u.mutation.SetContractID(v)
	return _u
}

// SetNillableContractID sets the "contract_id" field if the given value is not nil.
func (_u *TermsAndConditionUpdateOne) SetNillableContractID(v *uuid.UUID) *TermsAndConditionUpdateOne {
	if v != nil {
		_u.SetContractID(*v)
	}
	return _u
}

// SetClauseText sets the "clause_text" field.
func (_u *TermsAndConditionUpdateOne) SetClauseText(v string) *TermsAndConditionUpdateOne {
	_u.mutation.SetClauseText(v)
	return _u
}

// SetNillableClauseText sets the "clause_text" field if the given value is not nil.
func (_u *TermsAndConditionUpdateOne) SetNillableClauseText(v *string) *TermsAndConditionUpdateOne {
	if v != nil {
		_u.SetClauseText(*v)
	}
	return _u
}

// SetContract sets the "contract" edge to the Contract entity.
func (_u *TermsAndConditionUpdateOne) SetContract(v *Contract) *TermsAndConditionUpdateOne {
	return _u.SetContractID(v.ID)
}

// Mutation returns the TermsAndConditionMutation object of the builder.
func (_u *TermsAndConditionUpdateOne) Mutation() *TermsAndConditionMutation {
	return _u.mutation
}

// ClearContract clears the "contract" edge to the Contract entity.
func (_u *TermsAndConditionUpdateOne) ClearContract() *TermsAndConditionUpdateOne {
	_u.mutation.ClearContract()
	return _u
}

// Where appends a list predicates to the TermsAndConditionUpdate builder.
func (_u *TermsAndConditionUpdateOne) Where(ps ...predicate.TermsAndCondition) *TermsAndConditionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TermsAndConditionUpdateOne) Select(field string, fields ...string) *TermsAndConditionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TermsAndCondition entity.
func (_u *TermsAndConditionUpdateOne) Save(ctx context.Context) (*TermsAndCondition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TermsAndConditionUpdateOne) SaveX(ctx context.Context) *TermsAndCondition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TermsAndConditionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TermsAndConditionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TermsAndConditionUpdateOne) check() error {
	if v, ok := _u.mutation.ClauseText(); ok {
		if err := termsandcondition.ClauseTextValidator(v); err != nil {
			return &ValidationError{Name: "clause_text", err: fmt.Errorf(`ent: validator failed for field "TermsAndCondition.clause_text": %w`, err)}
		}
	}
	if _u.mutation.ContractCleared() && len(_u.mutation.ContractIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TermsAndCondition.contract"`)
	}
	return nil
}

func (_u *TermsAndConditionUpdateOne) sqlSave(ctx context.Context) (_node *TermsAndCondition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(termsandcondition.Table, termsandcondition.Columns, sqlgraph.NewFieldSpec(termsandcondition.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TermsAndCondition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, termsandcondition.FieldID)
		for _, f := range fields {
			if !termsandcondition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != termsandcondition.FieldID {
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
	if value, ok := _u.mutation.ClauseText(); ok {
		_spec.SetField(termsandcondition.FieldClauseText, field.TypeString, value)
	}
	if _u.mutation.ContractCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContractIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TermsAndCondition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{termsandcondition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
