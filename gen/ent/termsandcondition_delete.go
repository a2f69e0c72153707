// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
	"github.com/gemdocs/procurement-tracker/gen/ent/termsandcondition"
)

// TermsAndConditionDelete is the builder for deleting a TermsAndCondition entity.
type TermsAndConditionDelete struct {
	config
	hooks    []Hook
	mutation *TermsAndConditionMutation
}

// Where appends a list predicates to the TermsAndConditionDelete builder.
func (_d *TermsAndConditionDelete) Where(ps ...predicate.TermsAndCondition) *TermsAndConditionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TermsAndConditionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TermsAndConditionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TermsAndConditionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(termsandcondition.Table, sqlgraph.NewFieldSpec(termsandcondition.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// TermsAndConditionDeleteOne is the builder for deleting a single TermsAndCondition entity.
type TermsAndConditionDeleteOne struct {
	_d *TermsAndConditionDelete
}

// Where appends a list predicates to the TermsAndConditionDelete builder.
func (_d *TermsAndConditionDeleteOne) Where(ps ...predicate.TermsAndCondition) *TermsAndConditionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TermsAndConditionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{termsandcondition.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TermsAndConditionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
