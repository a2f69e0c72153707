// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/consigneedetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
)

// ConsigneeDetailDelete is the builder for deleting a ConsigneeDetail entity.
type ConsigneeDetailDelete struct {
	config
	hooks    []Hook
	mutation *ConsigneeDetailMutation
}

// Where appends a list predicates to the ConsigneeDetailDelete builder.
func (_d *ConsigneeDetailDelete) Where(ps ...predicate.ConsigneeDetail) *ConsigneeDetailDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConsigneeDetailDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConsigneeDetailDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConsigneeDetailDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(consigneedetail.Table, sqlgraph.NewFieldSpec(consigneedetail.FieldID, field.TypeUUID))
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

// ConsigneeDetailDeleteOne is the builder for deleting a single ConsigneeDetail entity.
type ConsigneeDetailDeleteOne struct {
	_d *ConsigneeDetailDelete
}

// Where appends a list predicates to the ConsigneeDetailDelete builder.
func (_d *ConsigneeDetailDeleteOne) Where(ps ...predicate.ConsigneeDetail) *ConsigneeDetailDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConsigneeDetailDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{consigneedetail.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConsigneeDetailDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
