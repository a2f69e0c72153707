// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gemdocs/procurement-tracker/gen/ent/buyerdetail"
	"github.com/gemdocs/procurement-tracker/gen/ent/predicate"
)

// BuyerDetailDelete is the builder for deleting a BuyerDetail entity.
type BuyerDetailDelete struct {
	config
	hooks    []Hook
	mutation *BuyerDetailMutation
}

// Where appends a list predicates to the BuyerDetailDelete builder.
func (_d *BuyerDetailDelete) Where(ps ...predicate.BuyerDetail) *BuyerDetailDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BuyerDetailDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BuyerDetailDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BuyerDetailDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(buyerdetail.Table, sqlgraph.NewFieldSpec(buyerdetail.FieldID, field.TypeUUID))
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

// BuyerDetailDeleteOne is the builder for deleting a single BuyerDetail entity.
type BuyerDetailDeleteOne struct {
	_d *BuyerDetailDelete
}

// Where appends a list predicates to the BuyerDetailDelete builder.
func (_d *BuyerDetailDeleteOne) Where(ps ...predicate.BuyerDetail) *BuyerDetailDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BuyerDetailDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{buyerdetail.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BuyerDetailDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
