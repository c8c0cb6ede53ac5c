// Code generated by ent, DO NOT EDIT.

package ent

import (
	"CivicConnectAPI/ent/predicate"
	"CivicConnectAPI/ent/statuschange"
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// StatusChangeDelete is the builder for deleting a StatusChange entity.
type StatusChangeDelete struct {
	config
	hooks    []Hook
	mutation *StatusChangeMutation
}

// Where appends a list predicates to the StatusChangeDelete builder.
func (_d *StatusChangeDelete) Where(ps ...predicate.StatusChange) *StatusChangeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *StatusChangeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StatusChangeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *StatusChangeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(statuschange.Table, sqlgraph.NewFieldSpec(statuschange.FieldID, field.TypeUUID))
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

// StatusChangeDeleteOne is the builder for deleting a single StatusChange entity.
type StatusChangeDeleteOne struct {
	_d *StatusChangeDelete
}

// Where appends a list predicates to the StatusChangeDelete builder.
func (_d *StatusChangeDeleteOne) Where(ps ...predicate.StatusChange) *StatusChangeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *StatusChangeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{statuschange.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StatusChangeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
