// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/openfinml/riskscore/gen/ent/jobrowoutcome"
	"github.com/openfinml/riskscore/gen/ent/predicate"
)

// JobRowOutcomeDelete is the builder for deleting a JobRowOutcome entity.
type JobRowOutcomeDelete struct {
	config
	hooks    []Hook
	mutation *JobRowOutcomeMutation
}

// Where appends a list predicates to the JobRowOutcomeDelete builder.
func (_d *JobRowOutcomeDelete) Where(ps ...predicate.JobRowOutcome) *JobRowOutcomeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *JobRowOutcomeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *JobRowOutcomeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *JobRowOutcomeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(jobrowoutcome.Table, sqlgraph.NewFieldSpec(jobrowoutcome.FieldID, field.TypeUUID))
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

// JobRowOutcomeDeleteOne is the builder for deleting a single JobRowOutcome entity.
type JobRowOutcomeDeleteOne struct {
	_d *JobRowOutcomeDelete
}

// Where appends a list predicates to the JobRowOutcomeDelete builder.
func (_d *JobRowOutcomeDeleteOne) Where(ps ...predicate.JobRowOutcome) *JobRowOutcomeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *JobRowOutcomeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{jobrowoutcome.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *JobRowOutcomeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
