// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/jobrowoutcome"
	"github.com/openfinml/riskscore/gen/ent/predicate"
	"github.com/openfinml/riskscore/gen/ent/scorejob"
)

// JobRowOutcomeUpdate is the builder for updating JobRowOutcome entities.
type JobRowOutcomeUpdate struct {
	config
	hooks    []Hook
	mutation *JobRowOutcomeMutation
}

// Where appends a list predicates to the JobRowOutcomeUpdate builder.
func (_u *JobRowOutcomeUpdate) Where(ps ...predicate.JobRowOutcome) *JobRowOutcomeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *JobRowOutcomeUpdate) SetJobID(v uuid.UUID) *JobRowOutcomeUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobRowOutcomeUpdate) SetNillableJobID(v *uuid.UUID) *JobRowOutcomeUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *JobRowOutcomeUpdate) SetRowIndex(v int) *JobRowOutcomeUpdate {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *JobRowOutcomeUpdate) SetNillableRowIndex(v *int) *JobRowOutcomeUpdate {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *JobRowOutcomeUpdate) AddRowIndex(v int) *JobRowOutcomeUpdate {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetOk sets the "ok" field.
func (_u *JobRowOutcomeUpdate) SetOk(v bool) *JobRowOutcomeUpdate {
	_u.mutation.SetOk(v)
	return _u
}

// SetNillableOk sets the "ok" field if the given value is not nil.
func (_u *JobRowOutcomeUpdate) SetNillableOk(v *bool) *JobRowOutcomeUpdate {
	if v != nil {
		_u.SetOk(*v)
	}
	return _u
}

// SetSymbol sets the "symbol" field.
func (_u *JobRowOutcomeUpdate) SetSymbol(v string) *JobRowOutcomeUpdate {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *JobRowOutcomeUpdate) SetNillableSymbol(v *string) *JobRowOutcomeUpdate {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *JobRowOutcomeUpdate) SetMessage(v string) *JobRowOutcomeUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *JobRowOutcomeUpdate) SetNillableMessage(v *string) *JobRowOutcomeUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ScoreJob entity.
func (_u *JobRowOutcomeUpdate) SetJob(v *ScoreJob) *JobRowOutcomeUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the JobRowOutcomeMutation object of the builder.
func (_u *JobRowOutcomeUpdate) Mutation() *JobRowOutcomeMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ScoreJob entity.
func (_u *JobRowOutcomeUpdate) ClearJob() *JobRowOutcomeUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobRowOutcomeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobRowOutcomeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobRowOutcomeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobRowOutcomeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobRowOutcomeUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobRowOutcome.job"`)
	}
	return nil
}

func (_u *JobRowOutcomeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobrowoutcome.Table, jobrowoutcome.Columns, sqlgraph.NewFieldSpec(jobrowoutcome.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(jobrowoutcome.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(jobrowoutcome.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ok(); ok {
		_spec.SetField(jobrowoutcome.FieldOk, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(jobrowoutcome.FieldSymbol, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(jobrowoutcome.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobrowoutcome.JobTable,
			Columns: []string{jobrowoutcome.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scorejob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobrowoutcome.JobTable,
			Columns: []string{jobrowoutcome.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scorejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobrowoutcome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobRowOutcomeUpdateOne is the builder for updating a single JobRowOutcome entity.
type JobRowOutcomeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobRowOutcomeMutation
}

// SetJobID sets the "job_id" field.
func (_u *JobRowOutcomeUpdateOne) SetJobID(v uuid.UUID) *JobRowOutcomeUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobRowOutcomeUpdateOne) SetNillableJobID(v *uuid.UUID) *JobRowOutcomeUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *JobRowOutcomeUpdateOne) SetRowIndex(v int) *JobRowOutcomeUpdateOne {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *JobRowOutcomeUpdateOne) SetNillableRowIndex(v *int) *JobRowOutcomeUpdateOne {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *JobRowOutcomeUpdateOne) AddRowIndex(v int) *JobRowOutcomeUpdateOne {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetOk sets the "ok" field.
func (_u *JobRowOutcomeUpdateOne) SetOk(v bool) *JobRowOutcomeUpdateOne {
	_u.mutation.SetOk(v)
	return _u
}

// SetNillableOk sets the "ok" field if the given value is not nil.
func (_u *JobRowOutcomeUpdateOne) SetNillableOk(v *bool) *JobRowOutcomeUpdateOne {
	if v != nil {
		_u.SetOk(*v)
	}
	return _u
}

// SetSymbol sets the "symbol" field.
func (_u *JobRowOutcomeUpdateOne) SetSymbol(v string) *JobRowOutcomeUpdateOne {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *JobRowOutcomeUpdateOne) SetNillableSymbol(v *string) *JobRowOutcomeUpdateOne {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *JobRowOutcomeUpdateOne) SetMessage(v string) *JobRowOutcomeUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *JobRowOutcomeUpdateOne) SetNillableMessage(v *string) *JobRowOutcomeUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the ScoreJob entity.
func (_u *JobRowOutcomeUpdateOne) SetJob(v *ScoreJob) *JobRowOutcomeUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the JobRowOutcomeMutation object of the builder.
func (_u *JobRowOutcomeUpdateOne) Mutation() *JobRowOutcomeMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ScoreJob entity.
func (_u *JobRowOutcomeUpdateOne) ClearJob() *JobRowOutcomeUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the JobRowOutcomeUpdate builder.
func (_u *JobRowOutcomeUpdateOne) Where(ps ...predicate.JobRowOutcome) *JobRowOutcomeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobRowOutcomeUpdateOne) Select(field string, fields ...string) *JobRowOutcomeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobRowOutcome entity.
func (_u *JobRowOutcomeUpdateOne) Save(ctx context.Context) (*JobRowOutcome, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobRowOutcomeUpdateOne) SaveX(ctx context.Context) *JobRowOutcome {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobRowOutcomeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobRowOutcomeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobRowOutcomeUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobRowOutcome.job"`)
	}
	return nil
}

func (_u *JobRowOutcomeUpdateOne) sqlSave(ctx context.Context) (_node *JobRowOutcome, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobrowoutcome.Table, jobrowoutcome.Columns, sqlgraph.NewFieldSpec(jobrowoutcome.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobRowOutcome.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobrowoutcome.FieldID)
		for _, f := range fields {
			if !jobrowoutcome.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobrowoutcome.FieldID {
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
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(jobrowoutcome.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(jobrowoutcome.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Ok(); ok {
		_spec.SetField(jobrowoutcome.FieldOk, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(jobrowoutcome.FieldSymbol, field.TypeString, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(jobrowoutcome.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobrowoutcome.JobTable,
			Columns: []string{jobrowoutcome.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scorejob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobrowoutcome.JobTable,
			Columns: []string{jobrowoutcome.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scorejob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &JobRowOutcome{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobrowoutcome.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
