// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/jobrow"
	"github.com/openfinml/riskscore/gen/ent/predicate"
	"github.com/openfinml/riskscore/gen/ent/scorejob"
)

// JobRowUpdate is the builder for updating JobRow entities.
type JobRowUpdate struct {
	config
	hooks    []Hook
	mutation *JobRowMutation
}

// Where appends a list predicates to the JobRowUpdate builder.
func (_u *JobRowUpdate) Where(ps ...predicate.JobRow) *JobRowUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *JobRowUpdate) SetJobID(v uuid.UUID) *JobRowUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobRowUpdate) SetNillableJobID(v *uuid.UUID) *JobRowUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *JobRowUpdate) SetRowIndex(v int) *JobRowUpdate {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *JobRowUpdate) SetNillableRowIndex(v *int) *JobRowUpdate {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *JobRowUpdate) AddRowIndex(v int) *JobRowUpdate {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetSymbol sets the "symbol" field.
func (_u *JobRowUpdate) SetSymbol(v string) *JobRowUpdate {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *JobRowUpdate) SetNillableSymbol(v *string) *JobRowUpdate {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// SetPeriod sets the "period" field.
func (_u *JobRowUpdate) SetPeriod(v string) *JobRowUpdate {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *JobRowUpdate) SetNillablePeriod(v *string) *JobRowUpdate {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetRatios sets the "ratios" field.
func (_u *JobRowUpdate) SetRatios(v json.RawMessage) *JobRowUpdate {
	_u.mutation.SetRatios(v)
	return _u
}

// AppendRatios appends value to the "ratios" field.
func (_u *JobRowUpdate) AppendRatios(v json.RawMessage) *JobRowUpdate {
	_u.mutation.AppendRatios(v)
	return _u
}

// SetJob sets the "job" edge to the ScoreJob entity.
func (_u *JobRowUpdate) SetJob(v *ScoreJob) *JobRowUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the JobRowMutation object of the builder.
func (_u *JobRowUpdate) Mutation() *JobRowMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ScoreJob entity.
func (_u *JobRowUpdate) ClearJob() *JobRowUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobRowUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobRowUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobRowUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobRowUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobRowUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobRow.job"`)
	}
	return nil
}

func (_u *JobRowUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobrow.Table, jobrow.Columns, sqlgraph.NewFieldSpec(jobrow.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RowIndex(); ok {
		_spec.SetField(jobrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(jobrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(jobrow.FieldSymbol, field.TypeString, value)
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(jobrow.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ratios(); ok {
		_spec.SetField(jobrow.FieldRatios, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRatios(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobrow.FieldRatios, value)
		})
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobrow.JobTable,
			Columns: []string{jobrow.JobColumn},
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
			Table:   jobrow.JobTable,
			Columns: []string{jobrow.JobColumn},
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
			err = &NotFoundError{jobrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobRowUpdateOne is the builder for updating a single JobRow entity.
type JobRowUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobRowMutation
}

// SetJobID sets the "job_id" field.
func (_u *JobRowUpdateOne) SetJobID(v uuid.UUID) *JobRowUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobRowUpdateOne) SetNillableJobID(v *uuid.UUID) *JobRowUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetRowIndex sets the "row_index" field.
func (_u *JobRowUpdateOne) SetRowIndex(v int) *JobRowUpdateOne {
	_u.mutation.ResetRowIndex()
	_u.mutation.SetRowIndex(v)
	return _u
}

// SetNillableRowIndex sets the "row_index" field if the given value is not nil.
func (_u *JobRowUpdateOne) SetNillableRowIndex(v *int) *JobRowUpdateOne {
	if v != nil {
		_u.SetRowIndex(*v)
	}
	return _u
}

// AddRowIndex adds value to the "row_index" field.
func (_u *JobRowUpdateOne) AddRowIndex(v int) *JobRowUpdateOne {
	_u.mutation.AddRowIndex(v)
	return _u
}

// SetSymbol sets the "symbol" field.
func (_u *JobRowUpdateOne) SetSymbol(v string) *JobRowUpdateOne {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *JobRowUpdateOne) SetNillableSymbol(v *string) *JobRowUpdateOne {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// SetPeriod sets the "period" field.
func (_u *JobRowUpdateOne) SetPeriod(v string) *JobRowUpdateOne {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *JobRowUpdateOne) SetNillablePeriod(v *string) *JobRowUpdateOne {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetRatios sets the "ratios" field.
func (_u *JobRowUpdateOne) SetRatios(v json.RawMessage) *JobRowUpdateOne {
	_u.mutation.SetRatios(v)
	return _u
}

// AppendRatios appends value to the "ratios" field.
func (_u *JobRowUpdateOne) AppendRatios(v json.RawMessage) *JobRowUpdateOne {
	_u.mutation.AppendRatios(v)
	return _u
}

// SetJob sets the "job" edge to the ScoreJob entity.
func (_u *JobRowUpdateOne) SetJob(v *ScoreJob) *JobRowUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the JobRowMutation object of the builder.
func (_u *JobRowUpdateOne) Mutation() *JobRowMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the ScoreJob entity.
func (_u *JobRowUpdateOne) ClearJob() *JobRowUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the JobRowUpdate builder.
func (_u *JobRowUpdateOne) Where(ps ...predicate.JobRow) *JobRowUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobRowUpdateOne) Select(field string, fields ...string) *JobRowUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobRow entity.
func (_u *JobRowUpdateOne) Save(ctx context.Context) (*JobRow, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobRowUpdateOne) SaveX(ctx context.Context) *JobRow {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobRowUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobRowUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobRowUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobRow.job"`)
	}
	return nil
}

func (_u *JobRowUpdateOne) sqlSave(ctx context.Context) (_node *JobRow, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobrow.Table, jobrow.Columns, sqlgraph.NewFieldSpec(jobrow.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobRow.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobrow.FieldID)
		for _, f := range fields {
			if !jobrow.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobrow.FieldID {
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
		_spec.SetField(jobrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRowIndex(); ok {
		_spec.AddField(jobrow.FieldRowIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(jobrow.FieldSymbol, field.TypeString, value)
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(jobrow.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ratios(); ok {
		_spec.SetField(jobrow.FieldRatios, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRatios(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobrow.FieldRatios, value)
		})
	}
	if _u.mutation.JobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobrow.JobTable,
			Columns: []string{jobrow.JobColumn},
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
			Table:   jobrow.JobTable,
			Columns: []string{jobrow.JobColumn},
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
	_node = &JobRow{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobrow.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
