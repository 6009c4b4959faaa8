// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/jobrow"
	"github.com/openfinml/riskscore/gen/ent/jobrowoutcome"
	"github.com/openfinml/riskscore/gen/ent/predicate"
	"github.com/openfinml/riskscore/gen/ent/scorejob"
)

// ScoreJobUpdate is the builder for updating ScoreJob entities.
type ScoreJobUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreJobMutation
}

// Where appends a list predicates to the ScoreJobUpdate builder.
func (_u *ScoreJobUpdate) Where(ps ...predicate.ScoreJob) *ScoreJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ScoreJobUpdate) SetKind(v string) *ScoreJobUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableKind(v *string) *ScoreJobUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ScoreJobUpdate) SetFileName(v string) *ScoreJobUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableFileName(v *string) *ScoreJobUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetLane sets the "lane" field.
func (_u *ScoreJobUpdate) SetLane(v string) *ScoreJobUpdate {
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableLane(v *string) *ScoreJobUpdate {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// ClearLane clears the value of the "lane" field.
func (_u *ScoreJobUpdate) ClearLane() *ScoreJobUpdate {
	_u.mutation.ClearLane()
	return _u
}

// SetState sets the "state" field.
func (_u *ScoreJobUpdate) SetState(v string) *ScoreJobUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableState(v *string) *ScoreJobUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetTotalRows sets the "total_rows" field.
func (_u *ScoreJobUpdate) SetTotalRows(v int) *ScoreJobUpdate {
	_u.mutation.ResetTotalRows()
	_u.mutation.SetTotalRows(v)
	return _u
}

// SetNillableTotalRows sets the "total_rows" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableTotalRows(v *int) *ScoreJobUpdate {
	if v != nil {
		_u.SetTotalRows(*v)
	}
	return _u
}

// AddTotalRows adds value to the "total_rows" field.
func (_u *ScoreJobUpdate) AddTotalRows(v int) *ScoreJobUpdate {
	_u.mutation.AddTotalRows(v)
	return _u
}

// SetProcessedRows sets the "processed_rows" field.
func (_u *ScoreJobUpdate) SetProcessedRows(v int) *ScoreJobUpdate {
	_u.mutation.ResetProcessedRows()
	_u.mutation.SetProcessedRows(v)
	return _u
}

// SetNillableProcessedRows sets the "processed_rows" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableProcessedRows(v *int) *ScoreJobUpdate {
	if v != nil {
		_u.SetProcessedRows(*v)
	}
	return _u
}

// AddProcessedRows adds value to the "processed_rows" field.
func (_u *ScoreJobUpdate) AddProcessedRows(v int) *ScoreJobUpdate {
	_u.mutation.AddProcessedRows(v)
	return _u
}

// SetSuccessfulRows sets the "successful_rows" field.
func (_u *ScoreJobUpdate) SetSuccessfulRows(v int) *ScoreJobUpdate {
	_u.mutation.ResetSuccessfulRows()
	_u.mutation.SetSuccessfulRows(v)
	return _u
}

// SetNillableSuccessfulRows sets the "successful_rows" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableSuccessfulRows(v *int) *ScoreJobUpdate {
	if v != nil {
		_u.SetSuccessfulRows(*v)
	}
	return _u
}

// AddSuccessfulRows adds value to the "successful_rows" field.
func (_u *ScoreJobUpdate) AddSuccessfulRows(v int) *ScoreJobUpdate {
	_u.mutation.AddSuccessfulRows(v)
	return _u
}

// SetFailedRows sets the "failed_rows" field.
func (_u *ScoreJobUpdate) SetFailedRows(v int) *ScoreJobUpdate {
	_u.mutation.ResetFailedRows()
	_u.mutation.SetFailedRows(v)
	return _u
}

// SetNillableFailedRows sets the "failed_rows" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableFailedRows(v *int) *ScoreJobUpdate {
	if v != nil {
		_u.SetFailedRows(*v)
	}
	return _u
}

// AddFailedRows adds value to the "failed_rows" field.
func (_u *ScoreJobUpdate) AddFailedRows(v int) *ScoreJobUpdate {
	_u.mutation.AddFailedRows(v)
	return _u
}

// SetFailReason sets the "fail_reason" field.
func (_u *ScoreJobUpdate) SetFailReason(v string) *ScoreJobUpdate {
	_u.mutation.SetFailReason(v)
	return _u
}

// SetNillableFailReason sets the "fail_reason" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableFailReason(v *string) *ScoreJobUpdate {
	if v != nil {
		_u.SetFailReason(*v)
	}
	return _u
}

// ClearFailReason clears the value of the "fail_reason" field.
func (_u *ScoreJobUpdate) ClearFailReason() *ScoreJobUpdate {
	_u.mutation.ClearFailReason()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *ScoreJobUpdate) SetCancelRequested(v bool) *ScoreJobUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableCancelRequested(v *bool) *ScoreJobUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_u *ScoreJobUpdate) SetOwnerUserID(v uuid.UUID) *ScoreJobUpdate {
	_u.mutation.SetOwnerUserID(v)
	return _u
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableOwnerUserID(v *uuid.UUID) *ScoreJobUpdate {
	if v != nil {
		_u.SetOwnerUserID(*v)
	}
	return _u
}

// SetOwnerOrgID sets the "owner_org_id" field.
func (_u *ScoreJobUpdate) SetOwnerOrgID(v uuid.UUID) *ScoreJobUpdate {
	_u.mutation.SetOwnerOrgID(v)
	return _u
}

// SetNillableOwnerOrgID sets the "owner_org_id" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableOwnerOrgID(v *uuid.UUID) *ScoreJobUpdate {
	if v != nil {
		_u.SetOwnerOrgID(*v)
	}
	return _u
}

// ClearOwnerOrgID clears the value of the "owner_org_id" field.
func (_u *ScoreJobUpdate) ClearOwnerOrgID() *ScoreJobUpdate {
	_u.mutation.ClearOwnerOrgID()
	return _u
}

// SetOwnerRole sets the "owner_role" field.
func (_u *ScoreJobUpdate) SetOwnerRole(v string) *ScoreJobUpdate {
	_u.mutation.SetOwnerRole(v)
	return _u
}

// SetNillableOwnerRole sets the "owner_role" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableOwnerRole(v *string) *ScoreJobUpdate {
	if v != nil {
		_u.SetOwnerRole(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScoreJobUpdate) SetStartedAt(v time.Time) *ScoreJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableStartedAt(v *time.Time) *ScoreJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ScoreJobUpdate) ClearStartedAt() *ScoreJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScoreJobUpdate) SetFinishedAt(v time.Time) *ScoreJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableFinishedAt(v *time.Time) *ScoreJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScoreJobUpdate) ClearFinishedAt() *ScoreJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetLastProgressAt sets the "last_progress_at" field.
func (_u *ScoreJobUpdate) SetLastProgressAt(v time.Time) *ScoreJobUpdate {
	_u.mutation.SetLastProgressAt(v)
	return _u
}

// SetNillableLastProgressAt sets the "last_progress_at" field if the given value is not nil.
func (_u *ScoreJobUpdate) SetNillableLastProgressAt(v *time.Time) *ScoreJobUpdate {
	if v != nil {
		_u.SetLastProgressAt(*v)
	}
	return _u
}

// ClearLastProgressAt clears the value of the "last_progress_at" field.
func (_u *ScoreJobUpdate) ClearLastProgressAt() *ScoreJobUpdate {
	_u.mutation.ClearLastProgressAt()
	return _u
}

// AddRowIDs adds the "rows" edge to the JobRow entity by IDs.
func (_u *ScoreJobUpdate) AddRowIDs(ids ...uuid.UUID) *ScoreJobUpdate {
	_u.mutation.AddRowIDs(ids...)
	return _u
}

// AddRows adds the "rows" edges to the JobRow entity.
func (_u *ScoreJobUpdate) AddRows(v ...*JobRow) *ScoreJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRowIDs(ids...)
}

// AddOutcomeIDs adds the "outcomes" edge to the JobRowOutcome entity by IDs.
func (_u *ScoreJobUpdate) AddOutcomeIDs(ids ...uuid.UUID) *ScoreJobUpdate {
	_u.mutation.AddOutcomeIDs(ids...)
	return _u
}

// AddOutcomes adds the "outcomes" edges to the JobRowOutcome entity.
func (_u *ScoreJobUpdate) AddOutcomes(v ...*JobRowOutcome) *ScoreJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutcomeIDs(ids...)
}

// Mutation returns the ScoreJobMutation object of the builder.
func (_u *ScoreJobUpdate) Mutation() *ScoreJobMutation {
	return _u.mutation
}

// ClearRows clears all "rows" edges to the JobRow entity.
func (_u *ScoreJobUpdate) ClearRows() *ScoreJobUpdate {
	_u.mutation.ClearRows()
	return _u
}

// RemoveRowIDs removes the "rows" edge to JobRow entities by IDs.
func (_u *ScoreJobUpdate) RemoveRowIDs(ids ...uuid.UUID) *ScoreJobUpdate {
	_u.mutation.RemoveRowIDs(ids...)
	return _u
}

// RemoveRows removes "rows" edges to JobRow entities.
func (_u *ScoreJobUpdate) RemoveRows(v ...*JobRow) *ScoreJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRowIDs(ids...)
}

// ClearOutcomes clears all "outcomes" edges to the JobRowOutcome entity.
func (_u *ScoreJobUpdate) ClearOutcomes() *ScoreJobUpdate {
	_u.mutation.ClearOutcomes()
	return _u
}

// RemoveOutcomeIDs removes the "outcomes" edge to JobRowOutcome entities by IDs.
func (_u *ScoreJobUpdate) RemoveOutcomeIDs(ids ...uuid.UUID) *ScoreJobUpdate {
	_u.mutation.RemoveOutcomeIDs(ids...)
	return _u
}

// RemoveOutcomes removes "outcomes" edges to JobRowOutcome entities.
func (_u *ScoreJobUpdate) RemoveOutcomes(v ...*JobRowOutcome) *ScoreJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutcomeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreJobUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := scorejob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScoreJob.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := scorejob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ScoreJob.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := scorejob.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ScoreJob.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnerRole(); ok {
		if err := scorejob.OwnerRoleValidator(v); err != nil {
			return &ValidationError{Name: "owner_role", err: fmt.Errorf(`ent: validator failed for field "ScoreJob.owner_role": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scorejob.Table, scorejob.Columns, sqlgraph.NewFieldSpec(scorejob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(scorejob.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(scorejob.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(scorejob.FieldLane, field.TypeString, value)
	}
	if _u.mutation.LaneCleared() {
		_spec.ClearField(scorejob.FieldLane, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(scorejob.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalRows(); ok {
		_spec.SetField(scorejob.FieldTotalRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRows(); ok {
		_spec.AddField(scorejob.FieldTotalRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedRows(); ok {
		_spec.SetField(scorejob.FieldProcessedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedRows(); ok {
		_spec.AddField(scorejob.FieldProcessedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessfulRows(); ok {
		_spec.SetField(scorejob.FieldSuccessfulRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulRows(); ok {
		_spec.AddField(scorejob.FieldSuccessfulRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedRows(); ok {
		_spec.SetField(scorejob.FieldFailedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedRows(); ok {
		_spec.AddField(scorejob.FieldFailedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailReason(); ok {
		_spec.SetField(scorejob.FieldFailReason, field.TypeString, value)
	}
	if _u.mutation.FailReasonCleared() {
		_spec.ClearField(scorejob.FieldFailReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(scorejob.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OwnerUserID(); ok {
		_spec.SetField(scorejob.FieldOwnerUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OwnerOrgID(); ok {
		_spec.SetField(scorejob.FieldOwnerOrgID, field.TypeUUID, value)
	}
	if _u.mutation.OwnerOrgIDCleared() {
		_spec.ClearField(scorejob.FieldOwnerOrgID, field.TypeUUID)
	}
	if value, ok := _u.mutation.OwnerRole(); ok {
		_spec.SetField(scorejob.FieldOwnerRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scorejob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(scorejob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scorejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scorejob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastProgressAt(); ok {
		_spec.SetField(scorejob.FieldLastProgressAt, field.TypeTime, value)
	}
	if _u.mutation.LastProgressAtCleared() {
		_spec.ClearField(scorejob.FieldLastProgressAt, field.TypeTime)
	}
	if _u.mutation.RowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scorejob.RowsTable,
			Columns: []string{scorejob.RowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobrow.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRowsIDs(); len(nodes) > 0 && !_u.mutation.RowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scorejob.RowsTable,
			Columns: []string{scorejob.RowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobrow.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RowsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scorejob.RowsTable,
			Columns: []string{scorejob.RowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobrow.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scorejob.OutcomesTable,
			Columns: []string{scorejob.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobrowoutcome.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutcomesIDs(); len(nodes) > 0 && !_u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scorejob.OutcomesTable,
			Columns: []string{scorejob.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobrowoutcome.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutcomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scorejob.OutcomesTable,
			Columns: []string{scorejob.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobrowoutcome.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scorejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreJobUpdateOne is the builder for updating a single ScoreJob entity.
type ScoreJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreJobMutation
}

// SetKind sets the "kind" field.
func (_u *ScoreJobUpdateOne) SetKind(v string) *ScoreJobUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableKind(v *string) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ScoreJobUpdateOne) SetFileName(v string) *ScoreJobUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableFileName(v *string) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetLane sets the "lane" field.
func (_u *ScoreJobUpdateOne) SetLane(v string) *ScoreJobUpdateOne {
	_u.mutation.SetLane(v)
	return _u
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableLane(v *string) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetLane(*v)
	}
	return _u
}

// ClearLane clears the value of the "lane" field.
func (_u *ScoreJobUpdateOne) ClearLane() *ScoreJobUpdateOne {
	_u.mutation.ClearLane()
	return _u
}

// SetState sets the "state" field.
func (_u *ScoreJobUpdateOne) SetState(v string) *ScoreJobUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableState(v *string) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetTotalRows sets the "total_rows" field.
func (_u *ScoreJobUpdateOne) SetTotalRows(v int) *ScoreJobUpdateOne {
	_u.mutation.ResetTotalRows()
	_u.mutation.SetTotalRows(v)
	return _u
}

// SetNillableTotalRows sets the "total_rows" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableTotalRows(v *int) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetTotalRows(*v)
	}
	return _u
}

// AddTotalRows adds value to the "total_rows" field.
func (_u *ScoreJobUpdateOne) AddTotalRows(v int) *ScoreJobUpdateOne {
	_u.mutation.AddTotalRows(v)
	return _u
}

// SetProcessedRows sets the "processed_rows" field.
func (_u *ScoreJobUpdateOne) SetProcessedRows(v int) *ScoreJobUpdateOne {
	_u.mutation.ResetProcessedRows()
	_u.mutation.SetProcessedRows(v)
	return _u
}

// SetNillableProcessedRows sets the "processed_rows" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableProcessedRows(v *int) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetProcessedRows(*v)
	}
	return _u
}

// AddProcessedRows adds value to the "processed_rows" field.
func (_u *ScoreJobUpdateOne) AddProcessedRows(v int) *ScoreJobUpdateOne {
	_u.mutation.AddProcessedRows(v)
	return _u
}

// SetSuccessfulRows sets the "successful_rows" field.
func (_u *ScoreJobUpdateOne) SetSuccessfulRows(v int) *ScoreJobUpdateOne {
	_u.mutation.ResetSuccessfulRows()
	_u.mutation.SetSuccessfulRows(v)
	return _u
}

// SetNillableSuccessfulRows sets the "successful_rows" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableSuccessfulRows(v *int) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetSuccessfulRows(*v)
	}
	return _u
}

// AddSuccessfulRows adds value to the "successful_rows" field.
func (_u *ScoreJobUpdateOne) AddSuccessfulRows(v int) *ScoreJobUpdateOne {
	_u.mutation.AddSuccessfulRows(v)
	return _u
}

// SetFailedRows sets the "failed_rows" field.
func (_u *ScoreJobUpdateOne) SetFailedRows(v int) *ScoreJobUpdateOne {
	_u.mutation.ResetFailedRows()
	_u.mutation.SetFailedRows(v)
	return _u
}

// SetNillableFailedRows sets the "failed_rows" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableFailedRows(v *int) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetFailedRows(*v)
	}
	return _u
}

// AddFailedRows adds value to the "failed_rows" field.
func (_u *ScoreJobUpdateOne) AddFailedRows(v int) *ScoreJobUpdateOne {
	_u.mutation.AddFailedRows(v)
	return _u
}

// SetFailReason sets the "fail_reason" field.
func (_u *ScoreJobUpdateOne) SetFailReason(v string) *ScoreJobUpdateOne {
	_u.mutation.SetFailReason(v)
	return _u
}

// SetNillableFailReason sets the "fail_reason" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableFailReason(v *string) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetFailReason(*v)
	}
	return _u
}

// ClearFailReason clears the value of the "fail_reason" field.
func (_u *ScoreJobUpdateOne) ClearFailReason() *ScoreJobUpdateOne {
	_u.mutation.ClearFailReason()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *ScoreJobUpdateOne) SetCancelRequested(v bool) *ScoreJobUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableCancelRequested(v *bool) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_u *ScoreJobUpdateOne) SetOwnerUserID(v uuid.UUID) *ScoreJobUpdateOne {
	_u.mutation.SetOwnerUserID(v)
	return _u
}

// SetNillableOwnerUserID sets the "owner_user_id" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableOwnerUserID(v *uuid.UUID) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetOwnerUserID(*v)
	}
	return _u
}

// SetOwnerOrgID sets the "owner_org_id" field.
func (_u *ScoreJobUpdateOne) SetOwnerOrgID(v uuid.UUID) *ScoreJobUpdateOne {
	_u.mutation.SetOwnerOrgID(v)
	return _u
}

// SetNillableOwnerOrgID sets the "owner_org_id" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableOwnerOrgID(v *uuid.UUID) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetOwnerOrgID(*v)
	}
	return _u
}

// ClearOwnerOrgID clears the value of the "owner_org_id" field.
func (_u *ScoreJobUpdateOne) ClearOwnerOrgID() *ScoreJobUpdateOne {
	_u.mutation.ClearOwnerOrgID()
	return _u
}

// SetOwnerRole sets the "owner_role" field.
func (_u *ScoreJobUpdateOne) SetOwnerRole(v string) *ScoreJobUpdateOne {
	_u.mutation.SetOwnerRole(v)
	return _u
}

// SetNillableOwnerRole sets the "owner_role" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableOwnerRole(v *string) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetOwnerRole(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ScoreJobUpdateOne) SetStartedAt(v time.Time) *ScoreJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableStartedAt(v *time.Time) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *ScoreJobUpdateOne) ClearStartedAt() *ScoreJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ScoreJobUpdateOne) SetFinishedAt(v time.Time) *ScoreJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableFinishedAt(v *time.Time) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ScoreJobUpdateOne) ClearFinishedAt() *ScoreJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetLastProgressAt sets the "last_progress_at" field.
func (_u *ScoreJobUpdateOne) SetLastProgressAt(v time.Time) *ScoreJobUpdateOne {
	_u.mutation.SetLastProgressAt(v)
	return _u
}

// SetNillableLastProgressAt sets the "last_progress_at" field if the given value is not nil.
func (_u *ScoreJobUpdateOne) SetNillableLastProgressAt(v *time.Time) *ScoreJobUpdateOne {
	if v != nil {
		_u.SetLastProgressAt(*v)
	}
	return _u
}

// ClearLastProgressAt clears the value of the "last_progress_at" field.
func (_u *ScoreJobUpdateOne) ClearLastProgressAt() *ScoreJobUpdateOne {
	_u.mutation.ClearLastProgressAt()
	return _u
}

// AddRowIDs adds the "rows" edge to the JobRow entity by IDs.
func (_u *ScoreJobUpdateOne) AddRowIDs(ids ...uuid.UUID) *ScoreJobUpdateOne {
	_u.mutation.AddRowIDs(ids...)
	return _u
}

// AddRows adds the "rows" edges to the JobRow entity.
func (_u *ScoreJobUpdateOne) AddRows(v ...*JobRow) *ScoreJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRowIDs(ids...)
}

// AddOutcomeIDs adds the "outcomes" edge to the JobRowOutcome entity by IDs.
func (_u *ScoreJobUpdateOne) AddOutcomeIDs(ids ...uuid.UUID) *ScoreJobUpdateOne {
	_u.mutation.AddOutcomeIDs(ids...)
	return _u
}

// AddOutcomes adds the "outcomes" edges to the JobRowOutcome entity.
func (_u *ScoreJobUpdateOne) AddOutcomes(v ...*JobRowOutcome) *ScoreJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutcomeIDs(ids...)
}

// Mutation returns the ScoreJobMutation object of the builder.
func (_u *ScoreJobUpdateOne) Mutation() *ScoreJobMutation {
	return _u.mutation
}

// ClearRows clears all "rows" edges to the JobRow entity.
func (_u *ScoreJobUpdateOne) ClearRows() *ScoreJobUpdateOne {
	_u.mutation.ClearRows()
	return _u
}

// RemoveRowIDs removes the "rows" edge to JobRow entities by IDs.
func (_u *ScoreJobUpdateOne) RemoveRowIDs(ids ...uuid.UUID) *ScoreJobUpdateOne {
	_u.mutation.RemoveRowIDs(ids...)
	return _u
}

// RemoveRows removes "rows" edges to JobRow entities.
func (_u *ScoreJobUpdateOne) RemoveRows(v ...*JobRow) *ScoreJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRowIDs(ids...)
}

// ClearOutcomes clears all "outcomes" edges to the JobRowOutcome entity.
func (_u *ScoreJobUpdateOne) ClearOutcomes() *ScoreJobUpdateOne {
	_u.mutation.ClearOutcomes()
	return _u
}

// RemoveOutcomeIDs removes the "outcomes" edge to JobRowOutcome entities by IDs.
func (_u *ScoreJobUpdateOne) RemoveOutcomeIDs(ids ...uuid.UUID) *ScoreJobUpdateOne {
	_u.mutation.RemoveOutcomeIDs(ids...)
	return _u
}

// RemoveOutcomes removes "outcomes" edges to JobRowOutcome entities.
func (_u *ScoreJobUpdateOne) RemoveOutcomes(v ...*JobRowOutcome) *ScoreJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutcomeIDs(ids...)
}

// Where appends a list predicates to the ScoreJobUpdate builder.
func (_u *ScoreJobUpdateOne) Where(ps ...predicate.ScoreJob) *ScoreJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreJobUpdateOne) Select(field string, fields ...string) *ScoreJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScoreJob entity.
func (_u *ScoreJobUpdateOne) Save(ctx context.Context) (*ScoreJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreJobUpdateOne) SaveX(ctx context.Context) *ScoreJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreJobUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := scorejob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScoreJob.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := scorejob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ScoreJob.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := scorejob.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ScoreJob.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OwnerRole(); ok {
		if err := scorejob.OwnerRoleValidator(v); err != nil {
			return &ValidationError{Name: "owner_role", err: fmt.Errorf(`ent: validator failed for field "ScoreJob.owner_role": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreJobUpdateOne) sqlSave(ctx context.Context) (_node *ScoreJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scorejob.Table, scorejob.Columns, sqlgraph.NewFieldSpec(scorejob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScoreJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scorejob.FieldID)
		for _, f := range fields {
			if !scorejob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scorejob.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(scorejob.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(scorejob.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Lane(); ok {
		_spec.SetField(scorejob.FieldLane, field.TypeString, value)
	}
	if _u.mutation.LaneCleared() {
		_spec.ClearField(scorejob.FieldLane, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(scorejob.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalRows(); ok {
		_spec.SetField(scorejob.FieldTotalRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRows(); ok {
		_spec.AddField(scorejob.FieldTotalRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedRows(); ok {
		_spec.SetField(scorejob.FieldProcessedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedRows(); ok {
		_spec.AddField(scorejob.FieldProcessedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessfulRows(); ok {
		_spec.SetField(scorejob.FieldSuccessfulRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulRows(); ok {
		_spec.AddField(scorejob.FieldSuccessfulRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedRows(); ok {
		_spec.SetField(scorejob.FieldFailedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedRows(); ok {
		_spec.AddField(scorejob.FieldFailedRows, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailReason(); ok {
		_spec.SetField(scorejob.FieldFailReason, field.TypeString, value)
	}
	if _u.mutation.FailReasonCleared() {
		_spec.ClearField(scorejob.FieldFailReason, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(scorejob.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OwnerUserID(); ok {
		_spec.SetField(scorejob.FieldOwnerUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OwnerOrgID(); ok {
		_spec.SetField(scorejob.FieldOwnerOrgID, field.TypeUUID, value)
	}
	if _u.mutation.OwnerOrgIDCleared() {
		_spec.ClearField(scorejob.FieldOwnerOrgID, field.TypeUUID)
	}
	if value, ok := _u.mutation.OwnerRole(); ok {
		_spec.SetField(scorejob.FieldOwnerRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(scorejob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(scorejob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(scorejob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(scorejob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastProgressAt(); ok {
		_spec.SetField(scorejob.FieldLastProgressAt, field.TypeTime, value)
	}
	if _u.mutation.LastProgressAtCleared() {
		_spec.ClearField(scorejob.FieldLastProgressAt, field.TypeTime)
	}
	if _u.mutation.RowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scorejob.RowsTable,
			Columns: []string{scorejob.RowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobrow.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRowsIDs(); len(nodes) > 0 && !_u.mutation.RowsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scorejob.RowsTable,
			Columns: []string{scorejob.RowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobrow.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RowsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scorejob.RowsTable,
			Columns: []string{scorejob.RowsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobrow.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scorejob.OutcomesTable,
			Columns: []string{scorejob.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobrowoutcome.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutcomesIDs(); len(nodes) > 0 && !_u.mutation.OutcomesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scorejob.OutcomesTable,
			Columns: []string{scorejob.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobrowoutcome.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutcomesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   scorejob.OutcomesTable,
			Columns: []string{scorejob.OutcomesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobrowoutcome.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ScoreJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scorejob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
