// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/jobrow"
	"github.com/openfinml/riskscore/gen/ent/jobrowoutcome"
	"github.com/openfinml/riskscore/gen/ent/scorejob"
)

// ScoreJobCreate is the builder for creating a ScoreJob entity.
type ScoreJobCreate struct {
	config
	mutation *ScoreJobMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *ScoreJobCreate) SetKind(v string) *ScoreJobCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ScoreJobCreate) SetFileName(v string) *ScoreJobCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetLane sets the "lane" field.
func (_c *ScoreJobCreate) SetLane(v string) *ScoreJobCreate {
	_c.mutation.SetLane(v)
	return _c
}

// SetNillableLane sets the "lane" field if the given value is not nil.
func (_c *ScoreJobCreate) SetNillableLane(v *string) *ScoreJobCreate {
	if v != nil {
		_c.SetLane(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *ScoreJobCreate) SetState(v string) *ScoreJobCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetTotalRows sets the "total_rows" field.
func (_c *ScoreJobCreate) SetTotalRows(v int) *ScoreJobCreate {
	_c.mutation.SetTotalRows(v)
	return _c
}

// SetProcessedRows sets the "processed_rows" field.
func (_c *ScoreJobCreate) SetProcessedRows(v int) *ScoreJobCreate {
	_c.mutation.SetProcessedRows(v)
	return _c
}

// SetNillableProcessedRows sets the "processed_rows" field if the given value is not nil.
func (_c *ScoreJobCreate) SetNillableProcessedRows(v *int) *ScoreJobCreate {
	if v != nil {
		_c.SetProcessedRows(*v)
	}
	return _c
}

// SetSuccessfulRows sets the "successful_rows" field.
func (_c *ScoreJobCreate) SetSuccessfulRows(v int) *ScoreJobCreate {
	_c.mutation.SetSuccessfulRows(v)
	return _c
}

// SetNillableSuccessfulRows sets the "successful_rows" field if the given value is not nil.
func (_c *ScoreJobCreate) SetNillableSuccessfulRows(v *int) *ScoreJobCreate {
	if v != nil {
		_c.SetSuccessfulRows(*v)
	}
	return _c
}

// SetFailedRows sets the "failed_rows" field.
func (_c *ScoreJobCreate) SetFailedRows(v int) *ScoreJobCreate {
	_c.mutation.SetFailedRows(v)
	return _c
}

// SetNillableFailedRows sets the "failed_rows" field if the given value is not nil.
func (_c *ScoreJobCreate) SetNillableFailedRows(v *int) *ScoreJobCreate {
	if v != nil {
		_c.SetFailedRows(*v)
	}
	return _c
}

// SetFailReason sets the "fail_reason" field.
func (_c *ScoreJobCreate) SetFailReason(v string) *ScoreJobCreate {
	_c.mutation.SetFailReason(v)
	return _c
}

// SetNillableFailReason sets the "fail_reason" field if the given value is not nil.
func (_c *ScoreJobCreate) SetNillableFailReason(v *string) *ScoreJobCreate {
	if v != nil {
		_c.SetFailReason(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *ScoreJobCreate) SetCancelRequested(v bool) *ScoreJobCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *ScoreJobCreate) SetNillableCancelRequested(v *bool) *ScoreJobCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetOwnerUserID sets the "owner_user_id" field.
func (_c *ScoreJobCreate) SetOwnerUserID(v uuid.UUID) *ScoreJobCreate {
	_c.mutation.SetOwnerUserID(v)
	return _c
}

// SetOwnerOrgID sets the "owner_org_id" field.
func (_c *ScoreJobCreate) SetOwnerOrgID(v uuid.UUID) *ScoreJobCreate {
	_c.mutation.SetOwnerOrgID(v)
	return _c
}

// SetNillableOwnerOrgID sets the "owner_org_id" field if the given value is not nil.
func (_c *ScoreJobCreate) SetNillableOwnerOrgID(v *uuid.UUID) *ScoreJobCreate {
	if v != nil {
		_c.SetOwnerOrgID(*v)
	}
	return _c
}

// SetOwnerRole sets the "owner_role" field.
func (_c *ScoreJobCreate) SetOwnerRole(v string) *ScoreJobCreate {
	_c.mutation.SetOwnerRole(v)
	return _c
}

// SetSubmittedAt sets the "submitted_at" field.
func (_c *ScoreJobCreate) SetSubmittedAt(v time.Time) *ScoreJobCreate {
	_c.mutation.SetSubmittedAt(v)
	return _c
}

// SetNillableSubmittedAt sets the "submitted_at" field if the given value is not nil.
func (_c *ScoreJobCreate) SetNillableSubmittedAt(v *time.Time) *ScoreJobCreate {
	if v != nil {
		_c.SetSubmittedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ScoreJobCreate) SetStartedAt(v time.Time) *ScoreJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ScoreJobCreate) SetNillableStartedAt(v *time.Time) *ScoreJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ScoreJobCreate) SetFinishedAt(v time.Time) *ScoreJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ScoreJobCreate) SetNillableFinishedAt(v *time.Time) *ScoreJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetLastProgressAt sets the "last_progress_at" field.
func (_c *ScoreJobCreate) SetLastProgressAt(v time.Time) *ScoreJobCreate {
	_c.mutation.SetLastProgressAt(v)
	return _c
}

// SetNillableLastProgressAt sets the "last_progress_at" field if the given value is not nil.
func (_c *ScoreJobCreate) SetNillableLastProgressAt(v *time.Time) *ScoreJobCreate {
	if v != nil {
		_c.SetLastProgressAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScoreJobCreate) SetID(v uuid.UUID) *ScoreJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScoreJobCreate) SetNillableID(v *uuid.UUID) *ScoreJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddRowIDs adds the "rows" edge to the JobRow entity by IDs.
func (_c *ScoreJobCreate) AddRowIDs(ids ...uuid.UUID) *ScoreJobCreate {
	_c.mutation.AddRowIDs(ids...)
	return _c
}

// AddRows adds the "rows" edges to the JobRow entity.
func (_c *ScoreJobCreate) AddRows(v ...*JobRow) *ScoreJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRowIDs(ids...)
}

// AddOutcomeIDs adds the "outcomes" edge to the JobRowOutcome entity by IDs.
func (_c *ScoreJobCreate) AddOutcomeIDs(ids ...uuid.UUID) *ScoreJobCreate {
	_c.mutation.AddOutcomeIDs(ids...)
	return _c
}

// AddOutcomes adds the "outcomes" edges to the JobRowOutcome entity.
func (_c *ScoreJobCreate) AddOutcomes(v ...*JobRowOutcome) *ScoreJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutcomeIDs(ids...)
}

// Mutation returns the ScoreJobMutation object of the builder.
func (_c *ScoreJobCreate) Mutation() *ScoreJobMutation {
	return _c.mutation
}

// Save creates the ScoreJob in the database.
func (_c *ScoreJobCreate) Save(ctx context.Context) (*ScoreJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScoreJobCreate) SaveX(ctx context.Context) *ScoreJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScoreJobCreate) defaults() {
	if _, ok := _c.mutation.ProcessedRows(); !ok {
		v := scorejob.DefaultProcessedRows
		_c.mutation.SetProcessedRows(v)
	}
	if _, ok := _c.mutation.SuccessfulRows(); !ok {
		v := scorejob.DefaultSuccessfulRows
		_c.mutation.SetSuccessfulRows(v)
	}
	if _, ok := _c.mutation.FailedRows(); !ok {
		v := scorejob.DefaultFailedRows
		_c.mutation.SetFailedRows(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := scorejob.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		v := scorejob.DefaultSubmittedAt()
		_c.mutation.SetSubmittedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := scorejob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScoreJobCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ScoreJob.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := scorejob.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScoreJob.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ScoreJob.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := scorejob.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "ScoreJob.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "ScoreJob.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := scorejob.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "ScoreJob.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalRows(); !ok {
		return &ValidationError{Name: "total_rows", err: errors.New(`ent: missing required field "ScoreJob.total_rows"`)}
	}
	if _, ok := _c.mutation.ProcessedRows(); !ok {
		return &ValidationError{Name: "processed_rows", err: errors.New(`ent: missing required field "ScoreJob.processed_rows"`)}
	}
	if _, ok := _c.mutation.SuccessfulRows(); !ok {
		return &ValidationError{Name: "successful_rows", err: errors.New(`ent: missing required field "ScoreJob.successful_rows"`)}
	}
	if _, ok := _c.mutation.FailedRows(); !ok {
		return &ValidationError{Name: "failed_rows", err: errors.New(`ent: missing required field "ScoreJob.failed_rows"`)}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "ScoreJob.cancel_requested"`)}
	}
	if _, ok := _c.mutation.OwnerUserID(); !ok {
		return &ValidationError{Name: "owner_user_id", err: errors.New(`ent: missing required field "ScoreJob.owner_user_id"`)}
	}
	if _, ok := _c.mutation.OwnerRole(); !ok {
		return &ValidationError{Name: "owner_role", err: errors.New(`ent: missing required field "ScoreJob.owner_role"`)}
	}
	if v, ok := _c.mutation.OwnerRole(); ok {
		if err := scorejob.OwnerRoleValidator(v); err != nil {
			return &ValidationError{Name: "owner_role", err: fmt.Errorf(`ent: validator failed for field "ScoreJob.owner_role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubmittedAt(); !ok {
		return &ValidationError{Name: "submitted_at", err: errors.New(`ent: missing required field "ScoreJob.submitted_at"`)}
	}
	return nil
}

func (_c *ScoreJobCreate) sqlSave(ctx context.Context) (*ScoreJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScoreJobCreate) createSpec() (*ScoreJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ScoreJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scorejob.Table, sqlgraph.NewFieldSpec(scorejob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(scorejob.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(scorejob.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.Lane(); ok {
		_spec.SetField(scorejob.FieldLane, field.TypeString, value)
		_node.Lane = &value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(scorejob.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.TotalRows(); ok {
		_spec.SetField(scorejob.FieldTotalRows, field.TypeInt, value)
		_node.TotalRows = value
	}
	if value, ok := _c.mutation.ProcessedRows(); ok {
		_spec.SetField(scorejob.FieldProcessedRows, field.TypeInt, value)
		_node.ProcessedRows = value
	}
	if value, ok := _c.mutation.SuccessfulRows(); ok {
		_spec.SetField(scorejob.FieldSuccessfulRows, field.TypeInt, value)
		_node.SuccessfulRows = value
	}
	if value, ok := _c.mutation.FailedRows(); ok {
		_spec.SetField(scorejob.FieldFailedRows, field.TypeInt, value)
		_node.FailedRows = value
	}
	if value, ok := _c.mutation.FailReason(); ok {
		_spec.SetField(scorejob.FieldFailReason, field.TypeString, value)
		_node.FailReason = &value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(scorejob.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.OwnerUserID(); ok {
		_spec.SetField(scorejob.FieldOwnerUserID, field.TypeUUID, value)
		_node.OwnerUserID = value
	}
	if value, ok := _c.mutation.OwnerOrgID(); ok {
		_spec.SetField(scorejob.FieldOwnerOrgID, field.TypeUUID, value)
		_node.OwnerOrgID = &value
	}
	if value, ok := _c.mutation.OwnerRole(); ok {
		_spec.SetField(scorejob.FieldOwnerRole, field.TypeString, value)
		_node.OwnerRole = value
	}
	if value, ok := _c.mutation.SubmittedAt(); ok {
		_spec.SetField(scorejob.FieldSubmittedAt, field.TypeTime, value)
		_node.SubmittedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(scorejob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(scorejob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.LastProgressAt(); ok {
		_spec.SetField(scorejob.FieldLastProgressAt, field.TypeTime, value)
		_node.LastProgressAt = &value
	}
	if nodes := _c.mutation.RowsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OutcomesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScoreJobCreateBulk is the builder for creating many ScoreJob entities in bulk.
type ScoreJobCreateBulk struct {
	config
	err      error
	builders []*ScoreJobCreate
}

// Save creates the ScoreJob entities in the database.
func (_c *ScoreJobCreateBulk) Save(ctx context.Context) ([]*ScoreJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScoreJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScoreJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScoreJobCreateBulk) SaveX(ctx context.Context) []*ScoreJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScoreJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScoreJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
