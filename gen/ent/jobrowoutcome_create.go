// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/jobrowoutcome"
	"github.com/openfinml/riskscore/gen/ent/scorejob"
)

// JobRowOutcomeCreate is the builder for creating a JobRowOutcome entity.
type JobRowOutcomeCreate struct {
	config
	mutation *JobRowOutcomeMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobRowOutcomeCreate) SetJobID(v uuid.UUID) *JobRowOutcomeCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetRowIndex sets the "row_index" field.
func (_c *JobRowOutcomeCreate) SetRowIndex(v int) *JobRowOutcomeCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetOk sets the "ok" field.
func (_c *JobRowOutcomeCreate) SetOk(v bool) *JobRowOutcomeCreate {
	_c.mutation.SetOk(v)
	return _c
}

// SetSymbol sets the "symbol" field.
func (_c *JobRowOutcomeCreate) SetSymbol(v string) *JobRowOutcomeCreate {
	_c.mutation.SetSymbol(v)
	return _c
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_c *JobRowOutcomeCreate) SetNillableSymbol(v *string) *JobRowOutcomeCreate {
	if v != nil {
		_c.SetSymbol(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *JobRowOutcomeCreate) SetMessage(v string) *JobRowOutcomeCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *JobRowOutcomeCreate) SetNillableMessage(v *string) *JobRowOutcomeCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobRowOutcomeCreate) SetID(v uuid.UUID) *JobRowOutcomeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobRowOutcomeCreate) SetNillableID(v *uuid.UUID) *JobRowOutcomeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ScoreJob entity.
func (_c *JobRowOutcomeCreate) SetJob(v *ScoreJob) *JobRowOutcomeCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobRowOutcomeMutation object of the builder.
func (_c *JobRowOutcomeCreate) Mutation() *JobRowOutcomeMutation {
	return _c.mutation
}

// Save creates the JobRowOutcome in the database.
func (_c *JobRowOutcomeCreate) Save(ctx context.Context) (*JobRowOutcome, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobRowOutcomeCreate) SaveX(ctx context.Context) *JobRowOutcome {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobRowOutcomeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobRowOutcomeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobRowOutcomeCreate) defaults() {
	if _, ok := _c.mutation.Symbol(); !ok {
		v := jobrowoutcome.DefaultSymbol
		_c.mutation.SetSymbol(v)
	}
	if _, ok := _c.mutation.Message(); !ok {
		v := jobrowoutcome.DefaultMessage
		_c.mutation.SetMessage(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := jobrowoutcome.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobRowOutcomeCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobRowOutcome.job_id"`)}
	}
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "JobRowOutcome.row_index"`)}
	}
	if _, ok := _c.mutation.Ok(); !ok {
		return &ValidationError{Name: "ok", err: errors.New(`ent: missing required field "JobRowOutcome.ok"`)}
	}
	if _, ok := _c.mutation.Symbol(); !ok {
		return &ValidationError{Name: "symbol", err: errors.New(`ent: missing required field "JobRowOutcome.symbol"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "JobRowOutcome.message"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobRowOutcome.job"`)}
	}
	return nil
}

func (_c *JobRowOutcomeCreate) sqlSave(ctx context.Context) (*JobRowOutcome, error) {
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

func (_c *JobRowOutcomeCreate) createSpec() (*JobRowOutcome, *sqlgraph.CreateSpec) {
	var (
		_node = &JobRowOutcome{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobrowoutcome.Table, sqlgraph.NewFieldSpec(jobrowoutcome.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(jobrowoutcome.FieldRowIndex, field.TypeInt, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.Ok(); ok {
		_spec.SetField(jobrowoutcome.FieldOk, field.TypeBool, value)
		_node.Ok = value
	}
	if value, ok := _c.mutation.Symbol(); ok {
		_spec.SetField(jobrowoutcome.FieldSymbol, field.TypeString, value)
		_node.Symbol = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(jobrowoutcome.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobRowOutcomeCreateBulk is the builder for creating many JobRowOutcome entities in bulk.
type JobRowOutcomeCreateBulk struct {
	config
	err      error
	builders []*JobRowOutcomeCreate
}

// Save creates the JobRowOutcome entities in the database.
func (_c *JobRowOutcomeCreateBulk) Save(ctx context.Context) ([]*JobRowOutcome, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobRowOutcome, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobRowOutcomeMutation)
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
func (_c *JobRowOutcomeCreateBulk) SaveX(ctx context.Context) []*JobRowOutcome {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobRowOutcomeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobRowOutcomeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
