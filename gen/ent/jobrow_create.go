// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/jobrow"
	"github.com/openfinml/riskscore/gen/ent/scorejob"
)

// JobRowCreate is the builder for creating a JobRow entity.
type JobRowCreate struct {
	config
	mutation *JobRowMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobRowCreate) SetJobID(v uuid.UUID) *JobRowCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetRowIndex sets the "row_index" field.
func (_c *JobRowCreate) SetRowIndex(v int) *JobRowCreate {
	_c.mutation.SetRowIndex(v)
	return _c
}

// SetSymbol sets the "symbol" field.
func (_c *JobRowCreate) SetSymbol(v string) *JobRowCreate {
	_c.mutation.SetSymbol(v)
	return _c
}

// SetPeriod sets the "period" field.
func (_c *JobRowCreate) SetPeriod(v string) *JobRowCreate {
	_c.mutation.SetPeriod(v)
	return _c
}

// SetRatios sets the "ratios" field.
func (_c *JobRowCreate) SetRatios(v json.RawMessage) *JobRowCreate {
	_c.mutation.SetRatios(v)
	return _c
}

// SetID sets the "id" field.
func (_c *JobRowCreate) SetID(v uuid.UUID) *JobRowCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobRowCreate) SetNillableID(v *uuid.UUID) *JobRowCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the ScoreJob entity.
func (_c *JobRowCreate) SetJob(v *ScoreJob) *JobRowCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobRowMutation object of the builder.
func (_c *JobRowCreate) Mutation() *JobRowMutation {
	return _c.mutation
}

// Save creates the JobRow in the database.
func (_c *JobRowCreate) Save(ctx context.Context) (*JobRow, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobRowCreate) SaveX(ctx context.Context) *JobRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobRowCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobRowCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobRowCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := jobrow.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobRowCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobRow.job_id"`)}
	}
	if _, ok := _c.mutation.RowIndex(); !ok {
		return &ValidationError{Name: "row_index", err: errors.New(`ent: missing required field "JobRow.row_index"`)}
	}
	if _, ok := _c.mutation.Symbol(); !ok {
		return &ValidationError{Name: "symbol", err: errors.New(`ent: missing required field "JobRow.symbol"`)}
	}
	if _, ok := _c.mutation.Period(); !ok {
		return &ValidationError{Name: "period", err: errors.New(`ent: missing required field "JobRow.period"`)}
	}
	if _, ok := _c.mutation.Ratios(); !ok {
		return &ValidationError{Name: "ratios", err: errors.New(`ent: missing required field "JobRow.ratios"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobRow.job"`)}
	}
	return nil
}

func (_c *JobRowCreate) sqlSave(ctx context.Context) (*JobRow, error) {
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

func (_c *JobRowCreate) createSpec() (*JobRow, *sqlgraph.CreateSpec) {
	var (
		_node = &JobRow{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobrow.Table, sqlgraph.NewFieldSpec(jobrow.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RowIndex(); ok {
		_spec.SetField(jobrow.FieldRowIndex, field.TypeInt, value)
		_node.RowIndex = value
	}
	if value, ok := _c.mutation.Symbol(); ok {
		_spec.SetField(jobrow.FieldSymbol, field.TypeString, value)
		_node.Symbol = value
	}
	if value, ok := _c.mutation.Period(); ok {
		_spec.SetField(jobrow.FieldPeriod, field.TypeString, value)
		_node.Period = value
	}
	if value, ok := _c.mutation.Ratios(); ok {
		_spec.SetField(jobrow.FieldRatios, field.TypeJSON, value)
		_node.Ratios = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
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
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobRowCreateBulk is the builder for creating many JobRow entities in bulk.
type JobRowCreateBulk struct {
	config
	err      error
	builders []*JobRowCreate
}

// Save creates the JobRow entities in the database.
func (_c *JobRowCreateBulk) Save(ctx context.Context) ([]*JobRow, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobRow, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobRowMutation)
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
func (_c *JobRowCreateBulk) SaveX(ctx context.Context) []*JobRow {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobRowCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobRowCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
