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
	"github.com/openfinml/riskscore/gen/ent/company"
	"github.com/openfinml/riskscore/gen/ent/prediction"
)

// PredictionCreate is the builder for creating a Prediction entity.
type PredictionCreate struct {
	config
	mutation *PredictionMutation
	hooks    []Hook
}

// SetCompanyID sets the "company_id" field.
func (_c *PredictionCreate) SetCompanyID(v uuid.UUID) *PredictionCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetPeriod sets the "period" field.
func (_c *PredictionCreate) SetPeriod(v string) *PredictionCreate {
	_c.mutation.SetPeriod(v)
	return _c
}

// SetScopeKey sets the "scope_key" field.
func (_c *PredictionCreate) SetScopeKey(v string) *PredictionCreate {
	_c.mutation.SetScopeKey(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *PredictionCreate) SetJobID(v uuid.UUID) *PredictionCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *PredictionCreate) SetNillableJobID(v *uuid.UUID) *PredictionCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetProbability sets the "probability" field.
func (_c *PredictionCreate) SetProbability(v float64) *PredictionCreate {
	_c.mutation.SetProbability(v)
	return _c
}

// SetClassification sets the "classification" field.
func (_c *PredictionCreate) SetClassification(v string) *PredictionCreate {
	_c.mutation.SetClassification(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *PredictionCreate) SetConfidence(v float64) *PredictionCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PredictionCreate) SetCreatedAt(v time.Time) *PredictionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PredictionCreate) SetNillableCreatedAt(v *time.Time) *PredictionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PredictionCreate) SetUpdatedAt(v time.Time) *PredictionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PredictionCreate) SetNillableUpdatedAt(v *time.Time) *PredictionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PredictionCreate) SetID(v uuid.UUID) *PredictionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PredictionCreate) SetNillableID(v *uuid.UUID) *PredictionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCompany sets the "company" edge to the Company entity.
func (_c *PredictionCreate) SetCompany(v *Company) *PredictionCreate {
	return _c.SetCompanyID(v.ID)
}

// Mutation returns the PredictionMutation object of the builder.
func (_c *PredictionCreate) Mutation() *PredictionMutation {
	return _c.mutation
}

// Save creates the Prediction in the database.
func (_c *PredictionCreate) Save(ctx context.Context) (*Prediction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PredictionCreate) SaveX(ctx context.Context) *Prediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PredictionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PredictionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PredictionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prediction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := prediction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := prediction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PredictionCreate) check() error {
	if _, ok := _c.mutation.CompanyID(); !ok {
		return &ValidationError{Name: "company_id", err: errors.New(`ent: missing required field "Prediction.company_id"`)}
	}
	if _, ok := _c.mutation.Period(); !ok {
		return &ValidationError{Name: "period", err: errors.New(`ent: missing required field "Prediction.period"`)}
	}
	if v, ok := _c.mutation.Period(); ok {
		if err := prediction.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "Prediction.period": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScopeKey(); !ok {
		return &ValidationError{Name: "scope_key", err: errors.New(`ent: missing required field "Prediction.scope_key"`)}
	}
	if v, ok := _c.mutation.ScopeKey(); ok {
		if err := prediction.ScopeKeyValidator(v); err != nil {
			return &ValidationError{Name: "scope_key", err: fmt.Errorf(`ent: validator failed for field "Prediction.scope_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Probability(); !ok {
		return &ValidationError{Name: "probability", err: errors.New(`ent: missing required field "Prediction.probability"`)}
	}
	if _, ok := _c.mutation.Classification(); !ok {
		return &ValidationError{Name: "classification", err: errors.New(`ent: missing required field "Prediction.classification"`)}
	}
	if v, ok := _c.mutation.Classification(); ok {
		if err := prediction.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "Prediction.classification": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Prediction.confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Prediction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Prediction.updated_at"`)}
	}
	if len(_c.mutation.CompanyIDs()) == 0 {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required edge "Prediction.company"`)}
	}
	return nil
}

func (_c *PredictionCreate) sqlSave(ctx context.Context) (*Prediction, error) {
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

func (_c *PredictionCreate) createSpec() (*Prediction, *sqlgraph.CreateSpec) {
	var (
		_node = &Prediction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prediction.Table, sqlgraph.NewFieldSpec(prediction.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Period(); ok {
		_spec.SetField(prediction.FieldPeriod, field.TypeString, value)
		_node.Period = value
	}
	if value, ok := _c.mutation.ScopeKey(); ok {
		_spec.SetField(prediction.FieldScopeKey, field.TypeString, value)
		_node.ScopeKey = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(prediction.FieldJobID, field.TypeUUID, value)
		_node.JobID = &value
	}
	if value, ok := _c.mutation.Probability(); ok {
		_spec.SetField(prediction.FieldProbability, field.TypeFloat64, value)
		_node.Probability = value
	}
	if value, ok := _c.mutation.Classification(); ok {
		_spec.SetField(prediction.FieldClassification, field.TypeString, value)
		_node.Classification = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(prediction.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prediction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(prediction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CompanyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prediction.CompanyTable,
			Columns: []string{prediction.CompanyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CompanyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PredictionCreateBulk is the builder for creating many Prediction entities in bulk.
type PredictionCreateBulk struct {
	config
	err      error
	builders []*PredictionCreate
}

// Save creates the Prediction entities in the database.
func (_c *PredictionCreateBulk) Save(ctx context.Context) ([]*Prediction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prediction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PredictionMutation)
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
func (_c *PredictionCreateBulk) SaveX(ctx context.Context) []*Prediction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PredictionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PredictionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
