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
	"github.com/openfinml/riskscore/gen/ent/company"
	"github.com/openfinml/riskscore/gen/ent/predicate"
	"github.com/openfinml/riskscore/gen/ent/prediction"
)

// PredictionUpdate is the builder for updating Prediction entities.
type PredictionUpdate struct {
	config
	hooks    []Hook
	mutation *PredictionMutation
}

// Where appends a list predicates to the PredictionUpdate builder.
func (_u *PredictionUpdate) Where(ps ...predicate.Prediction) *PredictionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *PredictionUpdate) SetCompanyID(v uuid.UUID) *PredictionUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *PredictionUpdate) SetNillableCompanyID(v *uuid.UUID) *PredictionUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetPeriod sets the "period" field.
func (_u *PredictionUpdate) SetPeriod(v string) *PredictionUpdate {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *PredictionUpdate) SetNillablePeriod(v *string) *PredictionUpdate {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetScopeKey sets the "scope_key" field.
func (_u *PredictionUpdate) SetScopeKey(v string) *PredictionUpdate {
	_u.mutation.SetScopeKey(v)
	return _u
}

// SetNillableScopeKey sets the "scope_key" field if the given value is not nil.
func (_u *PredictionUpdate) SetNillableScopeKey(v *string) *PredictionUpdate {
	if v != nil {
		_u.SetScopeKey(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *PredictionUpdate) SetJobID(v uuid.UUID) *PredictionUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *PredictionUpdate) SetNillableJobID(v *uuid.UUID) *PredictionUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *PredictionUpdate) ClearJobID() *PredictionUpdate {
	_u.mutation.ClearJobID()
	return _u
}

// SetProbability sets the "probability" field.
func (_u *PredictionUpdate) SetProbability(v float64) *PredictionUpdate {
	_u.mutation.ResetProbability()
	_u.mutation.SetProbability(v)
	return _u
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_u *PredictionUpdate) SetNillableProbability(v *float64) *PredictionUpdate {
	if v != nil {
		_u.SetProbability(*v)
	}
	return _u
}

// AddProbability adds value to the "probability" field.
func (_u *PredictionUpdate) AddProbability(v float64) *PredictionUpdate {
	_u.mutation.AddProbability(v)
	return _u
}

// SetClassification sets the "classification" field.
func (_u *PredictionUpdate) SetClassification(v string) *PredictionUpdate {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *PredictionUpdate) SetNillableClassification(v *string) *PredictionUpdate {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PredictionUpdate) SetConfidence(v float64) *PredictionUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PredictionUpdate) SetNillableConfidence(v *float64) *PredictionUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PredictionUpdate) AddConfidence(v float64) *PredictionUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PredictionUpdate) SetUpdatedAt(v time.Time) *PredictionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *PredictionUpdate) SetCompany(v *Company) *PredictionUpdate {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the PredictionMutation object of the builder.
func (_u *PredictionUpdate) Mutation() *PredictionMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *PredictionUpdate) ClearCompany() *PredictionUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PredictionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredictionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PredictionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredictionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PredictionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prediction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PredictionUpdate) check() error {
	if v, ok := _u.mutation.Period(); ok {
		if err := prediction.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "Prediction.period": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeKey(); ok {
		if err := prediction.ScopeKeyValidator(v); err != nil {
			return &ValidationError{Name: "scope_key", err: fmt.Errorf(`ent: validator failed for field "Prediction.scope_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := prediction.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "Prediction.classification": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Prediction.company"`)
	}
	return nil
}

func (_u *PredictionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prediction.Table, prediction.Columns, sqlgraph.NewFieldSpec(prediction.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(prediction.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeKey(); ok {
		_spec.SetField(prediction.FieldScopeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(prediction.FieldJobID, field.TypeUUID, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(prediction.FieldJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Probability(); ok {
		_spec.SetField(prediction.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbability(); ok {
		_spec.AddField(prediction.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(prediction.FieldClassification, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(prediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(prediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prediction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PredictionUpdateOne is the builder for updating a single Prediction entity.
type PredictionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PredictionMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *PredictionUpdateOne) SetCompanyID(v uuid.UUID) *PredictionUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *PredictionUpdateOne) SetNillableCompanyID(v *uuid.UUID) *PredictionUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetPeriod sets the "period" field.
func (_u *PredictionUpdateOne) SetPeriod(v string) *PredictionUpdateOne {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *PredictionUpdateOne) SetNillablePeriod(v *string) *PredictionUpdateOne {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetScopeKey sets the "scope_key" field.
func (_u *PredictionUpdateOne) SetScopeKey(v string) *PredictionUpdateOne {
	_u.mutation.SetScopeKey(v)
	return _u
}

// SetNillableScopeKey sets the "scope_key" field if the given value is not nil.
func (_u *PredictionUpdateOne) SetNillableScopeKey(v *string) *PredictionUpdateOne {
	if v != nil {
		_u.SetScopeKey(*v)
	}
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *PredictionUpdateOne) SetJobID(v uuid.UUID) *PredictionUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *PredictionUpdateOne) SetNillableJobID(v *uuid.UUID) *PredictionUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// ClearJobID clears the value of the "job_id" field.
func (_u *PredictionUpdateOne) ClearJobID() *PredictionUpdateOne {
	_u.mutation.ClearJobID()
	return _u
}

// SetProbability sets the "probability" field.
func (_u *PredictionUpdateOne) SetProbability(v float64) *PredictionUpdateOne {
	_u.mutation.ResetProbability()
	_u.mutation.SetProbability(v)
	return _u
}

// SetNillableProbability sets the "probability" field if the given value is not nil.
func (_u *PredictionUpdateOne) SetNillableProbability(v *float64) *PredictionUpdateOne {
	if v != nil {
		_u.SetProbability(*v)
	}
	return _u
}

// AddProbability adds value to the "probability" field.
func (_u *PredictionUpdateOne) AddProbability(v float64) *PredictionUpdateOne {
	_u.mutation.AddProbability(v)
	return _u
}

// SetClassification sets the "classification" field.
func (_u *PredictionUpdateOne) SetClassification(v string) *PredictionUpdateOne {
	_u.mutation.SetClassification(v)
	return _u
}

// SetNillableClassification sets the "classification" field if the given value is not nil.
func (_u *PredictionUpdateOne) SetNillableClassification(v *string) *PredictionUpdateOne {
	if v != nil {
		_u.SetClassification(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *PredictionUpdateOne) SetConfidence(v float64) *PredictionUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *PredictionUpdateOne) SetNillableConfidence(v *float64) *PredictionUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *PredictionUpdateOne) AddConfidence(v float64) *PredictionUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PredictionUpdateOne) SetUpdatedAt(v time.Time) *PredictionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompany sets the "company" edge to the Company entity.
func (_u *PredictionUpdateOne) SetCompany(v *Company) *PredictionUpdateOne {
	return _u.SetCompanyID(v.ID)
}

// Mutation returns the PredictionMutation object of the builder.
func (_u *PredictionUpdateOne) Mutation() *PredictionMutation {
	return _u.mutation
}

// ClearCompany clears the "company" edge to the Company entity.
func (_u *PredictionUpdateOne) ClearCompany() *PredictionUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// Where appends a list predicates to the PredictionUpdate builder.
func (_u *PredictionUpdateOne) Where(ps ...predicate.Prediction) *PredictionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PredictionUpdateOne) Select(field string, fields ...string) *PredictionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prediction entity.
func (_u *PredictionUpdateOne) Save(ctx context.Context) (*Prediction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PredictionUpdateOne) SaveX(ctx context.Context) *Prediction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PredictionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PredictionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PredictionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prediction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PredictionUpdateOne) check() error {
	if v, ok := _u.mutation.Period(); ok {
		if err := prediction.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "Prediction.period": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeKey(); ok {
		if err := prediction.ScopeKeyValidator(v); err != nil {
			return &ValidationError{Name: "scope_key", err: fmt.Errorf(`ent: validator failed for field "Prediction.scope_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Classification(); ok {
		if err := prediction.ClassificationValidator(v); err != nil {
			return &ValidationError{Name: "classification", err: fmt.Errorf(`ent: validator failed for field "Prediction.classification": %w`, err)}
		}
	}
	if _u.mutation.CompanyCleared() && len(_u.mutation.CompanyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Prediction.company"`)
	}
	return nil
}

func (_u *PredictionUpdateOne) sqlSave(ctx context.Context) (_node *Prediction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prediction.Table, prediction.Columns, sqlgraph.NewFieldSpec(prediction.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Prediction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prediction.FieldID)
		for _, f := range fields {
			if !prediction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prediction.FieldID {
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
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(prediction.FieldPeriod, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeKey(); ok {
		_spec.SetField(prediction.FieldScopeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.JobID(); ok {
		_spec.SetField(prediction.FieldJobID, field.TypeUUID, value)
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(prediction.FieldJobID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Probability(); ok {
		_spec.SetField(prediction.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbability(); ok {
		_spec.AddField(prediction.FieldProbability, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Classification(); ok {
		_spec.SetField(prediction.FieldClassification, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(prediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(prediction.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prediction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CompanyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CompanyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Prediction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prediction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
