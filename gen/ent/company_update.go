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
	"github.com/openfinml/riskscore/gen/ent/company"
	"github.com/openfinml/riskscore/gen/ent/predicate"
	"github.com/openfinml/riskscore/gen/ent/prediction"
)

// CompanyUpdate is the builder for updating Company entities.
type CompanyUpdate struct {
	config
	hooks    []Hook
	mutation *CompanyMutation
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdate) Where(ps ...predicate.Company) *CompanyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSymbol sets the "symbol" field.
func (_u *CompanyUpdate) SetSymbol(v string) *CompanyUpdate {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableSymbol(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyUpdate) SetName(v string) *CompanyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableName(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetScopeTier sets the "scope_tier" field.
func (_u *CompanyUpdate) SetScopeTier(v string) *CompanyUpdate {
	_u.mutation.SetScopeTier(v)
	return _u
}

// SetNillableScopeTier sets the "scope_tier" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableScopeTier(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetScopeTier(*v)
	}
	return _u
}

// SetScopeKey sets the "scope_key" field.
func (_u *CompanyUpdate) SetScopeKey(v string) *CompanyUpdate {
	_u.mutation.SetScopeKey(v)
	return _u
}

// SetNillableScopeKey sets the "scope_key" field if the given value is not nil.
func (_u *CompanyUpdate) SetNillableScopeKey(v *string) *CompanyUpdate {
	if v != nil {
		_u.SetScopeKey(*v)
	}
	return _u
}

// AddPredictionIDs adds the "predictions" edge to the Prediction entity by IDs.
func (_u *CompanyUpdate) AddPredictionIDs(ids ...uuid.UUID) *CompanyUpdate {
	_u.mutation.AddPredictionIDs(ids...)
	return _u
}

// AddPredictions adds the "predictions" edges to the Prediction entity.
func (_u *CompanyUpdate) AddPredictions(v ...*Prediction) *CompanyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPredictionIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdate) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearPredictions clears all "predictions" edges to the Prediction entity.
func (_u *CompanyUpdate) ClearPredictions() *CompanyUpdate {
	_u.mutation.ClearPredictions()
	return _u
}

// RemovePredictionIDs removes the "predictions" edge to Prediction entities by IDs.
func (_u *CompanyUpdate) RemovePredictionIDs(ids ...uuid.UUID) *CompanyUpdate {
	_u.mutation.RemovePredictionIDs(ids...)
	return _u
}

// RemovePredictions removes "predictions" edges to Prediction entities.
func (_u *CompanyUpdate) RemovePredictions(v ...*Prediction) *CompanyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePredictionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompanyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompanyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyUpdate) check() error {
	if v, ok := _u.mutation.Symbol(); ok {
		if err := company.SymbolValidator(v); err != nil {
			return &ValidationError{Name: "symbol", err: fmt.Errorf(`ent: validator failed for field "Company.symbol": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeTier(); ok {
		if err := company.ScopeTierValidator(v); err != nil {
			return &ValidationError{Name: "scope_tier", err: fmt.Errorf(`ent: validator failed for field "Company.scope_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeKey(); ok {
		if err := company.ScopeKeyValidator(v); err != nil {
			return &ValidationError{Name: "scope_key", err: fmt.Errorf(`ent: validator failed for field "Company.scope_key": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(company.FieldSymbol, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeTier(); ok {
		_spec.SetField(company.FieldScopeTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeKey(); ok {
		_spec.SetField(company.FieldScopeKey, field.TypeString, value)
	}
	if _u.mutation.PredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.PredictionsTable,
			Columns: []string{company.PredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prediction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPredictionsIDs(); len(nodes) > 0 && !_u.mutation.PredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.PredictionsTable,
			Columns: []string{company.PredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prediction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PredictionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.PredictionsTable,
			Columns: []string{company.PredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prediction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompanyUpdateOne is the builder for updating a single Company entity.
type CompanyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompanyMutation
}

// SetSymbol sets the "symbol" field.
func (_u *CompanyUpdateOne) SetSymbol(v string) *CompanyUpdateOne {
	_u.mutation.SetSymbol(v)
	return _u
}

// SetNillableSymbol sets the "symbol" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableSymbol(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetSymbol(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *CompanyUpdateOne) SetName(v string) *CompanyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableName(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetScopeTier sets the "scope_tier" field.
func (_u *CompanyUpdateOne) SetScopeTier(v string) *CompanyUpdateOne {
	_u.mutation.SetScopeTier(v)
	return _u
}

// SetNillableScopeTier sets the "scope_tier" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableScopeTier(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetScopeTier(*v)
	}
	return _u
}

// SetScopeKey sets the "scope_key" field.
func (_u *CompanyUpdateOne) SetScopeKey(v string) *CompanyUpdateOne {
	_u.mutation.SetScopeKey(v)
	return _u
}

// SetNillableScopeKey sets the "scope_key" field if the given value is not nil.
func (_u *CompanyUpdateOne) SetNillableScopeKey(v *string) *CompanyUpdateOne {
	if v != nil {
		_u.SetScopeKey(*v)
	}
	return _u
}

// AddPredictionIDs adds the "predictions" edge to the Prediction entity by IDs.
func (_u *CompanyUpdateOne) AddPredictionIDs(ids ...uuid.UUID) *CompanyUpdateOne {
	_u.mutation.AddPredictionIDs(ids...)
	return _u
}

// AddPredictions adds the "predictions" edges to the Prediction entity.
func (_u *CompanyUpdateOne) AddPredictions(v ...*Prediction) *CompanyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPredictionIDs(ids...)
}

// Mutation returns the CompanyMutation object of the builder.
func (_u *CompanyUpdateOne) Mutation() *CompanyMutation {
	return _u.mutation
}

// ClearPredictions clears all "predictions" edges to the Prediction entity.
func (_u *CompanyUpdateOne) ClearPredictions() *CompanyUpdateOne {
	_u.mutation.ClearPredictions()
	return _u
}

// RemovePredictionIDs removes the "predictions" edge to Prediction entities by IDs.
func (_u *CompanyUpdateOne) RemovePredictionIDs(ids ...uuid.UUID) *CompanyUpdateOne {
	_u.mutation.RemovePredictionIDs(ids...)
	return _u
}

// RemovePredictions removes "predictions" edges to Prediction entities.
func (_u *CompanyUpdateOne) RemovePredictions(v ...*Prediction) *CompanyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePredictionIDs(ids...)
}

// Where appends a list predicates to the CompanyUpdate builder.
func (_u *CompanyUpdateOne) Where(ps ...predicate.Company) *CompanyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompanyUpdateOne) Select(field string, fields ...string) *CompanyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Company entity.
func (_u *CompanyUpdateOne) Save(ctx context.Context) (*Company, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompanyUpdateOne) SaveX(ctx context.Context) *Company {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompanyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompanyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompanyUpdateOne) check() error {
	if v, ok := _u.mutation.Symbol(); ok {
		if err := company.SymbolValidator(v); err != nil {
			return &ValidationError{Name: "symbol", err: fmt.Errorf(`ent: validator failed for field "Company.symbol": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeTier(); ok {
		if err := company.ScopeTierValidator(v); err != nil {
			return &ValidationError{Name: "scope_tier", err: fmt.Errorf(`ent: validator failed for field "Company.scope_tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScopeKey(); ok {
		if err := company.ScopeKeyValidator(v); err != nil {
			return &ValidationError{Name: "scope_key", err: fmt.Errorf(`ent: validator failed for field "Company.scope_key": %w`, err)}
		}
	}
	return nil
}

func (_u *CompanyUpdateOne) sqlSave(ctx context.Context) (_node *Company, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(company.Table, company.Columns, sqlgraph.NewFieldSpec(company.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Company.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, company.FieldID)
		for _, f := range fields {
			if !company.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != company.FieldID {
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
	if value, ok := _u.mutation.Symbol(); ok {
		_spec.SetField(company.FieldSymbol, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(company.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeTier(); ok {
		_spec.SetField(company.FieldScopeTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScopeKey(); ok {
		_spec.SetField(company.FieldScopeKey, field.TypeString, value)
	}
	if _u.mutation.PredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.PredictionsTable,
			Columns: []string{company.PredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prediction.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPredictionsIDs(); len(nodes) > 0 && !_u.mutation.PredictionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.PredictionsTable,
			Columns: []string{company.PredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prediction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PredictionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   company.PredictionsTable,
			Columns: []string{company.PredictionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prediction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Company{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{company.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
