// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/company"
	"github.com/openfinml/riskscore/gen/ent/jobrow"
	"github.com/openfinml/riskscore/gen/ent/jobrowoutcome"
	"github.com/openfinml/riskscore/gen/ent/predicate"
	"github.com/openfinml/riskscore/gen/ent/prediction"
	"github.com/openfinml/riskscore/gen/ent/scorejob"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCompany       = "Company"
	TypeJobRow        = "JobRow"
	TypeJobRowOutcome = "JobRowOutcome"
	TypePrediction    = "Prediction"
	TypeScoreJob      = "ScoreJob"
)

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	symbol             *string
	name               *string
	scope_tier         *string
	scope_key          *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	predictions        map[uuid.UUID]struct{}
	removedpredictions map[uuid.UUID]struct{}
	clearedpredictions bool
	done               bool
	oldValue           func(context.Context) (*Company, error)
	predicates         []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id uuid.UUID) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSymbol sets the "symbol" field.
func (m *CompanyMutation) SetSymbol(s string) {
	m.symbol = &s
}

// Symbol returns the value of the "symbol" field in the mutation.
func (m *CompanyMutation) Symbol() (r string, exists bool) {
	v := m.symbol
	if v == nil {
		return
	}
	return *v, true
}

// OldSymbol returns the old "symbol" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldSymbol(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymbol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymbol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymbol: %w", err)
	}
	return oldValue.Symbol, nil
}

// ResetSymbol resets all changes to the "symbol" field.
func (m *CompanyMutation) ResetSymbol() {
	m.symbol = nil
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetScopeTier sets the "scope_tier" field.
func (m *CompanyMutation) SetScopeTier(s string) {
	m.scope_tier = &s
}

// ScopeTier returns the value of the "scope_tier" field in the mutation.
func (m *CompanyMutation) ScopeTier() (r string, exists bool) {
	v := m.scope_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeTier returns the old "scope_tier" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldScopeTier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeTier: %w", err)
	}
	return oldValue.ScopeTier, nil
}

// ResetScopeTier resets all changes to the "scope_tier" field.
func (m *CompanyMutation) ResetScopeTier() {
	m.scope_tier = nil
}

// SetScopeKey sets the "scope_key" field.
func (m *CompanyMutation) SetScopeKey(s string) {
	m.scope_key = &s
}

// ScopeKey returns the value of the "scope_key" field in the mutation.
func (m *CompanyMutation) ScopeKey() (r string, exists bool) {
	v := m.scope_key
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeKey returns the old "scope_key" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldScopeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeKey: %w", err)
	}
	return oldValue.ScopeKey, nil
}

// ResetScopeKey resets all changes to the "scope_key" field.
func (m *CompanyMutation) ResetScopeKey() {
	m.scope_key = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddPredictionIDs adds the "predictions" edge to the Prediction entity by ids.
func (m *CompanyMutation) AddPredictionIDs(ids ...uuid.UUID) {
	if m.predictions == nil {
		m.predictions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.predictions[ids[i]] = struct{}{}
	}
}

// ClearPredictions clears the "predictions" edge to the Prediction entity.
func (m *CompanyMutation) ClearPredictions() {
	m.clearedpredictions = true
}

// PredictionsCleared reports if the "predictions" edge to the Prediction entity was cleared.
func (m *CompanyMutation) PredictionsCleared() bool {
	return m.clearedpredictions
}

// RemovePredictionIDs removes the "predictions" edge to the Prediction entity by IDs.
func (m *CompanyMutation) RemovePredictionIDs(ids ...uuid.UUID) {
	if m.removedpredictions == nil {
		m.removedpredictions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.predictions, ids[i])
		m.removedpredictions[ids[i]] = struct{}{}
	}
}

// RemovedPredictions returns the removed IDs of the "predictions" edge to the Prediction entity.
func (m *CompanyMutation) RemovedPredictionsIDs() (ids []uuid.UUID) {
	for id := range m.removedpredictions {
		ids = append(ids, id)
	}
	return
}

// PredictionsIDs returns the "predictions" edge IDs in the mutation.
func (m *CompanyMutation) PredictionsIDs() (ids []uuid.UUID) {
	for id := range m.predictions {
		ids = append(ids, id)
	}
	return
}

// ResetPredictions resets all changes to the "predictions" edge.
func (m *CompanyMutation) ResetPredictions() {
	m.predictions = nil
	m.clearedpredictions = false
	m.removedpredictions = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.symbol != nil {
		fields = append(fields, company.FieldSymbol)
	}
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.scope_tier != nil {
		fields = append(fields, company.FieldScopeTier)
	}
	if m.scope_key != nil {
		fields = append(fields, company.FieldScopeKey)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldSymbol:
		return m.Symbol()
	case company.FieldName:
		return m.Name()
	case company.FieldScopeTier:
		return m.ScopeTier()
	case company.FieldScopeKey:
		return m.ScopeKey()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldSymbol:
		return m.OldSymbol(ctx)
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldScopeTier:
		return m.OldScopeTier(ctx)
	case company.FieldScopeKey:
		return m.OldScopeKey(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldSymbol:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymbol(v)
		return nil
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldScopeTier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeTier(v)
		return nil
	case company.FieldScopeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeKey(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldSymbol:
		m.ResetSymbol()
		return nil
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldScopeTier:
		m.ResetScopeTier()
		return nil
	case company.FieldScopeKey:
		m.ResetScopeKey()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.predictions != nil {
		edges = append(edges, company.EdgePredictions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgePredictions:
		ids := make([]ent.Value, 0, len(m.predictions))
		for id := range m.predictions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedpredictions != nil {
		edges = append(edges, company.EdgePredictions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgePredictions:
		ids := make([]ent.Value, 0, len(m.removedpredictions))
		for id := range m.removedpredictions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpredictions {
		edges = append(edges, company.EdgePredictions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgePredictions:
		return m.clearedpredictions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgePredictions:
		m.ResetPredictions()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}

// JobRowMutation represents an operation that mutates the JobRow nodes in the graph.
type JobRowMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	row_index     *int
	addrow_index  *int
	symbol        *string
	period        *string
	ratios        *json.RawMessage
	appendratios  json.RawMessage
	clearedFields map[string]struct{}
	job           *uuid.UUID
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*JobRow, error)
	predicates    []predicate.JobRow
}

var _ ent.Mutation = (*JobRowMutation)(nil)

// jobrowOption allows management of the mutation configuration using functional options.
type jobrowOption func(*JobRowMutation)

// newJobRowMutation creates new mutation for the JobRow entity.
func newJobRowMutation(c config, op Op, opts ...jobrowOption) *JobRowMutation {
	m := &JobRowMutation{
		config:        c,
		op:            op,
		typ:           TypeJobRow,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobRowID sets the ID field of the mutation.
func withJobRowID(id uuid.UUID) jobrowOption {
	return func(m *JobRowMutation) {
		var (
			err   error
			once  sync.Once
			value *JobRow
		)
		m.oldValue = func(ctx context.Context) (*JobRow, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobRow.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobRow sets the old JobRow of the mutation.
func withJobRow(node *JobRow) jobrowOption {
	return func(m *JobRowMutation) {
		m.oldValue = func(context.Context) (*JobRow, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobRowMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobRowMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobRow entities.
func (m *JobRowMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobRowMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobRowMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobRow.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobRowMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobRowMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobRow entity.
// If the JobRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRowMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobRowMutation) ResetJobID() {
	m.job = nil
}

// SetRowIndex sets the "row_index" field.
func (m *JobRowMutation) SetRowIndex(i int) {
	m.row_index = &i
	m.addrow_index = nil
}

// RowIndex returns the value of the "row_index" field in the mutation.
func (m *JobRowMutation) RowIndex() (r int, exists bool) {
	v := m.row_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRowIndex returns the old "row_index" field's value of the JobRow entity.
// If the JobRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRowMutation) OldRowIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowIndex: %w", err)
	}
	return oldValue.RowIndex, nil
}

// AddRowIndex adds i to the "row_index" field.
func (m *JobRowMutation) AddRowIndex(i int) {
	if m.addrow_index != nil {
		*m.addrow_index += i
	} else {
		m.addrow_index = &i
	}
}

// AddedRowIndex returns the value that was added to the "row_index" field in this mutation.
func (m *JobRowMutation) AddedRowIndex() (r int, exists bool) {
	v := m.addrow_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowIndex resets all changes to the "row_index" field.
func (m *JobRowMutation) ResetRowIndex() {
	m.row_index = nil
	m.addrow_index = nil
}

// SetSymbol sets the "symbol" field.
func (m *JobRowMutation) SetSymbol(s string) {
	m.symbol = &s
}

// Symbol returns the value of the "symbol" field in the mutation.
func (m *JobRowMutation) Symbol() (r string, exists bool) {
	v := m.symbol
	if v == nil {
		return
	}
	return *v, true
}

// OldSymbol returns the old "symbol" field's value of the JobRow entity.
// If the JobRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRowMutation) OldSymbol(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymbol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymbol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymbol: %w", err)
	}
	return oldValue.Symbol, nil
}

// ResetSymbol resets all changes to the "symbol" field.
func (m *JobRowMutation) ResetSymbol() {
	m.symbol = nil
}

// SetPeriod sets the "period" field.
func (m *JobRowMutation) SetPeriod(s string) {
	m.period = &s
}

// Period returns the value of the "period" field in the mutation.
func (m *JobRowMutation) Period() (r string, exists bool) {
	v := m.period
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriod returns the old "period" field's value of the JobRow entity.
// If the JobRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRowMutation) OldPeriod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriod: %w", err)
	}
	return oldValue.Period, nil
}

// ResetPeriod resets all changes to the "period" field.
func (m *JobRowMutation) ResetPeriod() {
	m.period = nil
}

// SetRatios sets the "ratios" field.
func (m *JobRowMutation) SetRatios(jm json.RawMessage) {
	m.ratios = &jm
	m.appendratios = nil
}

// Ratios returns the value of the "ratios" field in the mutation.
func (m *JobRowMutation) Ratios() (r json.RawMessage, exists bool) {
	v := m.ratios
	if v == nil {
		return
	}
	return *v, true
}

// OldRatios returns the old "ratios" field's value of the JobRow entity.
// If the JobRow object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRowMutation) OldRatios(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRatios is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRatios requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRatios: %w", err)
	}
	return oldValue.Ratios, nil
}

// AppendRatios adds jm to the "ratios" field.
func (m *JobRowMutation) AppendRatios(jm json.RawMessage) {
	m.appendratios = append(m.appendratios, jm...)
}

// AppendedRatios returns the list of values that were appended to the "ratios" field in this mutation.
func (m *JobRowMutation) AppendedRatios() (json.RawMessage, bool) {
	if len(m.appendratios) == 0 {
		return nil, false
	}
	return m.appendratios, true
}

// ResetRatios resets all changes to the "ratios" field.
func (m *JobRowMutation) ResetRatios() {
	m.ratios = nil
	m.appendratios = nil
}

// ClearJob clears the "job" edge to the ScoreJob entity.
func (m *JobRowMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobrow.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ScoreJob entity was cleared.
func (m *JobRowMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobRowMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobRowMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobRowMutation builder.
func (m *JobRowMutation) Where(ps ...predicate.JobRow) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobRowMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobRowMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobRow, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobRowMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobRowMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobRow).
func (m *JobRowMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobRowMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.job != nil {
		fields = append(fields, jobrow.FieldJobID)
	}
	if m.row_index != nil {
		fields = append(fields, jobrow.FieldRowIndex)
	}
	if m.symbol != nil {
		fields = append(fields, jobrow.FieldSymbol)
	}
	if m.period != nil {
		fields = append(fields, jobrow.FieldPeriod)
	}
	if m.ratios != nil {
		fields = append(fields, jobrow.FieldRatios)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobRowMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobrow.FieldJobID:
		return m.JobID()
	case jobrow.FieldRowIndex:
		return m.RowIndex()
	case jobrow.FieldSymbol:
		return m.Symbol()
	case jobrow.FieldPeriod:
		return m.Period()
	case jobrow.FieldRatios:
		return m.Ratios()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobRowMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobrow.FieldJobID:
		return m.OldJobID(ctx)
	case jobrow.FieldRowIndex:
		return m.OldRowIndex(ctx)
	case jobrow.FieldSymbol:
		return m.OldSymbol(ctx)
	case jobrow.FieldPeriod:
		return m.OldPeriod(ctx)
	case jobrow.FieldRatios:
		return m.OldRatios(ctx)
	}
	return nil, fmt.Errorf("unknown JobRow field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobRowMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobrow.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobrow.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowIndex(v)
		return nil
	case jobrow.FieldSymbol:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymbol(v)
		return nil
	case jobrow.FieldPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriod(v)
		return nil
	case jobrow.FieldRatios:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRatios(v)
		return nil
	}
	return fmt.Errorf("unknown JobRow field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobRowMutation) AddedFields() []string {
	var fields []string
	if m.addrow_index != nil {
		fields = append(fields, jobrow.FieldRowIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobRowMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobrow.FieldRowIndex:
		return m.AddedRowIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobRowMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobrow.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowIndex(v)
		return nil
	}
	return fmt.Errorf("unknown JobRow numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobRowMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobRowMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobRowMutation) ClearField(name string) error {
	return fmt.Errorf("unknown JobRow nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobRowMutation) ResetField(name string) error {
	switch name {
	case jobrow.FieldJobID:
		m.ResetJobID()
		return nil
	case jobrow.FieldRowIndex:
		m.ResetRowIndex()
		return nil
	case jobrow.FieldSymbol:
		m.ResetSymbol()
		return nil
	case jobrow.FieldPeriod:
		m.ResetPeriod()
		return nil
	case jobrow.FieldRatios:
		m.ResetRatios()
		return nil
	}
	return fmt.Errorf("unknown JobRow field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobRowMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, jobrow.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobRowMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobrow.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobRowMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobRowMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobRowMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, jobrow.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobRowMutation) EdgeCleared(name string) bool {
	switch name {
	case jobrow.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobRowMutation) ClearEdge(name string) error {
	switch name {
	case jobrow.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobRow unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobRowMutation) ResetEdge(name string) error {
	switch name {
	case jobrow.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobRow edge %s", name)
}

// JobRowOutcomeMutation represents an operation that mutates the JobRowOutcome nodes in the graph.
type JobRowOutcomeMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	row_index     *int
	addrow_index  *int
	ok            *bool
	symbol        *string
	message       *string
	clearedFields map[string]struct{}
	job           *uuid.UUID
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*JobRowOutcome, error)
	predicates    []predicate.JobRowOutcome
}

var _ ent.Mutation = (*JobRowOutcomeMutation)(nil)

// jobrowoutcomeOption allows management of the mutation configuration using functional options.
type jobrowoutcomeOption func(*JobRowOutcomeMutation)

// newJobRowOutcomeMutation creates new mutation for the JobRowOutcome entity.
func newJobRowOutcomeMutation(c config, op Op, opts ...jobrowoutcomeOption) *JobRowOutcomeMutation {
	m := &JobRowOutcomeMutation{
		config:        c,
		op:            op,
		typ:           TypeJobRowOutcome,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobRowOutcomeID sets the ID field of the mutation.
func withJobRowOutcomeID(id uuid.UUID) jobrowoutcomeOption {
	return func(m *JobRowOutcomeMutation) {
		var (
			err   error
			once  sync.Once
			value *JobRowOutcome
		)
		m.oldValue = func(ctx context.Context) (*JobRowOutcome, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobRowOutcome.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobRowOutcome sets the old JobRowOutcome of the mutation.
func withJobRowOutcome(node *JobRowOutcome) jobrowoutcomeOption {
	return func(m *JobRowOutcomeMutation) {
		m.oldValue = func(context.Context) (*JobRowOutcome, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobRowOutcomeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobRowOutcomeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobRowOutcome entities.
func (m *JobRowOutcomeMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobRowOutcomeMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobRowOutcomeMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobRowOutcome.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobRowOutcomeMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobRowOutcomeMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobRowOutcome entity.
// If the JobRowOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRowOutcomeMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobRowOutcomeMutation) ResetJobID() {
	m.job = nil
}

// SetRowIndex sets the "row_index" field.
func (m *JobRowOutcomeMutation) SetRowIndex(i int) {
	m.row_index = &i
	m.addrow_index = nil
}

// RowIndex returns the value of the "row_index" field in the mutation.
func (m *JobRowOutcomeMutation) RowIndex() (r int, exists bool) {
	v := m.row_index
	if v == nil {
		return
	}
	return *v, true
}

// OldRowIndex returns the old "row_index" field's value of the JobRowOutcome entity.
// If the JobRowOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRowOutcomeMutation) OldRowIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRowIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRowIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRowIndex: %w", err)
	}
	return oldValue.RowIndex, nil
}

// AddRowIndex adds i to the "row_index" field.
func (m *JobRowOutcomeMutation) AddRowIndex(i int) {
	if m.addrow_index != nil {
		*m.addrow_index += i
	} else {
		m.addrow_index = &i
	}
}

// AddedRowIndex returns the value that was added to the "row_index" field in this mutation.
func (m *JobRowOutcomeMutation) AddedRowIndex() (r int, exists bool) {
	v := m.addrow_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetRowIndex resets all changes to the "row_index" field.
func (m *JobRowOutcomeMutation) ResetRowIndex() {
	m.row_index = nil
	m.addrow_index = nil
}

// SetOk sets the "ok" field.
func (m *JobRowOutcomeMutation) SetOk(b bool) {
	m.ok = &b
}

// Ok returns the value of the "ok" field in the mutation.
func (m *JobRowOutcomeMutation) Ok() (r bool, exists bool) {
	v := m.ok
	if v == nil {
		return
	}
	return *v, true
}

// OldOk returns the old "ok" field's value of the JobRowOutcome entity.
// If the JobRowOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRowOutcomeMutation) OldOk(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOk: %w", err)
	}
	return oldValue.Ok, nil
}

// ResetOk resets all changes to the "ok" field.
func (m *JobRowOutcomeMutation) ResetOk() {
	m.ok = nil
}

// SetSymbol sets the "symbol" field.
func (m *JobRowOutcomeMutation) SetSymbol(s string) {
	m.symbol = &s
}

// Symbol returns the value of the "symbol" field in the mutation.
func (m *JobRowOutcomeMutation) Symbol() (r string, exists bool) {
	v := m.symbol
	if v == nil {
		return
	}
	return *v, true
}

// OldSymbol returns the old "symbol" field's value of the JobRowOutcome entity.
// If the JobRowOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRowOutcomeMutation) OldSymbol(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymbol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymbol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymbol: %w", err)
	}
	return oldValue.Symbol, nil
}

// ResetSymbol resets all changes to the "symbol" field.
func (m *JobRowOutcomeMutation) ResetSymbol() {
	m.symbol = nil
}

// SetMessage sets the "message" field.
func (m *JobRowOutcomeMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *JobRowOutcomeMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the JobRowOutcome entity.
// If the JobRowOutcome object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRowOutcomeMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *JobRowOutcomeMutation) ResetMessage() {
	m.message = nil
}

// ClearJob clears the "job" edge to the ScoreJob entity.
func (m *JobRowOutcomeMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobrowoutcome.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the ScoreJob entity was cleared.
func (m *JobRowOutcomeMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobRowOutcomeMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobRowOutcomeMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobRowOutcomeMutation builder.
func (m *JobRowOutcomeMutation) Where(ps ...predicate.JobRowOutcome) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobRowOutcomeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobRowOutcomeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobRowOutcome, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobRowOutcomeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobRowOutcomeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobRowOutcome).
func (m *JobRowOutcomeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobRowOutcomeMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.job != nil {
		fields = append(fields, jobrowoutcome.FieldJobID)
	}
	if m.row_index != nil {
		fields = append(fields, jobrowoutcome.FieldRowIndex)
	}
	if m.ok != nil {
		fields = append(fields, jobrowoutcome.FieldOk)
	}
	if m.symbol != nil {
		fields = append(fields, jobrowoutcome.FieldSymbol)
	}
	if m.message != nil {
		fields = append(fields, jobrowoutcome.FieldMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobRowOutcomeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobrowoutcome.FieldJobID:
		return m.JobID()
	case jobrowoutcome.FieldRowIndex:
		return m.RowIndex()
	case jobrowoutcome.FieldOk:
		return m.Ok()
	case jobrowoutcome.FieldSymbol:
		return m.Symbol()
	case jobrowoutcome.FieldMessage:
		return m.Message()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobRowOutcomeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobrowoutcome.FieldJobID:
		return m.OldJobID(ctx)
	case jobrowoutcome.FieldRowIndex:
		return m.OldRowIndex(ctx)
	case jobrowoutcome.FieldOk:
		return m.OldOk(ctx)
	case jobrowoutcome.FieldSymbol:
		return m.OldSymbol(ctx)
	case jobrowoutcome.FieldMessage:
		return m.OldMessage(ctx)
	}
	return nil, fmt.Errorf("unknown JobRowOutcome field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobRowOutcomeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobrowoutcome.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobrowoutcome.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRowIndex(v)
		return nil
	case jobrowoutcome.FieldOk:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOk(v)
		return nil
	case jobrowoutcome.FieldSymbol:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymbol(v)
		return nil
	case jobrowoutcome.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	}
	return fmt.Errorf("unknown JobRowOutcome field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobRowOutcomeMutation) AddedFields() []string {
	var fields []string
	if m.addrow_index != nil {
		fields = append(fields, jobrowoutcome.FieldRowIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobRowOutcomeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobrowoutcome.FieldRowIndex:
		return m.AddedRowIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobRowOutcomeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobrowoutcome.FieldRowIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRowIndex(v)
		return nil
	}
	return fmt.Errorf("unknown JobRowOutcome numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobRowOutcomeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobRowOutcomeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobRowOutcomeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown JobRowOutcome nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobRowOutcomeMutation) ResetField(name string) error {
	switch name {
	case jobrowoutcome.FieldJobID:
		m.ResetJobID()
		return nil
	case jobrowoutcome.FieldRowIndex:
		m.ResetRowIndex()
		return nil
	case jobrowoutcome.FieldOk:
		m.ResetOk()
		return nil
	case jobrowoutcome.FieldSymbol:
		m.ResetSymbol()
		return nil
	case jobrowoutcome.FieldMessage:
		m.ResetMessage()
		return nil
	}
	return fmt.Errorf("unknown JobRowOutcome field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobRowOutcomeMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, jobrowoutcome.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobRowOutcomeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobrowoutcome.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobRowOutcomeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobRowOutcomeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobRowOutcomeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, jobrowoutcome.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobRowOutcomeMutation) EdgeCleared(name string) bool {
	switch name {
	case jobrowoutcome.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobRowOutcomeMutation) ClearEdge(name string) error {
	switch name {
	case jobrowoutcome.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobRowOutcome unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobRowOutcomeMutation) ResetEdge(name string) error {
	switch name {
	case jobrowoutcome.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobRowOutcome edge %s", name)
}

// PredictionMutation represents an operation that mutates the Prediction nodes in the graph.
type PredictionMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	period         *string
	scope_key      *string
	job_id         *uuid.UUID
	probability    *float64
	addprobability *float64
	classification *string
	confidence     *float64
	addconfidence  *float64
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	company        *uuid.UUID
	clearedcompany bool
	done           bool
	oldValue       func(context.Context) (*Prediction, error)
	predicates     []predicate.Prediction
}

var _ ent.Mutation = (*PredictionMutation)(nil)

// predictionOption allows management of the mutation configuration using functional options.
type predictionOption func(*PredictionMutation)

// newPredictionMutation creates new mutation for the Prediction entity.
func newPredictionMutation(c config, op Op, opts ...predictionOption) *PredictionMutation {
	m := &PredictionMutation{
		config:        c,
		op:            op,
		typ:           TypePrediction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPredictionID sets the ID field of the mutation.
func withPredictionID(id uuid.UUID) predictionOption {
	return func(m *PredictionMutation) {
		var (
			err   error
			once  sync.Once
			value *Prediction
		)
		m.oldValue = func(ctx context.Context) (*Prediction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prediction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrediction sets the old Prediction of the mutation.
func withPrediction(node *Prediction) predictionOption {
	return func(m *PredictionMutation) {
		m.oldValue = func(context.Context) (*Prediction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PredictionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PredictionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Prediction entities.
func (m *PredictionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PredictionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PredictionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prediction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *PredictionMutation) SetCompanyID(u uuid.UUID) {
	m.company = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *PredictionMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Prediction entity.
// If the Prediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *PredictionMutation) ResetCompanyID() {
	m.company = nil
}

// SetPeriod sets the "period" field.
func (m *PredictionMutation) SetPeriod(s string) {
	m.period = &s
}

// Period returns the value of the "period" field in the mutation.
func (m *PredictionMutation) Period() (r string, exists bool) {
	v := m.period
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriod returns the old "period" field's value of the Prediction entity.
// If the Prediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionMutation) OldPeriod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriod: %w", err)
	}
	return oldValue.Period, nil
}

// ResetPeriod resets all changes to the "period" field.
func (m *PredictionMutation) ResetPeriod() {
	m.period = nil
}

// SetScopeKey sets the "scope_key" field.
func (m *PredictionMutation) SetScopeKey(s string) {
	m.scope_key = &s
}

// ScopeKey returns the value of the "scope_key" field in the mutation.
func (m *PredictionMutation) ScopeKey() (r string, exists bool) {
	v := m.scope_key
	if v == nil {
		return
	}
	return *v, true
}

// OldScopeKey returns the old "scope_key" field's value of the Prediction entity.
// If the Prediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionMutation) OldScopeKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScopeKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScopeKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScopeKey: %w", err)
	}
	return oldValue.ScopeKey, nil
}

// ResetScopeKey resets all changes to the "scope_key" field.
func (m *PredictionMutation) ResetScopeKey() {
	m.scope_key = nil
}

// SetJobID sets the "job_id" field.
func (m *PredictionMutation) SetJobID(u uuid.UUID) {
	m.job_id = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *PredictionMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Prediction entity.
// If the Prediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionMutation) OldJobID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *PredictionMutation) ClearJobID() {
	m.job_id = nil
	m.clearedFields[prediction.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *PredictionMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[prediction.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *PredictionMutation) ResetJobID() {
	m.job_id = nil
	delete(m.clearedFields, prediction.FieldJobID)
}

// SetProbability sets the "probability" field.
func (m *PredictionMutation) SetProbability(f float64) {
	m.probability = &f
	m.addprobability = nil
}

// Probability returns the value of the "probability" field in the mutation.
func (m *PredictionMutation) Probability() (r float64, exists bool) {
	v := m.probability
	if v == nil {
		return
	}
	return *v, true
}

// OldProbability returns the old "probability" field's value of the Prediction entity.
// If the Prediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionMutation) OldProbability(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProbability is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProbability requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProbability: %w", err)
	}
	return oldValue.Probability, nil
}

// AddProbability adds f to the "probability" field.
func (m *PredictionMutation) AddProbability(f float64) {
	if m.addprobability != nil {
		*m.addprobability += f
	} else {
		m.addprobability = &f
	}
}

// AddedProbability returns the value that was added to the "probability" field in this mutation.
func (m *PredictionMutation) AddedProbability() (r float64, exists bool) {
	v := m.addprobability
	if v == nil {
		return
	}
	return *v, true
}

// ResetProbability resets all changes to the "probability" field.
func (m *PredictionMutation) ResetProbability() {
	m.probability = nil
	m.addprobability = nil
}

// SetClassification sets the "classification" field.
func (m *PredictionMutation) SetClassification(s string) {
	m.classification = &s
}

// Classification returns the value of the "classification" field in the mutation.
func (m *PredictionMutation) Classification() (r string, exists bool) {
	v := m.classification
	if v == nil {
		return
	}
	return *v, true
}

// OldClassification returns the old "classification" field's value of the Prediction entity.
// If the Prediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionMutation) OldClassification(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassification: %w", err)
	}
	return oldValue.Classification, nil
}

// ResetClassification resets all changes to the "classification" field.
func (m *PredictionMutation) ResetClassification() {
	m.classification = nil
}

// SetConfidence sets the "confidence" field.
func (m *PredictionMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *PredictionMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Prediction entity.
// If the Prediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *PredictionMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *PredictionMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *PredictionMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PredictionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PredictionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prediction entity.
// If the Prediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PredictionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PredictionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PredictionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Prediction entity.
// If the Prediction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PredictionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PredictionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *PredictionMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[prediction.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *PredictionMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *PredictionMutation) CompanyIDs() (ids []uuid.UUID) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *PredictionMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// Where appends a list predicates to the PredictionMutation builder.
func (m *PredictionMutation) Where(ps ...predicate.Prediction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PredictionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PredictionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prediction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PredictionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PredictionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prediction).
func (m *PredictionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PredictionMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.company != nil {
		fields = append(fields, prediction.FieldCompanyID)
	}
	if m.period != nil {
		fields = append(fields, prediction.FieldPeriod)
	}
	if m.scope_key != nil {
		fields = append(fields, prediction.FieldScopeKey)
	}
	if m.job_id != nil {
		fields = append(fields, prediction.FieldJobID)
	}
	if m.probability != nil {
		fields = append(fields, prediction.FieldProbability)
	}
	if m.classification != nil {
		fields = append(fields, prediction.FieldClassification)
	}
	if m.confidence != nil {
		fields = append(fields, prediction.FieldConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, prediction.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prediction.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PredictionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prediction.FieldCompanyID:
		return m.CompanyID()
	case prediction.FieldPeriod:
		return m.Period()
	case prediction.FieldScopeKey:
		return m.ScopeKey()
	case prediction.FieldJobID:
		return m.JobID()
	case prediction.FieldProbability:
		return m.Probability()
	case prediction.FieldClassification:
		return m.Classification()
	case prediction.FieldConfidence:
		return m.Confidence()
	case prediction.FieldCreatedAt:
		return m.CreatedAt()
	case prediction.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PredictionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prediction.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case prediction.FieldPeriod:
		return m.OldPeriod(ctx)
	case prediction.FieldScopeKey:
		return m.OldScopeKey(ctx)
	case prediction.FieldJobID:
		return m.OldJobID(ctx)
	case prediction.FieldProbability:
		return m.OldProbability(ctx)
	case prediction.FieldClassification:
		return m.OldClassification(ctx)
	case prediction.FieldConfidence:
		return m.OldConfidence(ctx)
	case prediction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prediction.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prediction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PredictionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prediction.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case prediction.FieldPeriod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriod(v)
		return nil
	case prediction.FieldScopeKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScopeKey(v)
		return nil
	case prediction.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case prediction.FieldProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProbability(v)
		return nil
	case prediction.FieldClassification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassification(v)
		return nil
	case prediction.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case prediction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prediction.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prediction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PredictionMutation) AddedFields() []string {
	var fields []string
	if m.addprobability != nil {
		fields = append(fields, prediction.FieldProbability)
	}
	if m.addconfidence != nil {
		fields = append(fields, prediction.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PredictionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case prediction.FieldProbability:
		return m.AddedProbability()
	case prediction.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PredictionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case prediction.FieldProbability:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProbability(v)
		return nil
	case prediction.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Prediction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PredictionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prediction.FieldJobID) {
		fields = append(fields, prediction.FieldJobID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PredictionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PredictionMutation) ClearField(name string) error {
	switch name {
	case prediction.FieldJobID:
		m.ClearJobID()
		return nil
	}
	return fmt.Errorf("unknown Prediction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PredictionMutation) ResetField(name string) error {
	switch name {
	case prediction.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case prediction.FieldPeriod:
		m.ResetPeriod()
		return nil
	case prediction.FieldScopeKey:
		m.ResetScopeKey()
		return nil
	case prediction.FieldJobID:
		m.ResetJobID()
		return nil
	case prediction.FieldProbability:
		m.ResetProbability()
		return nil
	case prediction.FieldClassification:
		m.ResetClassification()
		return nil
	case prediction.FieldConfidence:
		m.ResetConfidence()
		return nil
	case prediction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prediction.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Prediction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PredictionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.company != nil {
		edges = append(edges, prediction.EdgeCompany)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PredictionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case prediction.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PredictionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PredictionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PredictionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcompany {
		edges = append(edges, prediction.EdgeCompany)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PredictionMutation) EdgeCleared(name string) bool {
	switch name {
	case prediction.EdgeCompany:
		return m.clearedcompany
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PredictionMutation) ClearEdge(name string) error {
	switch name {
	case prediction.EdgeCompany:
		m.ClearCompany()
		return nil
	}
	return fmt.Errorf("unknown Prediction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PredictionMutation) ResetEdge(name string) error {
	switch name {
	case prediction.EdgeCompany:
		m.ResetCompany()
		return nil
	}
	return fmt.Errorf("unknown Prediction edge %s", name)
}

// ScoreJobMutation represents an operation that mutates the ScoreJob nodes in the graph.
type ScoreJobMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	kind               *string
	file_name          *string
	lane               *string
	state              *string
	total_rows         *int
	addtotal_rows      *int
	processed_rows     *int
	addprocessed_rows  *int
	successful_rows    *int
	addsuccessful_rows *int
	failed_rows        *int
	addfailed_rows     *int
	fail_reason        *string
	cancel_requested   *bool
	owner_user_id      *uuid.UUID
	owner_org_id       *uuid.UUID
	owner_role         *string
	submitted_at       *time.Time
	started_at         *time.Time
	finished_at        *time.Time
	last_progress_at   *time.Time
	clearedFields      map[string]struct{}
	rows               map[uuid.UUID]struct{}
	removedrows        map[uuid.UUID]struct{}
	clearedrows        bool
	outcomes           map[uuid.UUID]struct{}
	removedoutcomes    map[uuid.UUID]struct{}
	clearedoutcomes    bool
	done               bool
	oldValue           func(context.Context) (*ScoreJob, error)
	predicates         []predicate.ScoreJob
}

var _ ent.Mutation = (*ScoreJobMutation)(nil)

// scorejobOption allows management of the mutation configuration using functional options.
type scorejobOption func(*ScoreJobMutation)

// newScoreJobMutation creates new mutation for the ScoreJob entity.
func newScoreJobMutation(c config, op Op, opts ...scorejobOption) *ScoreJobMutation {
	m := &ScoreJobMutation{
		config:        c,
		op:            op,
		typ:           TypeScoreJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScoreJobID sets the ID field of the mutation.
func withScoreJobID(id uuid.UUID) scorejobOption {
	return func(m *ScoreJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ScoreJob
		)
		m.oldValue = func(ctx context.Context) (*ScoreJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScoreJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScoreJob sets the old ScoreJob of the mutation.
func withScoreJob(node *ScoreJob) scorejobOption {
	return func(m *ScoreJobMutation) {
		m.oldValue = func(context.Context) (*ScoreJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScoreJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScoreJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScoreJob entities.
func (m *ScoreJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScoreJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScoreJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScoreJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKind sets the "kind" field.
func (m *ScoreJobMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ScoreJobMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ScoreJobMutation) ResetKind() {
	m.kind = nil
}

// SetFileName sets the "file_name" field.
func (m *ScoreJobMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ScoreJobMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ScoreJobMutation) ResetFileName() {
	m.file_name = nil
}

// SetLane sets the "lane" field.
func (m *ScoreJobMutation) SetLane(s string) {
	m.lane = &s
}

// Lane returns the value of the "lane" field in the mutation.
func (m *ScoreJobMutation) Lane() (r string, exists bool) {
	v := m.lane
	if v == nil {
		return
	}
	return *v, true
}

// OldLane returns the old "lane" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldLane(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLane is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLane requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLane: %w", err)
	}
	return oldValue.Lane, nil
}

// ClearLane clears the value of the "lane" field.
func (m *ScoreJobMutation) ClearLane() {
	m.lane = nil
	m.clearedFields[scorejob.FieldLane] = struct{}{}
}

// LaneCleared returns if the "lane" field was cleared in this mutation.
func (m *ScoreJobMutation) LaneCleared() bool {
	_, ok := m.clearedFields[scorejob.FieldLane]
	return ok
}

// ResetLane resets all changes to the "lane" field.
func (m *ScoreJobMutation) ResetLane() {
	m.lane = nil
	delete(m.clearedFields, scorejob.FieldLane)
}

// SetState sets the "state" field.
func (m *ScoreJobMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ScoreJobMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ScoreJobMutation) ResetState() {
	m.state = nil
}

// SetTotalRows sets the "total_rows" field.
func (m *ScoreJobMutation) SetTotalRows(i int) {
	m.total_rows = &i
	m.addtotal_rows = nil
}

// TotalRows returns the value of the "total_rows" field in the mutation.
func (m *ScoreJobMutation) TotalRows() (r int, exists bool) {
	v := m.total_rows
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRows returns the old "total_rows" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldTotalRows(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRows: %w", err)
	}
	return oldValue.TotalRows, nil
}

// AddTotalRows adds i to the "total_rows" field.
func (m *ScoreJobMutation) AddTotalRows(i int) {
	if m.addtotal_rows != nil {
		*m.addtotal_rows += i
	} else {
		m.addtotal_rows = &i
	}
}

// AddedTotalRows returns the value that was added to the "total_rows" field in this mutation.
func (m *ScoreJobMutation) AddedTotalRows() (r int, exists bool) {
	v := m.addtotal_rows
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRows resets all changes to the "total_rows" field.
func (m *ScoreJobMutation) ResetTotalRows() {
	m.total_rows = nil
	m.addtotal_rows = nil
}

// SetProcessedRows sets the "processed_rows" field.
func (m *ScoreJobMutation) SetProcessedRows(i int) {
	m.processed_rows = &i
	m.addprocessed_rows = nil
}

// ProcessedRows returns the value of the "processed_rows" field in the mutation.
func (m *ScoreJobMutation) ProcessedRows() (r int, exists bool) {
	v := m.processed_rows
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedRows returns the old "processed_rows" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldProcessedRows(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedRows: %w", err)
	}
	return oldValue.ProcessedRows, nil
}

// AddProcessedRows adds i to the "processed_rows" field.
func (m *ScoreJobMutation) AddProcessedRows(i int) {
	if m.addprocessed_rows != nil {
		*m.addprocessed_rows += i
	} else {
		m.addprocessed_rows = &i
	}
}

// AddedProcessedRows returns the value that was added to the "processed_rows" field in this mutation.
func (m *ScoreJobMutation) AddedProcessedRows() (r int, exists bool) {
	v := m.addprocessed_rows
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedRows resets all changes to the "processed_rows" field.
func (m *ScoreJobMutation) ResetProcessedRows() {
	m.processed_rows = nil
	m.addprocessed_rows = nil
}

// SetSuccessfulRows sets the "successful_rows" field.
func (m *ScoreJobMutation) SetSuccessfulRows(i int) {
	m.successful_rows = &i
	m.addsuccessful_rows = nil
}

// SuccessfulRows returns the value of the "successful_rows" field in the mutation.
func (m *ScoreJobMutation) SuccessfulRows() (r int, exists bool) {
	v := m.successful_rows
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessfulRows returns the old "successful_rows" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldSuccessfulRows(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessfulRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessfulRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessfulRows: %w", err)
	}
	return oldValue.SuccessfulRows, nil
}

// AddSuccessfulRows adds i to the "successful_rows" field.
func (m *ScoreJobMutation) AddSuccessfulRows(i int) {
	if m.addsuccessful_rows != nil {
		*m.addsuccessful_rows += i
	} else {
		m.addsuccessful_rows = &i
	}
}

// AddedSuccessfulRows returns the value that was added to the "successful_rows" field in this mutation.
func (m *ScoreJobMutation) AddedSuccessfulRows() (r int, exists bool) {
	v := m.addsuccessful_rows
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessfulRows resets all changes to the "successful_rows" field.
func (m *ScoreJobMutation) ResetSuccessfulRows() {
	m.successful_rows = nil
	m.addsuccessful_rows = nil
}

// SetFailedRows sets the "failed_rows" field.
func (m *ScoreJobMutation) SetFailedRows(i int) {
	m.failed_rows = &i
	m.addfailed_rows = nil
}

// FailedRows returns the value of the "failed_rows" field in the mutation.
func (m *ScoreJobMutation) FailedRows() (r int, exists bool) {
	v := m.failed_rows
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedRows returns the old "failed_rows" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldFailedRows(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedRows is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedRows requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedRows: %w", err)
	}
	return oldValue.FailedRows, nil
}

// AddFailedRows adds i to the "failed_rows" field.
func (m *ScoreJobMutation) AddFailedRows(i int) {
	if m.addfailed_rows != nil {
		*m.addfailed_rows += i
	} else {
		m.addfailed_rows = &i
	}
}

// AddedFailedRows returns the value that was added to the "failed_rows" field in this mutation.
func (m *ScoreJobMutation) AddedFailedRows() (r int, exists bool) {
	v := m.addfailed_rows
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedRows resets all changes to the "failed_rows" field.
func (m *ScoreJobMutation) ResetFailedRows() {
	m.failed_rows = nil
	m.addfailed_rows = nil
}

// SetFailReason sets the "fail_reason" field.
func (m *ScoreJobMutation) SetFailReason(s string) {
	m.fail_reason = &s
}

// FailReason returns the value of the "fail_reason" field in the mutation.
func (m *ScoreJobMutation) FailReason() (r string, exists bool) {
	v := m.fail_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailReason returns the old "fail_reason" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldFailReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailReason: %w", err)
	}
	return oldValue.FailReason, nil
}

// ClearFailReason clears the value of the "fail_reason" field.
func (m *ScoreJobMutation) ClearFailReason() {
	m.fail_reason = nil
	m.clearedFields[scorejob.FieldFailReason] = struct{}{}
}

// FailReasonCleared returns if the "fail_reason" field was cleared in this mutation.
func (m *ScoreJobMutation) FailReasonCleared() bool {
	_, ok := m.clearedFields[scorejob.FieldFailReason]
	return ok
}

// ResetFailReason resets all changes to the "fail_reason" field.
func (m *ScoreJobMutation) ResetFailReason() {
	m.fail_reason = nil
	delete(m.clearedFields, scorejob.FieldFailReason)
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *ScoreJobMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *ScoreJobMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *ScoreJobMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetOwnerUserID sets the "owner_user_id" field.
func (m *ScoreJobMutation) SetOwnerUserID(u uuid.UUID) {
	m.owner_user_id = &u
}

// OwnerUserID returns the value of the "owner_user_id" field in the mutation.
func (m *ScoreJobMutation) OwnerUserID() (r uuid.UUID, exists bool) {
	v := m.owner_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerUserID returns the old "owner_user_id" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldOwnerUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerUserID: %w", err)
	}
	return oldValue.OwnerUserID, nil
}

// ResetOwnerUserID resets all changes to the "owner_user_id" field.
func (m *ScoreJobMutation) ResetOwnerUserID() {
	m.owner_user_id = nil
}

// SetOwnerOrgID sets the "owner_org_id" field.
func (m *ScoreJobMutation) SetOwnerOrgID(u uuid.UUID) {
	m.owner_org_id = &u
}

// OwnerOrgID returns the value of the "owner_org_id" field in the mutation.
func (m *ScoreJobMutation) OwnerOrgID() (r uuid.UUID, exists bool) {
	v := m.owner_org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerOrgID returns the old "owner_org_id" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldOwnerOrgID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerOrgID: %w", err)
	}
	return oldValue.OwnerOrgID, nil
}

// ClearOwnerOrgID clears the value of the "owner_org_id" field.
func (m *ScoreJobMutation) ClearOwnerOrgID() {
	m.owner_org_id = nil
	m.clearedFields[scorejob.FieldOwnerOrgID] = struct{}{}
}

// OwnerOrgIDCleared returns if the "owner_org_id" field was cleared in this mutation.
func (m *ScoreJobMutation) OwnerOrgIDCleared() bool {
	_, ok := m.clearedFields[scorejob.FieldOwnerOrgID]
	return ok
}

// ResetOwnerOrgID resets all changes to the "owner_org_id" field.
func (m *ScoreJobMutation) ResetOwnerOrgID() {
	m.owner_org_id = nil
	delete(m.clearedFields, scorejob.FieldOwnerOrgID)
}

// SetOwnerRole sets the "owner_role" field.
func (m *ScoreJobMutation) SetOwnerRole(s string) {
	m.owner_role = &s
}

// OwnerRole returns the value of the "owner_role" field in the mutation.
func (m *ScoreJobMutation) OwnerRole() (r string, exists bool) {
	v := m.owner_role
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerRole returns the old "owner_role" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldOwnerRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerRole: %w", err)
	}
	return oldValue.OwnerRole, nil
}

// ResetOwnerRole resets all changes to the "owner_role" field.
func (m *ScoreJobMutation) ResetOwnerRole() {
	m.owner_role = nil
}

// SetSubmittedAt sets the "submitted_at" field.
func (m *ScoreJobMutation) SetSubmittedAt(t time.Time) {
	m.submitted_at = &t
}

// SubmittedAt returns the value of the "submitted_at" field in the mutation.
func (m *ScoreJobMutation) SubmittedAt() (r time.Time, exists bool) {
	v := m.submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedAt returns the old "submitted_at" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldSubmittedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedAt: %w", err)
	}
	return oldValue.SubmittedAt, nil
}

// ResetSubmittedAt resets all changes to the "submitted_at" field.
func (m *ScoreJobMutation) ResetSubmittedAt() {
	m.submitted_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ScoreJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ScoreJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *ScoreJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[scorejob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *ScoreJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[scorejob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ScoreJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, scorejob.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *ScoreJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ScoreJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ScoreJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[scorejob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ScoreJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[scorejob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ScoreJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, scorejob.FieldFinishedAt)
}

// SetLastProgressAt sets the "last_progress_at" field.
func (m *ScoreJobMutation) SetLastProgressAt(t time.Time) {
	m.last_progress_at = &t
}

// LastProgressAt returns the value of the "last_progress_at" field in the mutation.
func (m *ScoreJobMutation) LastProgressAt() (r time.Time, exists bool) {
	v := m.last_progress_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProgressAt returns the old "last_progress_at" field's value of the ScoreJob entity.
// If the ScoreJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScoreJobMutation) OldLastProgressAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProgressAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProgressAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProgressAt: %w", err)
	}
	return oldValue.LastProgressAt, nil
}

// ClearLastProgressAt clears the value of the "last_progress_at" field.
func (m *ScoreJobMutation) ClearLastProgressAt() {
	m.last_progress_at = nil
	m.clearedFields[scorejob.FieldLastProgressAt] = struct{}{}
}

// LastProgressAtCleared returns if the "last_progress_at" field was cleared in this mutation.
func (m *ScoreJobMutation) LastProgressAtCleared() bool {
	_, ok := m.clearedFields[scorejob.FieldLastProgressAt]
	return ok
}

// ResetLastProgressAt resets all changes to the "last_progress_at" field.
func (m *ScoreJobMutation) ResetLastProgressAt() {
	m.last_progress_at = nil
	delete(m.clearedFields, scorejob.FieldLastProgressAt)
}

// AddRowIDs adds the "rows" edge to the JobRow entity by ids.
func (m *ScoreJobMutation) AddRowIDs(ids ...uuid.UUID) {
	if m.rows == nil {
		m.rows = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.rows[ids[i]] = struct{}{}
	}
}

// ClearRows clears the "rows" edge to the JobRow entity.
func (m *ScoreJobMutation) ClearRows() {
	m.clearedrows = true
}

// RowsCleared reports if the "rows" edge to the JobRow entity was cleared.
func (m *ScoreJobMutation) RowsCleared() bool {
	return m.clearedrows
}

// RemoveRowIDs removes the "rows" edge to the JobRow entity by IDs.
func (m *ScoreJobMutation) RemoveRowIDs(ids ...uuid.UUID) {
	if m.removedrows == nil {
		m.removedrows = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.rows, ids[i])
		m.removedrows[ids[i]] = struct{}{}
	}
}

// RemovedRows returns the removed IDs of the "rows" edge to the JobRow entity.
func (m *ScoreJobMutation) RemovedRowsIDs() (ids []uuid.UUID) {
	for id := range m.removedrows {
		ids = append(ids, id)
	}
	return
}

// RowsIDs returns the "rows" edge IDs in the mutation.
func (m *ScoreJobMutation) RowsIDs() (ids []uuid.UUID) {
	for id := range m.rows {
		ids = append(ids, id)
	}
	return
}

// ResetRows resets all changes to the "rows" edge.
func (m *ScoreJobMutation) ResetRows() {
	m.rows = nil
	m.clearedrows = false
	m.removedrows = nil
}

// AddOutcomeIDs adds the "outcomes" edge to the JobRowOutcome entity by ids.
func (m *ScoreJobMutation) AddOutcomeIDs(ids ...uuid.UUID) {
	if m.outcomes == nil {
		m.outcomes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.outcomes[ids[i]] = struct{}{}
	}
}

// ClearOutcomes clears the "outcomes" edge to the JobRowOutcome entity.
func (m *ScoreJobMutation) ClearOutcomes() {
	m.clearedoutcomes = true
}

// OutcomesCleared reports if the "outcomes" edge to the JobRowOutcome entity was cleared.
func (m *ScoreJobMutation) OutcomesCleared() bool {
	return m.clearedoutcomes
}

// RemoveOutcomeIDs removes the "outcomes" edge to the JobRowOutcome entity by IDs.
func (m *ScoreJobMutation) RemoveOutcomeIDs(ids ...uuid.UUID) {
	if m.removedoutcomes == nil {
		m.removedoutcomes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.outcomes, ids[i])
		m.removedoutcomes[ids[i]] = struct{}{}
	}
}

// RemovedOutcomes returns the removed IDs of the "outcomes" edge to the JobRowOutcome entity.
func (m *ScoreJobMutation) RemovedOutcomesIDs() (ids []uuid.UUID) {
	for id := range m.removedoutcomes {
		ids = append(ids, id)
	}
	return
}

// OutcomesIDs returns the "outcomes" edge IDs in the mutation.
func (m *ScoreJobMutation) OutcomesIDs() (ids []uuid.UUID) {
	for id := range m.outcomes {
		ids = append(ids, id)
	}
	return
}

// ResetOutcomes resets all changes to the "outcomes" edge.
func (m *ScoreJobMutation) ResetOutcomes() {
	m.outcomes = nil
	m.clearedoutcomes = false
	m.removedoutcomes = nil
}

// Where appends a list predicates to the ScoreJobMutation builder.
func (m *ScoreJobMutation) Where(ps ...predicate.ScoreJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScoreJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScoreJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScoreJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScoreJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScoreJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScoreJob).
func (m *ScoreJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScoreJobMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.kind != nil {
		fields = append(fields, scorejob.FieldKind)
	}
	if m.file_name != nil {
		fields = append(fields, scorejob.FieldFileName)
	}
	if m.lane != nil {
		fields = append(fields, scorejob.FieldLane)
	}
	if m.state != nil {
		fields = append(fields, scorejob.FieldState)
	}
	if m.total_rows != nil {
		fields = append(fields, scorejob.FieldTotalRows)
	}
	if m.processed_rows != nil {
		fields = append(fields, scorejob.FieldProcessedRows)
	}
	if m.successful_rows != nil {
		fields = append(fields, scorejob.FieldSuccessfulRows)
	}
	if m.failed_rows != nil {
		fields = append(fields, scorejob.FieldFailedRows)
	}
	if m.fail_reason != nil {
		fields = append(fields, scorejob.FieldFailReason)
	}
	if m.cancel_requested != nil {
		fields = append(fields, scorejob.FieldCancelRequested)
	}
	if m.owner_user_id != nil {
		fields = append(fields, scorejob.FieldOwnerUserID)
	}
	if m.owner_org_id != nil {
		fields = append(fields, scorejob.FieldOwnerOrgID)
	}
	if m.owner_role != nil {
		fields = append(fields, scorejob.FieldOwnerRole)
	}
	if m.submitted_at != nil {
		fields = append(fields, scorejob.FieldSubmittedAt)
	}
	if m.started_at != nil {
		fields = append(fields, scorejob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, scorejob.FieldFinishedAt)
	}
	if m.last_progress_at != nil {
		fields = append(fields, scorejob.FieldLastProgressAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScoreJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scorejob.FieldKind:
		return m.Kind()
	case scorejob.FieldFileName:
		return m.FileName()
	case scorejob.FieldLane:
		return m.Lane()
	case scorejob.FieldState:
		return m.State()
	case scorejob.FieldTotalRows:
		return m.TotalRows()
	case scorejob.FieldProcessedRows:
		return m.ProcessedRows()
	case scorejob.FieldSuccessfulRows:
		return m.SuccessfulRows()
	case scorejob.FieldFailedRows:
		return m.FailedRows()
	case scorejob.FieldFailReason:
		return m.FailReason()
	case scorejob.FieldCancelRequested:
		return m.CancelRequested()
	case scorejob.FieldOwnerUserID:
		return m.OwnerUserID()
	case scorejob.FieldOwnerOrgID:
		return m.OwnerOrgID()
	case scorejob.FieldOwnerRole:
		return m.OwnerRole()
	case scorejob.FieldSubmittedAt:
		return m.SubmittedAt()
	case scorejob.FieldStartedAt:
		return m.StartedAt()
	case scorejob.FieldFinishedAt:
		return m.FinishedAt()
	case scorejob.FieldLastProgressAt:
		return m.LastProgressAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScoreJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scorejob.FieldKind:
		return m.OldKind(ctx)
	case scorejob.FieldFileName:
		return m.OldFileName(ctx)
	case scorejob.FieldLane:
		return m.OldLane(ctx)
	case scorejob.FieldState:
		return m.OldState(ctx)
	case scorejob.FieldTotalRows:
		return m.OldTotalRows(ctx)
	case scorejob.FieldProcessedRows:
		return m.OldProcessedRows(ctx)
	case scorejob.FieldSuccessfulRows:
		return m.OldSuccessfulRows(ctx)
	case scorejob.FieldFailedRows:
		return m.OldFailedRows(ctx)
	case scorejob.FieldFailReason:
		return m.OldFailReason(ctx)
	case scorejob.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case scorejob.FieldOwnerUserID:
		return m.OldOwnerUserID(ctx)
	case scorejob.FieldOwnerOrgID:
		return m.OldOwnerOrgID(ctx)
	case scorejob.FieldOwnerRole:
		return m.OldOwnerRole(ctx)
	case scorejob.FieldSubmittedAt:
		return m.OldSubmittedAt(ctx)
	case scorejob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case scorejob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case scorejob.FieldLastProgressAt:
		return m.OldLastProgressAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScoreJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoreJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scorejob.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case scorejob.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case scorejob.FieldLane:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLane(v)
		return nil
	case scorejob.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case scorejob.FieldTotalRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRows(v)
		return nil
	case scorejob.FieldProcessedRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedRows(v)
		return nil
	case scorejob.FieldSuccessfulRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessfulRows(v)
		return nil
	case scorejob.FieldFailedRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedRows(v)
		return nil
	case scorejob.FieldFailReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailReason(v)
		return nil
	case scorejob.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case scorejob.FieldOwnerUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerUserID(v)
		return nil
	case scorejob.FieldOwnerOrgID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerOrgID(v)
		return nil
	case scorejob.FieldOwnerRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerRole(v)
		return nil
	case scorejob.FieldSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedAt(v)
		return nil
	case scorejob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case scorejob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case scorejob.FieldLastProgressAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProgressAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScoreJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScoreJobMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_rows != nil {
		fields = append(fields, scorejob.FieldTotalRows)
	}
	if m.addprocessed_rows != nil {
		fields = append(fields, scorejob.FieldProcessedRows)
	}
	if m.addsuccessful_rows != nil {
		fields = append(fields, scorejob.FieldSuccessfulRows)
	}
	if m.addfailed_rows != nil {
		fields = append(fields, scorejob.FieldFailedRows)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScoreJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scorejob.FieldTotalRows:
		return m.AddedTotalRows()
	case scorejob.FieldProcessedRows:
		return m.AddedProcessedRows()
	case scorejob.FieldSuccessfulRows:
		return m.AddedSuccessfulRows()
	case scorejob.FieldFailedRows:
		return m.AddedFailedRows()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScoreJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scorejob.FieldTotalRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRows(v)
		return nil
	case scorejob.FieldProcessedRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedRows(v)
		return nil
	case scorejob.FieldSuccessfulRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessfulRows(v)
		return nil
	case scorejob.FieldFailedRows:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedRows(v)
		return nil
	}
	return fmt.Errorf("unknown ScoreJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScoreJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scorejob.FieldLane) {
		fields = append(fields, scorejob.FieldLane)
	}
	if m.FieldCleared(scorejob.FieldFailReason) {
		fields = append(fields, scorejob.FieldFailReason)
	}
	if m.FieldCleared(scorejob.FieldOwnerOrgID) {
		fields = append(fields, scorejob.FieldOwnerOrgID)
	}
	if m.FieldCleared(scorejob.FieldStartedAt) {
		fields = append(fields, scorejob.FieldStartedAt)
	}
	if m.FieldCleared(scorejob.FieldFinishedAt) {
		fields = append(fields, scorejob.FieldFinishedAt)
	}
	if m.FieldCleared(scorejob.FieldLastProgressAt) {
		fields = append(fields, scorejob.FieldLastProgressAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScoreJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScoreJobMutation) ClearField(name string) error {
	switch name {
	case scorejob.FieldLane:
		m.ClearLane()
		return nil
	case scorejob.FieldFailReason:
		m.ClearFailReason()
		return nil
	case scorejob.FieldOwnerOrgID:
		m.ClearOwnerOrgID()
		return nil
	case scorejob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case scorejob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case scorejob.FieldLastProgressAt:
		m.ClearLastProgressAt()
		return nil
	}
	return fmt.Errorf("unknown ScoreJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScoreJobMutation) ResetField(name string) error {
	switch name {
	case scorejob.FieldKind:
		m.ResetKind()
		return nil
	case scorejob.FieldFileName:
		m.ResetFileName()
		return nil
	case scorejob.FieldLane:
		m.ResetLane()
		return nil
	case scorejob.FieldState:
		m.ResetState()
		return nil
	case scorejob.FieldTotalRows:
		m.ResetTotalRows()
		return nil
	case scorejob.FieldProcessedRows:
		m.ResetProcessedRows()
		return nil
	case scorejob.FieldSuccessfulRows:
		m.ResetSuccessfulRows()
		return nil
	case scorejob.FieldFailedRows:
		m.ResetFailedRows()
		return nil
	case scorejob.FieldFailReason:
		m.ResetFailReason()
		return nil
	case scorejob.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case scorejob.FieldOwnerUserID:
		m.ResetOwnerUserID()
		return nil
	case scorejob.FieldOwnerOrgID:
		m.ResetOwnerOrgID()
		return nil
	case scorejob.FieldOwnerRole:
		m.ResetOwnerRole()
		return nil
	case scorejob.FieldSubmittedAt:
		m.ResetSubmittedAt()
		return nil
	case scorejob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case scorejob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case scorejob.FieldLastProgressAt:
		m.ResetLastProgressAt()
		return nil
	}
	return fmt.Errorf("unknown ScoreJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScoreJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.rows != nil {
		edges = append(edges, scorejob.EdgeRows)
	}
	if m.outcomes != nil {
		edges = append(edges, scorejob.EdgeOutcomes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScoreJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scorejob.EdgeRows:
		ids := make([]ent.Value, 0, len(m.rows))
		for id := range m.rows {
			ids = append(ids, id)
		}
		return ids
	case scorejob.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.outcomes))
		for id := range m.outcomes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScoreJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrows != nil {
		edges = append(edges, scorejob.EdgeRows)
	}
	if m.removedoutcomes != nil {
		edges = append(edges, scorejob.EdgeOutcomes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScoreJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case scorejob.EdgeRows:
		ids := make([]ent.Value, 0, len(m.removedrows))
		for id := range m.removedrows {
			ids = append(ids, id)
		}
		return ids
	case scorejob.EdgeOutcomes:
		ids := make([]ent.Value, 0, len(m.removedoutcomes))
		for id := range m.removedoutcomes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScoreJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrows {
		edges = append(edges, scorejob.EdgeRows)
	}
	if m.clearedoutcomes {
		edges = append(edges, scorejob.EdgeOutcomes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScoreJobMutation) EdgeCleared(name string) bool {
	switch name {
	case scorejob.EdgeRows:
		return m.clearedrows
	case scorejob.EdgeOutcomes:
		return m.clearedoutcomes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScoreJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ScoreJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScoreJobMutation) ResetEdge(name string) error {
	switch name {
	case scorejob.EdgeRows:
		m.ResetRows()
		return nil
	case scorejob.EdgeOutcomes:
		m.ResetOutcomes()
		return nil
	}
	return fmt.Errorf("unknown ScoreJob edge %s", name)
}
