// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/jobrow"
	"github.com/openfinml/riskscore/gen/ent/jobrowoutcome"
	"github.com/openfinml/riskscore/gen/ent/predicate"
	"github.com/openfinml/riskscore/gen/ent/scorejob"
)

// ScoreJobQuery is the builder for querying ScoreJob entities.
type ScoreJobQuery struct {
	config
	ctx          *QueryContext
	order        []scorejob.OrderOption
	inters       []Interceptor
	predicates   []predicate.ScoreJob
	withRows     *JobRowQuery
	withOutcomes *JobRowOutcomeQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ScoreJobQuery builder.
func (_q *ScoreJobQuery) Where(ps ...predicate.ScoreJob) *ScoreJobQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ScoreJobQuery) Limit(limit int) *ScoreJobQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ScoreJobQuery) Offset(offset int) *ScoreJobQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ScoreJobQuery) Unique(unique bool) *ScoreJobQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ScoreJobQuery) Order(o ...scorejob.OrderOption) *ScoreJobQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRows chains the current query on the "rows" edge.
func (_q *ScoreJobQuery) QueryRows() *JobRowQuery {
	query := (&JobRowClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(scorejob.Table, scorejob.FieldID, selector),
			sqlgraph.To(jobrow.Table, jobrow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scorejob.RowsTable, scorejob.RowsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryOutcomes chains the current query on the "outcomes" edge.
func (_q *ScoreJobQuery) QueryOutcomes() *JobRowOutcomeQuery {
	query := (&JobRowOutcomeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(scorejob.Table, scorejob.FieldID, selector),
			sqlgraph.To(jobrowoutcome.Table, jobrowoutcome.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scorejob.OutcomesTable, scorejob.OutcomesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ScoreJob entity from the query.
// Returns a *NotFoundError when no ScoreJob was found.
func (_q *ScoreJobQuery) First(ctx context.Context) (*ScoreJob, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{scorejob.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ScoreJobQuery) FirstX(ctx context.Context) *ScoreJob {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ScoreJob ID from the query.
// Returns a *NotFoundError when no ScoreJob ID was found.
func (_q *ScoreJobQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{scorejob.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ScoreJobQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ScoreJob entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ScoreJob entity is found.
// Returns a *NotFoundError when no ScoreJob entities are found.
func (_q *ScoreJobQuery) Only(ctx context.Context) (*ScoreJob, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{scorejob.Label}
	default:
		return nil, &NotSingularError{scorejob.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ScoreJobQuery) OnlyX(ctx context.Context) *ScoreJob {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ScoreJob ID in the query.
// Returns a *NotSingularError when more than one ScoreJob ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ScoreJobQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{scorejob.Label}
	default:
		err = &NotSingularError{scorejob.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ScoreJobQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ScoreJobs.
func (_q *ScoreJobQuery) All(ctx context.Context) ([]*ScoreJob, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ScoreJob, *ScoreJobQuery]()
	return withInterceptors[[]*ScoreJob](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ScoreJobQuery) AllX(ctx context.Context) []*ScoreJob {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ScoreJob IDs.
func (_q *ScoreJobQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(scorejob.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ScoreJobQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ScoreJobQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ScoreJobQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ScoreJobQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ScoreJobQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ScoreJobQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ScoreJobQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ScoreJobQuery) Clone() *ScoreJobQuery {
	if _q == nil {
		return nil
	}
	return &ScoreJobQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]scorejob.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.ScoreJob{}, _q.predicates...),
		withRows:     _q.withRows.Clone(),
		withOutcomes: _q.withOutcomes.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRows tells the query-builder to eager-load the nodes that are connected to
// the "rows" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ScoreJobQuery) WithRows(opts ...func(*JobRowQuery)) *ScoreJobQuery {
	query := (&JobRowClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRows = query
	return _q
}

// WithOutcomes tells the query-builder to eager-load the nodes that are connected to
// the "outcomes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ScoreJobQuery) WithOutcomes(opts ...func(*JobRowOutcomeQuery)) *ScoreJobQuery {
	query := (&JobRowOutcomeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOutcomes = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Kind string `json:"kind,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ScoreJob.Query().
//		GroupBy(scorejob.FieldKind).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ScoreJobQuery) GroupBy(field string, fields ...string) *ScoreJobGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ScoreJobGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = scorejob.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Kind string `json:"kind,omitempty"`
//	}
//
//	client.ScoreJob.Query().
//		Select(scorejob.FieldKind).
//		Scan(ctx, &v)
func (_q *ScoreJobQuery) Select(fields ...string) *ScoreJobSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ScoreJobSelect{ScoreJobQuery: _q}
	sbuild.label = scorejob.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ScoreJobSelect configured with the given aggregations.
func (_q *ScoreJobQuery) Aggregate(fns ...AggregateFunc) *ScoreJobSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ScoreJobQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !scorejob.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ScoreJobQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ScoreJob, error) {
	var (
		nodes       = []*ScoreJob{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withRows != nil,
			_q.withOutcomes != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ScoreJob).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ScoreJob{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withRows; query != nil {
		if err := _q.loadRows(ctx, query, nodes,
			func(n *ScoreJob) { n.Edges.Rows = []*JobRow{} },
			func(n *ScoreJob, e *JobRow) { n.Edges.Rows = append(n.Edges.Rows, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withOutcomes; query != nil {
		if err := _q.loadOutcomes(ctx, query, nodes,
			func(n *ScoreJob) { n.Edges.Outcomes = []*JobRowOutcome{} },
			func(n *ScoreJob, e *JobRowOutcome) { n.Edges.Outcomes = append(n.Edges.Outcomes, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ScoreJobQuery) loadRows(ctx context.Context, query *JobRowQuery, nodes []*ScoreJob, init func(*ScoreJob), assign func(*ScoreJob, *JobRow)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ScoreJob)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(jobrow.FieldJobID)
	}
	query.Where(predicate.JobRow(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(scorejob.RowsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.JobID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "job_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ScoreJobQuery) loadOutcomes(ctx context.Context, query *JobRowOutcomeQuery, nodes []*ScoreJob, init func(*ScoreJob), assign func(*ScoreJob, *JobRowOutcome)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*ScoreJob)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(jobrowoutcome.FieldJobID)
	}
	query.Where(predicate.JobRowOutcome(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(scorejob.OutcomesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.JobID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "job_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ScoreJobQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ScoreJobQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(scorejob.Table, scorejob.Columns, sqlgraph.NewFieldSpec(scorejob.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scorejob.FieldID)
		for i := range fields {
			if fields[i] != scorejob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ScoreJobQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(scorejob.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = scorejob.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ScoreJobGroupBy is the group-by builder for ScoreJob entities.
type ScoreJobGroupBy struct {
	selector
	build *ScoreJobQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ScoreJobGroupBy) Aggregate(fns ...AggregateFunc) *ScoreJobGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ScoreJobGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScoreJobQuery, *ScoreJobGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ScoreJobGroupBy) sqlScan(ctx context.Context, root *ScoreJobQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ScoreJobSelect is the builder for selecting fields of ScoreJob entities.
type ScoreJobSelect struct {
	*ScoreJobQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ScoreJobSelect) Aggregate(fns ...AggregateFunc) *ScoreJobSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ScoreJobSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScoreJobQuery, *ScoreJobSelect](ctx, _s.ScoreJobQuery, _s, _s.inters, v)
}

func (_s *ScoreJobSelect) sqlScan(ctx context.Context, root *ScoreJobQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
