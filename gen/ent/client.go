// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/openfinml/riskscore/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/openfinml/riskscore/gen/ent/company"
	"github.com/openfinml/riskscore/gen/ent/jobrow"
	"github.com/openfinml/riskscore/gen/ent/jobrowoutcome"
	"github.com/openfinml/riskscore/gen/ent/prediction"
	"github.com/openfinml/riskscore/gen/ent/scorejob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Company is the client for interacting with the Company builders.
	Company *CompanyClient
	// JobRow is the client for interacting with the JobRow builders.
	JobRow *JobRowClient
	// JobRowOutcome is the client for interacting with the JobRowOutcome builders.
	JobRowOutcome *JobRowOutcomeClient
	// Prediction is the client for interacting with the Prediction builders.
	Prediction *PredictionClient
	// ScoreJob is the client for interacting with the ScoreJob builders.
	ScoreJob *ScoreJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Company = NewCompanyClient(c.config)
	c.JobRow = NewJobRowClient(c.config)
	c.JobRowOutcome = NewJobRowOutcomeClient(c.config)
	c.Prediction = NewPredictionClient(c.config)
	c.ScoreJob = NewScoreJobClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		Company:       NewCompanyClient(cfg),
		JobRow:        NewJobRowClient(cfg),
		JobRowOutcome: NewJobRowOutcomeClient(cfg),
		Prediction:    NewPredictionClient(cfg),
		ScoreJob:      NewScoreJobClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:           ctx,
		config:        cfg,
		Company:       NewCompanyClient(cfg),
		JobRow:        NewJobRowClient(cfg),
		JobRowOutcome: NewJobRowOutcomeClient(cfg),
		Prediction:    NewPredictionClient(cfg),
		ScoreJob:      NewScoreJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Company.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Company.Use(hooks...)
	c.JobRow.Use(hooks...)
	c.JobRowOutcome.Use(hooks...)
	c.Prediction.Use(hooks...)
	c.ScoreJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Company.Intercept(interceptors...)
	c.JobRow.Intercept(interceptors...)
	c.JobRowOutcome.Intercept(interceptors...)
	c.Prediction.Intercept(interceptors...)
	c.ScoreJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CompanyMutation:
		return c.Company.mutate(ctx, m)
	case *JobRowMutation:
		return c.JobRow.mutate(ctx, m)
	case *JobRowOutcomeMutation:
		return c.JobRowOutcome.mutate(ctx, m)
	case *PredictionMutation:
		return c.Prediction.mutate(ctx, m)
	case *ScoreJobMutation:
		return c.ScoreJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CompanyClient is a client for the Company schema.
type CompanyClient struct {
	config
}

// NewCompanyClient returns a client for the Company from the given config.
func NewCompanyClient(c config) *CompanyClient {
	return &CompanyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `company.Hooks(f(g(h())))`.
func (c *CompanyClient) Use(hooks ...Hook) {
	c.hooks.Company = append(c.hooks.Company, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `company.Intercept(f(g(h())))`.
func (c *CompanyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Company = append(c.inters.Company, interceptors...)
}

// Create returns a builder for creating a Company entity.
func (c *CompanyClient) Create() *CompanyCreate {
	mutation := newCompanyMutation(c.config, OpCreate)
	return &CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Company entities.
func (c *CompanyClient) CreateBulk(builders ...*CompanyCreate) *CompanyCreateBulk {
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CompanyClient) MapCreateBulk(slice any, setFunc func(*CompanyCreate, int)) *CompanyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CompanyCreateBulk{err: fmt.Errorf("calling to CompanyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CompanyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Company.
func (c *CompanyClient) Update() *CompanyUpdate {
	mutation := newCompanyMutation(c.config, OpUpdate)
	return &CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyClient) UpdateOne(_m *Company) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompany(_m))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyClient) UpdateOneID(id uuid.UUID) *CompanyUpdateOne {
	mutation := newCompanyMutation(c.config, OpUpdateOne, withCompanyID(id))
	return &CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Company.
func (c *CompanyClient) Delete() *CompanyDelete {
	mutation := newCompanyMutation(c.config, OpDelete)
	return &CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyClient) DeleteOne(_m *Company) *CompanyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyClient) DeleteOneID(id uuid.UUID) *CompanyDeleteOne {
	builder := c.Delete().Where(company.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CompanyDeleteOne{builder}
}

// Query returns a query builder for Company.
func (c *CompanyClient) Query() *CompanyQuery {
	return &CompanyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCompany},
		inters: c.Interceptors(),
	}
}

// Get returns a Company entity by its id.
func (c *CompanyClient) Get(ctx context.Context, id uuid.UUID) (*Company, error) {
	return c.Query().Where(company.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyClient) GetX(ctx context.Context, id uuid.UUID) *Company {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPredictions queries the predictions edge of a Company.
func (c *CompanyClient) QueryPredictions(_m *Company) *PredictionQuery {
	query := (&PredictionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(company.Table, company.FieldID, id),
			sqlgraph.To(prediction.Table, prediction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, company.PredictionsTable, company.PredictionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CompanyClient) Hooks() []Hook {
	return c.hooks.Company
}

// Interceptors returns the client interceptors.
func (c *CompanyClient) Interceptors() []Interceptor {
	return c.inters.Company
}

func (c *CompanyClient) mutate(ctx context.Context, m *CompanyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CompanyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CompanyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CompanyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CompanyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Company mutation op: %q", m.Op())
	}
}

// JobRowClient is a client for the JobRow schema.
type JobRowClient struct {
	config
}

// NewJobRowClient returns a client for the JobRow from the given config.
func NewJobRowClient(c config) *JobRowClient {
	return &JobRowClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobrow.Hooks(f(g(h())))`.
func (c *JobRowClient) Use(hooks ...Hook) {
	c.hooks.JobRow = append(c.hooks.JobRow, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobrow.Intercept(f(g(h())))`.
func (c *JobRowClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobRow = append(c.inters.JobRow, interceptors...)
}

// Create returns a builder for creating a JobRow entity.
func (c *JobRowClient) Create() *JobRowCreate {
	mutation := newJobRowMutation(c.config, OpCreate)
	return &JobRowCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobRow entities.
func (c *JobRowClient) CreateBulk(builders ...*JobRowCreate) *JobRowCreateBulk {
	return &JobRowCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobRowClient) MapCreateBulk(slice any, setFunc func(*JobRowCreate, int)) *JobRowCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobRowCreateBulk{err: fmt.Errorf("calling to JobRowClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobRowCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobRowCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobRow.
func (c *JobRowClient) Update() *JobRowUpdate {
	mutation := newJobRowMutation(c.config, OpUpdate)
	return &JobRowUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobRowClient) UpdateOne(_m *JobRow) *JobRowUpdateOne {
	mutation := newJobRowMutation(c.config, OpUpdateOne, withJobRow(_m))
	return &JobRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobRowClient) UpdateOneID(id uuid.UUID) *JobRowUpdateOne {
	mutation := newJobRowMutation(c.config, OpUpdateOne, withJobRowID(id))
	return &JobRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobRow.
func (c *JobRowClient) Delete() *JobRowDelete {
	mutation := newJobRowMutation(c.config, OpDelete)
	return &JobRowDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobRowClient) DeleteOne(_m *JobRow) *JobRowDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobRowClient) DeleteOneID(id uuid.UUID) *JobRowDeleteOne {
	builder := c.Delete().Where(jobrow.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobRowDeleteOne{builder}
}

// Query returns a query builder for JobRow.
func (c *JobRowClient) Query() *JobRowQuery {
	return &JobRowQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobRow},
		inters: c.Interceptors(),
	}
}

// Get returns a JobRow entity by its id.
func (c *JobRowClient) Get(ctx context.Context, id uuid.UUID) (*JobRow, error) {
	return c.Query().Where(jobrow.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobRowClient) GetX(ctx context.Context, id uuid.UUID) *JobRow {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobRow.
func (c *JobRowClient) QueryJob(_m *JobRow) *ScoreJobQuery {
	query := (&ScoreJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobrow.Table, jobrow.FieldID, id),
			sqlgraph.To(scorejob.Table, scorejob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobrow.JobTable, jobrow.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobRowClient) Hooks() []Hook {
	return c.hooks.JobRow
}

// Interceptors returns the client interceptors.
func (c *JobRowClient) Interceptors() []Interceptor {
	return c.inters.JobRow
}

func (c *JobRowClient) mutate(ctx context.Context, m *JobRowMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobRowCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobRowUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobRowUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobRowDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobRow mutation op: %q", m.Op())
	}
}

// JobRowOutcomeClient is a client for the JobRowOutcome schema.
type JobRowOutcomeClient struct {
	config
}

// NewJobRowOutcomeClient returns a client for the JobRowOutcome from the given config.
func NewJobRowOutcomeClient(c config) *JobRowOutcomeClient {
	return &JobRowOutcomeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobrowoutcome.Hooks(f(g(h())))`.
func (c *JobRowOutcomeClient) Use(hooks ...Hook) {
	c.hooks.JobRowOutcome = append(c.hooks.JobRowOutcome, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobrowoutcome.Intercept(f(g(h())))`.
func (c *JobRowOutcomeClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobRowOutcome = append(c.inters.JobRowOutcome, interceptors...)
}

// Create returns a builder for creating a JobRowOutcome entity.
func (c *JobRowOutcomeClient) Create() *JobRowOutcomeCreate {
	mutation := newJobRowOutcomeMutation(c.config, OpCreate)
	return &JobRowOutcomeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobRowOutcome entities.
func (c *JobRowOutcomeClient) CreateBulk(builders ...*JobRowOutcomeCreate) *JobRowOutcomeCreateBulk {
	return &JobRowOutcomeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobRowOutcomeClient) MapCreateBulk(slice any, setFunc func(*JobRowOutcomeCreate, int)) *JobRowOutcomeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobRowOutcomeCreateBulk{err: fmt.Errorf("calling to JobRowOutcomeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobRowOutcomeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobRowOutcomeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobRowOutcome.
func (c *JobRowOutcomeClient) Update() *JobRowOutcomeUpdate {
	mutation := newJobRowOutcomeMutation(c.config, OpUpdate)
	return &JobRowOutcomeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobRowOutcomeClient) UpdateOne(_m *JobRowOutcome) *JobRowOutcomeUpdateOne {
	mutation := newJobRowOutcomeMutation(c.config, OpUpdateOne, withJobRowOutcome(_m))
	return &JobRowOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobRowOutcomeClient) UpdateOneID(id uuid.UUID) *JobRowOutcomeUpdateOne {
	mutation := newJobRowOutcomeMutation(c.config, OpUpdateOne, withJobRowOutcomeID(id))
	return &JobRowOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobRowOutcome.
func (c *JobRowOutcomeClient) Delete() *JobRowOutcomeDelete {
	mutation := newJobRowOutcomeMutation(c.config, OpDelete)
	return &JobRowOutcomeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobRowOutcomeClient) DeleteOne(_m *JobRowOutcome) *JobRowOutcomeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobRowOutcomeClient) DeleteOneID(id uuid.UUID) *JobRowOutcomeDeleteOne {
	builder := c.Delete().Where(jobrowoutcome.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobRowOutcomeDeleteOne{builder}
}

// Query returns a query builder for JobRowOutcome.
func (c *JobRowOutcomeClient) Query() *JobRowOutcomeQuery {
	return &JobRowOutcomeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobRowOutcome},
		inters: c.Interceptors(),
	}
}

// Get returns a JobRowOutcome entity by its id.
func (c *JobRowOutcomeClient) Get(ctx context.Context, id uuid.UUID) (*JobRowOutcome, error) {
	return c.Query().Where(jobrowoutcome.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobRowOutcomeClient) GetX(ctx context.Context, id uuid.UUID) *JobRowOutcome {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a JobRowOutcome.
func (c *JobRowOutcomeClient) QueryJob(_m *JobRowOutcome) *ScoreJobQuery {
	query := (&ScoreJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobrowoutcome.Table, jobrowoutcome.FieldID, id),
			sqlgraph.To(scorejob.Table, scorejob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobrowoutcome.JobTable, jobrowoutcome.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobRowOutcomeClient) Hooks() []Hook {
	return c.hooks.JobRowOutcome
}

// Interceptors returns the client interceptors.
func (c *JobRowOutcomeClient) Interceptors() []Interceptor {
	return c.inters.JobRowOutcome
}

func (c *JobRowOutcomeClient) mutate(ctx context.Context, m *JobRowOutcomeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobRowOutcomeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobRowOutcomeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobRowOutcomeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobRowOutcomeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobRowOutcome mutation op: %q", m.Op())
	}
}

// PredictionClient is a client for the Prediction schema.
type PredictionClient struct {
	config
}

// NewPredictionClient returns a client for the Prediction from the given config.
func NewPredictionClient(c config) *PredictionClient {
	return &PredictionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `prediction.Hooks(f(g(h())))`.
func (c *PredictionClient) Use(hooks ...Hook) {
	c.hooks.Prediction = append(c.hooks.Prediction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `prediction.Intercept(f(g(h())))`.
func (c *PredictionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Prediction = append(c.inters.Prediction, interceptors...)
}

// Create returns a builder for creating a Prediction entity.
func (c *PredictionClient) Create() *PredictionCreate {
	mutation := newPredictionMutation(c.config, OpCreate)
	return &PredictionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Prediction entities.
func (c *PredictionClient) CreateBulk(builders ...*PredictionCreate) *PredictionCreateBulk {
	return &PredictionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PredictionClient) MapCreateBulk(slice any, setFunc func(*PredictionCreate, int)) *PredictionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PredictionCreateBulk{err: fmt.Errorf("calling to PredictionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PredictionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PredictionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Prediction.
func (c *PredictionClient) Update() *PredictionUpdate {
	mutation := newPredictionMutation(c.config, OpUpdate)
	return &PredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PredictionClient) UpdateOne(_m *Prediction) *PredictionUpdateOne {
	mutation := newPredictionMutation(c.config, OpUpdateOne, withPrediction(_m))
	return &PredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PredictionClient) UpdateOneID(id uuid.UUID) *PredictionUpdateOne {
	mutation := newPredictionMutation(c.config, OpUpdateOne, withPredictionID(id))
	return &PredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Prediction.
func (c *PredictionClient) Delete() *PredictionDelete {
	mutation := newPredictionMutation(c.config, OpDelete)
	return &PredictionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PredictionClient) DeleteOne(_m *Prediction) *PredictionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PredictionClient) DeleteOneID(id uuid.UUID) *PredictionDeleteOne {
	builder := c.Delete().Where(prediction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PredictionDeleteOne{builder}
}

// Query returns a query builder for Prediction.
func (c *PredictionClient) Query() *PredictionQuery {
	return &PredictionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePrediction},
		inters: c.Interceptors(),
	}
}

// Get returns a Prediction entity by its id.
func (c *PredictionClient) Get(ctx context.Context, id uuid.UUID) (*Prediction, error) {
	return c.Query().Where(prediction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PredictionClient) GetX(ctx context.Context, id uuid.UUID) *Prediction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCompany queries the company edge of a Prediction.
func (c *PredictionClient) QueryCompany(_m *Prediction) *CompanyQuery {
	query := (&CompanyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(prediction.Table, prediction.FieldID, id),
			sqlgraph.To(company.Table, company.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, prediction.CompanyTable, prediction.CompanyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PredictionClient) Hooks() []Hook {
	return c.hooks.Prediction
}

// Interceptors returns the client interceptors.
func (c *PredictionClient) Interceptors() []Interceptor {
	return c.inters.Prediction
}

func (c *PredictionClient) mutate(ctx context.Context, m *PredictionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PredictionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PredictionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PredictionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PredictionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Prediction mutation op: %q", m.Op())
	}
}

// ScoreJobClient is a client for the ScoreJob schema.
type ScoreJobClient struct {
	config
}

// NewScoreJobClient returns a client for the ScoreJob from the given config.
func NewScoreJobClient(c config) *ScoreJobClient {
	return &ScoreJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scorejob.Hooks(f(g(h())))`.
func (c *ScoreJobClient) Use(hooks ...Hook) {
	c.hooks.ScoreJob = append(c.hooks.ScoreJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scorejob.Intercept(f(g(h())))`.
func (c *ScoreJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScoreJob = append(c.inters.ScoreJob, interceptors...)
}

// Create returns a builder for creating a ScoreJob entity.
func (c *ScoreJobClient) Create() *ScoreJobCreate {
	mutation := newScoreJobMutation(c.config, OpCreate)
	return &ScoreJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScoreJob entities.
func (c *ScoreJobClient) CreateBulk(builders ...*ScoreJobCreate) *ScoreJobCreateBulk {
	return &ScoreJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScoreJobClient) MapCreateBulk(slice any, setFunc func(*ScoreJobCreate, int)) *ScoreJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScoreJobCreateBulk{err: fmt.Errorf("calling to ScoreJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScoreJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScoreJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScoreJob.
func (c *ScoreJobClient) Update() *ScoreJobUpdate {
	mutation := newScoreJobMutation(c.config, OpUpdate)
	return &ScoreJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScoreJobClient) UpdateOne(_m *ScoreJob) *ScoreJobUpdateOne {
	mutation := newScoreJobMutation(c.config, OpUpdateOne, withScoreJob(_m))
	return &ScoreJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScoreJobClient) UpdateOneID(id uuid.UUID) *ScoreJobUpdateOne {
	mutation := newScoreJobMutation(c.config, OpUpdateOne, withScoreJobID(id))
	return &ScoreJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScoreJob.
func (c *ScoreJobClient) Delete() *ScoreJobDelete {
	mutation := newScoreJobMutation(c.config, OpDelete)
	return &ScoreJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScoreJobClient) DeleteOne(_m *ScoreJob) *ScoreJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScoreJobClient) DeleteOneID(id uuid.UUID) *ScoreJobDeleteOne {
	builder := c.Delete().Where(scorejob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScoreJobDeleteOne{builder}
}

// Query returns a query builder for ScoreJob.
func (c *ScoreJobClient) Query() *ScoreJobQuery {
	return &ScoreJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScoreJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ScoreJob entity by its id.
func (c *ScoreJobClient) Get(ctx context.Context, id uuid.UUID) (*ScoreJob, error) {
	return c.Query().Where(scorejob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScoreJobClient) GetX(ctx context.Context, id uuid.UUID) *ScoreJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRows queries the rows edge of a ScoreJob.
func (c *ScoreJobClient) QueryRows(_m *ScoreJob) *JobRowQuery {
	query := (&JobRowClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scorejob.Table, scorejob.FieldID, id),
			sqlgraph.To(jobrow.Table, jobrow.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scorejob.RowsTable, scorejob.RowsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOutcomes queries the outcomes edge of a ScoreJob.
func (c *ScoreJobClient) QueryOutcomes(_m *ScoreJob) *JobRowOutcomeQuery {
	query := (&JobRowOutcomeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(scorejob.Table, scorejob.FieldID, id),
			sqlgraph.To(jobrowoutcome.Table, jobrowoutcome.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, scorejob.OutcomesTable, scorejob.OutcomesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ScoreJobClient) Hooks() []Hook {
	return c.hooks.ScoreJob
}

// Interceptors returns the client interceptors.
func (c *ScoreJobClient) Interceptors() []Interceptor {
	return c.inters.ScoreJob
}

func (c *ScoreJobClient) mutate(ctx context.Context, m *ScoreJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScoreJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScoreJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScoreJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScoreJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScoreJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Company, JobRow, JobRowOutcome, Prediction, ScoreJob []ent.Hook
	}
	inters struct {
		Company, JobRow, JobRowOutcome, Prediction, ScoreJob []ent.Interceptor
	}
)
