package worker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/entity"
	"github.com/openfinml/riskscore/internal/pipeline"
	"github.com/openfinml/riskscore/internal/queue"
	"github.com/openfinml/riskscore/internal/repository"
	"github.com/openfinml/riskscore/internal/scoring"
)

// fakeRegistry mirrors the transactional semantics of the real job store:
// the outcome ledger deduplicates by (job, row index), counters only move
// while the job is PROCESSING, and finalization is a compare-and-set.
type fakeRegistry struct {
	mu        sync.Mutex
	jobs      map[uuid.UUID]*entity.Job
	ledger    map[uuid.UUID]map[int]bool
	rowErrs   map[uuid.UUID][]entity.RowError
	markOrder []uuid.UUID
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		jobs:    make(map[uuid.UUID]*entity.Job),
		ledger:  make(map[uuid.UUID]map[int]bool),
		rowErrs: make(map[uuid.UUID][]entity.RowError),
	}
}

func (r *fakeRegistry) Create(_ context.Context, job *entity.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *job
	stored.State = constants.JobStatePending
	stored.SubmittedAt = time.Now()
	r.jobs[job.ID] = &stored
	r.ledger[job.ID] = make(map[int]bool)
	return nil
}

func (r *fakeRegistry) GetByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *fakeRegistry) MarkQueued(_ context.Context, id uuid.UUID, lane constants.Lane) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return common.ErrNotFound
	}
	if job.State == constants.JobStatePending {
		job.State = constants.JobStateQueued
		job.Lane = lane
	}
	return nil
}

func (r *fakeRegistry) MarkProcessing(_ context.Context, id uuid.UUID) (constants.JobState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return "", common.ErrNotFound
	}
	r.markOrder = append(r.markOrder, id)
	if job.State == constants.JobStateQueued {
		job.State = constants.JobStateProcessing
		now := time.Now()
		job.StartedAt = &now
		job.LastProgressAt = &now
	}
	return job.State, nil
}

func (r *fakeRegistry) RecordRowOutcome(_ context.Context, jobID uuid.UUID, out repository.RowOutcome) (entity.Progress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return entity.Progress{}, common.ErrNotFound
	}
	if job.State != constants.JobStateProcessing {
		return entity.Progress{}, common.ErrTerminalState
	}
	counted := false
	if _, seen := r.ledger[jobID][out.RowIndex]; !seen {
		r.ledger[jobID][out.RowIndex] = out.OK
		job.ProcessedRows++
		if out.OK {
			job.SuccessfulRows++
		} else {
			job.FailedRows++
			r.rowErrs[jobID] = append(r.rowErrs[jobID], entity.RowError{
				RowIndex: out.RowIndex, Symbol: out.Symbol, Message: out.Message,
			})
		}
		now := time.Now()
		job.LastProgressAt = &now
		counted = true
	}
	return entity.Progress{
		TotalRows:      job.TotalRows,
		ProcessedRows:  job.ProcessedRows,
		SuccessfulRows: job.SuccessfulRows,
		FailedRows:     job.FailedRows,
		Counted:        counted,
	}, nil
}

func (r *fakeRegistry) Finalize(_ context.Context, id uuid.UUID, state constants.JobState, reason *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return false, common.ErrNotFound
	}
	if job.State != constants.JobStateProcessing {
		return false, nil
	}
	job.State = state
	job.FailReason = reason
	now := time.Now()
	job.FinishedAt = &now
	return true, nil
}

func (r *fakeRegistry) FailPending(_ context.Context, id uuid.UUID, reason *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return false, common.ErrNotFound
	}
	if job.State != constants.JobStatePending {
		return false, nil
	}
	job.State = constants.JobStateFailed
	job.FailReason = reason
	now := time.Now()
	job.FinishedAt = &now
	return true, nil
}

func (r *fakeRegistry) Cancel(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return false, common.ErrNotFound
	}
	if job.State.Terminal() {
		return false, nil
	}
	job.State = constants.JobStateCancelled
	job.CancelRequested = true
	now := time.Now()
	job.FinishedAt = &now
	return true, nil
}

func (r *fakeRegistry) Errors(_ context.Context, id uuid.UUID, limit int) ([]entity.RowError, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	errs := append([]entity.RowError(nil), r.rowErrs[id]...)
	sort.Slice(errs, func(i, j int) bool { return errs[i].RowIndex < errs[j].RowIndex })
	if limit > 0 && len(errs) > limit {
		errs = errs[:limit]
	}
	return errs, nil
}

func (r *fakeRegistry) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return common.ErrNotFound
	}
	if job.State == constants.JobStateProcessing {
		return common.ErrJobProcessing
	}
	delete(r.jobs, id)
	return nil
}

func (r *fakeRegistry) StalledIDs(_ context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uuid.UUID
	for id, job := range r.jobs {
		if job.State == constants.JobStateProcessing && job.LastProgressAt != nil && job.LastProgressAt.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *fakeRegistry) snapshot(t *testing.T, id uuid.UUID) entity.Job {
	t.Helper()
	job, err := r.GetByID(context.Background(), id)
	require.NoError(t, err)
	return *job
}

type fakeRowStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID][]entity.Row
}

func newFakeRowStore() *fakeRowStore {
	return &fakeRowStore{rows: make(map[uuid.UUID][]entity.Row)}
}

func (s *fakeRowStore) InsertRows(_ context.Context, jobID uuid.UUID, rows []entity.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[jobID] = append(s.rows[jobID], rows...)
	return nil
}

func (s *fakeRowStore) FetchRange(_ context.Context, jobID uuid.UUID, start, end int) ([]entity.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.rows[jobID]
	if start < 0 || start > len(all) {
		return nil, nil
	}
	if end > len(all) {
		end = len(all)
	}
	return append([]entity.Row(nil), all[start:end]...), nil
}

// poolCompanyStore resolves symbols like the real store and can be told to
// fail permanently after a number of successful resolutions.
type poolCompanyStore struct {
	mu        sync.Mutex
	ids       map[string]uuid.UUID
	resolves  int
	failAfter int // 0 means never fail
}

func newPoolCompanyStore() *poolCompanyStore {
	return &poolCompanyStore{ids: make(map[string]uuid.UUID)}
}

func (s *poolCompanyStore) ResolveOrCreate(_ context.Context, symbol, _ string, _ constants.ScopeTier, scopeKey string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAfter > 0 && s.resolves >= s.failAfter {
		return uuid.Nil, errors.New("pq: connection refused")
	}
	s.resolves++
	key := symbol + "|" + scopeKey
	if id, ok := s.ids[key]; ok {
		return id, nil
	}
	id := uuid.New()
	s.ids[key] = id
	return id, nil
}

type poolPredictionStore struct {
	mu      sync.Mutex
	upserts int
}

func (s *poolPredictionStore) Upsert(_ context.Context, _ *entity.Prediction) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts++
	return uuid.New(), nil
}

func (s *poolPredictionStore) ListByJob(context.Context, uuid.UUID) ([]repository.JobPrediction, error) {
	return nil, nil
}

type poolFixture struct {
	registry  *fakeRegistry
	rowStore  *fakeRowStore
	companies *poolCompanyStore
	queue     *queue.MemoryQueue
	pool      *Pool
}

func newPoolFixture(t *testing.T, cfg common.WorkerConfig, opts ...pipeline.Option) *poolFixture {
	t.Helper()
	registry := newFakeRegistry()
	rowStore := newFakeRowStore()
	companies := newPoolCompanyStore()
	q := queue.NewMemoryQueue(nil)
	proc := pipeline.NewProcessor(nil, companies, &poolPredictionStore{}, opts...)
	return &poolFixture{
		registry:  registry,
		rowStore:  rowStore,
		companies: companies,
		queue:     q,
		pool:      NewPool(nil, q, registry, rowStore, proc, cfg),
	}
}

func testWorkerConfig() common.WorkerConfig {
	return common.WorkerConfig{
		Workers:        2,
		RowConcurrency: 4,
		ChunkSize:      25,
		FastBurst:      8,
		PollInterval:   5 * time.Millisecond,
	}
}

// seedJob registers a QUEUED job with the given rows and enqueues its chunks.
func (f *poolFixture) seedJob(t *testing.T, kind constants.JobKind, lane constants.Lane, rows []entity.Row, chunkSize int) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	job := &entity.Job{
		ID:          uuid.New(),
		Kind:        kind,
		FileName:    "ratios.csv",
		TotalRows:   len(rows),
		OwnerUserID: uuid.New(),
		OwnerRole:   constants.RoleUser,
	}
	require.NoError(t, f.registry.Create(ctx, job))
	require.NoError(t, f.rowStore.InsertRows(ctx, job.ID, rows))
	require.NoError(t, f.registry.MarkQueued(ctx, job.ID, lane))
	for start := 0; start < len(rows); start += chunkSize {
		end := start + chunkSize
		if end > len(rows) {
			end = len(rows)
		}
		require.NoError(t, f.queue.Enqueue(ctx, entity.WorkItem{
			JobID: job.ID, Lane: lane, StartIndex: start, EndIndex: end,
		}))
	}
	return job.ID
}

func makeRows(n int) []entity.Row {
	rows := make([]entity.Row, n)
	for i := range rows {
		rows[i] = entity.Row{
			Index:  i,
			Symbol: fmt.Sprintf("CO%04d", i),
			Period: "2025",
			Ratios: map[string]string{"ebit_to_assets": "0.05"},
		}
	}
	return rows
}

func (f *poolFixture) waitTerminal(t *testing.T, jobID uuid.UUID) entity.Job {
	t.Helper()
	require.Eventually(t, func() bool {
		return f.registry.snapshot(t, jobID).State.Terminal()
	}, 5*time.Second, 10*time.Millisecond, "job never reached a terminal state")
	return f.registry.snapshot(t, jobID)
}

func TestPoolProcessesJobToCompletion(t *testing.T) {
	f := newPoolFixture(t, testWorkerConfig())
	jobID := f.seedJob(t, constants.JobKindAnnual, constants.LaneStandard, makeRows(100), 25)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.pool.Start(ctx)
	defer f.pool.Shutdown(context.Background())

	job := f.waitTerminal(t, jobID)
	assert.Equal(t, constants.JobStateCompleted, job.State)
	assert.Equal(t, 100, job.ProcessedRows)
	assert.Equal(t, 100, job.SuccessfulRows)
	assert.Zero(t, job.FailedRows)
	assert.Equal(t, job.ProcessedRows, job.SuccessfulRows+job.FailedRows)
	assert.NotNil(t, job.FinishedAt)
	assert.Nil(t, job.FailReason)
}

// trippingScorer fails exactly the rows carrying a sentinel feature value,
// letting a test reach a scoring failure past validation.
type trippingScorer struct {
	inner   pipeline.Scorer
	trigger float64
}

func (s trippingScorer) Features() map[string]float64 { return s.inner.Features() }

func (s trippingScorer) Score(vector map[string]float64) (scoring.Result, error) {
	if vector["ebit_to_assets"] == s.trigger {
		return scoring.Result{}, errors.New("model: vector out of domain")
	}
	return s.inner.Score(vector)
}

func TestFailedRowsDoNotAbortJob(t *testing.T) {
	f := newPoolFixture(t, testWorkerConfig(), pipeline.WithScorerFor(func(kind constants.JobKind) pipeline.Scorer {
		return trippingScorer{inner: scoring.ModelFor(kind), trigger: 0.424242}
	}))

	rows := makeRows(100)
	rows[10].Ratios["ebit_to_assets"] = "not-a-number" // validation rejection
	rows[50].Symbol = ""                               // validation rejection
	rows[90].Ratios["ebit_to_assets"] = "0.424242"     // scoring failure
	jobID := f.seedJob(t, constants.JobKindAnnual, constants.LaneStandard, rows, 25)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.pool.Start(ctx)
	defer f.pool.Shutdown(context.Background())

	job := f.waitTerminal(t, jobID)
	assert.Equal(t, constants.JobStateCompleted, job.State, "row failures never fail the job")
	assert.Equal(t, 100, job.ProcessedRows)
	assert.Equal(t, 97, job.SuccessfulRows)
	assert.Equal(t, 3, job.FailedRows)

	errs, err := f.registry.Errors(context.Background(), jobID, 0)
	require.NoError(t, err)
	require.Len(t, errs, 3)
	assert.Equal(t, 10, errs[0].RowIndex)
	assert.Equal(t, 50, errs[1].RowIndex)
	assert.Equal(t, 90, errs[2].RowIndex)
	assert.Contains(t, errs[2].Message, "scoring")
}

func TestFatalErrorFailsJobPreservingProgress(t *testing.T) {
	cfg := testWorkerConfig()
	cfg.Workers = 1
	cfg.RowConcurrency = 1 // sequential rows make the cut point exact
	f := newPoolFixture(t, cfg)
	f.companies.failAfter = 400

	jobID := f.seedJob(t, constants.JobKindAnnual, constants.LaneBulk, makeRows(1000), 100)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.pool.Start(ctx)
	defer f.pool.Shutdown(context.Background())

	job := f.waitTerminal(t, jobID)
	assert.Equal(t, constants.JobStateFailed, job.State)
	require.NotNil(t, job.FailReason)
	assert.Equal(t, string(constants.FailReasonFatal), *job.FailReason)
	assert.Equal(t, 400, job.ProcessedRows, "progress before the fatal error is preserved")
	assert.Equal(t, job.ProcessedRows, job.SuccessfulRows+job.FailedRows)
}

func TestRedeliveredChunkCountsEachRowOnce(t *testing.T) {
	f := newPoolFixture(t, testWorkerConfig())
	jobID := f.seedJob(t, constants.JobKindAnnual, constants.LaneFast, makeRows(50), 25)
	// Simulate at-least-once delivery: every chunk arrives twice.
	for start := 0; start < 50; start += 25 {
		require.NoError(t, f.queue.Enqueue(context.Background(), entity.WorkItem{
			JobID: jobID, Lane: constants.LaneFast, StartIndex: start, EndIndex: start + 25,
		}))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.pool.Start(ctx)
	defer f.pool.Shutdown(context.Background())

	job := f.waitTerminal(t, jobID)
	require.Eventually(t, func() bool {
		depths, err := f.queue.Depths(context.Background())
		require.NoError(t, err)
		return depths[constants.LaneFast] == 0
	}, 5*time.Second, 10*time.Millisecond, "redelivered chunks were never drained")

	job = f.registry.snapshot(t, jobID)
	assert.Equal(t, constants.JobStateCompleted, job.State)
	assert.Equal(t, 50, job.ProcessedRows, "duplicate deliveries must not double count")
	assert.Equal(t, 50, job.SuccessfulRows)
}

func TestCancelledJobChunksAreDropped(t *testing.T) {
	f := newPoolFixture(t, testWorkerConfig())
	jobID := f.seedJob(t, constants.JobKindAnnual, constants.LaneStandard, makeRows(100), 25)

	cancelled, err := f.registry.Cancel(context.Background(), jobID)
	require.NoError(t, err)
	require.True(t, cancelled)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.pool.Start(ctx)
	defer f.pool.Shutdown(context.Background())

	require.Eventually(t, func() bool {
		depths, derr := f.queue.Depths(context.Background())
		require.NoError(t, derr)
		return depths[constants.LaneStandard] == 0
	}, 5*time.Second, 10*time.Millisecond, "chunks of a cancelled job must be acked away")

	job := f.registry.snapshot(t, jobID)
	assert.Equal(t, constants.JobStateCancelled, job.State)
	assert.Zero(t, job.ProcessedRows, "no rows processed after cancellation landed")
}

func TestChunkAheadOfQueuedFlipDoesNotStartJob(t *testing.T) {
	f := newPoolFixture(t, testWorkerConfig())
	ctx := context.Background()

	// Chunks land on the lane before the PENDING->QUEUED flip commits; the
	// worker must hand them back without stamping a start time.
	rows := makeRows(25)
	job := &entity.Job{
		ID:          uuid.New(),
		Kind:        constants.JobKindAnnual,
		FileName:    "ratios.csv",
		TotalRows:   len(rows),
		OwnerUserID: uuid.New(),
		OwnerRole:   constants.RoleUser,
	}
	require.NoError(t, f.registry.Create(ctx, job))
	require.NoError(t, f.rowStore.InsertRows(ctx, job.ID, rows))
	require.NoError(t, f.queue.Enqueue(ctx, entity.WorkItem{
		JobID: job.ID, Lane: constants.LaneStandard, StartIndex: 0, EndIndex: len(rows),
	}))

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	f.pool.Start(runCtx)
	defer f.pool.Shutdown(context.Background())

	require.Eventually(t, func() bool {
		f.registry.mu.Lock()
		defer f.registry.mu.Unlock()
		return len(f.registry.markOrder) > 0
	}, 5*time.Second, 10*time.Millisecond, "worker never saw the early chunk")

	snap := f.registry.snapshot(t, job.ID)
	assert.Equal(t, constants.JobStatePending, snap.State)
	assert.Nil(t, snap.StartedAt, "a job still pending must not carry a start time")
	assert.Nil(t, snap.LastProgressAt)

	// Once the flip lands, the handed-back chunk is redelivered and the job runs.
	require.NoError(t, f.registry.MarkQueued(ctx, job.ID, constants.LaneStandard))
	done := f.waitTerminal(t, job.ID)
	assert.Equal(t, constants.JobStateCompleted, done.State)
	assert.Equal(t, 25, done.ProcessedRows)
	assert.NotNil(t, done.StartedAt)
}

func TestFastLaneServedBeforeBulk(t *testing.T) {
	cfg := testWorkerConfig()
	cfg.Workers = 1
	f := newPoolFixture(t, cfg)

	bulkID := f.seedJob(t, constants.JobKindAnnual, constants.LaneBulk, makeRows(25), 25)
	fastID := f.seedJob(t, constants.JobKindAnnual, constants.LaneFast, makeRows(25), 25)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	f.pool.Start(ctx)
	defer f.pool.Shutdown(context.Background())

	f.waitTerminal(t, fastID)
	f.waitTerminal(t, bulkID)

	f.registry.mu.Lock()
	order := append([]uuid.UUID(nil), f.registry.markOrder...)
	f.registry.mu.Unlock()
	require.NotEmpty(t, order)
	assert.Equal(t, fastID, order[0], "the fast lane is drained before bulk even when bulk arrived first")
}

func TestResizeGrowsAndShrinksPool(t *testing.T) {
	f := newPoolFixture(t, testWorkerConfig())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.pool.Start(ctx)
	assert.Equal(t, 2, f.pool.Size())

	f.pool.Resize(ctx, 5)
	assert.Equal(t, 5, f.pool.Size())

	f.pool.Resize(ctx, 1)
	assert.Equal(t, 1, f.pool.Size())

	f.pool.Shutdown(context.Background())
	assert.Zero(t, f.pool.Size())
}
