package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/entity"
	"github.com/openfinml/riskscore/internal/queue"
	"github.com/openfinml/riskscore/internal/repository"
	"github.com/openfinml/riskscore/internal/router"
)

type memRegistry struct {
	mu      sync.Mutex
	jobs    map[uuid.UUID]*entity.Job
	rowErrs map[uuid.UUID][]entity.RowError
}

func newMemRegistry() *memRegistry {
	return &memRegistry{
		jobs:    make(map[uuid.UUID]*entity.Job),
		rowErrs: make(map[uuid.UUID][]entity.RowError),
	}
}

func (r *memRegistry) Create(_ context.Context, job *entity.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *job
	stored.State = constants.JobStatePending
	stored.SubmittedAt = time.Now()
	r.jobs[job.ID] = &stored
	return nil
}

func (r *memRegistry) GetByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *memRegistry) MarkQueued(_ context.Context, id uuid.UUID, lane constants.Lane) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return common.ErrNotFound
	}
	job.State = constants.JobStateQueued
	job.Lane = lane
	return nil
}

func (r *memRegistry) MarkProcessing(_ context.Context, id uuid.UUID) (constants.JobState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return "", common.ErrNotFound
	}
	if job.State == constants.JobStateQueued {
		job.State = constants.JobStateProcessing
	}
	return job.State, nil
}

func (r *memRegistry) RecordRowOutcome(_ context.Context, _ uuid.UUID, _ repository.RowOutcome) (entity.Progress, error) {
	return entity.Progress{}, errors.New("not used in service tests")
}

func (r *memRegistry) Finalize(_ context.Context, id uuid.UUID, state constants.JobState, reason *string) (bool, error) {
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
	return true, nil
}

func (r *memRegistry) FailPending(_ context.Context, id uuid.UUID, reason *string) (bool, error) {
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
	return true, nil
}

func (r *memRegistry) Cancel(_ context.Context, id uuid.UUID) (bool, error) {
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
	return true, nil
}

func (r *memRegistry) Errors(_ context.Context, id uuid.UUID, limit int) ([]entity.RowError, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	errs := r.rowErrs[id]
	if limit > 0 && len(errs) > limit {
		errs = errs[:limit]
	}
	return errs, nil
}

func (r *memRegistry) Delete(_ context.Context, id uuid.UUID) error {
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

func (r *memRegistry) StalledIDs(_ context.Context, cutoff time.Time) ([]uuid.UUID, error) {
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

func (r *memRegistry) setState(id uuid.UUID, state constants.JobState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[id].State = state
}

type memRows struct {
	mu   sync.Mutex
	rows map[uuid.UUID][]entity.Row
	err  error
}

func (s *memRows) InsertRows(_ context.Context, jobID uuid.UUID, rows []entity.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	if s.rows == nil {
		s.rows = make(map[uuid.UUID][]entity.Row)
	}
	s.rows[jobID] = append(s.rows[jobID], rows...)
	return nil
}

func (s *memRows) FetchRange(_ context.Context, jobID uuid.UUID, start, end int) ([]entity.Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all := s.rows[jobID]
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func routerConfig() common.RouterConfig {
	return common.RouterConfig{FastMaxRows: 500, BulkMinRows: 10000, FastDepthCap: 32}
}

func newTestService(registry *memRegistry, rows *memRows, q queue.Queue) *Service {
	return NewService(registry, rows, q, router.New(routerConfig()),
		common.WorkerConfig{ChunkSize: 100}, nil)
}

func submitRows(n int) []entity.Row {
	rows := make([]entity.Row, n)
	for i := range rows {
		rows[i] = entity.Row{Index: i, Symbol: fmt.Sprintf("CO%04d", i), Period: "2025"}
	}
	return rows
}

func submitter() entity.Identity {
	return entity.Identity{UserID: uuid.New(), Role: constants.RoleUser}
}

func drain(t *testing.T, q queue.Queue, lane constants.Lane) []entity.WorkItem {
	t.Helper()
	var items []entity.WorkItem
	for {
		d, err := q.Dequeue(context.Background(), lane)
		require.NoError(t, err)
		if d == nil {
			return items
		}
		items = append(items, d.Item)
		require.NoError(t, d.Ack())
	}
}

func TestSubmitRoutesAndChunks(t *testing.T) {
	registry := newMemRegistry()
	q := queue.NewMemoryQueue(nil)
	svc := newTestService(registry, &memRows{}, q)

	job, err := svc.Submit(context.Background(), SubmitRequest{
		Kind: "annual", FileName: "small.csv", Rows: submitRows(250), Identity: submitter(),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.JobStateQueued, job.State)
	assert.Equal(t, constants.LaneFast, job.Lane, "250 rows fits the fast lane")
	assert.Equal(t, constants.JobKindAnnual, job.Kind)

	items := drain(t, q, constants.LaneFast)
	require.Len(t, items, 3, "250 rows at chunk size 100 is 3 chunks")
	assert.Equal(t, 0, items[0].StartIndex)
	assert.Equal(t, 100, items[0].EndIndex)
	assert.Equal(t, 250, items[2].EndIndex)
	for _, item := range items {
		assert.Equal(t, job.ID, item.JobID)
	}
}

func TestSubmitLargeJobGoesToBulk(t *testing.T) {
	registry := newMemRegistry()
	svc := newTestService(registry, &memRows{}, queue.NewMemoryQueue(nil))

	job, err := svc.Submit(context.Background(), SubmitRequest{
		Kind: "QUARTERLY", Rows: submitRows(10000), Identity: submitter(),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.LaneBulk, job.Lane)
}

func TestSubmitBorderlineDemotedWhenFastLaneDeep(t *testing.T) {
	registry := newMemRegistry()
	q := queue.NewMemoryQueue(nil)
	// Fill the fast lane past the depth cap.
	for i := 0; i < 40; i++ {
		require.NoError(t, q.Enqueue(context.Background(), entity.WorkItem{
			JobID: uuid.New(), Lane: constants.LaneFast, StartIndex: 0, EndIndex: 1,
		}))
	}
	svc := newTestService(registry, &memRows{}, q)

	job, err := svc.Submit(context.Background(), SubmitRequest{
		Kind: "ANNUAL", Rows: submitRows(530), Identity: submitter(),
	})
	require.NoError(t, err)
	assert.Equal(t, constants.LaneStandard, job.Lane,
		"borderline jobs stay out of a congested fast lane")
}

func TestSubmitRejectsBadEnvelopes(t *testing.T) {
	svc := newTestService(newMemRegistry(), &memRows{}, queue.NewMemoryQueue(nil))

	cases := []struct {
		name string
		req  SubmitRequest
	}{
		{"no rows", SubmitRequest{Kind: "ANNUAL", Identity: submitter()}},
		{"unknown kind", SubmitRequest{Kind: "MONTHLY", Rows: submitRows(1), Identity: submitter()}},
		{"missing identity", SubmitRequest{Kind: "ANNUAL", Rows: submitRows(1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tc.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrValidation))
		})
	}
}

func TestSubmitFailsJobWhenRowsCannotPersist(t *testing.T) {
	registry := newMemRegistry()
	rows := &memRows{err: errors.New("pq: out of disk")}
	svc := newTestService(registry, rows, queue.NewMemoryQueue(nil))

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Kind: "ANNUAL", Rows: submitRows(10), Identity: submitter(),
	})
	require.Error(t, err)

	// The one job created must not linger in PENDING.
	registry.mu.Lock()
	defer registry.mu.Unlock()
	require.Len(t, registry.jobs, 1)
	for _, job := range registry.jobs {
		assert.Equal(t, constants.JobStateFailed, job.State)
		require.NotNil(t, job.FailReason)
		assert.Equal(t, string(constants.FailReasonFatal), *job.FailReason)
	}
}

type flakyQueue struct {
	queue.Queue
	enqueueErr error
}

func (q *flakyQueue) Enqueue(ctx context.Context, item entity.WorkItem) error {
	if q.enqueueErr != nil {
		return q.enqueueErr
	}
	return q.Queue.Enqueue(ctx, item)
}

func TestSubmitFailsJobWhenEnqueueFails(t *testing.T) {
	registry := newMemRegistry()
	q := &flakyQueue{Queue: queue.NewMemoryQueue(nil), enqueueErr: errors.New("nats: connection closed")}
	svc := newTestService(registry, &memRows{}, q)

	_, err := svc.Submit(context.Background(), SubmitRequest{
		Kind: "ANNUAL", Rows: submitRows(10), Identity: submitter(),
	})
	require.Error(t, err)

	// The job never reached QUEUED, so the PENDING-gated failure path must
	// have fired; the PROCESSING-gated Finalize would leave it stranded.
	registry.mu.Lock()
	defer registry.mu.Unlock()
	require.Len(t, registry.jobs, 1)
	for _, job := range registry.jobs {
		assert.Equal(t, constants.JobStateFailed, job.State)
		require.NotNil(t, job.FailReason)
		assert.Equal(t, string(constants.FailReasonFatal), *job.FailReason)
	}
}

func TestGetStatusReportsProgressAndETA(t *testing.T) {
	registry := newMemRegistry()
	svc := newTestService(registry, &memRows{}, queue.NewMemoryQueue(nil))

	job, err := svc.Submit(context.Background(), SubmitRequest{
		Kind: "ANNUAL", Rows: submitRows(100), Identity: submitter(),
	})
	require.NoError(t, err)

	started := time.Now().Add(-time.Minute)
	registry.mu.Lock()
	stored := registry.jobs[job.ID]
	stored.State = constants.JobStateProcessing
	stored.StartedAt = &started
	stored.ProcessedRows = 50
	stored.SuccessfulRows = 48
	stored.FailedRows = 2
	registry.rowErrs[job.ID] = []entity.RowError{
		{RowIndex: 3, Symbol: "CO0003", Message: "ratio working_capital_to_assets: not a number"},
		{RowIndex: 9, Symbol: "CO0009", Message: "period is required"},
	}
	registry.mu.Unlock()

	st, err := svc.GetStatus(context.Background(), job.ID)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, st.ProgressPct, 0.01)
	require.Len(t, st.Errors, 2)
	require.NotNil(t, st.ETA)
	// 50 rows in one minute leaves roughly a minute for the other 50.
	assert.InDelta(t, time.Minute.Seconds(), st.ETA.Seconds(), 5.0)
}

func TestGetStatusUnknownJob(t *testing.T) {
	svc := newTestService(newMemRegistry(), &memRows{}, queue.NewMemoryQueue(nil))
	_, err := svc.GetStatus(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestCancelTerminalJobRejected(t *testing.T) {
	registry := newMemRegistry()
	svc := newTestService(registry, &memRows{}, queue.NewMemoryQueue(nil))

	job, err := svc.Submit(context.Background(), SubmitRequest{
		Kind: "ANNUAL", Rows: submitRows(5), Identity: submitter(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), job.ID))
	err = svc.Cancel(context.Background(), job.ID)
	assert.True(t, errors.Is(err, common.ErrTerminalState), "second cancel hits a terminal job")
}

func TestDeleteRejectedWhileProcessing(t *testing.T) {
	registry := newMemRegistry()
	svc := newTestService(registry, &memRows{}, queue.NewMemoryQueue(nil))

	job, err := svc.Submit(context.Background(), SubmitRequest{
		Kind: "ANNUAL", Rows: submitRows(5), Identity: submitter(),
	})
	require.NoError(t, err)
	registry.setState(job.ID, constants.JobStateProcessing)

	err = svc.Delete(context.Background(), job.ID)
	assert.True(t, errors.Is(err, common.ErrJobProcessing))

	registry.setState(job.ID, constants.JobStateCompleted)
	require.NoError(t, svc.Delete(context.Background(), job.ID))
	_, err = svc.GetStatus(context.Background(), job.ID)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestEstimateETA(t *testing.T) {
	now := time.Now()
	started := now.Add(-10 * time.Second)

	processing := &entity.Job{
		State: constants.JobStateProcessing, StartedAt: &started,
		TotalRows: 100, ProcessedRows: 25,
	}
	assert.Equal(t, 30*time.Second, estimateETA(processing, now))

	queued := &entity.Job{State: constants.JobStateQueued, TotalRows: 100}
	assert.Zero(t, estimateETA(queued, now), "no estimate before processing starts")

	fresh := &entity.Job{State: constants.JobStateProcessing, StartedAt: &started, TotalRows: 100}
	assert.Zero(t, estimateETA(fresh, now), "no estimate before the first row lands")
}
