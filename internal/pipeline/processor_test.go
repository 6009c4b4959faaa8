package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/entity"
	"github.com/openfinml/riskscore/internal/repository"
)

// fakeCompanyStore honors the uniqueness contract of the real store: exactly
// one creator wins per (symbol, scope key), everyone else resolves to the
// winner's id.
type fakeCompanyStore struct {
	mu      sync.Mutex
	ids     map[string]uuid.UUID
	created int
	err     error
}

func newFakeCompanyStore() *fakeCompanyStore {
	return &fakeCompanyStore{ids: make(map[string]uuid.UUID)}
}

func (f *fakeCompanyStore) ResolveOrCreate(_ context.Context, symbol, _ string, _ constants.ScopeTier, scopeKey string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return uuid.Nil, f.err
	}
	key := symbol + "|" + scopeKey
	if id, ok := f.ids[key]; ok {
		return id, nil
	}
	id := uuid.New()
	f.ids[key] = id
	f.created++
	return id, nil
}

type fakePredictionStore struct {
	mu      sync.Mutex
	records map[string]*entity.Prediction
	err     error
}

func newFakePredictionStore() *fakePredictionStore {
	return &fakePredictionStore{records: make(map[string]*entity.Prediction)}
}

func (f *fakePredictionStore) Upsert(_ context.Context, p *entity.Prediction) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return uuid.Nil, f.err
	}
	key := fmt.Sprintf("%s|%s|%s", p.CompanyID, p.Period, p.ScopeKey)
	if existing, ok := f.records[key]; ok {
		existing.Probability = p.Probability
		existing.Classification = p.Classification
		existing.Confidence = p.Confidence
		return existing.ID, nil
	}
	stored := *p
	stored.ID = uuid.New()
	f.records[key] = &stored
	return stored.ID, nil
}

func (f *fakePredictionStore) ListByJob(context.Context, uuid.UUID) ([]repository.JobPrediction, error) {
	return nil, nil
}

func testJob(kind constants.JobKind) *entity.Job {
	return &entity.Job{
		ID:          uuid.New(),
		Kind:        kind,
		State:       constants.JobStateProcessing,
		OwnerUserID: uuid.New(),
		OwnerRole:   constants.RoleUser,
	}
}

func TestProcessRowRecordsPrediction(t *testing.T) {
	companies := newFakeCompanyStore()
	predictions := newFakePredictionStore()
	p := NewProcessor(nil, companies, predictions)
	job := testJob(constants.JobKindAnnual)

	out, err := p.ProcessRow(context.Background(), job, entity.Row{
		Index: 7, Symbol: "ACME", Period: "2025",
		Ratios: map[string]string{"ebit_to_assets": "-0.2"},
	})
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, 7, out.RowIndex)
	assert.Equal(t, 1, companies.created)
	assert.Len(t, predictions.records, 1)
}

func TestProcessRowRejectionsDoNotTouchStores(t *testing.T) {
	companies := newFakeCompanyStore()
	predictions := newFakePredictionStore()
	p := NewProcessor(nil, companies, predictions)
	job := testJob(constants.JobKindAnnual)

	rows := []entity.Row{
		{Index: 0, Symbol: "", Period: "2025"},
		{Index: 1, Symbol: "ACME", Period: "bad-period"},
		{Index: 2, Symbol: "ACME", Period: "2025", Ratios: map[string]string{"ebit_to_assets": "abc"}},
	}
	for _, row := range rows {
		out, err := p.ProcessRow(context.Background(), job, row)
		require.NoError(t, err, "row rejection must not surface as an error")
		assert.False(t, out.OK)
		assert.NotEmpty(t, out.Message)
	}
	assert.Zero(t, companies.created)
	assert.Empty(t, predictions.records)
}

func TestProcessRowStorageFailureIsFatal(t *testing.T) {
	companies := newFakeCompanyStore()
	companies.err = errors.New("connection refused")
	p := NewProcessor(nil, companies, newFakePredictionStore())
	job := testJob(constants.JobKindAnnual)

	_, err := p.ProcessRow(context.Background(), job, entity.Row{
		Index: 0, Symbol: "ACME", Period: "2025",
	})
	require.Error(t, err)
	assert.True(t, common.IsFatal(err), "store errors abort the job, not just the row")
}

func TestConcurrentRowsCreateExactlyOneCompany(t *testing.T) {
	companies := newFakeCompanyStore()
	predictions := newFakePredictionStore()
	p := NewProcessor(nil, companies, predictions)
	job := testJob(constants.JobKindAnnual)

	const m = 50
	var g errgroup.Group
	for i := 0; i < m; i++ {
		i := i
		g.Go(func() error {
			_, err := p.ProcessRow(context.Background(), job, entity.Row{
				Index: i, Symbol: "ACME", Period: fmt.Sprintf("%d", 1975+i),
			})
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 1, companies.created, "concurrent submissions of one symbol create exactly one company")
	assert.Len(t, predictions.records, m, "every period gets its own prediction")
}

func TestResubmissionUpdatesInPlace(t *testing.T) {
	companies := newFakeCompanyStore()
	predictions := newFakePredictionStore()
	p := NewProcessor(nil, companies, predictions)
	job := testJob(constants.JobKindQuarterly)

	row := entity.Row{Index: 0, Symbol: "ACME", Period: "2025-Q1",
		Ratios: map[string]string{"ebit_to_assets": "0.05"}}
	_, err := p.ProcessRow(context.Background(), job, row)
	require.NoError(t, err)

	row.Ratios["ebit_to_assets"] = "-0.30"
	_, err = p.ProcessRow(context.Background(), job, row)
	require.NoError(t, err)

	assert.Len(t, predictions.records, 1, "same (company, period, scope) updates, never duplicates")
}
