package export

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/entity"
	"github.com/openfinml/riskscore/internal/repository"
)

type stubRegistry struct {
	repository.JobRepository
	job *entity.Job
}

func (s *stubRegistry) GetByID(_ context.Context, id uuid.UUID) (*entity.Job, error) {
	if s.job == nil || s.job.ID != id {
		return nil, common.ErrNotFound
	}
	return s.job, nil
}

type stubPredictions struct {
	repository.PredictionRepository
	preds []repository.JobPrediction
}

func (s *stubPredictions) ListByJob(context.Context, uuid.UUID) ([]repository.JobPrediction, error) {
	return s.preds, nil
}

func TestPredictionsXLSX(t *testing.T) {
	jobID := uuid.New()
	registry := &stubRegistry{job: &entity.Job{
		ID: jobID, Kind: constants.JobKindAnnual, State: constants.JobStateCompleted,
	}}
	predictions := &stubPredictions{preds: []repository.JobPrediction{
		{Symbol: "ACME", Period: "2025", Probability: 0.81, Classification: "high", Confidence: 0.77, UpdatedAt: time.Now()},
		{Symbol: "GLOBEX", Period: "2025", Probability: 0.12, Classification: "low", Confidence: 0.91, UpdatedAt: time.Now()},
	}}

	content, name, err := NewService(registry, predictions, nil).PredictionsXLSX(context.Background(), jobID)
	require.NoError(t, err)
	assert.Contains(t, name, jobID.String())

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Predictions")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per prediction")
	assert.Equal(t, "Symbol", rows[0][0])
	assert.Equal(t, "ACME", rows[1][0])
	assert.Equal(t, "high", rows[1][3])
	assert.Equal(t, "GLOBEX", rows[2][0])
}

func TestPredictionsXLSXEmptyJob(t *testing.T) {
	jobID := uuid.New()
	registry := &stubRegistry{job: &entity.Job{ID: jobID, Kind: constants.JobKindAnnual}}

	_, _, err := NewService(registry, &stubPredictions{}, nil).PredictionsXLSX(context.Background(), jobID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestPredictionsXLSXUnknownJob(t *testing.T) {
	_, _, err := NewService(&stubRegistry{}, &stubPredictions{}, nil).PredictionsXLSX(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
