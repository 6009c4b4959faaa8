package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/entity"
)

func seedProcessingJob(t *testing.T, registry *memRegistry, lastProgress time.Time) uuid.UUID {
	t.Helper()
	job := &entity.Job{
		ID:          uuid.New(),
		Kind:        constants.JobKindAnnual,
		TotalRows:   100,
		OwnerUserID: uuid.New(),
		OwnerRole:   constants.RoleUser,
	}
	require.NoError(t, registry.Create(context.Background(), job))
	registry.mu.Lock()
	stored := registry.jobs[job.ID]
	stored.State = constants.JobStateProcessing
	stored.LastProgressAt = &lastProgress
	registry.mu.Unlock()
	return job.ID
}

func TestWatchdogFailsStalledJobs(t *testing.T) {
	registry := newMemRegistry()
	stalledID := seedProcessingJob(t, registry, time.Now().Add(-30*time.Minute))
	activeID := seedProcessingJob(t, registry, time.Now().Add(-30*time.Second))

	w := NewWatchdog(registry, 10*time.Minute, nil)
	w.Sweep(context.Background())

	stalled, err := registry.GetByID(context.Background(), stalledID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStateFailed, stalled.State)
	require.NotNil(t, stalled.FailReason)
	assert.Equal(t, string(constants.FailReasonStalled), *stalled.FailReason,
		"stalls are distinguishable from fatal pipeline errors")

	active, err := registry.GetByID(context.Background(), activeID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStateProcessing, active.State, "jobs with recent progress are left alone")
}

func TestWatchdogIgnoresNonProcessingJobs(t *testing.T) {
	registry := newMemRegistry()
	job := &entity.Job{
		ID: uuid.New(), Kind: constants.JobKindAnnual, TotalRows: 10,
		OwnerUserID: uuid.New(), OwnerRole: constants.RoleUser,
	}
	require.NoError(t, registry.Create(context.Background(), job))

	w := NewWatchdog(registry, time.Minute, nil)
	w.Sweep(context.Background())

	got, err := registry.GetByID(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatePending, got.State)
}
