package queue

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/entity"
)

func item(lane constants.Lane, start, end int) entity.WorkItem {
	return entity.WorkItem{JobID: uuid.New(), Lane: lane, StartIndex: start, EndIndex: end}
}

func TestMemoryQueueFIFOWithinLane(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue(nil)

	first := item(constants.LaneFast, 0, 100)
	second := item(constants.LaneFast, 100, 200)
	require.NoError(t, q.Enqueue(ctx, first))
	require.NoError(t, q.Enqueue(ctx, second))

	d1, err := q.Dequeue(ctx, constants.LaneFast)
	require.NoError(t, err)
	require.NotNil(t, d1)
	assert.Equal(t, first.JobID, d1.Item.JobID)
	require.NoError(t, d1.Ack())

	d2, err := q.Dequeue(ctx, constants.LaneFast)
	require.NoError(t, err)
	require.NotNil(t, d2)
	assert.Equal(t, second.JobID, d2.Item.JobID)
}

func TestMemoryQueueLanesAreIndependent(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue(nil)

	require.NoError(t, q.Enqueue(ctx, item(constants.LaneBulk, 0, 1000)))

	d, err := q.Dequeue(ctx, constants.LaneFast)
	require.NoError(t, err)
	assert.Nil(t, d, "fast lane should be empty")

	d, err = q.Dequeue(ctx, constants.LaneBulk)
	require.NoError(t, err)
	require.NotNil(t, d)
}

func TestMemoryQueueNakRedeliversAtHead(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue(nil)

	first := item(constants.LaneStandard, 0, 250)
	second := item(constants.LaneStandard, 250, 500)
	require.NoError(t, q.Enqueue(ctx, first))
	require.NoError(t, q.Enqueue(ctx, second))

	d, err := q.Dequeue(ctx, constants.LaneStandard)
	require.NoError(t, err)
	require.NoError(t, d.Nak())

	redelivered, err := q.Dequeue(ctx, constants.LaneStandard)
	require.NoError(t, err)
	require.NotNil(t, redelivered)
	assert.Equal(t, first.JobID, redelivered.Item.JobID, "naked item should come back before later items")
}

func TestMemoryQueueDepths(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue(nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, q.Enqueue(ctx, item(constants.LaneFast, i*10, i*10+10)))
	}
	require.NoError(t, q.Enqueue(ctx, item(constants.LaneBulk, 0, 5000)))

	depths, err := q.Depths(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, depths[constants.LaneFast])
	assert.Equal(t, 0, depths[constants.LaneStandard])
	assert.Equal(t, 1, depths[constants.LaneBulk])
}

func TestMemoryQueueShutdownStopsDelivery(t *testing.T) {
	ctx := context.Background()
	q := NewMemoryQueue(nil)

	require.NoError(t, q.Enqueue(ctx, item(constants.LaneFast, 0, 10)))
	q.Shutdown(ctx)

	d, err := q.Dequeue(ctx, constants.LaneFast)
	require.NoError(t, err)
	assert.Nil(t, d)
	assert.Error(t, q.Enqueue(ctx, item(constants.LaneFast, 10, 20)))
}
