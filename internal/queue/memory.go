package queue

import (
	"context"
	"log/slog"
	"sync"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/entity"
)

// MemoryQueue is an in-process Queue for single-node deployments and tests.
// Items survive a Nak (redelivered at the head of their lane) but not a
// process restart; production deployments use the JetStream-backed queue.
type MemoryQueue struct {
	logger *slog.Logger

	mu     sync.Mutex
	lanes  map[constants.Lane][]entity.WorkItem
	closed bool
}

func NewMemoryQueue(logger *slog.Logger) *MemoryQueue {
	if logger == nil {
		logger = slog.Default()
	}
	lanes := make(map[constants.Lane][]entity.WorkItem, len(constants.LanesByPriority))
	for _, l := range constants.LanesByPriority {
		lanes[l] = nil
	}
	return &MemoryQueue{logger: logger, lanes: lanes}
}

func (q *MemoryQueue) Enqueue(_ context.Context, item entity.WorkItem) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return context.Canceled
	}
	q.lanes[item.Lane] = append(q.lanes[item.Lane], item)
	q.logger.Debug("work item enqueued", "job_id", item.JobID, "lane", item.Lane, "rows", item.Rows())
	return nil
}

func (q *MemoryQueue) Dequeue(_ context.Context, lane constants.Lane) (*Delivery, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	pending := q.lanes[lane]
	if q.closed || len(pending) == 0 {
		return nil, nil
	}
	item := pending[0]
	q.lanes[lane] = pending[1:]

	return &Delivery{
		Item: item,
		Ack:  func() error { return nil },
		Nak: func() error {
			q.mu.Lock()
			defer q.mu.Unlock()
			// Redeliver at the head so a transient failure retries promptly.
			q.lanes[lane] = append([]entity.WorkItem{item}, q.lanes[lane]...)
			return nil
		},
	}, nil
}

func (q *MemoryQueue) Depths(_ context.Context) (map[constants.Lane]int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	depths := make(map[constants.Lane]int, len(q.lanes))
	for lane, pending := range q.lanes {
		depths[lane] = len(pending)
	}
	return depths, nil
}

func (q *MemoryQueue) Shutdown(_ context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
}
