package queue

import (
	"context"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/entity"
)

// Delivery is one dequeued work item plus its acknowledgment handles.
// Delivery is at-least-once: an item whose Ack never arrives is redelivered,
// so everything downstream of a Dequeue must be idempotent.
type Delivery struct {
	Item entity.WorkItem

	// Ack removes the item from the lane permanently.
	Ack func() error
	// Nak returns the item for redelivery to another worker.
	Nak func() error
}

// Queue is the set of priority lanes decoupling submission from processing.
type Queue interface {
	// Enqueue durably appends the item to its lane.
	Enqueue(ctx context.Context, item entity.WorkItem) error
	// Dequeue pops the next item from one lane. Returns nil when the lane
	// has nothing ready.
	Dequeue(ctx context.Context, lane constants.Lane) (*Delivery, error)
	// Depths reports the pending-item count per lane.
	Depths(ctx context.Context) (map[constants.Lane]int, error)
	// Shutdown stops delivering items and releases broker resources.
	Shutdown(ctx context.Context)
}
