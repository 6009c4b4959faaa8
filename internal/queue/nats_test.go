package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openfinml/riskscore/constants"
)

// The zero-argument Ack/Nak closures are the contract the worker pool
// depends on; the interface checks keep both implementations honest.
var (
	_ Queue = (*NATSQueue)(nil)
	_ Queue = (*MemoryQueue)(nil)
)

func TestLaneSubjectNames(t *testing.T) {
	q := &NATSQueue{prefix: "scoring.jobs", stream: "SCORING"}

	assert.Equal(t, "scoring.jobs.fast", q.subject(constants.LaneFast))
	assert.Equal(t, "scoring.jobs.standard", q.subject(constants.LaneStandard))
	assert.Equal(t, "scoring.jobs.bulk", q.subject(constants.LaneBulk))
}

func TestLaneDurableNames(t *testing.T) {
	q := &NATSQueue{}

	// Durable names pin the pull consumers: renaming one would orphan the
	// consumer state on the stream.
	assert.Equal(t, "workers-fast", q.durable(constants.LaneFast))
	assert.Equal(t, "workers-standard", q.durable(constants.LaneStandard))
	assert.Equal(t, "workers-bulk", q.durable(constants.LaneBulk))
}
