package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openfinml/riskscore/constants"
)

func TestLanePickerDefaultsToPriorityOrder(t *testing.T) {
	lp := newLanePicker(3)
	assert.Equal(t, constants.LanesByPriority, lp.order())
}

func TestLanePickerYieldsAfterFastBurst(t *testing.T) {
	lp := newLanePicker(3)
	for i := 0; i < 3; i++ {
		assert.Equal(t, constants.LaneFast, lp.order()[0])
		lp.observe(constants.LaneFast)
	}
	// Burst exhausted: the lower lanes get the next slot first.
	assert.Equal(t, []constants.Lane{constants.LaneStandard, constants.LaneBulk, constants.LaneFast}, lp.order())
}

func TestLanePickerResetsOnLowerLaneService(t *testing.T) {
	lp := newLanePicker(2)
	lp.observe(constants.LaneFast)
	lp.observe(constants.LaneFast)
	assert.Equal(t, constants.LaneStandard, lp.order()[0])

	lp.observe(constants.LaneBulk)
	assert.Equal(t, constants.LaneFast, lp.order()[0], "serving a lower lane resets the burst counter")
}

func TestLanePickerStillOffersFastWhenLowerLanesEmpty(t *testing.T) {
	lp := newLanePicker(1)
	lp.observe(constants.LaneFast)
	// The yield reorders the lanes, it never removes FAST: with nothing
	// queued below, fast items keep flowing.
	assert.Contains(t, lp.order(), constants.LaneFast)
}

func TestLatencyWindowAverages(t *testing.T) {
	w := newLatencyWindow(4)
	assert.Zero(t, w.Avg())

	w.Add(10 * time.Millisecond)
	w.Add(30 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, w.Avg())
}

func TestLatencyWindowEvictsOldestSamples(t *testing.T) {
	w := newLatencyWindow(2)
	w.Add(100 * time.Millisecond)
	w.Add(10 * time.Millisecond)
	w.Add(20 * time.Millisecond) // overwrites the 100ms sample
	assert.Equal(t, 15*time.Millisecond, w.Avg())
}
