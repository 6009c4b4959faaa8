package scaling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/common"
)

func testConfig() common.ScalingConfig {
	return common.ScalingConfig{
		MinWorkers:       2,
		MaxWorkers:       8,
		HighWater:        100,
		LowWater:         10,
		ScaleOutCooldown: 30 * time.Second,
		ScaleInCooldown:  5 * time.Minute,
	}
}

// fakeClock lets tests step controller time deterministically.
type fakeClock struct{ t time.Time }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestController(cfg common.ScalingConfig) (*Controller, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	ctrl := NewController(cfg, nil)
	ctrl.now = func() time.Time { return clock.t }
	return ctrl, clock
}

func depths(fast, standard, bulk int) map[constants.Lane]int {
	return map[constants.Lane]int{
		constants.LaneFast:     fast,
		constants.LaneStandard: standard,
		constants.LaneBulk:     bulk,
	}
}

func TestScaleOutRequiresSustainedPressure(t *testing.T) {
	ctrl, clock := newTestController(testConfig())
	high := Sample{Depths: depths(200, 0, 0), Workers: 4}

	assert.Equal(t, 4, ctrl.Desired(high), "a single high sample must not scale")

	clock.advance(10 * time.Second)
	assert.Equal(t, 4, ctrl.Desired(high), "pressure not yet sustained for the cooldown")

	clock.advance(25 * time.Second)
	assert.Equal(t, 5, ctrl.Desired(high), "pressure held past the cooldown scales out")
}

func TestScaleInIsSlowerThanScaleOut(t *testing.T) {
	ctrl, clock := newTestController(testConfig())
	idle := Sample{Depths: depths(0, 1, 0), Workers: 6}

	assert.Equal(t, 6, ctrl.Desired(idle))
	clock.advance(1 * time.Minute)
	assert.Equal(t, 6, ctrl.Desired(idle), "one quiet minute is not enough to shed a worker")

	clock.advance(5 * time.Minute)
	assert.Equal(t, 5, ctrl.Desired(idle), "quiet past the scale-in cooldown sheds one worker")
}

func TestOscillationMovesPoolAtMostOncePerWindow(t *testing.T) {
	ctrl, clock := newTestController(testConfig())
	high := Sample{Depths: depths(200, 0, 0), Workers: 4}
	mid := Sample{Depths: depths(50, 0, 0), Workers: 4}

	// Rapid flapping around the high-water mark for two full cooldown
	// windows: the regime timer resets on every dip, so the pool never moves.
	changes := 0
	for i := 0; i < 12; i++ {
		s := high
		if i%2 == 1 {
			s = mid
		}
		if got := ctrl.Desired(s); got != s.Workers {
			changes++
		}
		clock.advance(5 * time.Second)
	}
	assert.Zero(t, changes, "flapping must not move the pool")
}

func TestSustainedPressureScalesOncePerCooldown(t *testing.T) {
	ctrl, clock := newTestController(testConfig())

	workers := 4
	changes := 0
	// 90 seconds of continuous pressure, sampled every 5s: three cooldown
	// windows, so at most three scale-out steps.
	for i := 0; i < 18; i++ {
		got := ctrl.Desired(Sample{Depths: depths(500, 0, 0), Workers: workers})
		if got != workers {
			changes++
			workers = got
		}
		clock.advance(5 * time.Second)
	}
	assert.LessOrEqual(t, changes, 3)
	assert.GreaterOrEqual(t, changes, 2, "sustained pressure must keep scaling, one step per window")
}

func TestBoundsAreHardLimits(t *testing.T) {
	ctrl, clock := newTestController(testConfig())
	high := Sample{Depths: depths(1000, 1000, 1000), Workers: 8}

	clock.advance(time.Hour)
	assert.Equal(t, 8, ctrl.Desired(high), "never above MaxWorkers")

	ctrl2, clock2 := newTestController(testConfig())
	idle := Sample{Depths: depths(0, 0, 0), Workers: 2}
	clock2.advance(time.Hour)
	assert.Equal(t, 2, ctrl2.Desired(idle), "never below MinWorkers")

	assert.Equal(t, 2, ctrl.Desired(Sample{Depths: depths(0, 0, 0), Workers: 1}),
		"a pool below the floor is corrected immediately")
}

func TestLatencyBacklogTriggersScaleOut(t *testing.T) {
	ctrl, clock := newTestController(testConfig())
	// 80 items is below the high-water mark, but at 2s per row across two
	// workers the backlog needs ~80s to drain, far past the 30s window.
	slow := Sample{Depths: depths(0, 0, 80), AvgRowLatency: 2 * time.Second, Workers: 2}

	assert.Equal(t, 2, ctrl.Desired(slow))
	clock.advance(31 * time.Second)
	assert.Equal(t, 3, ctrl.Desired(slow), "slow rows make a modest backlog worth scaling for")
}
