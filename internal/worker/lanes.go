package worker

import (
	"sync"
	"time"

	"github.com/openfinml/riskscore/constants"
)

// lanePicker implements the weighted round-robin draining policy: fast
// before standard before bulk, except that after fastBurst consecutive fast
// items the lower lanes get offered one slot first. Strict priority would
// let a stream of small interactive jobs starve a 50k-row bulk job forever.
type lanePicker struct {
	fastBurst       int
	consecutiveFast int
}

func newLanePicker(fastBurst int) *lanePicker {
	return &lanePicker{fastBurst: fastBurst}
}

// order returns the lanes in the order this pick should try them.
func (lp *lanePicker) order() []constants.Lane {
	if lp.consecutiveFast >= lp.fastBurst {
		return []constants.Lane{constants.LaneStandard, constants.LaneBulk, constants.LaneFast}
	}
	return constants.LanesByPriority
}

// observe records which lane actually served the pick.
func (lp *lanePicker) observe(lane constants.Lane) {
	if lane == constants.LaneFast {
		lp.consecutiveFast++
		return
	}
	lp.consecutiveFast = 0
}

// latencyWindow is a fixed-size ring of recent per-row processing times.
type latencyWindow struct {
	mu      sync.Mutex
	samples []time.Duration
	next    int
	filled  int
}

func newLatencyWindow(size int) *latencyWindow {
	if size <= 0 {
		size = 64
	}
	return &latencyWindow{samples: make([]time.Duration, size)}
}

func (w *latencyWindow) Add(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.samples[w.next] = d
	w.next = (w.next + 1) % len(w.samples)
	if w.filled < len(w.samples) {
		w.filled++
	}
}

func (w *latencyWindow) Avg() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.filled == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < w.filled; i++ {
		total += w.samples[i]
	}
	return total / time.Duration(w.filled)
}
