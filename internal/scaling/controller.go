package scaling

import (
	"log/slog"
	"time"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/common"
)

// Sample is one observation of queue pressure.
type Sample struct {
	Depths        map[constants.Lane]int
	AvgRowLatency time.Duration
	Workers       int
}

// Controller turns queue-pressure samples into a desired worker count. It is
// advisory: callers (the worker daemon, or an external lifecycle manager
// reading its output) decide whether to apply the advice.
//
// Hysteresis is asymmetric. Scale-out needs the backlog above the high-water
// mark sustained for ScaleOutCooldown; scale-in needs every lane below the
// low-water mark sustained for the longer ScaleInCooldown. Flapping around a
// threshold therefore moves the pool at most once per cooldown window.
type Controller struct {
	cfg    common.ScalingConfig
	logger *slog.Logger
	now    func() time.Time

	highSince  time.Time
	lowSince   time.Time
	lastChange time.Time
}

func NewController(cfg common.ScalingConfig, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{cfg: cfg, logger: logger, now: time.Now}
}

// Desired returns the advised worker count for the given sample. It mutates
// the controller's regime tracking; call it from a single goroutine.
func (c *Controller) Desired(s Sample) int {
	now := c.now()

	// Bounds violations are corrected immediately, outside the hysteresis.
	if s.Workers < c.cfg.MinWorkers {
		c.markChange(now)
		return c.cfg.MinWorkers
	}
	if s.Workers > c.cfg.MaxWorkers {
		c.markChange(now)
		return c.cfg.MaxWorkers
	}

	total := 0
	allBelowLow := true
	for _, lane := range constants.LanesByPriority {
		depth := s.Depths[lane]
		total += depth
		if depth >= c.cfg.LowWater {
			allBelowLow = false
		}
	}

	switch {
	case c.underPressure(total, s):
		c.lowSince = time.Time{}
		if c.highSince.IsZero() {
			c.highSince = now
		}
		if now.Sub(c.highSince) >= c.cfg.ScaleOutCooldown &&
			now.Sub(c.lastChange) >= c.cfg.ScaleOutCooldown &&
			s.Workers < c.cfg.MaxWorkers {
			c.markChange(now)
			c.logger.Info("scaling out", "workers", s.Workers, "backlog", total, "avg_row_latency", s.AvgRowLatency)
			return s.Workers + 1
		}

	case allBelowLow:
		c.highSince = time.Time{}
		if c.lowSince.IsZero() {
			c.lowSince = now
		}
		if now.Sub(c.lowSince) >= c.cfg.ScaleInCooldown &&
			now.Sub(c.lastChange) >= c.cfg.ScaleInCooldown &&
			s.Workers > c.cfg.MinWorkers {
			c.markChange(now)
			c.logger.Info("scaling in", "workers", s.Workers, "backlog", total)
			return s.Workers - 1
		}

	default:
		// Between the water marks: steady state, reset both regimes.
		c.highSince = time.Time{}
		c.lowSince = time.Time{}
	}

	return s.Workers
}

// underPressure is true when the raw backlog crosses the high-water mark, or
// when the latency-weighted drain estimate says the present pool cannot
// clear the backlog within a scale-out window.
func (c *Controller) underPressure(total int, s Sample) bool {
	if total > c.cfg.HighWater {
		return true
	}
	if s.AvgRowLatency <= 0 || s.Workers <= 0 || total <= c.cfg.LowWater {
		return false
	}
	drain := time.Duration(total) * s.AvgRowLatency / time.Duration(s.Workers)
	return drain > c.cfg.ScaleOutCooldown
}

func (c *Controller) markChange(now time.Time) {
	c.lastChange = now
	c.highSince = time.Time{}
	c.lowSince = time.Time{}
}
