package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/repository"
)

// Watchdog periodically sweeps for PROCESSING jobs whose last progress is
// older than the stall window and fails them with reason "stalled", so a
// crashed worker fleet cannot leave jobs processing forever. The reason
// string keeps stalls distinguishable from fatal pipeline errors.
type Watchdog struct {
	registry    repository.JobRepository
	stallWindow time.Duration
	interval    time.Duration
	logger      *slog.Logger
}

func NewWatchdog(registry repository.JobRepository, stallWindow time.Duration, logger *slog.Logger) *Watchdog {
	if logger == nil {
		logger = slog.Default()
	}
	interval := stallWindow / 4
	if interval < time.Second {
		interval = time.Second
	}
	return &Watchdog{
		registry:    registry,
		stallWindow: stallWindow,
		interval:    interval,
		logger:      logger,
	}
}

// Run sweeps until the context is cancelled.
func (w *Watchdog) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	w.logger.Info("watchdog started", "stall_window", w.stallWindow, "interval", w.interval)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watchdog stopped")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep runs one pass. Exported so the worker daemon can trigger a sweep on
// startup, catching jobs orphaned by the previous process.
func (w *Watchdog) Sweep(ctx context.Context) {
	cutoff := time.Now().Add(-w.stallWindow)
	ids, err := w.registry.StalledIDs(ctx, cutoff)
	if err != nil {
		w.logger.Error("stall sweep failed", "err", err)
		return
	}
	for _, id := range ids {
		reason := string(constants.FailReasonStalled)
		flipped, err := w.registry.Finalize(ctx, id, constants.JobStateFailed, &reason)
		if err != nil {
			w.logger.Error("could not fail stalled job", "job_id", id, "err", err)
			continue
		}
		if flipped {
			w.logger.Warn("job stalled, marked failed", "job_id", id, "cutoff", cutoff)
		}
	}
}
