package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/jobs"
	"github.com/openfinml/riskscore/internal/pipeline"
	"github.com/openfinml/riskscore/internal/queue"
	"github.com/openfinml/riskscore/internal/repository"
	"github.com/openfinml/riskscore/internal/scaling"
	"github.com/openfinml/riskscore/internal/server"
	"github.com/openfinml/riskscore/internal/worker"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := server.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		os.Exit(1)
	}
	defer server.CloseDB(entc, pool, logger)

	var q queue.Queue
	if cfg.Queue.Driver == "memory" {
		q = queue.NewMemoryQueue(logger)
	} else {
		if q, err = queue.NewNATSQueue(cfg.Queue, logger); err != nil {
			logger.Error("failed to open queue", "err", err)
			os.Exit(1)
		}
	}
	defer q.Shutdown(context.Background())

	jobsRepo := repository.NewJobRepository(entc, pool, logger)
	rowsRepo := repository.NewRowRepository(pool, logger)
	companiesRepo := repository.NewCompanyRepository(pool, logger)
	predictionsRepo := repository.NewPredictionRepository(pool, logger)

	proc := pipeline.NewProcessor(logger, companiesRepo, predictionsRepo)
	workers := worker.NewPool(logger, q, jobsRepo, rowsRepo, proc, cfg.Worker)
	workers.Start(ctx)

	watchdog := jobs.NewWatchdog(jobsRepo, cfg.Worker.StallWindow, logger)
	// Catch jobs orphaned by a previous worker fleet before serving new ones.
	watchdog.Sweep(ctx)
	go watchdog.Run(ctx)

	controller := scaling.NewController(cfg.Scaling, logger)
	go runScaling(ctx, controller, workers, q, cfg.Scaling.SampleInterval, logger)

	logger.Info("scoreworkerd running",
		"workers", cfg.Worker.Workers, "queue_driver", cfg.Queue.Driver,
		"stall_window", cfg.Worker.StallWindow)

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	workers.Shutdown(shutdownCtx)
}

// runScaling samples queue pressure and applies the controller's advice to
// the local pool.
func runScaling(ctx context.Context, controller *scaling.Controller, pool *worker.Pool, q queue.Queue, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			depths, err := q.Depths(ctx)
			if err != nil {
				logger.Warn("depth sample failed", "err", err)
				continue
			}
			sample := scaling.Sample{
				Depths:        depths,
				AvgRowLatency: pool.AvgRowLatency(),
				Workers:       pool.Size(),
			}
			if desired := controller.Desired(sample); desired != sample.Workers {
				logger.Info("applying scaling advice", "from", sample.Workers, "to", desired)
				pool.Resize(ctx, desired)
			}
		}
	}
}
