package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/entity"
	"github.com/openfinml/riskscore/internal/pipeline"
	"github.com/openfinml/riskscore/internal/queue"
	"github.com/openfinml/riskscore/internal/repository"
)

// Pool is a resizable set of workers draining the priority lanes. Each
// worker services FAST before STANDARD before BULK, but yields a slot to the
// lower lanes after FastBurst consecutive fast items so bulk jobs are never
// starved outright.
type Pool struct {
	logger *slog.Logger
	queue  queue.Queue
	jobs   repository.JobRepository
	rows   repository.RowRepository
	proc   *pipeline.Processor
	cfg    common.WorkerConfig

	latency *latencyWindow

	mu      sync.Mutex
	cancels map[int]context.CancelFunc
	nextID  int
	wg      sync.WaitGroup
}

func NewPool(
	logger *slog.Logger,
	q queue.Queue,
	jobs repository.JobRepository,
	rows repository.RowRepository,
	proc *pipeline.Processor,
	cfg common.WorkerConfig,
) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RowConcurrency <= 0 {
		cfg.RowConcurrency = 1
	}
	if cfg.FastBurst <= 0 {
		cfg.FastBurst = 8
	}
	return &Pool{
		logger:  logger,
		queue:   q,
		jobs:    jobs,
		rows:    rows,
		proc:    proc,
		cfg:     cfg,
		latency: newLatencyWindow(256),
		cancels: make(map[int]context.CancelFunc),
	}
}

// Start spins up the configured number of workers.
func (p *Pool) Start(ctx context.Context) {
	p.Resize(ctx, p.cfg.Workers)
}

// Size returns the current worker count.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cancels)
}

// AvgRowLatency reports the rolling mean per-row processing time, an input
// to the scaling controller.
func (p *Pool) AvgRowLatency() time.Duration {
	return p.latency.Avg()
}

// Resize grows or shrinks the pool to n workers. Shrinking cancels workers,
// which stop at the next chunk boundary; in-flight chunks finish.
func (p *Pool) Resize(ctx context.Context, n int) {
	if n < 0 {
		n = 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.cancels) < n {
		p.nextID++
		id := p.nextID
		wctx, cancel := context.WithCancel(ctx)
		p.cancels[id] = cancel
		p.wg.Add(1)
		go p.runWorker(wctx, id)
	}
	for id, cancel := range p.cancels {
		if len(p.cancels) <= n {
			break
		}
		cancel()
		delete(p.cancels, id)
	}
}

// Shutdown stops all workers and waits for in-flight chunks to finish.
func (p *Pool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	for id, cancel := range p.cancels {
		cancel()
		delete(p.cancels, id)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); p.wg.Wait() }()
	select {
	case <-ctx.Done():
		p.logger.Warn("worker shutdown interrupted by context")
	case <-done:
		p.logger.Info("all workers stopped")
	}
}

func (p *Pool) runWorker(ctx context.Context, id int) {
	defer p.wg.Done()
	p.logger.Info("worker started", "worker_id", id)

	picker := newLanePicker(p.cfg.FastBurst)
	for {
		if ctx.Err() != nil {
			p.logger.Info("worker stopped", "worker_id", id)
			return
		}

		delivery, lane := p.nextDelivery(ctx, picker)
		if delivery == nil {
			select {
			case <-ctx.Done():
			case <-time.After(p.cfg.PollInterval):
			}
			continue
		}
		picker.observe(lane)
		p.handle(ctx, id, delivery)
	}
}

// nextDelivery tries the lanes in the picker's current order and returns the
// first ready item.
func (p *Pool) nextDelivery(ctx context.Context, picker *lanePicker) (*queue.Delivery, constants.Lane) {
	for _, lane := range picker.order() {
		delivery, err := p.queue.Dequeue(ctx, lane)
		if err != nil {
			p.logger.Error("dequeue failed", "lane", lane, "err", err)
			return nil, lane
		}
		if delivery != nil {
			return delivery, lane
		}
	}
	return nil, ""
}

// handle processes one work item end to end. The chunk is acked once its
// rows are recorded (or the job turned terminal underneath us) and naked
// when infrastructure failed, so the broker redelivers it to another worker.
func (p *Pool) handle(ctx context.Context, workerID int, delivery *queue.Delivery) {
	item := delivery.Item
	log := p.logger.With("worker_id", workerID, "job_id", item.JobID, "lane", item.Lane)

	state, err := p.jobs.MarkProcessing(ctx, item.JobID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Job metadata was deleted; nothing left to process.
			_ = delivery.Ack()
			return
		}
		log.Error("mark processing failed", "err", err)
		_ = delivery.Nak()
		return
	}
	switch {
	case state.Terminal():
		// Cancelled (or already finalized): stop picking up its chunks,
		// without reversing rows already recorded.
		_ = delivery.Ack()
		return
	case state != constants.JobStateProcessing:
		// Submission has not finished enqueueing yet; retry shortly.
		_ = delivery.Nak()
		return
	}

	job, err := p.jobs.GetByID(ctx, item.JobID)
	if err != nil {
		log.Error("load job failed", "err", err)
		_ = delivery.Nak()
		return
	}

	rows, err := p.rows.FetchRange(ctx, item.JobID, item.StartIndex, item.EndIndex)
	if err != nil {
		log.Error("fetch rows failed", "err", err)
		_ = delivery.Nak()
		return
	}

	var (
		mu   sync.Mutex
		last entity.Progress
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.RowConcurrency)
	for _, row := range rows {
		row := row
		g.Go(func() error {
			start := time.Now()
			rctx := gctx
			if p.cfg.RowTimeout > 0 {
				var cancel context.CancelFunc
				rctx, cancel = context.WithTimeout(gctx, p.cfg.RowTimeout)
				defer cancel()
			}

			outcome, err := p.proc.ProcessRow(rctx, job, row)
			if err != nil {
				return err
			}
			progress, err := p.jobs.RecordRowOutcome(rctx, job.ID, outcome)
			if err != nil {
				return err
			}
			p.latency.Add(time.Since(start))

			mu.Lock()
			if progress.ProcessedRows > last.ProcessedRows {
				last = progress
			}
			mu.Unlock()
			return nil
		})
	}
	err = g.Wait()

	switch {
	case err == nil:
		if last.Done() {
			p.finalizeCompleted(ctx, log, job.ID)
		}
		_ = delivery.Ack()

	case errors.Is(err, common.ErrTerminalState):
		// The job was cancelled or failed while this chunk was in flight;
		// already-recorded rows stand, the rest of the chunk is dropped.
		log.Info("chunk dropped, job reached terminal state mid-flight")
		_ = delivery.Ack()

	case common.IsFatal(err):
		log.Error("fatal error, failing job", "err", err)
		reason := string(constants.FailReasonFatal)
		if _, ferr := p.jobs.Finalize(ctx, job.ID, constants.JobStateFailed, &reason); ferr != nil {
			// Could not even mark the job failed; let redelivery or the
			// watchdog pick it up once the store is back.
			_ = delivery.Nak()
			return
		}
		_ = delivery.Ack()

	default:
		log.Error("chunk processing failed", "err", err)
		_ = delivery.Nak()
	}
}

// finalizeCompleted runs when this worker observed the last row landing.
// The CAS inside Finalize makes the race between workers harmless: exactly
// one of them flips PROCESSING -> COMPLETED.
func (p *Pool) finalizeCompleted(ctx context.Context, log *slog.Logger, jobID uuid.UUID) {
	flipped, err := p.jobs.Finalize(ctx, jobID, constants.JobStateCompleted, nil)
	if err != nil {
		log.Error("finalize completed failed", "err", err)
		return
	}
	if flipped {
		log.Info("job completed")
	}
}
