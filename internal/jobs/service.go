package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/entity"
	"github.com/openfinml/riskscore/internal/queue"
	"github.com/openfinml/riskscore/internal/repository"
	"github.com/openfinml/riskscore/internal/router"
)

// Service handles the job lifecycle surface: submission, status, cancel,
// delete. Row processing itself belongs to the worker pool; the service
// only gets jobs durably recorded and onto the right lane.
type Service struct {
	registry repository.JobRepository
	rows     repository.RowRepository
	queue    queue.Queue
	router   *router.Router
	validate *validator.Validate
	cfg      common.WorkerConfig
	logger   *slog.Logger
}

func NewService(
	registry repository.JobRepository,
	rows repository.RowRepository,
	q queue.Queue,
	rt *router.Router,
	cfg common.WorkerConfig,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = 250
	}
	return &Service{
		registry: registry,
		rows:     rows,
		queue:    q,
		router:   rt,
		validate: validator.New(),
		cfg:      cfg,
		logger:   logger,
	}
}

// SubmitRequest is the envelope of one scoring submission.
type SubmitRequest struct {
	Kind     string       `validate:"required"`
	FileName string       `validate:"max=255"`
	Rows     []entity.Row `validate:"required,min=1,max=1000000"`
	Identity entity.Identity
}

// Submit validates the envelope, records the job and its source rows,
// routes it to a lane, splits it into chunks and enqueues them. Row
// contents are NOT validated here; per-row validation happens in the
// pipeline so one malformed row costs one row, not the submission.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*entity.Job, error) {
	if err := s.validate.Struct(req); err != nil {
		s.logger.Error("submission envelope rejected", "file_name", req.FileName, "err", err)
		return nil, common.WrapError(common.ErrValidation, err.Error())
	}
	kind, ok := constants.ParseJobKind(req.Kind)
	if !ok {
		return nil, common.WrapError(common.ErrValidation, "unknown job kind: "+req.Kind)
	}
	if req.Identity.UserID == uuid.Nil {
		return nil, common.WrapError(common.ErrValidation, "submission requires an authenticated user")
	}

	job := &entity.Job{
		ID:          uuid.New(),
		Kind:        kind,
		FileName:    req.FileName,
		TotalRows:   len(req.Rows),
		OwnerUserID: req.Identity.UserID,
		OwnerOrgID:  req.Identity.OrgID,
		OwnerRole:   req.Identity.Role,
	}
	if err := s.registry.Create(ctx, job); err != nil {
		return nil, err
	}
	if err := s.rows.InsertRows(ctx, job.ID, req.Rows); err != nil {
		s.failSubmission(ctx, job.ID, "persist rows", err)
		return nil, err
	}

	lane := s.assignLane(ctx, job.TotalRows)
	for start := 0; start < job.TotalRows; start += s.cfg.ChunkSize {
		end := start + s.cfg.ChunkSize
		if end > job.TotalRows {
			end = job.TotalRows
		}
		item := entity.WorkItem{JobID: job.ID, Lane: lane, StartIndex: start, EndIndex: end}
		if err := s.queue.Enqueue(ctx, item); err != nil {
			s.failSubmission(ctx, job.ID, "enqueue chunk", err)
			return nil, err
		}
	}
	if err := s.registry.MarkQueued(ctx, job.ID, lane); err != nil {
		return nil, err
	}
	job.State = constants.JobStateQueued
	job.Lane = lane

	s.logger.Info("job submitted",
		"job_id", job.ID, "kind", job.Kind, "lane", lane,
		"total_rows", job.TotalRows, "file_name", job.FileName)
	return job, nil
}

// assignLane consults the fast-lane depth so borderline jobs are only
// promoted while the lane is shallow. A depth probe failure falls back to
// the conservative depth cap (no promotion).
func (s *Service) assignLane(ctx context.Context, totalRows int) constants.Lane {
	fastDepth := int(^uint(0) >> 1)
	if depths, err := s.queue.Depths(ctx); err == nil {
		fastDepth = depths[constants.LaneFast]
	} else {
		s.logger.Warn("lane depth probe failed, skipping fast-lane promotion", "err", err)
	}
	return s.router.Assign(totalRows, fastDepth)
}

// failSubmission marks a job that never made it onto the queue as FAILED so
// it does not linger in PENDING forever. The job is still PENDING at every
// call site, which is why this goes through FailPending rather than the
// PROCESSING-gated Finalize.
func (s *Service) failSubmission(ctx context.Context, id uuid.UUID, stage string, cause error) {
	s.logger.Error("submission failed", "job_id", id, "stage", stage, "err", cause)
	reason := string(constants.FailReasonFatal)
	if _, err := s.registry.FailPending(ctx, id, &reason); err != nil {
		s.logger.Error("could not mark failed submission", "job_id", id, "err", err)
	}
}

// Status is a point-in-time view of one job.
type Status struct {
	Job         *entity.Job
	ProgressPct float64
	Errors      []entity.RowError
	// ETA is a throughput extrapolation from started_at; nil unless the job
	// is processing and has recorded progress.
	ETA *time.Duration
}

const errorSummaryLimit = 100

// GetStatus reads the job's counters and error summary. This is the hot
// polling path: two indexed reads, no row scans.
func (s *Service) GetStatus(ctx context.Context, id uuid.UUID) (*Status, error) {
	job, err := s.registry.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	st := &Status{
		Job: job,
		ProgressPct: entity.Progress{
			TotalRows:     job.TotalRows,
			ProcessedRows: job.ProcessedRows,
		}.Percentage(),
	}
	if job.FailedRows > 0 {
		if st.Errors, err = s.registry.Errors(ctx, id, errorSummaryLimit); err != nil {
			return nil, err
		}
	}
	if eta := estimateETA(job, time.Now()); eta > 0 {
		st.ETA = &eta
	}
	return st, nil
}

// estimateETA extrapolates remaining time from the observed row rate.
// Returns 0 when no estimate is possible.
func estimateETA(job *entity.Job, now time.Time) time.Duration {
	if job.State != constants.JobStateProcessing || job.StartedAt == nil || job.ProcessedRows <= 0 {
		return 0
	}
	elapsed := now.Sub(*job.StartedAt)
	if elapsed <= 0 {
		return 0
	}
	remaining := job.TotalRows - job.ProcessedRows
	if remaining <= 0 {
		return 0
	}
	perRow := elapsed / time.Duration(job.ProcessedRows)
	return perRow * time.Duration(remaining)
}

// Cancel requests cancellation. Terminal jobs reject the request with
// ErrTerminalState; rows already recorded keep their counts either way.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	accepted, err := s.registry.Cancel(ctx, id)
	if err != nil {
		return err
	}
	if !accepted {
		return common.ErrTerminalState
	}
	s.logger.Info("job cancelled", "job_id", id)
	return nil
}

// Delete removes the job's metadata, rows and error list. Recorded
// predictions are independent records and survive. Rejected while the job
// is processing.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.registry.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("job deleted", "job_id", id)
	return nil
}
