package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openfinml/riskscore/constants"
	"github.com/openfinml/riskscore/gen/ent"
	"github.com/openfinml/riskscore/gen/ent/scorejob"
	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/entity"
)

// RowOutcome is one row's terminal result, written exactly once per
// (job, row index) regardless of how often the chunk is redelivered.
type RowOutcome struct {
	RowIndex int
	OK       bool
	Symbol   string
	Message  string
}

type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	// MarkQueued records the lane and moves PENDING -> QUEUED.
	MarkQueued(ctx context.Context, id uuid.UUID, lane constants.Lane) error
	// MarkProcessing moves QUEUED -> PROCESSING (first chunk picked up) and
	// returns the state after the attempt; calling it on a job already in
	// PROCESSING is a no-op. Start and progress timestamps are stamped only
	// when the flip happens, so a chunk racing ahead of MarkQueued leaves
	// the job untouched.
	MarkProcessing(ctx context.Context, id uuid.UUID) (constants.JobState, error)
	// RecordRowOutcome appends to the row outcome ledger and bumps the three
	// counters in one atomic statement. A redelivered row index moves no
	// counter (Counted=false). Returns common.ErrTerminalState when the job
	// is no longer PROCESSING.
	RecordRowOutcome(ctx context.Context, jobID uuid.UUID, out RowOutcome) (entity.Progress, error)
	// Finalize moves PROCESSING to a terminal state. Returns false when the
	// job is not PROCESSING: either a concurrent worker already finalized it,
	// or it never started.
	Finalize(ctx context.Context, id uuid.UUID, state constants.JobState, reason *string) (bool, error)
	// FailPending moves a job that never left PENDING to FAILED: the
	// submission died between Create and MarkQueued, so no worker will ever
	// touch it and Finalize's PROCESSING gate would never match. Returns
	// false when the job is no longer PENDING.
	FailPending(ctx context.Context, id uuid.UUID, reason *string) (bool, error)
	// Cancel marks a non-terminal job CANCELLED. Returns false when the job
	// was already terminal.
	Cancel(ctx context.Context, id uuid.UUID) (bool, error)
	// Errors returns the job's structured error list, ordered by row index.
	Errors(ctx context.Context, id uuid.UUID, limit int) ([]entity.RowError, error)
	// Delete removes the job metadata. Rejected while PROCESSING; recorded
	// predictions are independent entities and are not touched.
	Delete(ctx context.Context, id uuid.UUID) error
	// StalledIDs lists PROCESSING jobs with no progress since cutoff.
	StalledIDs(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)
}

type jobRepo struct {
	ent  *ent.Client
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewJobRepository(entc *ent.Client, pool *pgxpool.Pool, log *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, pool: pool, log: log}
}

func (r *jobRepo) Create(ctx context.Context, job *entity.Job) error {
	created, err := r.ent.ScoreJob.
		Create().
		SetID(job.ID).
		SetKind(string(job.Kind)).
		SetFileName(job.FileName).
		SetState(string(constants.JobStatePending)).
		SetTotalRows(job.TotalRows).
		SetOwnerUserID(job.OwnerUserID).
		SetNillableOwnerOrgID(job.OwnerOrgID).
		SetOwnerRole(string(job.OwnerRole)).
		Save(ctx)
	if err != nil {
		r.log.Error("score_job create failed", "job_id", job.ID, "err", err)
		return err
	}
	job.State = constants.JobState(created.State)
	job.SubmittedAt = created.SubmittedAt
	r.log.Info("score_job created", "job_id", job.ID, "kind", job.Kind, "total_rows", job.TotalRows)
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	row, err := r.ent.ScoreJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toEntityJob(row), nil
}

func toEntityJob(row *ent.ScoreJob) *entity.Job {
	job := &entity.Job{
		ID:              row.ID,
		Kind:            constants.JobKind(row.Kind),
		FileName:        row.FileName,
		State:           constants.JobState(row.State),
		TotalRows:       row.TotalRows,
		ProcessedRows:   row.ProcessedRows,
		SuccessfulRows:  row.SuccessfulRows,
		FailedRows:      row.FailedRows,
		FailReason:      row.FailReason,
		CancelRequested: row.CancelRequested,
		OwnerUserID:     row.OwnerUserID,
		OwnerOrgID:      row.OwnerOrgID,
		OwnerRole:       constants.Role(row.OwnerRole),
		SubmittedAt:     row.SubmittedAt,
		StartedAt:       row.StartedAt,
		FinishedAt:      row.FinishedAt,
		LastProgressAt:  row.LastProgressAt,
	}
	if row.Lane != nil {
		job.Lane = constants.Lane(*row.Lane)
	}
	return job
}

func (r *jobRepo) MarkQueued(ctx context.Context, id uuid.UUID, lane constants.Lane) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE score_job SET state = $2, lane = $3 WHERE id = $1 AND state = $4`,
		id, string(constants.JobStateQueued), string(lane), string(constants.JobStatePending),
	)
	if err != nil {
		r.log.Error("score_job mark queued failed", "job_id", id, "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return common.ErrTerminalState
	}
	r.log.Info("score_job queued", "job_id", id, "lane", lane)
	return nil
}

func (r *jobRepo) MarkProcessing(ctx context.Context, id uuid.UUID) (constants.JobState, error) {
	var state string
	err := r.pool.QueryRow(ctx,
		`UPDATE score_job SET
			state = CASE WHEN state = $2 THEN $3 ELSE state END,
			started_at = CASE WHEN state = $2 THEN COALESCE(started_at, now()) ELSE started_at END,
			last_progress_at = CASE WHEN state = $2 THEN COALESCE(last_progress_at, now()) ELSE last_progress_at END
		 WHERE id = $1
		 RETURNING state`,
		id, string(constants.JobStateQueued), string(constants.JobStateProcessing),
	).Scan(&state)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", common.ErrNotFound
		}
		r.log.Error("score_job mark processing failed", "job_id", id, "err", err)
		return "", err
	}
	return constants.JobState(state), nil
}

// recordOutcomeSQL inserts into the ledger and bumps the counters in one
// statement. The ON CONFLICT DO NOTHING makes redelivered rows count zero;
// the state predicate freezes counters once the job is terminal.
const recordOutcomeSQL = `
WITH ins AS (
	INSERT INTO job_row_outcome (job_id, row_index, ok, symbol, message)
	SELECT $1, $2, $3, $4, $5
	WHERE EXISTS (SELECT 1 FROM score_job WHERE id = $1 AND state = $6)
	ON CONFLICT (job_id, row_index) DO NOTHING
	RETURNING ok
)
UPDATE score_job j SET
	processed_rows   = j.processed_rows  + (SELECT count(*) FROM ins),
	successful_rows  = j.successful_rows + (SELECT count(*) FROM ins WHERE ok),
	failed_rows      = j.failed_rows     + (SELECT count(*) FROM ins WHERE NOT ok),
	last_progress_at = now()
WHERE j.id = $1 AND j.state = $6
RETURNING j.total_rows, j.processed_rows, j.successful_rows, j.failed_rows,
	(SELECT count(*) FROM ins) > 0`

func (r *jobRepo) RecordRowOutcome(ctx context.Context, jobID uuid.UUID, out RowOutcome) (entity.Progress, error) {
	var p entity.Progress
	err := r.pool.QueryRow(ctx, recordOutcomeSQL,
		jobID, out.RowIndex, out.OK, out.Symbol, out.Message,
		string(constants.JobStateProcessing),
	).Scan(&p.TotalRows, &p.ProcessedRows, &p.SuccessfulRows, &p.FailedRows, &p.Counted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Progress{}, common.ErrTerminalState
		}
		r.log.Error("score_job record outcome failed", "job_id", jobID, "row_index", out.RowIndex, "err", err)
		return entity.Progress{}, err
	}
	return p, nil
}

func (r *jobRepo) Finalize(ctx context.Context, id uuid.UUID, state constants.JobState, reason *string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE score_job SET state = $2, fail_reason = $3, finished_at = now()
		 WHERE id = $1 AND state = $4`,
		id, string(state), reason, string(constants.JobStateProcessing),
	)
	if err != nil {
		r.log.Error("score_job finalize failed", "job_id", id, "state", state, "err", err)
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}
	r.log.Info("score_job finalized", "job_id", id, "state", state)
	return true, nil
}

func (r *jobRepo) FailPending(ctx context.Context, id uuid.UUID, reason *string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE score_job SET state = $2, fail_reason = $3, finished_at = now()
		 WHERE id = $1 AND state = $4`,
		id, string(constants.JobStateFailed), reason, string(constants.JobStatePending),
	)
	if err != nil {
		r.log.Error("score_job fail pending failed", "job_id", id, "err", err)
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}
	r.log.Info("score_job finalized", "job_id", id, "state", constants.JobStateFailed)
	return true, nil
}

func (r *jobRepo) Cancel(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE score_job SET cancel_requested = true, state = $2, finished_at = now()
		 WHERE id = $1 AND state NOT IN ($3, $4, $5)`,
		id, string(constants.JobStateCancelled),
		string(constants.JobStateCompleted), string(constants.JobStateFailed), string(constants.JobStateCancelled),
	)
	if err != nil {
		r.log.Error("score_job cancel failed", "job_id", id, "err", err)
		return false, err
	}
	cancelled := tag.RowsAffected() > 0
	if cancelled {
		r.log.Info("score_job cancelled", "job_id", id)
	}
	return cancelled, nil
}

func (r *jobRepo) Errors(ctx context.Context, id uuid.UUID, limit int) ([]entity.RowError, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT row_index, symbol, message FROM job_row_outcome
		 WHERE job_id = $1 AND NOT ok ORDER BY row_index LIMIT $2`,
		id, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.RowError
	for rows.Next() {
		var e entity.RowError
		if err := rows.Scan(&e.RowIndex, &e.Symbol, &e.Message); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *jobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.ScoreJob.DeleteOneID(id).
		Where(scorejob.StateNEQ(string(constants.JobStateProcessing))).
		Exec(ctx)
	if err == nil {
		r.log.Info("score_job deleted", "job_id", id)
		return nil
	}
	if !ent.IsNotFound(err) {
		r.log.Error("score_job delete failed", "job_id", id, "err", err)
		return err
	}
	// Either absent, or present but PROCESSING. Disambiguate for the caller.
	exists, eerr := r.ent.ScoreJob.Query().Where(scorejob.ID(id)).Exist(ctx)
	if eerr != nil {
		return eerr
	}
	if exists {
		return common.ErrJobProcessing
	}
	return common.ErrNotFound
}

func (r *jobRepo) StalledIDs(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id FROM score_job
		 WHERE state = $1 AND last_progress_at IS NOT NULL AND last_progress_at < $2`,
		string(constants.JobStateProcessing), cutoff,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
