package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openfinml/riskscore/internal/entity"
)

// PredictionRepository persists derived prediction rows. Upsert semantics: a
// second submission for the same (company, period, scope) updates the
// existing record in place, never duplicates it.
type PredictionRepository interface {
	Upsert(ctx context.Context, p *entity.Prediction) (uuid.UUID, error)
	// ListByJob reads the predictions a job recorded, joined to their
	// company symbols, ordered by symbol then period.
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]JobPrediction, error)
}

// JobPrediction is one prediction row joined to its company, the unit of
// result exports.
type JobPrediction struct {
	Symbol         string
	Period         string
	Probability    float64
	Classification string
	Confidence     float64
	UpdatedAt      time.Time
}

type predictionRepo struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewPredictionRepository(pool *pgxpool.Pool, log *slog.Logger) PredictionRepository {
	return &predictionRepo{pool: pool, log: log}
}

func (r *predictionRepo) Upsert(ctx context.Context, p *entity.Prediction) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`INSERT INTO prediction (id, company_id, period, scope_key, job_id, probability, classification, confidence)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (company_id, period, scope_key) DO UPDATE SET
			job_id = EXCLUDED.job_id,
			probability = EXCLUDED.probability,
			classification = EXCLUDED.classification,
			confidence = EXCLUDED.confidence,
			updated_at = now()
		 RETURNING id`,
		uuid.New(), p.CompanyID, p.Period, p.ScopeKey, p.JobID,
		p.Probability, p.Classification, p.Confidence,
	).Scan(&id)
	if err != nil {
		r.log.Error("prediction upsert failed", "company_id", p.CompanyID, "period", p.Period, "err", err)
		return uuid.Nil, err
	}
	return id, nil
}

func (r *predictionRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]JobPrediction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.symbol, p.period, p.probability, p.classification, p.confidence, p.updated_at
		 FROM prediction p
		 JOIN company c ON c.id = p.company_id
		 WHERE p.job_id = $1
		 ORDER BY c.symbol, p.period`, jobID)
	if err != nil {
		r.log.Error("prediction list failed", "job_id", jobID, "err", err)
		return nil, err
	}
	defer rows.Close()

	var out []JobPrediction
	for rows.Next() {
		var jp JobPrediction
		if err := rows.Scan(&jp.Symbol, &jp.Period, &jp.Probability, &jp.Classification, &jp.Confidence, &jp.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, jp)
	}
	return out, rows.Err()
}
