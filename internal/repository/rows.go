package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openfinml/riskscore/internal/entity"
)

// RowRepository stores a job's source rows at submission time so work items
// can reference offsets instead of carrying payloads through the broker.
type RowRepository interface {
	// InsertRows bulk-writes the submitted rows for a job.
	InsertRows(ctx context.Context, jobID uuid.UUID, rows []entity.Row) error
	// FetchRange reads rows with index in [start, end), ordered by index.
	FetchRange(ctx context.Context, jobID uuid.UUID, start, end int) ([]entity.Row, error)
}

type rowRepo struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewRowRepository(pool *pgxpool.Pool, log *slog.Logger) RowRepository {
	return &rowRepo{pool: pool, log: log}
}

func (r *rowRepo) InsertRows(ctx context.Context, jobID uuid.UUID, rows []entity.Row) error {
	src := pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		payload, err := json.Marshal(rows[i].Ratios)
		if err != nil {
			return nil, fmt.Errorf("marshal ratios for row %d: %w", rows[i].Index, err)
		}
		return []any{jobID, rows[i].Index, rows[i].Symbol, rows[i].Period, payload}, nil
	})

	n, err := r.pool.CopyFrom(ctx,
		pgx.Identifier{"job_row"},
		[]string{"job_id", "row_index", "symbol", "period", "ratios"},
		src,
	)
	if err != nil {
		r.log.Error("job_row bulk insert failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("job_row bulk insert", "job_id", jobID, "rows", n)
	return nil
}

func (r *rowRepo) FetchRange(ctx context.Context, jobID uuid.UUID, start, end int) ([]entity.Row, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT row_index, symbol, period, ratios FROM job_row
		 WHERE job_id = $1 AND row_index >= $2 AND row_index < $3
		 ORDER BY row_index`,
		jobID, start, end,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Row
	for rows.Next() {
		var row entity.Row
		var payload []byte
		if err := rows.Scan(&row.Index, &row.Symbol, &row.Period, &payload); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &row.Ratios); err != nil {
			return nil, fmt.Errorf("unmarshal ratios for row %d: %w", row.Index, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
