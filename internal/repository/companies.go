package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openfinml/riskscore/constants"
)

// CompanyRepository resolves reference entities by natural key and scope,
// creating them when absent. Safe under arbitrary concurrency: the unique
// index on (symbol, scope_key) is the single arbiter of who creates the row,
// and losing that race is a success, not an error.
type CompanyRepository interface {
	ResolveOrCreate(ctx context.Context, symbol, name string, tier constants.ScopeTier, scopeKey string) (uuid.UUID, error)
}

type companyRepo struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewCompanyRepository(pool *pgxpool.Pool, log *slog.Logger) CompanyRepository {
	return &companyRepo{pool: pool, log: log}
}

func (r *companyRepo) ResolveOrCreate(ctx context.Context, symbol, name string, tier constants.ScopeTier, scopeKey string) (uuid.UUID, error) {
	// Fast path: the company usually exists already.
	id, err := r.lookup(ctx, symbol, scopeKey)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, err
	}

	// Attempt the insert. A concurrent worker may win the race, in which
	// case ON CONFLICT DO NOTHING returns no row and we fall back to lookup.
	err = r.pool.QueryRow(ctx,
		`INSERT INTO company (id, symbol, name, scope_tier, scope_key)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (symbol, scope_key) DO NOTHING
		 RETURNING id`,
		uuid.New(), symbol, name, string(tier), scopeKey,
	).Scan(&id)
	if err == nil {
		r.log.Debug("company created", "symbol", symbol, "scope_key", scopeKey, "company_id", id)
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		r.log.Error("company insert failed", "symbol", symbol, "err", err)
		return uuid.Nil, err
	}

	id, err = r.lookup(ctx, symbol, scopeKey)
	if err != nil {
		r.log.Error("company lookup after conflict failed", "symbol", symbol, "err", err)
		return uuid.Nil, err
	}
	return id, nil
}

func (r *companyRepo) lookup(ctx context.Context, symbol, scopeKey string) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`SELECT id FROM company WHERE symbol = $1 AND scope_key = $2`,
		symbol, scopeKey,
	).Scan(&id)
	return id, err
}
