package server

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openfinml/riskscore/gen/ent"
	"github.com/openfinml/riskscore/internal/common"
	repo "github.com/openfinml/riskscore/internal/repository"
)

// ConnectDB opens the database and verifies connectivity before the daemon
// starts serving.
func ConnectDB(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	entc, pool, err := repo.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		return nil, nil, err
	}
	if err := repo.HealthCheck(ctx, pool, cfg, logger); err != nil {
		logger.Error("database ping failed", "err", err)
		repo.Close(entc, pool, logger)
		return nil, nil, err
	}
	logger.Info("database connected")
	return entc, pool, nil
}

// CloseDB closes the database connections gracefully.
func CloseDB(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	repo.Close(entc, pool, logger)
}
