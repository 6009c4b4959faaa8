package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	jobspb "github.com/openfinml/riskscore/gen/proto/jobs/v1"

	"github.com/openfinml/riskscore/internal/common"
	"github.com/openfinml/riskscore/internal/export"
	"github.com/openfinml/riskscore/internal/jobs"
	"github.com/openfinml/riskscore/internal/queue"
	"github.com/openfinml/riskscore/internal/repository"
	"github.com/openfinml/riskscore/internal/router"
	"github.com/openfinml/riskscore/internal/server"
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

	q, err := openQueue(cfg.Queue, logger)
	if err != nil {
		logger.Error("failed to open queue", "driver", cfg.Queue.Driver, "err", err)
		os.Exit(1)
	}
	defer q.Shutdown(context.Background())

	jobsRepo := repository.NewJobRepository(entc, pool, logger)
	rowsRepo := repository.NewRowRepository(pool, logger)
	predictionsRepo := repository.NewPredictionRepository(pool, logger)

	jobsSvc := jobs.NewService(jobsRepo, rowsRepo, q, router.New(cfg.Router), cfg.Worker, logger)
	exporter := export.NewService(jobsRepo, predictionsRepo, logger)

	grpcServer := grpc.NewServer()
	jobspb.RegisterJobsServiceServer(grpcServer, server.NewJobsService(jobsSvc, exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "err", err)
		os.Exit(1)
	}

	logger.Info("riskscored listening", "addr", cfg.Server.GRPCAddr, "queue_driver", cfg.Queue.Driver)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}

func openQueue(cfg common.QueueConfig, logger *slog.Logger) (queue.Queue, error) {
	if cfg.Driver == "memory" {
		return queue.NewMemoryQueue(logger), nil
	}
	return queue.NewNATSQueue(cfg, logger)
}
