package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Queue    QueueConfig
	Router   RouterConfig
	Worker   WorkerConfig
	Scaling  ScalingConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// QueueConfig holds broker-related configuration
type QueueConfig struct {
	// Driver selects the lane implementation: "nats" (durable, default) or
	// "memory" (single-node, non-durable).
	Driver        string
	NATSURL       string
	StreamName    string
	SubjectPrefix string
	AckWait       time.Duration
}

// RouterConfig holds the lane-assignment thresholds
type RouterConfig struct {
	FastMaxRows  int // row count at or below which a job goes to the fast lane
	BulkMinRows  int // row count at or above which a job goes to the bulk lane
	FastDepthCap int // borderline jobs are demoted when the fast lane is deeper than this
}

// WorkerConfig holds worker-pool configuration
type WorkerConfig struct {
	Workers        int           // initial pool size
	RowConcurrency int           // concurrent rows per chunk
	ChunkSize      int           // rows per work item
	FastBurst      int           // consecutive fast items before yielding a slot
	PollInterval   time.Duration // idle wait when all lanes are empty
	RowTimeout     time.Duration
	StallWindow    time.Duration // watchdog: no progress for this long means stalled
}

// ScalingConfig holds the scaling controller's hysteresis parameters
type ScalingConfig struct {
	MinWorkers       int
	MaxWorkers       int
	HighWater        int           // total pending items that trigger scale-out
	LowWater         int           // all-lane depth below which scale-in is considered
	ScaleOutCooldown time.Duration // scale-out reacts faster than scale-in
	ScaleInCooldown  time.Duration
	SampleInterval   time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Queue: QueueConfig{
			Driver:        getEnv("QUEUE_DRIVER", "nats"),
			NATSURL:       getEnv("NATS_URL", "nats://localhost:4222"),
			StreamName:    getEnv("QUEUE_STREAM", "RISKSCORE_JOBS"),
			SubjectPrefix: getEnv("QUEUE_SUBJECT_PREFIX", "riskscore.jobs"),
			AckWait:       getEnvAsDuration("QUEUE_ACK_WAIT", 2*time.Minute),
		},
		Router: RouterConfig{
			FastMaxRows:  getEnvAsInt("ROUTER_FAST_MAX_ROWS", 500),
			BulkMinRows:  getEnvAsInt("ROUTER_BULK_MIN_ROWS", 10000),
			FastDepthCap: getEnvAsInt("ROUTER_FAST_DEPTH_CAP", 32),
		},
		Worker: WorkerConfig{
			Workers:        getEnvAsInt("WORKER_COUNT", 4),
			RowConcurrency: getEnvAsInt("WORKER_ROW_CONCURRENCY", 8),
			ChunkSize:      getEnvAsInt("WORKER_CHUNK_SIZE", 250),
			FastBurst:      getEnvAsInt("WORKER_FAST_BURST", 8),
			PollInterval:   getEnvAsDuration("WORKER_POLL_INTERVAL", 500*time.Millisecond),
			RowTimeout:     getEnvAsDuration("WORKER_ROW_TIMEOUT", 30*time.Second),
			StallWindow:    getEnvAsDuration("JOB_STALL_WINDOW", 10*time.Minute),
		},
		Scaling: ScalingConfig{
			MinWorkers:       getEnvAsInt("SCALING_MIN_WORKERS", 2),
			MaxWorkers:       getEnvAsInt("SCALING_MAX_WORKERS", 32),
			HighWater:        getEnvAsInt("SCALING_HIGH_WATER", 100),
			LowWater:         getEnvAsInt("SCALING_LOW_WATER", 10),
			ScaleOutCooldown: getEnvAsDuration("SCALING_OUT_COOLDOWN", 30*time.Second),
			ScaleInCooldown:  getEnvAsDuration("SCALING_IN_COOLDOWN", 5*time.Minute),
			SampleInterval:   getEnvAsDuration("SCALING_SAMPLE_INTERVAL", 5*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Queue.Driver != "nats" && c.Queue.Driver != "memory" {
		return NewAppError("CONFIG_ERROR", "QUEUE_DRIVER must be nats or memory", ErrInvalidInput)
	}
	if c.Router.FastMaxRows <= 0 || c.Router.BulkMinRows <= c.Router.FastMaxRows {
		return NewAppError("CONFIG_ERROR", "router thresholds must satisfy 0 < FAST_MAX_ROWS < BULK_MIN_ROWS", ErrInvalidInput)
	}
	if c.Scaling.MinWorkers < 1 || c.Scaling.MaxWorkers < c.Scaling.MinWorkers {
		return NewAppError("CONFIG_ERROR", "scaling bounds must satisfy 1 <= MIN_WORKERS <= MAX_WORKERS", ErrInvalidInput)
	}
	if c.Scaling.ScaleInCooldown < c.Scaling.ScaleOutCooldown {
		return NewAppError("CONFIG_ERROR", "scale-in cooldown must not be shorter than scale-out cooldown", ErrInvalidInput)
	}
	return nil
}
