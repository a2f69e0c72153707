package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Embedding EmbeddingConfig
	Extract   ExtractConfig
	Export    ExportConfig
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
	// WatchDirs is a comma-separated list of directories ingested
	// continuously by the daemon. Empty disables the watcher.
	WatchDirs string
}

// EmbeddingConfig holds configuration for the external embedding endpoint.
type EmbeddingConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Dim     int
	Timeout time.Duration
}

// ExtractConfig holds extraction pipeline configuration
type ExtractConfig struct {
	Workers   int
	BatchSize int
}

// ExportConfig holds export-related configuration
type ExportConfig struct {
	Dir string
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
			GRPCAddr:  getEnv("GRPC_ADDR", ":8080"),
			WatchDirs: getEnv("WATCH_DIRS", ""),
		},
		Embedding: EmbeddingConfig{
			BaseURL: getEnv("EMBED_BASE_URL", ""),
			APIKey:  getEnv("EMBED_API_KEY", ""),
			Model:   getEnv("EMBED_MODEL", "all-MiniLM-L6-v2"),
			Dim:     getEnvAsInt("EMBED_DIM", 384),
			Timeout: getEnvAsDuration("EMBED_TIMEOUT", 30*time.Second),
		},
		Extract: ExtractConfig{
			Workers:   getEnvAsInt("EXTRACT_WORKERS", 0), // 0 -> half the CPUs
			BatchSize: getEnvAsInt("EMBED_BATCH_SIZE", 128),
		},
		Export: ExportConfig{
			Dir: getEnv("EXPORT_DIR", "./exports"),
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
	return nil
}

// EmbeddingConfigured reports whether an embedding endpoint is reachable by
// configuration. Extraction still works without one; vectors are backfilled
// later by the reindex command.
func (c *Config) EmbeddingConfigured() bool {
	return c.Embedding.BaseURL != "" || c.Embedding.APIKey != ""
}
