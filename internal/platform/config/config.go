package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	StorageDriver  string
	MigrationsPath string

	LockTimeout     time.Duration // Upper bound on waiting for account locks during a transfer
	DefaultPageSize int

	RateLimit          string   // ulule/limiter format, e.g. "100-M"; empty disables
	CORSAllowedOrigins []string // Origins of the web frontend
	ReconcileSchedule  string   // Cron expression for the reconciliation job; empty disables
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("LOCK_TIMEOUT", "5s")
	v.SetDefault("DEFAULT_PAGE_SIZE", 10)
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RECONCILE_SCHEDULE", "@every 1h")

	// Environment variables override .env values, which override defaults.
	// An explicitly empty variable (e.g. RECONCILE_SCHEDULE="") disables the feature.
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       v.GetString("PGSQL_URL"),
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		StorageDriver:     strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		MigrationsPath:    v.GetString("MIGRATIONS_PATH"),
		DefaultPageSize:   v.GetInt("DEFAULT_PAGE_SIZE"),
		RateLimit:         strings.TrimSpace(v.GetString("RATE_LIMIT")),
		ReconcileSchedule: strings.TrimSpace(v.GetString("RECONCILE_SCHEDULE")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT not set, using default", slog.String("port", cfg.Port))
	}

	switch cfg.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER is %q", StoragePostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q (want %q or %q)", cfg.StorageDriver, StorageMemory, StoragePostgres)
	}

	lockTimeout, err := time.ParseDuration(v.GetString("LOCK_TIMEOUT"))
	if err != nil || lockTimeout <= 0 {
		return nil, fmt.Errorf("invalid LOCK_TIMEOUT %q: must be a positive duration", v.GetString("LOCK_TIMEOUT"))
	}
	cfg.LockTimeout = lockTimeout

	if cfg.DefaultPageSize <= 0 {
		return nil, fmt.Errorf("invalid DEFAULT_PAGE_SIZE %d: must be positive", cfg.DefaultPageSize)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.ReconcileSchedule != "" {
		if _, err := cron.ParseStandard(cfg.ReconcileSchedule); err != nil {
			return nil, fmt.Errorf("invalid RECONCILE_SCHEDULE %q: %w", cfg.ReconcileSchedule, err)
		}
	}

	return cfg, nil
}
