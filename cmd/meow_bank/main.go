package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/SscSPs/meow_bank/cmd/docs"
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/meow_bank/internal/core/ports/services"
	"github.com/SscSPs/meow_bank/internal/core/services"
	"github.com/SscSPs/meow_bank/internal/handlers"
	"github.com/SscSPs/meow_bank/internal/middleware"
	"github.com/SscSPs/meow_bank/internal/platform/config"
	"github.com/SscSPs/meow_bank/internal/repositories/database/memory"
	"github.com/SscSPs/meow_bank/internal/repositories/database/pgsql"
	"github.com/SscSPs/meow_bank/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// @title Meow Bank API
// @version 1.0
// @description Customers, accounts and atomic money transfers over an append-only ledger.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var apiMiddleware []gin.HandlerFunc
	if cfg.RateLimit != "" {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
			os.Exit(1)
		}
		apiMiddleware = append(apiMiddleware, middleware.RateLimit(limiter))
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, apiMiddleware...)

	scheduler, err := startReconcileJob(cfg, serviceContainer.Reconcile, logger)
	if err != nil {
		logger.Error("Failed to schedule reconciliation", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	if scheduler != nil {
		// Wait for a running reconciliation to finish.
		<-scheduler.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
}

// setupRepositories builds the configured storage backend. The returned func
// releases it.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageDriver == config.StorageMemory {
		logger.Info("Using in-memory storage")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established")

	logger.Info("Running database migrations")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, nil, err
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

// startReconcileJob schedules periodic reconciliation. It returns a nil
// scheduler when no schedule is configured.
func startReconcileJob(cfg *config.Config, svc portssvc.ReconcileSvc, logger *slog.Logger) (*cron.Cron, error) {
	if cfg.ReconcileSchedule == "" {
		logger.Info("Reconciliation job disabled")
		return nil, nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(cfg.ReconcileSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		// The service logs the outcome itself.
		if _, err := svc.Reconcile(ctx); err != nil {
			logger.Error("Scheduled reconciliation failed", slog.String("error", err.Error()))
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	logger.Info("Reconciliation job scheduled", slog.String("schedule", cfg.ReconcileSchedule))
	return c, nil
}
