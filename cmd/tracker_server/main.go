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

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/money_tracker/internal/adapters/database/memory"
	"github.com/SscSPs/money_tracker/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/money_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/money_tracker/internal/core/services"
	"github.com/SscSPs/money_tracker/internal/handlers"
	"github.com/SscSPs/money_tracker/internal/middleware"
	"github.com/SscSPs/money_tracker/internal/platform/config"
	"github.com/SscSPs/money_tracker/pkg/database"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var repos portsrepo.RepositoryProvider
	if cfg.DatabaseURL == "" {
		logger.Warn("PGSQL_URL not set, records are kept in memory and lost on exit")
		repos = memory.NewRepositoryProvider()
	} else {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool, logger)

		logger.Info("Running database migrations...")
		if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		repos = pgsql.NewRepositoryProvider(dbPool)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(repos)); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serverErrCh:
		if err != nil {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", slog.String("error", err.Error()))
		exitCode = 1
	}

	if exitCode != 0 {
		stop()
		os.Exit(exitCode)
	}
	logger.Info("Server stopped")
}
