package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	healthdash "github.com/set-night/healthdash"
	"github.com/set-night/healthdash/internal/auth"
	"github.com/set-night/healthdash/internal/config"
	"github.com/set-night/healthdash/internal/handler"
	"github.com/set-night/healthdash/internal/llm"
	"github.com/set-night/healthdash/internal/repository"
	"github.com/set-night/healthdash/internal/repository/sqlc"
	"github.com/set-night/healthdash/internal/service"
	"github.com/set-night/healthdash/internal/storage"
	"github.com/set-night/healthdash/internal/telegram"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)
	gin.SetMode(gin.ReleaseMode)

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(healthdash.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	queries := sqlc.New(pool)

	// External clients
	store := storage.NewClient(cfg.SupabaseURL, cfg.StorageBucket, cfg.StorageKey())
	verifier := auth.NewVerifier(cfg.SupabaseURL, cfg.SupabaseAnonKey, auth.WithJWTSecret(cfg.SupabaseJWTSecret))
	model, err := llm.New(cfg)
	if err != nil {
		slog.Error("failed to create model client", "error", err)
		os.Exit(1)
	}

	// Initialize services
	vitalsService := service.NewVitalsService(queries)
	documentService := service.NewDocumentService(queries, store)
	chatService := service.NewChatService(queries, model)

	// Optional ops alerts
	var reporter handler.ErrorReporter
	var alerter *telegram.Alerter
	if cfg.AlertsEnabled() {
		alerter, err = telegram.NewAlerter(cfg.BotToken, cfg.LogTelegramChatID, cfg.LogTopicError)
		if err != nil {
			slog.Error("failed to create telegram alerter", "error", err)
			os.Exit(1)
		}
		reporter = alerter
	}

	h := handler.New(handler.Deps{
		Cfg:       cfg,
		Vitals:    vitalsService,
		Documents: documentService,
		Chat:      chatService,
		Verifier:  verifier,
		Limiter:   queries,
		Reporter:  reporter,
	})

	// Start rate limit cleanup goroutine
	go func() {
		ticker := time.NewTicker(config.RateLimitCleanup)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := queries.CleanupRateLimits(context.Background()); err != nil {
					slog.Error("cleanup rate limits", "error", err)
				}
			}
		}
	}()

	if cfg.OrphanSweepInterval > 0 {
		go service.NewSweeper(store, queries).Run(ctx, cfg.OrphanSweepInterval)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting server", "addr", srv.Addr, "provider", cfg.LLMProvider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()
	if alerter != nil {
		alerter.Notify(fmt.Sprintf("✅ %s %s started", config.ServiceName, config.ServiceVersion))
	}

	<-ctx.Done()

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
	if alerter != nil {
		alerter.Wait()
	}

	slog.Info("server stopped gracefully")
}
