package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pranayjha5666/harsha4/internal/adapters/http/api"
	"github.com/pranayjha5666/harsha4/internal/adapters/media"
	"github.com/pranayjha5666/harsha4/internal/adapters/repository"
	service "github.com/pranayjha5666/harsha4/internal/app"
	"github.com/pranayjha5666/harsha4/internal/config"
	"github.com/pranayjha5666/harsha4/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Optional .env for local development; env vars win either way.
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store, err := repository.NewMongoStore(ctx,
		repository.WithURI(cfg.MongoURI),
		repository.WithDatabase(cfg.MongoDatabase),
		repository.WithTimeout(time.Duration(cfg.StoreTimeoutMS)*time.Millisecond),
		repository.WithLogger(log),
	)
	if err != nil {
		log.Error(ctx, "failed to connect to document store", logger.Error(err))
		return
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Error(closeCtx, "store disconnect failed", logger.Error(err))
		}
	}()

	mediaClient := media.NewClient(
		media.WithCredentials(cfg.MediaCloud, cfg.MediaAPIKey, cfg.MediaAPISecret),
		media.WithLogger(log),
	)
	if !mediaClient.Enabled() {
		log.Warn(ctx, "media credentials absent; release calls are disabled")
	}

	svc := service.New(
		service.WithStore(store),
		service.WithMediaReleaser(mediaClient),
		service.WithDepartments(cfg.Departments),
		service.WithLogger(log),
	)

	// One-time insert-if-absent seeding. Runs to completion in the
	// background and never blocks request handling; the ledger treats an
	// unseeded name as not found until this lands.
	go svc.EnsureSeeded(ctx)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}
