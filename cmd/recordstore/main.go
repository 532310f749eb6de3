// Package main runs the record store: one SQLite-backed HTTP server that
// answers the account, team and task store contracts for local development.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	adapthttp "github.com/jsamuelsen11/teamtasks/internal/adapters/http"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/teamtasks/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/teamtasks/internal/platform/config"
	"github.com/jsamuelsen11/teamtasks/internal/platform/health"
	"github.com/jsamuelsen11/teamtasks/internal/platform/logging"
	"github.com/jsamuelsen11/teamtasks/internal/recordstore"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile, err := config.ProfileFromEnv()
	if err != nil {
		return err
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	if dir := filepath.Dir(cfg.RecordStore.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}
	store, err := recordstore.Open(cfg.RecordStore.Path)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("closing record store", slog.Any("error", err))
		}
	}()

	registry := health.New()
	registry.Register(store)

	handler := recordstore.NewHandler(
		recordstore.Stores{Accounts: store, Teams: store, Tasks: store},
		handlers.NewHealthHandler(registry),
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(logger),
	)

	serverCfg := cfg.Server
	serverCfg.Port = cfg.RecordStore.Port
	server := adapthttp.NewServer(serverCfg, handler, logger)

	logger.Info("record store ready", slog.String("path", cfg.RecordStore.Path))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	logger.Info("shutdown complete")
	return nil
}
