// Command server runs the campus site: it loads configuration for the
// profile named by APP_PROFILE, builds the dependency graph, loads the
// program and club catalogs, and serves until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/campus-web/internal/adapters/http"
	"github.com/jsamuelsen11/campus-web/internal/platform/config"
	"github.com/jsamuelsen11/campus-web/internal/platform/logging"
)

const (
	drainTimeout   = 15 * time.Second
	flushTimeout   = 5 * time.Second
	catalogTimeout = 30 * time.Second
	checkTimeout   = 2 * time.Second

	contentServiceName = "content-api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "campus-web: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is not set (local, test or prod)")
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := startTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
		defer cancel()
		if err := providers.shutdown(flushCtx); err != nil {
			logger.Error("flushing telemetry", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.metrics)
	provide(injector, cfg, logger)

	// Resolving the server builds the whole graph, catalogs included.
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring: %w", err)
	}
	registerChecks(injector, cfg)

	if err := server.Listen(); err != nil {
		return err
	}
	served := make(chan error, 1)
	go func() { served <- server.Start() }()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
		logger.Info("shutting down", slog.String("profile", profile))
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error("draining server", slog.Any("error", err))
	}
	return <-served
}
