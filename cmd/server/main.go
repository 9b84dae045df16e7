// Package main implements the entry point for the launchpad server, which
// serves the public landing page and routes its call-to-action to the
// dashboard or the login page depending on the visitor's session.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/launchpad/internal/config"
	"github.com/phrazzld/launchpad/internal/platform/logger"
	"github.com/phrazzld/launchpad/internal/platform/otel"
)

func main() {
	cfg, l, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := run(cfg, l); err != nil {
		l.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

// run wires tracing and the application, then serves until SIGINT or SIGTERM.
// Pending spans are flushed on every exit path.
func run(cfg *config.Config, l *slog.Logger) error {
	shutdownTracing, err := otel.Setup(context.Background(), cfg.Otel)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			l.Error("Failed to flush traces", "error", err)
		}
	}()
	if cfg.Otel.Enabled && cfg.Otel.Endpoint != "" {
		l.Info("Tracing enabled", "endpoint", cfg.Otel.Endpoint, "service_name", cfg.Otel.ServiceName)
	}

	app, err := newApplication(cfg, l)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"cookie_name", cfg.Auth.CookieName)

	return cfg, l, nil
}
