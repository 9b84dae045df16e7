package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/phrazzld/launchpad/internal/config"
	"github.com/phrazzld/launchpad/internal/service/auth"
	"github.com/phrazzld/launchpad/internal/session"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	jwtService auth.JWTService
	resolver   *session.Resolver
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}

	app.resolver = session.NewResolver(app.jwtService, session.CookiePolicy{
		Name:        cfg.Auth.CookieName,
		ForceSecure: cfg.Auth.SecureCookie,
	})
	logger.Info("Session resolver initialized", "cookie_name", cfg.Auth.CookieName)

	return app, nil
}

// Run listens on the configured port and serves until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", app.config.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", app.config.Server.Port, err)
	}
	return app.serve(ctx, ln)
}

// serve runs the HTTP server on ln until ctx is canceled.
func (app *application) serve(ctx context.Context, ln net.Listener) error {
	if err := app.startHTTPServer(ctx, ln, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
