package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/launchpad/internal/api"
	apiMiddleware "github.com/phrazzld/launchpad/internal/api/middleware"
	"github.com/phrazzld/launchpad/internal/api/shared"
	"github.com/phrazzld/launchpad/internal/view"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)

	landingHandler := api.NewLandingHandler(app.resolver)
	sessionMiddleware := apiMiddleware.NewSessionMiddleware(app.resolver)

	r.Get("/", landingHandler.ShowLanding)

	r.Group(func(r chi.Router) {
		r.Use(sessionMiddleware.Attach)
		r.Post(view.DefaultActionPath, landingHandler.Start)
		r.Get(view.DefaultActionPath, landingHandler.Start)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/features", landingHandler.ListFeatures)
		r.With(sessionMiddleware.Attach).Get("/cta", landingHandler.CallToAction)
	})

	if app.config.Auth.DevSessions {
		devSessions := api.NewDevSessionHandler(app.jwtService, app.resolver.Policy())
		r.Post("/dev/session", devSessions.SignIn)
		app.logger.Warn("Development sign-in enabled", "path", "/dev/session")
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
