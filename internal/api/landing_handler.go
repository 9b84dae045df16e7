package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/phrazzld/launchpad/internal/api/shared"
	"github.com/phrazzld/launchpad/internal/landing"
	"github.com/phrazzld/launchpad/internal/platform/logger"
	"github.com/phrazzld/launchpad/internal/session"
	"github.com/phrazzld/launchpad/internal/view"
)

const tracerName = "github.com/phrazzld/launchpad/internal/api"

// maxSourceLength bounds the client-supplied control name recorded in logs and spans.
const maxSourceLength = 64

// LandingHandler serves the landing page and its call-to-action.
type LandingHandler struct {
	resolver *session.Resolver
	props    view.Props
	tracer   trace.Tracer
}

// LandingOption customizes a LandingHandler.
type LandingOption func(*LandingHandler)

// WithTracerProvider sets the provider used for call-to-action spans.
// The global provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) LandingOption {
	return func(h *LandingHandler) {
		h.tracer = tp.Tracer(tracerName)
	}
}

// NewLandingHandler creates a new LandingHandler with the given dependencies.
func NewLandingHandler(resolver *session.Resolver, opts ...LandingOption) *LandingHandler {
	h := &LandingHandler{
		resolver: resolver,
		props:    view.DefaultProps(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ShowLanding handles GET /.
func (h *LandingHandler) ShowLanding(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := view.Page(h.props).Render(&buf); err != nil {
		err = fmt.Errorf("%w: %w", ErrRenderFailed, err)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, safeErrorMessage(err), err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.FromContext(r.Context()).Error("failed to write landing page", "error", err)
	}
}

// Start handles the call-to-action endpoint. Each request is one activation:
// the session is read as the request arrives and the response is a single
// redirect to the dashboard or the login page.
func (h *LandingHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.activate(w, r, redirectTo(w, r))
}

// CallToAction handles GET /api/cta for client-side routers. It makes the
// same decision as Start but reports the route instead of redirecting.
func (h *LandingHandler) CallToAction(w http.ResponseWriter, r *http.Request) {
	var route string
	h.activate(w, r, landing.RouterFunc(func(to string) { route = to }))

	shared.RespondWithJSON(w, r, http.StatusOK, CallToActionResponse{
		Route:         route,
		Authenticated: route == landing.RouteDashboard,
	})
}

// ListFeatures handles GET /api/features.
func (h *LandingHandler) ListFeatures(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, newFeaturesResponse(h.props.Features))
}

// activate runs one call-to-action decision for the request and returns the
// route handed to router.
func (h *LandingHandler) activate(w http.ResponseWriter, r *http.Request, router landing.Router) string {
	ctx, span := h.tracer.Start(r.Context(), "landing.activate")
	defer span.End()
	r = r.WithContext(ctx)

	source := activationSource(r)

	// Stale cookies are expired by the auth read, before router writes headers.
	onActivate := landing.Bind(h.resolver.AuthState(w, r), router)
	route := onActivate(&requestEvent{w: w})
	authenticated := route == landing.RouteDashboard

	span.SetAttributes(
		attribute.Bool("landing.authenticated", authenticated),
		attribute.String("landing.route", route),
		attribute.String("landing.source", source),
	)

	if userID, ok := shared.GetUserID(ctx); ok {
		span.SetAttributes(attribute.String("enduser.id", userID.String()))
	}
	logger.FromContext(ctx).Info("call-to-action activated",
		"route", route,
		"authenticated", authenticated,
		"source", source)

	return route
}

// activationSource returns the name of the control that was activated,
// as valid UTF-8 of at most maxSourceLength bytes.
func activationSource(r *http.Request) string {
	source := strings.ToValidUTF8(r.FormValue("source"), "")
	if source == "" {
		return "unknown"
	}
	if len(source) > maxSourceLength {
		cut := maxSourceLength
		for cut > 0 && !utf8.RuneStart(source[cut]) {
			cut--
		}
		source = source[:cut]
	}
	return source
}
