package session

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/launchpad/internal/landing"
	"github.com/phrazzld/launchpad/internal/platform/logger"
	"github.com/phrazzld/launchpad/internal/redact"
	"github.com/phrazzld/launchpad/internal/service/auth"
)

// State is the outcome of resolving one request's session.
type State struct {
	UserID uuid.UUID
	// Stale is set when a cookie was present but could not be used.
	Stale bool
}

// Authenticated implements landing.AuthState.
func (s State) Authenticated() bool {
	return s.UserID != uuid.Nil
}

// Resolver validates session cookies against the shared signing secret.
type Resolver struct {
	tokens auth.JWTService
	policy CookiePolicy
}

// NewResolver creates a Resolver.
func NewResolver(tokens auth.JWTService, policy CookiePolicy) *Resolver {
	return &Resolver{tokens: tokens, policy: policy}
}

// Policy returns the cookie policy the resolver reads with.
func (res *Resolver) Policy() CookiePolicy {
	return res.policy
}

// Resolve validates the request's session cookie. Any failure yields an
// anonymous state; there is no error path.
func (res *Resolver) Resolve(r *http.Request) State {
	token, ok := Read(r, res.policy)
	if !ok {
		return State{}
	}

	claims, err := res.tokens.ValidateToken(r.Context(), token)
	if err != nil {
		log := logger.FromContext(r.Context())
		switch {
		case errors.Is(err, auth.ErrExpiredToken),
			errors.Is(err, auth.ErrInvalidToken),
			errors.Is(err, auth.ErrWrongTokenType),
			errors.Is(err, auth.ErrTokenNotYetValid):
			log.Debug("ignoring unusable session cookie", "reason", err.Error())
		default:
			log.Warn("session validation failed", "error", redact.Error(err))
		}
		return State{Stale: true}
	}

	return State{UserID: claims.UserID}
}

// Current returns the request's session state. A state resolved earlier in
// the same request (see NewContext) is reused so the cookie is validated once.
func (res *Resolver) Current(r *http.Request) State {
	if state, ok := FromContext(r.Context()); ok {
		return state
	}
	return res.Resolve(r)
}

// AuthState returns the landing.AuthState for one request. Each read looks up
// the current session, and a cookie that could not be used is expired on w
// so the browser stops sending it.
func (res *Resolver) AuthState(w http.ResponseWriter, r *http.Request) landing.AuthState {
	return landing.AuthFunc(func() bool {
		state := res.Current(r)
		if state.Stale {
			Clear(w, r, res.policy)
		}
		return state.Authenticated()
	})
}
