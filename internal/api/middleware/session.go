package middleware

import (
	"net/http"

	"github.com/phrazzld/launchpad/internal/api/shared"
	"github.com/phrazzld/launchpad/internal/platform/logger"
	"github.com/phrazzld/launchpad/internal/session"
)

// SessionMiddleware records the signed-in user on public routes.
// Anonymous requests pass through untouched.
type SessionMiddleware struct {
	resolver *session.Resolver
}

// NewSessionMiddleware creates a new SessionMiddleware.
func NewSessionMiddleware(resolver *session.Resolver) *SessionMiddleware {
	return &SessionMiddleware{resolver: resolver}
}

// Attach resolves the session cookie once and stores the result in the
// request context for later readers. For a signed-in user the user ID is
// also added to the context and the request logger.
func (m *SessionMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := m.resolver.Resolve(r)
		ctx := session.NewContext(r.Context(), state)
		if !state.Authenticated() {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		ctx = shared.SetUserID(ctx, state.UserID)
		ctx = logger.WithLogger(ctx, logger.FromContext(ctx).With("user_id", state.UserID.String()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
