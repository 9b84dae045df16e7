package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/phrazzld/launchpad/internal/api/shared"
	"github.com/phrazzld/launchpad/internal/platform/logger"
	"github.com/phrazzld/launchpad/internal/service/auth"
	"github.com/phrazzld/launchpad/internal/session"
)

// DevSessionHandler signs a visitor in without credentials so the dashboard
// branch of the call-to-action can be tried locally. Never mount it in
// production.
type DevSessionHandler struct {
	tokens auth.JWTService
	policy session.CookiePolicy
}

// NewDevSessionHandler creates a new DevSessionHandler.
func NewDevSessionHandler(tokens auth.JWTService, policy session.CookiePolicy) *DevSessionHandler {
	return &DevSessionHandler{tokens: tokens, policy: policy}
}

// SignIn handles POST /dev/session. The optional user_id form value selects
// the user; a random ID is used otherwise. The response redirects to the
// landing page with the session cookie set.
func (h *DevSessionHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	userID := uuid.New()
	if raw := r.FormValue("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid user_id", err)
			return
		}
		userID = parsed
	}

	token, err := h.tokens.GenerateToken(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create session", err)
		return
	}

	session.Write(w, r, h.policy, token)
	logger.FromContext(r.Context()).Warn("development session issued", "user_id", userID.String())

	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
