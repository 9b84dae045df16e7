package api

import (
	"net/http"

	"github.com/phrazzld/launchpad/internal/landing"
)

// requestEvent is the activation event carried by one HTTP request.
// Suppressing its default keeps browsers and proxies from caching the
// response, so the next activation is decided against the session at that
// moment instead of replaying an old redirect.
type requestEvent struct {
	w         http.ResponseWriter
	prevented bool
}

func (e *requestEvent) PreventDefault() {
	if e.prevented {
		return
	}
	e.w.Header().Set("Cache-Control", "no-store")
	e.prevented = true
}

// redirectTo navigates by answering the request with a 303 redirect, which
// makes the browser follow up with a GET regardless of the original method.
func redirectTo(w http.ResponseWriter, r *http.Request) landing.RouterFunc {
	return func(route string) {
		http.Redirect(w, r, route, http.StatusSeeOther)
	}
}
