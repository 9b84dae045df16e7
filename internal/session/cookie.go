package session

import (
	"net/http"
	"strings"
)

// DefaultCookieName is used when no cookie name is configured.
const DefaultCookieName = "launchpad_session"

// CookiePolicy controls the attributes of cookies written by the service.
type CookiePolicy struct {
	Name string
	// ForceSecure sets the Secure attribute even on plain HTTP requests,
	// for deployments behind a TLS-terminating proxy that strips headers.
	ForceSecure bool
}

func (p CookiePolicy) name() string {
	if strings.TrimSpace(p.Name) == "" {
		return DefaultCookieName
	}
	return p.Name
}

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request, policy CookiePolicy) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(policy.name())
	if err != nil || cookie == nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	if value == "" {
		return "", false
	}
	return value, true
}

// Write stores token in the session cookie. The cookie lives for the browser
// session; the token's own expiry bounds how long it is honored.
func Write(w http.ResponseWriter, r *http.Request, policy CookiePolicy, token string) {
	if w == nil {
		return
	}
	http.SetCookie(w, newCookie(r, policy, token))
}

// Clear expires the session cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy CookiePolicy) {
	if w == nil {
		return
	}
	c := newCookie(r, policy, "")
	c.MaxAge = -1
	http.SetCookie(w, c)
}

func newCookie(r *http.Request, policy CookiePolicy, value string) *http.Cookie {
	return &http.Cookie{
		Name:     policy.name(),
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   policy.ForceSecure || isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	}
}

func isHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")), "https")
}
