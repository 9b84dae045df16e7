// Package redact scrubs credentials and other sensitive values from strings
// before they are logged or returned in error responses. Session cookies and
// the JWTs they carry are the main concern for this service.
package redact

import "regexp"

// Placeholders substituted for redacted values.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order; earlier rules win over overlapping later ones.
var rules = []rule{
	// Three-part base64url JWT.
	{regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`), RedactedJWTPlaceholder},
	// Authorization header values.
	{regexp.MustCompile(`(?i)\bBearer\s+[A-Za-z0-9_\-.~+/=]+`), "Bearer " + RedactedCredentialPlaceholder},
	// Session cookie pairs, whatever the cookie is named.
	{regexp.MustCompile(`(?i)\b([a-z0-9_]*session[a-z0-9_]*)=[^;\s]+`), "${1}=" + RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)\b(password|passwd|pwd)([=:]\s*)[^\s&;,]+`), "${1}${2}" + RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)\b(api[_-]?key|secret|token)([=:]\s*)[A-Za-z0-9_\-.~+/]{8,}`), "${1}${2}" + RedactedKeyPlaceholder},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), RedactedEmailPlaceholder},
	// Absolute unix paths with at least two segments.
	{regexp.MustCompile(`(^|\s)(?:/[\w.-]+){2,}`), "${1}" + RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
