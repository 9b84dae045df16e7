package api

import "errors"

// ErrRenderFailed wraps failures to render the landing page.
var ErrRenderFailed = errors.New("failed to render landing page")

// safeErrorMessage returns the message shown to clients for err.
// Internal details never leave the server.
func safeErrorMessage(err error) string {
	if errors.Is(err, ErrRenderFailed) {
		return "The page is temporarily unavailable"
	}
	return "An unexpected error occurred"
}
