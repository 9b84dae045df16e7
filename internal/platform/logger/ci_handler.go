package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// ciEnvVars maps CI environment variables to the log attribute they populate.
var ciEnvVars = map[string]string{
	"GITHUB_WORKFLOW":    "ci_workflow",
	"GITHUB_RUN_ID":      "ci_run_id",
	"GITHUB_SHA":         "ci_commit",
	"GITHUB_REF_NAME":    "ci_branch",
	"CI_PIPELINE_ID":     "ci_pipeline_id",
	"CI_COMMIT_SHA":      "ci_commit",
	"CI_COMMIT_REF_NAME": "ci_branch",
}

// isInCIEnvironment reports whether the process runs under a CI system.
func isInCIEnvironment() bool {
	return os.Getenv("CI") == "true" || os.Getenv("GITHUB_ACTIONS") == "true"
}

// getCIMetadata collects the CI variables that are set.
func getCIMetadata() map[string]string {
	metadata := make(map[string]string)
	for env, attr := range ciEnvVars {
		if value := os.Getenv(env); value != "" {
			metadata[attr] = value
		}
	}
	return metadata
}

// CIHandler is a custom slog.Handler that adds CI environment metadata
// to every log record.
type CIHandler struct {
	handler  slog.Handler
	metadata map[string]string
}

// NewCIHandler creates a new CIHandler writing JSON to out.
func NewCIHandler(out io.Writer, opts *slog.HandlerOptions) *CIHandler {
	var handlerOpts slog.HandlerOptions
	if opts != nil {
		handlerOpts = *opts
	}

	return &CIHandler{
		handler:  slog.NewJSONHandler(out, &handlerOpts),
		metadata: getCIMetadata(),
	}
}

// Enabled implements the slog.Handler interface.
func (h *CIHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *CIHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &CIHandler{handler: h.handler.WithAttrs(attrs), metadata: h.metadata}
}

// WithGroup implements the slog.Handler interface.
func (h *CIHandler) WithGroup(name string) slog.Handler {
	return &CIHandler{handler: h.handler.WithGroup(name), metadata: h.metadata}
}

// Handle implements the slog.Handler interface.
func (h *CIHandler) Handle(ctx context.Context, record slog.Record) error {
	enhanced := record.Clone()
	for key, value := range h.metadata {
		enhanced.AddAttrs(slog.String(key, value))
	}
	return h.handler.Handle(ctx, enhanced)
}
