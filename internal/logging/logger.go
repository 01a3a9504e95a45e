// Package logging defines the structured-logging interface used across the
// client. Two backends are provided: zerolog (default) and log/slog.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "session restored", "user_id", id, "role", role)
type Logger interface {
	// Debug logs diagnostic details that are hidden at the default level.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning message for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs an error message for failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// Backend names accepted by Options.Backend.
const (
	BackendZerolog = "zerolog"
	BackendSlog    = "slog"
)

// Options controls how New builds a Logger.
type Options struct {
	// Backend is "zerolog" (default) or "slog".
	Backend string
	// Level is the minimum level: debug, info, warn, error. Defaults to info.
	Level string
	// Pretty selects human-friendly console output instead of JSON (zerolog)
	// or text instead of JSON (slog).
	Pretty bool
	// Output defaults to os.Stderr so log lines do not interleave with the
	// screens printed on stdout.
	Output io.Writer
}

// New builds a Logger for the given options.
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case BackendSlog:
		return newSlogFromOptions(out, opts)
	default:
		return newZerologFromOptions(out, opts)
	}
}
