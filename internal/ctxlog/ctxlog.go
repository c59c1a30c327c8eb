// Package ctxlog carries a slog.Logger through context.Context so every
// layer logs with the attributes its caller established.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is unexported to avoid collisions with context keys from other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a new context with the provided logger embedded.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from a context, falling back to
// slog.Default when none was attached. The fallback keeps library packages
// usable without the application wiring a logger first.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
