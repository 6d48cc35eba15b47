package render

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

var discardLogger = slog.New(slog.DiscardHandler)

// Logger returns the *slog.Logger stored in ctx by LoggingContext, or one
// that discards everything.
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return discardLogger
}

// LoggingContext returns a copy of ctx that carries logger. Render and the
// server's request handling log through it.
func LoggingContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}
