package xlog

import (
	"context"
)

var (
	// C is a short alias of the FromContext function.
	C = FromContext
)

type contextKey struct{}

// FromContext gets the Logger from context, or the default one when the
// context carries none.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		logger = Default()
	}
	return logger
}

// WithContext injects a Logger carrying the given attributes into the
// context and returns the new child context.
func WithContext(ctx context.Context, args ...any) context.Context {
	logger := FromContext(ctx)
	return context.WithValue(ctx, contextKey{}, logger.With(args...))
}
