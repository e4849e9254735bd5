package logger

import "context"

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const (
	loggerKey  contextKey = "fsm.logger"
	sessionKey contextKey = "fsm.session"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithSession records the session name an operation works on.
func WithSession(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, sessionKey, name)
}

// SessionFromContext extracts the session name from context.
func SessionFromContext(ctx context.Context) string {
	if name, ok := ctx.Value(sessionKey).(string); ok {
		return name
	}
	return ""
}

// L is a shorthand for FromContext(ctx).WithContext(ctx).
func L(ctx context.Context) Logger {
	return FromContext(ctx).WithContext(ctx)
}
