package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type sessionKey struct{}

// NewSessionID mints an identifier for one invocation.
func NewSessionID() string {
	return uuid.NewString()
}

// ContextWithSession stores a session id on ctx.
func ContextWithSession(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionFromContext returns the session id stored on ctx.
func SessionFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(sessionKey{}).(string)
	return id, ok && id != ""
}

// WithContext returns a logger augmented with the session id carried by ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	id, ok := SessionFromContext(ctx)
	if !ok {
		return logger
	}
	return logger.With(String(FieldSessionID, id))
}
