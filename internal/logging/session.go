package logging

import (
	"context"
	"crypto/rand"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type sessionIDKey struct{}

// NewSessionID returns a fresh, time-ordered session identifier.
func NewSessionID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}

// ContextWithSessionID stores id on ctx.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext returns the session ID stored on ctx, if any.
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// GetOrGenerateSessionID returns the session ID on ctx or a new one.
func GetOrGenerateSessionID(ctx context.Context) string {
	if id := SessionIDFromContext(ctx); id != "" {
		return id
	}
	return NewSessionID()
}

// WithSessionID tags l with id.
func WithSessionID(l zerolog.Logger, id string) zerolog.Logger {
	return l.With().Str(FieldSessionID, id).Logger()
}
