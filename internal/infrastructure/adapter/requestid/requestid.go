// Package requestid carries the HTTP request id through a context so that
// log lines written deep in the stack can be correlated with the access log.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header the id travels in
const Header = "X-Request-ID"

type contextKey struct{}

// New returns a fresh random id
func New() string {
	return uuid.NewString()
}

// WithID returns a copy of ctx carrying id
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the id stored in ctx, or the empty string
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// Valid reports whether id looks like an id this service would accept from a client
func Valid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
