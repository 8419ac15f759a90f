// Package requestid holds the per-request correlation id passed from the
// HTTP layer down to logs.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header carrying the id in and out.
const Header = "X-Request-ID"

type ctxKey struct{}

// New generates a random UUID v4 request id.
func New() string {
	return uuid.NewString()
}

// WithRequestID returns a copy of ctx carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the request id from ctx. Returns "" when absent.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
