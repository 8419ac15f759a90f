// Package log carries the slog handler shared by every binary.
package log

import (
	"context"
	"log/slog"

	"github.com/BaseMax/travel-planner-graphql/internal/auth"
	"github.com/BaseMax/travel-planner-graphql/internal/requestid"
)

// ContextHandler decorates an slog.Handler so every record carries the
// request id and, once a resolver has authenticated, the caller's user id.
type ContextHandler struct {
	inner slog.Handler
}

func NewContextHandler(inner slog.Handler) *ContextHandler {
	return &ContextHandler{inner: inner}
}

func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := requestid.FromContext(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	if principal, ok := auth.PrincipalFromContext(ctx); ok {
		r.AddAttrs(slog.String("user_id", principal.ID))
	}
	return h.inner.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{inner: h.inner.WithGroup(name)}
}
