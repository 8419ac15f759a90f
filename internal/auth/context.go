package auth

import (
	"context"

	"github.com/BaseMax/travel-planner-graphql/internal/domain"
)

type principalContextKey struct{}
type tokenContextKey struct{}

// ContextWithToken stores the raw authorization header value in the context.
// An empty token leaves the context unchanged.
func ContextWithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext extracts the raw token. Returns "" if absent.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}

// ContextWithPrincipal attaches the authenticated principal to the context.
func ContextWithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, &p)
}

// PrincipalFromContext extracts the authenticated principal from the context.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	v, ok := ctx.Value(principalContextKey{}).(*domain.Principal)
	if !ok || v == nil {
		return domain.Principal{}, false
	}
	return *v, true
}
