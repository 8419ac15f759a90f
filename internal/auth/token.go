// Package auth issues and verifies the signed tokens that prove an
// authenticated identity, and guards protected operations.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BaseMax/travel-planner-graphql/internal/domain"
)

const tokenTTL = 24 * time.Hour

// TokenService signs and verifies HS256 JWTs carrying {sub, name}.
type TokenService struct {
	key []byte
	ttl time.Duration
}

func NewTokenService(key []byte) *TokenService {
	return &TokenService{key: key, ttl: tokenTTL}
}

// Sign returns a token for the user, expiring after the service TTL.
func (s *TokenService) Sign(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

// Verify checks signature and expiry and returns the embedded principal.
// Any failure collapses to domain.ErrInvalidToken.
func (s *TokenService) Verify(rawToken string) (domain.Principal, error) {
	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.key, nil
	})
	if err != nil || !token.Valid {
		return domain.Principal{}, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return domain.Principal{}, domain.ErrInvalidToken
	}
	name, _ := claims["name"].(string)

	return domain.Principal{ID: sub, Name: name}, nil
}

// Guard is the opt-in authorization check run by protected resolvers.
type Guard struct {
	tokens *TokenService
}

func NewGuard(tokens *TokenService) *Guard {
	return &Guard{tokens: tokens}
}

// Authenticate reads the raw token stashed in the context by the transport
// layer, verifies it, and returns a context carrying the typed principal.
// A missing token fails with domain.ErrLoginRequired, a bad one with
// domain.ErrInvalidToken.
func (g *Guard) Authenticate(ctx context.Context) (context.Context, domain.Principal, error) {
	rawToken := TokenFromContext(ctx)
	if rawToken == "" {
		return ctx, domain.Principal{}, domain.ErrLoginRequired
	}
	principal, err := g.tokens.Verify(rawToken)
	if err != nil {
		return ctx, domain.Principal{}, err
	}
	return ContextWithPrincipal(ctx, principal), principal, nil
}
