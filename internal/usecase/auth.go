package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BaseMax/travel-planner-graphql/internal/auth"
	"github.com/BaseMax/travel-planner-graphql/internal/domain"
	"github.com/BaseMax/travel-planner-graphql/internal/ids"
	"github.com/BaseMax/travel-planner-graphql/internal/repository"
)

type AuthUsecase struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

func NewAuthUsecase(users repository.UserRepository, tokens *auth.TokenService) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// Signup registers a new user and returns their name plus a signed token.
// A taken email fails with domain.ErrEmailTaken; the existing user is
// never touched.
func (u *AuthUsecase) Signup(ctx context.Context, in SignupInput) (*domain.Auth, error) {
	_, err := u.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           ids.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := u.tokens.Sign(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &domain.Auth{Name: user.Name, Token: token}, nil
}

// Login verifies the credentials and returns a fresh token. Unknown email
// and wrong password both fail with domain.ErrBadCredentials so the
// response never reveals which field was wrong.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.Auth, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		return nil, domain.ErrBadCredentials
	}

	token, err := u.tokens.Sign(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &domain.Auth{Name: user.Name, Token: token}, nil
}
