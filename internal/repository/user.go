package repository

import (
	"context"

	"github.com/BaseMax/travel-planner-graphql/internal/domain"
)

type UserRepository interface {
	// Create stores a new user. Returns domain.ErrEmailTaken when the email
	// is already registered.
	Create(ctx context.Context, user *domain.User) error
	// FindByEmail returns domain.ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
