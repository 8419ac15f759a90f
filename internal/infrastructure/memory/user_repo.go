// Package memory holds in-memory implementations of the repository
// interfaces. They are safe for concurrent use and back the tests.
package memory

import (
	"context"
	"sync"

	"github.com/BaseMax/travel-planner-graphql/internal/domain"
)

type UserRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byID: make(map[string]domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	r.byID[user.ID] = *user
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := u
	return &copied, nil
}
