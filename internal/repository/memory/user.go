// Package memory keeps users in process memory. It enforces the same
// uniqueness and not-found rules as the Postgres store.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/seeseehome-users/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]model.User
	now   func() time.Time
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]model.User),
		now:   time.Now,
	}
}

func (r *UserRepository) Create(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkUnique(user, uuid.Nil); err != nil {
		return model.User{}, err
	}

	now := r.now().UTC()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = user

	return user, nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return user, nil
}

func (r *UserRepository) Update(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.ID]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	if err := r.checkUnique(user, user.ID); err != nil {
		return model.User{}, err
	}

	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = r.now().UTC()
	r.users[user.ID] = user

	return user, nil
}

func (r *UserRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return model.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *UserRepository) checkUnique(user model.User, self uuid.UUID) error {
	for id, other := range r.users {
		if id == self {
			continue
		}
		if other.Username == user.Username {
			return fmt.Errorf("%w: username %q is taken", model.ErrConstraintViolation, user.Username)
		}
		if other.Email == user.Email {
			return fmt.Errorf("%w: email %q is taken", model.ErrConstraintViolation, user.Email)
		}
	}
	return nil
}
