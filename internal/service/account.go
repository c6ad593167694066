package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/seeseehome-users/internal/logger"
	"github.com/dtroode/seeseehome-users/internal/model"
)

// PasswordHasher turns a plaintext password into its stored form.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// Account validates account input and manages users in the store.
type Account struct {
	userStore model.UserStore
	hasher    PasswordHasher
	logger    *logger.Logger
}

// NewAccount creates a new Account service.
func NewAccount(userStore model.UserStore, hasher PasswordHasher, logger *logger.Logger) *Account {
	return &Account{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
	}
}

// CreateUser validates the input, hashes the password and stores a new user.
func (a *Account) CreateUser(ctx context.Context, username, email, password string, extra model.UserFields) (model.User, error) {
	return a.createUser(ctx, username, email, password, extra)
}

// CreateSuperuser is CreateUser with the staff flag set. The flag is part of
// the initial insert.
func (a *Account) CreateSuperuser(ctx context.Context, username, email, password string, extra model.UserFields) (model.User, error) {
	staff := true
	extra.IsStaff = &staff
	return a.createUser(ctx, username, email, password, extra)
}

func (a *Account) createUser(ctx context.Context, username, email, password string, extra model.UserFields) (model.User, error) {
	a.logger.Debug("Account service: creating user",
		"username", username)

	if err := ValidateUsername(username); err != nil {
		return model.User{}, err
	}
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return model.User{}, err
	}
	if err := ValidatePassword(password); err != nil {
		return model.User{}, err
	}

	user := model.NewUser(username, email)
	if extra.UserPerm != nil {
		if err := ValidateUserPerm(*extra.UserPerm); err != nil {
			return model.User{}, err
		}
		user.UserPerm = *extra.UserPerm
	}
	if extra.IsActive != nil {
		user.IsActive = *extra.IsActive
	}
	if extra.IsStaff != nil {
		user.IsStaff = *extra.IsStaff
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Account service: failed to hash password",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash

	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrConstraintViolation) {
			a.logger.Info("Account service: username or email already taken",
				"username", username,
				"email", email)
		} else {
			a.logger.Error("Account service: failed to create user",
				"username", username,
				"error", err.Error())
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Account service: user created",
		"user_id", saved.ID,
		"username", saved.Username,
		"is_staff", saved.IsStaff)

	return saved, nil
}

// GetUser returns the user with the given id. A missing user is reported
// through the boolean, not as an error.
func (a *Account) GetUser(ctx context.Context, id uuid.UUID) (model.User, bool, error) {
	user, err := a.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, false, nil
	}
	if err != nil {
		a.logger.Error("Account service: failed to get user",
			"user_id", id,
			"error", err.Error())
		return model.User{}, false, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, true, nil
}

// lookup fetches a user that must exist. Store failures other than
// ErrNotFound are logged.
func (a *Account) lookup(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			a.logger.Error("Account service: failed to get user",
				"user_id", id,
				"error", err.Error())
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

// UpdateUser applies the set fields of upd to an existing user.
func (a *Account) UpdateUser(ctx context.Context, id uuid.UUID, upd model.UserUpdate) error {
	a.logger.Debug("Account service: updating user",
		"user_id", id)

	user, err := a.lookup(ctx, id)
	if err != nil {
		return err
	}

	if upd.Username != nil {
		if err := ValidateUsername(*upd.Username); err != nil {
			return err
		}
		user.Username = *upd.Username
	}
	if upd.UserPerm != nil {
		if err := ValidateUserPerm(*upd.UserPerm); err != nil {
			return err
		}
		user.UserPerm = *upd.UserPerm
	}

	if upd.IsEmpty() {
		return nil
	}

	if _, err := a.userStore.Update(ctx, user); err != nil {
		a.logger.Error("Account service: failed to update user",
			"user_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to update user: %w", err)
	}

	a.logger.Info("Account service: user updated",
		"user_id", id)

	return nil
}

// SetActive activates or deactivates a user and persists the change.
func (a *Account) SetActive(ctx context.Context, id uuid.UUID, active bool) (model.User, error) {
	user, err := a.lookup(ctx, id)
	if err != nil {
		return model.User{}, err
	}

	if active {
		user.Activate()
	} else {
		user.Deactivate()
	}

	saved, err := a.userStore.Update(ctx, user)
	if err != nil {
		a.logger.Error("Account service: failed to update user activity",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	a.logger.Info("Account service: user activity changed",
		"user_id", id,
		"is_active", saved.IsActive)

	return saved, nil
}

// DeleteUser permanently removes a user.
func (a *Account) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := a.lookup(ctx, id); err != nil {
		return err
	}

	if err := a.userStore.Delete(ctx, id); err != nil {
		a.logger.Error("Account service: failed to delete user",
			"user_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete user: %w", err)
	}

	a.logger.Info("Account service: user deleted",
		"user_id", id)

	return nil
}
