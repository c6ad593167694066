package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/seeseehome-users/internal/model"
)

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	created, err := repo.Create(ctx, model.NewUser("alice_01", "alice@example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	got.UserPerm = model.PermUser | model.PermCoreMember
	updated, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, model.Perm(5), updated.UserPerm)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), model.ErrNotFound)
}

func TestUserRepository_Uniqueness(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	alice, err := repo.Create(ctx, model.NewUser("alice", "alice@example.com"))
	require.NoError(t, err)
	bob, err := repo.Create(ctx, model.NewUser("bob", "bob@example.com"))
	require.NoError(t, err)

	_, err = repo.Create(ctx, model.NewUser("alice", "other@example.com"))
	assert.ErrorIs(t, err, model.ErrConstraintViolation)

	_, err = repo.Create(ctx, model.NewUser("carol", "bob@example.com"))
	assert.ErrorIs(t, err, model.ErrConstraintViolation)

	bob.Username = "alice"
	_, err = repo.Update(ctx, bob)
	assert.ErrorIs(t, err, model.ErrConstraintViolation)

	// saving a user under its own name is not a conflict
	_, err = repo.Update(ctx, alice)
	assert.NoError(t, err)
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	repo := NewUserRepository()
	repo.now = func() time.Time { return time.Unix(0, 0) }

	_, err := repo.Update(context.Background(), model.User{ID: uuid.New(), Username: "ghost"})
	assert.ErrorIs(t, err, model.ErrNotFound)
}
