package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Perm is a user permission bitmask.
type Perm int

const (
	PermUser       Perm = 1
	PermMember     Perm = 2
	PermCoreMember Perm = 4
	PermGraduate   Perm = 8
	PermPresident  Perm = 16
	// PermAll has every permission bit set.
	PermAll Perm = PermUser | PermMember | PermCoreMember | PermGraduate | PermPresident
)

// Has reports whether every bit of flag is set in p.
func (p Perm) Has(flag Perm) bool {
	return p&flag == flag
}

// User represents a stored account.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	IsActive     bool
	IsStaff      bool
	UserPerm     Perm
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser returns an active, non-staff user with the default permission.
func NewUser(username, email string) User {
	return User{
		Username: username,
		Email:    email,
		IsActive: true,
		UserPerm: PermUser,
	}
}

// Activate marks the account active. The change is not persisted.
func (u *User) Activate() bool {
	u.IsActive = true
	return u.IsActive
}

// Deactivate marks the account inactive. The change is not persisted.
func (u *User) Deactivate() bool {
	u.IsActive = false
	return u.IsActive
}

// UserFields holds optional attributes applied when a user is created.
type UserFields struct {
	UserPerm *Perm
	IsActive *bool
	IsStaff  *bool
}

// UserUpdate lists the fields that may change on an existing user.
// Nil fields are left untouched.
type UserUpdate struct {
	Username *string
	UserPerm *Perm
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.UserPerm == nil
}
