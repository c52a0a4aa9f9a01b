package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical UUID representation of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// User is an account that owns recipes, tags and ingredients. Email is the
// login identifier.
type User struct {
	ID    UserID `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// IsActive is false for users that may no longer authenticate.
	IsActive bool `json:"isActive"`
	// IsStaff grants access to the admin API.
	IsStaff bool `json:"isStaff"`
	// IsSuperuser marks users created through the create-superuser command.
	IsSuperuser bool `json:"isSuperuser"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u User) String() string { return u.Email }
