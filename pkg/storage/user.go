package storage

import (
	"context"
	"recipe/pkg/domain"
)

// UserUpdates lists the user fields to change. Nil fields are left untouched.
type UserUpdates struct {
	Name         *string
	PasswordHash *string
	IsActive     *bool
	IsStaff      *bool
}

// UserStorage persists user accounts.
type UserStorage interface {
	// CreateUser inserts a user and returns the stored row. It returns
	// ErrAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns nil when the user does not exist.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail matches the email exactly and returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UpdateUser applies updates and returns the updated row, or nil when the
	// user does not exist.
	UpdateUser(ctx context.Context, id domain.UserID, updates UserUpdates) (*domain.User, error)
	// Users returns a page of users ordered by email.
	Users(ctx context.Context, limit, offset uint) ([]domain.User, error)
}
