package account

import (
	"context"
	"recipe/pkg/domain"
)

// NewUser is the input of Register and the admin CreateUser.
type NewUser struct {
	Email    string
	Password string
	Name     string
	// IsStaff and IsActive are only honored by the admin CreateUser. Register
	// always creates active non-staff users.
	IsStaff  bool
	IsActive *bool
}

// ProfileUpdates lists the fields a user may change on their own account.
// Nil fields are left untouched.
type ProfileUpdates struct {
	Name     *string
	Password *string
}

// UserUpdates lists the fields staff may change on any account.
type UserUpdates struct {
	Name     *string
	IsActive *bool
	IsStaff  *bool
}

//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *
type Account interface {
	Register(ctx context.Context, user NewUser) (*domain.User, error)
	CreateSuperuser(ctx context.Context, user NewUser) (*domain.User, error)
	IssueToken(ctx context.Context, email, password string) (string, error)
	// Authenticate returns the active user with the given id, or an
	// UNAUTHORIZED error.
	Authenticate(ctx context.Context, userID domain.UserID) (*domain.User, error)
	Profile(ctx context.Context, userID domain.UserID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID domain.UserID, updates ProfileUpdates) (*domain.User, error)

	// The admin operations require actor to be an active staff user.
	Users(ctx context.Context, actor domain.UserID, limit, offset uint) ([]domain.User, error)
	User(ctx context.Context, actor domain.UserID, id domain.UserID) (*domain.User, error)
	CreateUser(ctx context.Context, actor domain.UserID, user NewUser) (*domain.User, error)
	UpdateUser(ctx context.Context, actor domain.UserID, id domain.UserID, updates UserUpdates) (*domain.User, error)
}
