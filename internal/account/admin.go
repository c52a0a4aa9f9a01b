package account

import (
	"context"
	"fmt"
	"recipe/pkg/domain"
	"recipe/pkg/serrors"
	"recipe/pkg/storage"
)

// requireStaff returns a FORBIDDEN error unless actor is an active staff user.
func (a account) requireStaff(ctx context.Context, actor domain.UserID) error {
	user, err := a.storage.UserByID(ctx, actor)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !user.IsActive || !user.IsStaff {
		return serrors.With(serrors.ErrForbidden, "you do not have permission to perform this action")
	}

	return nil
}

func (a account) Users(ctx context.Context, actor domain.UserID, limit, offset uint) ([]domain.User, error) {
	if err := a.requireStaff(ctx, actor); err != nil {
		return nil, err
	}

	users, err := a.storage.Users(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	return users, nil
}

func (a account) User(ctx context.Context, actor domain.UserID, id domain.UserID) (*domain.User, error) {
	if err := a.requireStaff(ctx, actor); err != nil {
		return nil, err
	}

	return a.Profile(ctx, id)
}

// CreateUser creates a user with the given staff and active flags. Superusers
// can only be created from the command line.
func (a account) CreateUser(ctx context.Context, actor domain.UserID, user NewUser) (*domain.User, error) {
	if err := a.requireStaff(ctx, actor); err != nil {
		return nil, err
	}

	active := true
	if user.IsActive != nil {
		active = *user.IsActive
	}

	return a.create(ctx, user, user.IsStaff, false, active)
}

func (a account) UpdateUser(ctx context.Context,
	actor domain.UserID,
	id domain.UserID,
	updates UserUpdates) (*domain.User, error) {
	if err := a.requireStaff(ctx, actor); err != nil {
		return nil, err
	}

	user, err := a.storage.UpdateUser(ctx, id, storage.UserUpdates{
		Name:     updates.Name,
		IsActive: updates.IsActive,
		IsStaff:  updates.IsStaff,
	})
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}
