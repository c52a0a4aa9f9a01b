package account

import (
	"context"
	"errors"
	"fmt"
	"recipe/internal/config"
	"recipe/pkg/domain"
	"recipe/pkg/serrors"
	"recipe/pkg/storage"
	"strings"
)

var errInvalidCredentials = serrors.With(serrors.ErrBadRequest, "unable to authenticate with provided credentials")

// Options configure the account service.
type Options struct {
	// Tokens signs access tokens. IssueToken fails when it is nil.
	Tokens *TokenIssuer
}

// NewOptions constructs Options from the application config. A missing
// private key is allowed; such a service cannot issue tokens.
func NewOptions(cfg *config.Config) (Options, error) {
	if cfg.Auth.PrivateKey == "" {
		return Options{}, nil
	}

	tokens, err := NewTokenIssuer(cfg.Auth.PrivateKey, cfg.Auth.TokenTTL)
	if err != nil {
		return Options{}, err
	}

	return Options{Tokens: tokens}, nil
}

type account struct {
	options Options
	storage storage.Storage
}

// New creates an Account service backed by storage.
func New(storage storage.Storage, options Options) Account {
	return &account{
		options: options,
		storage: storage,
	}
}

// Register creates an active, non-staff user.
func (a account) Register(ctx context.Context, user NewUser) (*domain.User, error) {
	return a.create(ctx, user, false, false, true)
}

// CreateSuperuser creates an active user with staff and superuser flags.
func (a account) CreateSuperuser(ctx context.Context, user NewUser) (*domain.User, error) {
	return a.create(ctx, user, true, true, true)
}

func (a account) create(ctx context.Context, user NewUser, staff, superuser, active bool) (*domain.User, error) {
	email := NormalizeEmail(user.Email)
	if email == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "users must have an email address")
	}

	hash, err := HashPassword(user.Password)
	if err != nil {
		return nil, err
	}

	created, err := a.storage.CreateUser(ctx, domain.User{
		Email:        email,
		Name:         strings.TrimSpace(user.Name),
		PasswordHash: hash,
		IsActive:     active,
		IsStaff:      staff,
		IsSuperuser:  superuser,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "user with this email already exists")
		}

		return nil, fmt.Errorf("could not create user: %w", err)
	}

	return created, nil
}

// IssueToken checks the credentials and returns a signed access token.
// Unknown emails, wrong or blank passwords and inactive users all produce the
// same error.
func (a account) IssueToken(ctx context.Context, email, password string) (string, error) {
	if a.options.Tokens == nil {
		return "", serrors.With(serrors.ErrInternal, "token signing is not configured")
	}
	if password == "" {
		return "", errInvalidCredentials
	}

	user, err := a.storage.UserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return "", fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !user.IsActive || !CheckPassword(user.PasswordHash, password) {
		return "", errInvalidCredentials
	}

	return a.options.Tokens.Issue(user.ID)
}

func (a account) Authenticate(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, serrors.With(serrors.ErrUnauthorized, "user not found or inactive")
	}

	return user, nil
}

func (a account) Profile(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// UpdateProfile changes the user's name and/or password. A new password is
// validated and hashed.
func (a account) UpdateProfile(ctx context.Context,
	userID domain.UserID,
	updates ProfileUpdates) (*domain.User, error) {
	var changes storage.UserUpdates
	if updates.Name != nil {
		name := strings.TrimSpace(*updates.Name)
		changes.Name = &name
	}
	if updates.Password != nil {
		hash, err := HashPassword(*updates.Password)
		if err != nil {
			return nil, err
		}
		changes.PasswordHash = &hash
	}

	user, err := a.storage.UpdateUser(ctx, userID, changes)
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}
