package account

import (
	"errors"
	"fmt"
	"recipe/pkg/serrors"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the minimum number of characters of a password.
const MinPasswordLength = 5

var errPasswordTooShort = serrors.With(serrors.ErrBadRequest,
	"ensure this field has at least %d characters", MinPasswordLength)

// HashPassword validates password and returns its bcrypt hash.
func HashPassword(password string) (string, error) {
	if len([]rune(password)) < MinPasswordLength {
		return "", errPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", serrors.Wrap(serrors.ErrBadRequest, err, "password is too long")
		}

		return "", fmt.Errorf("could not hash password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
