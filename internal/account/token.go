package account

import (
	"crypto/rsa"
	"fmt"
	"recipe/pkg/domain"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer signs RS256 access tokens whose subject is the user id.
type TokenIssuer struct {
	key *rsa.PrivateKey
	ttl time.Duration
	now func() time.Time
}

// NewTokenIssuer parses the PEM encoded RSA private key.
func NewTokenIssuer(privateKeyPEM string, ttl time.Duration) (*TokenIssuer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &TokenIssuer{key: key, ttl: ttl, now: time.Now}, nil
}

// Issue returns a signed token for userID.
func (t *TokenIssuer) Issue(userID domain.UserID) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}
