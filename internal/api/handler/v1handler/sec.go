package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"recipe/internal/account"
	"recipe/internal/config"
	"recipe/pkg/domain"
	"recipe/pkg/logger"
	"recipe/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

const (
	// UserIDKey is the context key of the authenticated domain.UserID.
	UserIDKey ctxKey = "userID"
	// UserKey is the context key of the authenticated *domain.User.
	UserKey ctxKey = "user"
)

// SecHandlerOptions configure token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key verifying RS256 tokens.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.Auth.PublicKey}
}

// SecHandler authenticates requests carrying "Authorization: Bearer <jwt>".
type SecHandler struct {
	publicKey *rsa.PublicKey
	account   account.Account
}

// NewSecHandler parses the public key. accounts is used by Middleware to
// reject tokens of removed or deactivated users; it may be nil when only
// HandleBearerAuth is used.
func NewSecHandler(opts *SecHandlerOptions, accounts account.Account) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		publicKey: key,
		account:   accounts,
	}, nil
}

// HandleBearerAuth verifies token and returns ctx carrying the token
// subject under UserIDKey.
func (s SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(id)), nil
}

// Middleware rejects requests without a valid token of an active user with
// 401. The user is stored in the request context.
func (s SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := bearerToken(r)
		if !ok {
			writeError(ctx, w,
				serrors.With(serrors.ErrUnauthorized, "authentication credentials were not provided"))

			return
		}

		ctx, err := s.HandleBearerAuth(ctx, token)
		if err != nil {
			writeError(ctx, w, err)

			return
		}

		user, err := s.account.Authenticate(ctx, userID(ctx))
		if err != nil {
			writeError(ctx, w, err)

			return
		}

		ctx = context.WithValue(ctx, UserKey, user)
		ctx = logger.WithFields(ctx, zap.String("userID", user.ID.String()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)

	return token, token != ""
}
