package v1handler

import (
	"net/http"
	"recipe/internal/account"
	"recipe/pkg/serrors"
)

type CreateUserRequest struct {
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Password string `json:"password" validate:"required,min=5"`
	Name     string `json:"name" validate:"required,max=255"`
}

type TokenRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UpdateMeRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	Password *string `json:"password" validate:"omitempty,min=5"`
}

// CreateUser registers a new user. The response never contains the password.
func (h Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	user, err := h.deps.Account.Register(ctx, account.NewUser{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, DomainUserToV1(user))
}

func (h Handler) CreateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TokenRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	token, err := h.deps.Account.IssueToken(ctx, req.Email, req.Password)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, TokenResponse{Token: token})
}

func (h Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.deps.Account.Profile(ctx, userID(ctx))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainUserToV1(user))
}

// UpdateMe updates the authenticated user. Unless partial, name and
// password are required.
func (h Handler) UpdateMe(partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req UpdateMeRequest
		if err := h.decode(w, r, &req); err != nil {
			writeError(ctx, w, err)

			return
		}
		if !partial && (req.Name == nil || req.Password == nil) {
			writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "name and password are required"))

			return
		}

		user, err := h.deps.Account.UpdateProfile(ctx, userID(ctx), account.ProfileUpdates{
			Name:     req.Name,
			Password: req.Password,
		})
		if err != nil {
			writeError(ctx, w, err)

			return
		}

		writeJSON(ctx, w, http.StatusOK, DomainUserToV1(user))
	}
}
