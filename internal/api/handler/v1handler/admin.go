package v1handler

import (
	"net/http"
	"recipe/internal/account"
	"recipe/pkg/domain"
	"recipe/pkg/serrors"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AdminCreateUserRequest struct {
	CreateUserRequest

	IsStaff  bool  `json:"is_staff"`
	IsActive *bool `json:"is_active"`
}

type AdminUpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=255"`
	IsActive *bool   `json:"is_active"`
	IsStaff  *bool   `json:"is_staff"`
}

// pagination reads ?limit and ?offset. limit defaults to DefaultLimit.
func pagination(r *http.Request) (uint, uint, error) {
	query := r.URL.Query()
	limit, offset := uint64(DefaultLimit), uint64(0)

	var err error
	if raw := query.Get("limit"); raw != "" {
		if limit, err = strconv.ParseUint(raw, 10, 32); err != nil || limit == 0 {
			return 0, 0, serrors.With(serrors.ErrBadRequest, "limit: must be a positive integer")
		}
	}
	if raw := query.Get("offset"); raw != "" {
		if offset, err = strconv.ParseUint(raw, 10, 32); err != nil {
			return 0, 0, serrors.With(serrors.ErrBadRequest, "offset: must be a non-negative integer")
		}
	}

	return uint(limit), uint(offset), nil
}

func pathUserID(r *http.Request) (domain.UserID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return domain.UserID{}, serrors.Wrap(serrors.ErrNotFound, err, "user not found")
	}

	return domain.UserID(id), nil
}

func (h Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, offset, err := pagination(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	users, err := h.deps.Account.Users(ctx, userID(ctx), limit, offset)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	out := make([]AdminUserResponse, 0, len(users))
	for i := range users {
		out = append(out, DomainUserToV1Admin(&users[i]))
	}

	writeJSON(ctx, w, http.StatusOK, out)
}

func (h Handler) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AdminCreateUserRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	user, err := h.deps.Account.CreateUser(ctx, userID(ctx), account.NewUser{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		IsStaff:  req.IsStaff,
		IsActive: req.IsActive,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusCreated, DomainUserToV1Admin(user))
}

func (h Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUserID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	user, err := h.deps.Account.User(ctx, userID(ctx), id)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainUserToV1Admin(user))
}

func (h Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathUserID(r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	var req AdminUpdateUserRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(ctx, w, err)

		return
	}

	user, err := h.deps.Account.UpdateUser(ctx, userID(ctx), id, account.UserUpdates{
		Name:     req.Name,
		IsActive: req.IsActive,
		IsStaff:  req.IsStaff,
	})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	writeJSON(ctx, w, http.StatusOK, DomainUserToV1Admin(user))
}
