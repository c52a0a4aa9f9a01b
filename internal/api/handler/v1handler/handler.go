// Package v1handler implements the /v1 JSON API: user accounts, recipes,
// tags, ingredients and the staff-only user administration.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"recipe/internal/account"
	"recipe/internal/config"
	"recipe/internal/recipe"
	"recipe/pkg/domain"
	"recipe/pkg/logger"
	"recipe/pkg/serrors"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// DefaultLimit is the page size of listings when the request has no limit.
const DefaultLimit = 20

// maxJSONBytes bounds JSON request bodies.
const maxJSONBytes = 1 << 20

// Deps are the services the handlers call.
type Deps struct {
	Account account.Account
	Recipes recipe.Recipes
}

// Options configure the handlers.
type Options struct {
	// MaxUploadBytes limits the size of multipart image uploads.
	MaxUploadBytes int64
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxUploadBytes: cfg.HTTP.MaxUploadBytes}
}

type Handler struct {
	deps     Deps
	options  Options
	validate *validator.Validate
}

func New(deps Deps, options Options) *Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Handler{
		deps:     deps,
		options:  options,
		validate: validate,
	}
}

// Routes returns the /v1 router. Everything except registration and token
// issuing requires a bearer token verified by sec.
func (h *Handler) Routes(sec *SecHandler) http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(r.Context(), w, serrors.KindOnly(serrors.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusMethodNotAllowed, ErrorResponse{
			Code:    "METHOD_NOT_ALLOWED",
			Message: fmt.Sprintf("method %q not allowed", r.Method),
		})
	})

	r.Post("/user/create", h.CreateUser)
	r.Post("/user/token", h.CreateToken)

	r.Group(func(r chi.Router) {
		r.Use(sec.Middleware)

		r.Get("/user/me", h.GetMe)
		r.Put("/user/me", h.UpdateMe(false))
		r.Patch("/user/me", h.UpdateMe(true))

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", h.ListRecipes)
			r.Post("/", h.CreateRecipe)
			r.Get("/{id}", h.GetRecipe)
			r.Put("/{id}", h.UpdateRecipe(false))
			r.Patch("/{id}", h.UpdateRecipe(true))
			r.Delete("/{id}", h.DeleteRecipe)
			r.Post("/{id}/upload-image", h.UploadRecipeImage)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", h.ListTags)
			r.Put("/{id}", h.UpdateTag)
			r.Patch("/{id}", h.UpdateTag)
			r.Delete("/{id}", h.DeleteTag)
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", h.ListIngredients)
			r.Put("/{id}", h.UpdateIngredient)
			r.Patch("/{id}", h.UpdateIngredient)
			r.Delete("/{id}", h.DeleteIngredient)
		})

		r.Route("/admin/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Post("/", h.AdminCreateUser)
			r.Get("/{id}", h.GetUser)
			r.Patch("/{id}", h.UpdateUser)
		})
	})

	return r
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

var kindStatus = map[serrors.Kind]struct {
	status  int
	message string
}{
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "authentication credentials were not provided or are invalid"},
	serrors.ErrForbidden:    {http.StatusForbidden, "you do not have permission to perform this action"},
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err to a response. Errors without a known kind become 500
// and their cause is only logged.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	mapped, ok := kindStatus[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	message := mapped.message
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		message = serr.Message()
	}
	if mapped.status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: mapped.status,
		Response: ErrorResponse{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	res := newError(ctx, err)
	writeJSON(ctx, w, res.StatusCode, res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// decode reads a JSON body into dst and validates it. Unknown fields are
// ignored.
func (h Handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return serrors.With(serrors.ErrBadRequest, "request body is empty")
		case errors.As(err, &maxErr):
			return serrors.With(serrors.ErrBadRequest, "request body is too large")
		default:
			return serrors.Wrap(serrors.ErrBadRequest, err, "malformed request body")
		}
	}

	return h.validateStruct(dst)
}

func (h Handler) validateStruct(v any) error {
	err := h.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("could not validate request: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return serrors.Wrap(serrors.ErrBadRequest, err, "%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + ": this field is required"
	case "email":
		return fe.Field() + ": enter a valid email address"
	case "max":
		return fmt.Sprintf("%s: ensure this field has no more than %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s: ensure this field has at least %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s: ensure this value is greater than or equal to %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed %q validation", fe.Field(), fe.Tag())
	}
}

// userID returns the authenticated user's id stored by SecHandler.
func userID(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}
