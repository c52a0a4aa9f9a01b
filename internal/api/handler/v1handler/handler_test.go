package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"recipe/internal/api/handler/v1handler"
	"recipe/pkg/logger"
	"recipe/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	err := fmt.Errorf("could not create recipe: %w",
		serrors.With(serrors.ErrBadRequest, "title: this field may not be blank"))
	res := h.NewError(context.Background(), err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "title: this field may not be blank", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	err := serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "unauthorized")
	res := h.NewError(context.Background(), err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	require.Equal(t, "unauthorized", res.Response.Message, "the cause must not leak")
}

func TestNewError_StatusMapping(t *testing.T) {
	h := v1handler.New(v1handler.Deps{}, v1handler.Options{})

	tests := map[serrors.Kind]int{
		serrors.ErrForbidden:   403,
		serrors.ErrConflict:    409,
		serrors.ErrTimeout:     504,
		serrors.ErrUnavailable: 503,
		serrors.ErrInternal:    500,
	}
	for kind, status := range tests {
		res := h.NewError(context.Background(), serrors.KindOnly(kind))
		require.Equal(t, status, res.StatusCode, kind.Error())
		require.Equal(t, kind.Error(), res.Response.Code)
	}
}
