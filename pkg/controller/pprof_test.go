package controller_test

import (
	"net/http"
	"net/http/httptest"
	"recipe/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPprof(t *testing.T) {
	handler := controller.Pprof()

	for _, path := range []string{"/", "/cmdline", "/goroutine?debug=1"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "http://pprof.local"+path, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)
			require.NotEmpty(t, rec.Header().Get("Content-Type"))
		})
	}
}
