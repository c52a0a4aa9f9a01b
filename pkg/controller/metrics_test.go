package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"recipe/pkg/controller"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestWithMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	mw, err := controller.WithMetrics(provider.Meter("test"))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(mw)
	r.Get("/recipes/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"NOT_FOUND"}`))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/recipes/42", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	var found, sized bool
	for _, m := range rm.ScopeMetrics[0].Metrics {
		if m.Name == "http.server.response.body.size" {
			sized = true
			hist, ok := m.Data.(metricdata.Histogram[int64])
			require.True(t, ok)
			require.Len(t, hist.DataPoints, 1)
			require.EqualValues(t, len(`{"code":"NOT_FOUND"}`), hist.DataPoints[0].Sum)

			continue
		}
		if m.Name != "http.server.request.duration" {
			continue
		}
		found = true
		hist, ok := m.Data.(metricdata.Histogram[float64])
		require.True(t, ok)
		require.Len(t, hist.DataPoints, 1)
		dp := hist.DataPoints[0]
		require.EqualValues(t, 1, dp.Count)
		route, _ := dp.Attributes.Value(attribute.Key("http.route"))
		require.Equal(t, "/recipes/{id}", route.AsString())
		status, _ := dp.Attributes.Value(attribute.Key("http.response.status_code"))
		require.EqualValues(t, http.StatusNotFound, status.AsInt64())
	}
	require.True(t, found)
	require.True(t, sized)
}
