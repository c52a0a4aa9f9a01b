// Package api configures and exposes the HTTP server, routes, metrics, docs
// and related middleware of the recipe service.
package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"recipe/internal/api/handler/v1handler"
	"recipe/internal/config"
	"recipe/pkg/controller"
	"recipe/pkg/dbready"
	"recipe/pkg/logger"
	"recipe/pkg/serrors"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const meterName = "recipe/internal/api"

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// SecHandlerOptions configures token verification for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// HandlerOptions configures the v1 handlers.
	HandlerOptions v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8000".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins are the CORS origins; empty allows any origin.
	AllowedOrigins []string
	// MediaPath is the URL prefix under which Deps.Media is served.
	MediaPath string
	// Databases are the connections checked by /healthz.
	Databases []string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		HandlerOptions:    v1handler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		MediaPath:         cfg.Media.BaseURL,
		Databases:         cfg.WaitForDB.Databases,
	}
}

type Deps struct {
	v1handler.Deps

	// Databases backs the /healthz readiness probe.
	Databases dbready.Checker
	// Media serves stored files; nil when files are served by another host.
	Media http.Handler
	// Registry receives the metrics. Defaults to the prometheus default registry.
	Registry *prometheus.Registry
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath) fed by an OpenTelemetry exporter
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes
// - /healthz database readiness probe
// - uploaded media when served locally
// - pprof endpoints for profiling
// The router is wrapped with CORS and logging middlewares and a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	r := chi.NewRouter()

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		metrics                          = promhttp.Handler()
	)
	if deps.Registry != nil {
		registerer = deps.Registry
		metrics = promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})
	}

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	withMetrics, err := controller.WithMetrics(mp.Meter(meterName))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}
	r.Use(withMetrics)

	// prometheus metrics server
	r.Handle(opts.MetricsPath, metrics)

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"Recipe API",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions, deps.Account)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	r.Mount("/v1", v1handler.New(deps.Deps, opts.HandlerOptions).Routes(secHandler))

	r.Get("/healthz", healthz(deps.Databases, opts.Databases))

	// media
	if deps.Media != nil && strings.HasPrefix(opts.MediaPath, "/") {
		prefix := strings.TrimSuffix(opts.MediaPath, "/") + "/"
		r.Handle(prefix+"*", http.StripPrefix(prefix, deps.Media))
	}

	// pprof
	r.Mount("/debug/pprof", controller.Pprof())

	handler := controller.WithCORS(opts.AllowedOrigins)(r)
	handler = controller.WithLogger(handler)

	timeoutBody, _ := json.Marshal(v1handler.ErrorResponse{
		Code:    serrors.ErrTimeout.Error(),
		Message: "request timed out",
	})

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, string(timeoutBody)),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

type healthResponse struct {
	Status string `json:"status"`
	Code   string `json:"code,omitempty"`
}

// healthz reports 200 when every database answers, 503 when one is
// transiently unavailable and 500 otherwise. The cause is only logged.
func healthz(checker dbready.Checker, databases []string) http.HandlerFunc {
	if len(databases) == 0 {
		databases = []string{dbready.DefaultDatabase}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		status, res := http.StatusOK, healthResponse{Status: dbready.StateReady.String()}
		if err := checker.Check(ctx, databases); err != nil {
			status, res = http.StatusInternalServerError, healthResponse{
				Status: dbready.StateWaiting.String(),
				Code:   serrors.ErrInternal.Error(),
			}
			if serrors.IsTransient(err) {
				status, res.Code = http.StatusServiceUnavailable, serrors.ErrUnavailable.Error()
			}
			logger.Warn(ctx, "health check failed", zap.Error(err))
		}

		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(res)
	}
}
