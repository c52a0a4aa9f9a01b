// Package controller contains HTTP middlewares and helper handlers shared by
// the API server.
//
// Middlewares:
//   - WithCORS: CORS headers for the configured origins and OPTIONS preflight.
//   - WithLogger: request ID, request-scoped logger and access log.
//   - WithMetrics: request duration and in-flight request metrics.
//
// Helpers:
//   - Pprof: net/http/pprof handlers, to be mounted under a debug path.
package controller
