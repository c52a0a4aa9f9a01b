package controller

import (
	"net/http"
	"slices"
	"strings"
)

var (
	corsAllowedHeaders = strings.Join([]string{
		"Accept", "Accept-Encoding", "Authorization", "Cache-Control",
		"Content-Length", "Content-Type", "Origin", "X-Request-Id",
	}, ", ")
	corsAllowedMethods = strings.Join([]string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}, ", ")
)

// WithCORS returns a middleware that sets CORS headers and answers OPTIONS
// preflight requests with 204 No Content. An empty allowedOrigins allows any
// origin without credentials.
func WithCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := w.Header()
			origin := r.Header.Get("Origin")
			switch {
			case len(allowedOrigins) == 0:
				header.Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(allowedOrigins, origin):
				header.Set("Access-Control-Allow-Origin", origin)
				header.Set("Access-Control-Allow-Credentials", "true")
				header.Add("Vary", "Origin")
			}
			header.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
			header.Set("Access-Control-Allow-Methods", corsAllowedMethods)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
