package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows browser calls from allowedOrigins. A "*" entry allows any origin.
// Preflight requests are answered here and never reach the auth middleware.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         86400,
	})
}
