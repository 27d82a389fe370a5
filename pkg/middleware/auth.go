package middleware

import (
	"net/http"
	"strings"

	"wedding-planner/pkg/auth"
	"wedding-planner/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate verifies the bearer token and stores the resulting principal in the request context
func Authenticate(verifier auth.Verifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				utils.ResponseUnauthorized(w, "Access token required")
				return
			}

			principal, err := verifier.Verify(token)
			if err != nil {
				logger.Warn("Rejected bearer token",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				utils.ResponseForbidden(w, "Invalid token")
				return
			}

			ctx := utils.SetPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser admits only couple accounts. Must run after Authenticate.
func RequireUser(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
				logger.Warn("Non-user principal on user route", zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Invalid token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin admits only admin accounts carrying the admin role. Must run after Authenticate.
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, ok := utils.GetAdminFromContext(r.Context())
			if !ok || !admin.IsAdmin() {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
