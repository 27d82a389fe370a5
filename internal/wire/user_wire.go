package wire

import (
	"wedding-planner/internal/adaptor"
	"wedding-planner/pkg/auth"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, issuer auth.Verifier, log *zap.Logger) {
	// ==================== PROTECTED ROUTES ====================
	r.With(userOnly(issuer, log)...).Get("/api/user/profile", userHandler.GetProfile)
}
