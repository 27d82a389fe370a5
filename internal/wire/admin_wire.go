package wire

import (
	"wedding-planner/internal/adaptor"
	"wedding-planner/pkg/auth"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, issuer auth.Verifier, log *zap.Logger) {
	// ==================== ADMIN ROUTES ====================
	r.With(adminOnly(issuer, log)...).Get("/api/admin/stats", adminHandler.Stats)
}
