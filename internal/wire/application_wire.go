package wire

import (
	"wedding-planner/internal/adaptor"
	"wedding-planner/pkg/auth"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireApplication(r chi.Router, appHandler *adaptor.ApplicationHandler, issuer auth.Verifier, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/vendor-application", appHandler.Submit)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/vendor-applications", func(r chi.Router) {
		r.Use(adminOnly(issuer, log)...)

		r.Get("/", appHandler.List)
		r.Patch("/{id}", appHandler.UpdateStatus)

		// POST /api/admin/vendor-applications/{id}/approve - turn the application into a vendor
		r.Post("/{id}/approve", appHandler.Approve)
	})
}
