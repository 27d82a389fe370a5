package wire

import (
	"wedding-planner/internal/adaptor"
	"wedding-planner/pkg/auth"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVendor(r chi.Router, vendorHandler *adaptor.VendorHandler, issuer auth.Verifier, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/vendors?category= - browse the directory, best rated first
	r.Get("/api/vendors", vendorHandler.List)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/vendors", func(r chi.Router) {
		r.Use(adminOnly(issuer, log)...)

		r.Get("/", vendorHandler.ListAll)
		r.Post("/", vendorHandler.Create)
		r.Patch("/{id}", vendorHandler.Update)
		r.Delete("/{id}", vendorHandler.Delete)
	})
}
