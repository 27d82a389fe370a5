package wire

import (
	"wedding-planner/internal/adaptor"
	"wedding-planner/pkg/auth"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContact(r chi.Router, contactHandler *adaptor.ContactHandler, issuer auth.Verifier, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/contact", contactHandler.Submit)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/messages", func(r chi.Router) {
		r.Use(adminOnly(issuer, log)...)

		r.Get("/", contactHandler.List)
		r.Patch("/{id}", contactHandler.UpdateStatus)
	})
}
