package wire

import (
	"wedding-planner/internal/adaptor"
	"wedding-planner/pkg/auth"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEvent(r chi.Router, eventHandler *adaptor.EventHandler, issuer auth.Verifier, log *zap.Logger) {
	// ==================== PROTECTED ROUTES ====================
	// Every event route is scoped to the calling couple
	r.Route("/api/events", func(r chi.Router) {
		r.Use(userOnly(issuer, log)...)

		r.Post("/", eventHandler.Create)
		r.Get("/", eventHandler.List)
		r.Get("/{id}", eventHandler.Get)
		r.Put("/{id}", eventHandler.Update)
		r.Delete("/{id}", eventHandler.Delete)
		r.Put("/{id}/cancel", eventHandler.Cancel)
	})
}
