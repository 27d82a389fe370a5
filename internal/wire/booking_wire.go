package wire

import (
	"wedding-planner/internal/adaptor"
	"wedding-planner/pkg/auth"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, issuer auth.Verifier, log *zap.Logger) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(userOnly(issuer, log)...)

		// POST /api/bookings - request a vendor for a date
		r.Post("/api/bookings", bookingHandler.Create)

		// GET /api/bookings - the caller's bookings joined with vendor details
		r.Get("/api/bookings", bookingHandler.ListMine)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(adminOnly(issuer, log)...)

		r.Get("/", bookingHandler.ListAll)
		r.Patch("/{id}", bookingHandler.UpdateStatus)
	})
}
