package adaptor

import (
	"net/http"

	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/usecase"
	"wedding-planner/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Create handles POST /api/bookings (protected)
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.CreateBookingRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, resp)
}

// ListMine handles GET /api/bookings (protected)
func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	bookings, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list user bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// ListAll handles GET /api/admin/bookings
func (h *BookingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list all bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// UpdateStatus handles PATCH /api/admin/bookings/{id}
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.BookingStatusRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	if err := h.service.UpdateStatus(r.Context(), bookingID, &req); err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseMessage(w, "Booking status updated successfully")
}
