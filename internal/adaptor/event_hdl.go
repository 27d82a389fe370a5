package adaptor

import (
	"net/http"

	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/usecase"
	"wedding-planner/pkg/utils"

	"go.uber.org/zap"
)

type EventHandler struct {
	service usecase.EventService
	log     *zap.Logger
}

func NewEventHandler(service usecase.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log.With(zap.String("handler", "event")),
	}
}

// Create handles POST /api/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req request.EventRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	resp, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create event")
		return
	}

	utils.ResponseCreated(w, resp)
}

// List handles GET /api/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	events, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "list events")
		return
	}

	utils.ResponseSuccess(w, events)
}

// Get handles GET /api/events/{id}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r)
	if !ok {
		return
	}

	event, err := h.service.Get(r.Context(), userID, eventID)
	if err != nil {
		handleServiceError(w, h.log, err, "get event")
		return
	}

	utils.ResponseSuccess(w, event)
}

// Update handles PUT /api/events/{id}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.EventRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	if err := h.service.Update(r.Context(), userID, eventID, &req); err != nil {
		handleServiceError(w, h.log, err, "update event")
		return
	}

	utils.ResponseMessage(w, "Event updated successfully")
}

// Delete handles DELETE /api/events/{id}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), userID, eventID); err != nil {
		handleServiceError(w, h.log, err, "delete event")
		return
	}

	utils.ResponseMessage(w, "Event deleted successfully")
}

// Cancel handles PUT /api/events/{id}/cancel
func (h *EventHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Cancel(r.Context(), userID, eventID); err != nil {
		handleServiceError(w, h.log, err, "cancel event")
		return
	}

	utils.ResponseMessage(w, "Event cancelled successfully")
}
