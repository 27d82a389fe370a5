package adaptor

import (
	"net/http"

	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/usecase"
	"wedding-planner/pkg/utils"

	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.MessageService
	log     *zap.Logger
}

func NewContactHandler(service usecase.MessageService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	resp, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit contact message")
		return
	}

	utils.ResponseCreated(w, resp)
}

// List handles GET /api/admin/messages
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list messages")
		return
	}

	utils.ResponseSuccess(w, messages)
}

// UpdateStatus handles PATCH /api/admin/messages/{id}
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	messageID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.MessageStatusRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	if err := h.service.UpdateStatus(r.Context(), messageID, &req); err != nil {
		handleServiceError(w, h.log, err, "update message status")
		return
	}

	utils.ResponseMessage(w, "Message status updated successfully")
}
