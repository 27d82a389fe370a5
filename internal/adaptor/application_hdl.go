package adaptor

import (
	"net/http"

	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/usecase"
	"wedding-planner/pkg/utils"

	"go.uber.org/zap"
)

type ApplicationHandler struct {
	service usecase.ApplicationService
	log     *zap.Logger
}

func NewApplicationHandler(service usecase.ApplicationService, log *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		service: service,
		log:     log.With(zap.String("handler", "application")),
	}
}

// Submit handles POST /api/vendor-application
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.VendorApplicationRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	resp, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit vendor application")
		return
	}

	utils.ResponseCreated(w, resp)
}

// List handles GET /api/admin/vendor-applications
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list vendor applications")
		return
	}

	utils.ResponseSuccess(w, apps)
}

// UpdateStatus handles PATCH /api/admin/vendor-applications/{id}
func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	appID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.ApplicationStatusRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	if err := h.service.UpdateStatus(r.Context(), appID, &req); err != nil {
		handleServiceError(w, h.log, err, "update vendor application")
		return
	}

	utils.ResponseMessage(w, "Application status updated successfully")
}

// Approve handles POST /api/admin/vendor-applications/{id}/approve. The body is optional.
func (h *ApplicationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	appID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.ApproveApplicationRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	resp, err := h.service.Approve(r.Context(), appID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "approve vendor application")
		return
	}

	utils.ResponseSuccess(w, resp)
}
