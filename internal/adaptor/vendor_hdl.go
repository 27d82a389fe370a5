package adaptor

import (
	"net/http"

	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/usecase"
	"wedding-planner/pkg/utils"

	"go.uber.org/zap"
)

type VendorHandler struct {
	service usecase.VendorService
	log     *zap.Logger
}

func NewVendorHandler(service usecase.VendorService, log *zap.Logger) *VendorHandler {
	return &VendorHandler{
		service: service,
		log:     log.With(zap.String("handler", "vendor")),
	}
}

// List handles GET /api/vendors?category=
func (h *VendorHandler) List(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.service.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		handleServiceError(w, h.log, err, "list vendors")
		return
	}

	utils.ResponseSuccess(w, vendors)
}

// ListAll handles GET /api/admin/vendors
func (h *VendorHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.service.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list all vendors")
		return
	}

	utils.ResponseSuccess(w, vendors)
}

// Create handles POST /api/admin/vendors
func (h *VendorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.VendorRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create vendor")
		return
	}

	utils.ResponseCreated(w, resp)
}

// Update handles PATCH /api/admin/vendors/{id}
func (h *VendorHandler) Update(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := pathID(w, r)
	if !ok {
		return
	}

	var req request.VendorRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	if err := h.service.Update(r.Context(), vendorID, &req); err != nil {
		handleServiceError(w, h.log, err, "update vendor")
		return
	}

	utils.ResponseMessage(w, "Vendor updated successfully")
}

// Delete handles DELETE /api/admin/vendors/{id}
func (h *VendorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vendorID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), vendorID); err != nil {
		handleServiceError(w, h.log, err, "delete vendor")
		return
	}

	utils.ResponseMessage(w, "Vendor deleted successfully")
}
