package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"wedding-planner/internal/usecase"
	"wedding-planner/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Event       *EventHandler
	Vendor      *VendorHandler
	Booking     *BookingHandler
	Contact     *ContactHandler
	Application *ApplicationHandler
	Admin       *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Event:       NewEventHandler(service.Event, log),
		Vendor:      NewVendorHandler(service.Vendor, log),
		Booking:     NewBookingHandler(service.Booking, log),
		Contact:     NewContactHandler(service.Message, log),
		Application: NewApplicationHandler(service.Application, log),
		Admin:       NewAdminHandler(service, log),
	}
}

// decodeBody reads a JSON body into dst. An empty body leaves dst zeroed
// when allowEmpty is set.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}
	utils.ResponseBadRequest(w, "Invalid request body", nil)
	return false
}

// pathID parses the {id} URL parameter.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid id", map[string]string{"id": "Must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}

// callerID returns the authenticated couple. Routes mount RequireUser, so a
// miss here means the router was wired wrong.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Access token required")
		return uuid.Nil, false
	}
	return userID, true
}

// handleServiceError maps usecase error kinds onto HTTP statuses. Store
// failures are logged in full and reported generically.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var svcErr *usecase.Error
	if !errors.As(err, &svcErr) {
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrAlreadyExists):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, svcErr.Message, svcErr.Fields)

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, svcErr.Message)

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, svcErr.Message)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, svcErr.Message)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, svcErr.Message)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
