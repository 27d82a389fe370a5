package adaptor

import (
	"net/http"

	"wedding-planner/internal/usecase"
	"wedding-planner/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	stats usecase.StatsService
	log   *zap.Logger
}

func NewAdminHandler(service *usecase.Service, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		stats: service.Stats,
		log:   log.With(zap.String("handler", "admin")),
	}
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Dashboard(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get dashboard stats")
		return
	}

	utils.ResponseSuccess(w, stats)
}
