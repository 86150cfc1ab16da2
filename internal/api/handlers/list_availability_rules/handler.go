package list_availability_rules

import (
	"net/http"

	"github.com/astroya/consultation-service/internal/api/handlers"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/availability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	response := h.service.ListRules(r.Context())

	h.logger.Info("GET /admin/availability-rules - Retrieved %d rules", len(response.Rules))
	handlers.RespondJSON(w, http.StatusOK, response)
}
