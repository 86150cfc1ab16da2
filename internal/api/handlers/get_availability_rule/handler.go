package get_availability_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/astroya/consultation-service/internal/api/handlers"
	"github.com/astroya/consultation-service/internal/service/availability"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRuleNotFound = "правило доступности для даты не найдено"
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

// Handle GET /api/v1/admin/availability-rules/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	rule, err := h.service.GetRule(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidDate):
			h.logger.Warn("GET /admin/availability-rules/{date} - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, availability.ErrRuleNotFound):
			h.logger.Warn("GET /admin/availability-rules/{date} - Rule not found: date=%s", date)
			handlers.RespondNotFound(w, msgRuleNotFound)

		default:
			h.logger.Error("GET /admin/availability-rules/{date} - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/availability-rules/{date} - Retrieved rule: date=%s", date)
	handlers.RespondJSON(w, http.StatusOK, rule)
}
