package delete_availability_rule

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

// Handle DELETE /api/v1/admin/availability-rules/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	result, err := h.service.DeleteRule(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidDate):
			h.logger.Warn("DELETE /admin/availability-rules/{date} - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, availability.ErrRuleNotFound):
			h.logger.Warn("DELETE /admin/availability-rules/{date} - Rule not found: date=%s", date)
			handlers.RespondNotFound(w, msgRuleNotFound)

		default:
			h.logger.Error("DELETE /admin/availability-rules/{date} - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/availability-rules/{date} - Rule deleted: date=%s", date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
