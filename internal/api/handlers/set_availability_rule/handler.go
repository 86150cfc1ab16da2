package set_availability_rule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/astroya/consultation-service/internal/api/handlers"
	"github.com/astroya/consultation-service/internal/service/availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgEmptyRule          = "правило должно закрывать весь день либо содержать хотя бы одно время"
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

// Handle PUT /api/v1/admin/availability-rules/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	var req SetAvailabilityRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability-rules/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetRule(r.Context(), req.ToServiceRequest(date))
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidDate):
			h.logger.Warn("PUT /admin/availability-rules/{date} - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, availability.ErrInvalidTime):
			h.logger.Warn("PUT /admin/availability-rules/{date} - Invalid time in rule: date=%s, error=%v", date, err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, availability.ErrEmptyRule):
			h.logger.Warn("PUT /admin/availability-rules/{date} - Empty rule: date=%s", date)
			handlers.RespondBadRequest(w, msgEmptyRule)

		default:
			h.logger.Error("PUT /admin/availability-rules/{date} - Failed: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/availability-rules/{date} - Rule saved: date=%s, unavailable=%t, times=%d",
		date, req.Unavailable, len(req.Times))
	handlers.RespondJSON(w, http.StatusOK, result)
}
