package get_booked_times

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/astroya/consultation-service/internal/api/handlers"
	"github.com/astroya/consultation-service/internal/service/schedule"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/{date}/booked-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := vars["date"]

	result, err := h.service.GetBookedTimes(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDate):
			h.logger.Warn("GET /schedule/{date}/booked-times - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule/{date}/booked-times - Failed to get booked times: date=%s, error=%v",
				date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/{date}/booked-times - OK: date=%s, booked=%d", date, len(result.Times))
	handlers.RespondJSON(w, http.StatusOK, result)
}
