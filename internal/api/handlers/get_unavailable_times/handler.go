package get_unavailable_times

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/astroya/consultation-service/internal/api/handlers"
	getUnavailableTimes "github.com/astroya/consultation-service/internal/usecase/get_unavailable_times"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetUnavailableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetUnavailableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/{date}/unavailable-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := vars["date"]

	result, err := h.useCase.Execute(r.Context(), &getUnavailableTimes.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getUnavailableTimes.ErrInvalidDate):
			h.logger.Warn("GET /schedule/{date}/unavailable-times - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /schedule/{date}/unavailable-times - Failed to compute: date=%s, error=%v",
				date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /schedule/{date}/unavailable-times - OK: date=%s, unavailable=%d",
		date, len(result.UnavailableTimes))
	handlers.RespondJSON(w, http.StatusOK, response)
}
