package create_consultation

import (
	"errors"
	"net/http"

	"github.com/astroya/consultation-service/internal/api/handlers"
	bookConsultation "github.com/astroya/consultation-service/internal/usecase/book_consultation"
	"github.com/astroya/consultation-service/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgTimeNotInSchedule  = "выбранное время отсутствует в расписании консультаций"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgInvalidInput       = "некорректные данные заявки"
)

type Handler struct {
	useCase BookConsultationUseCase
	logger  Logger
}

func NewHandler(useCase BookConsultationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/consultations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateConsultationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /consultations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /consultations - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookConsultation.ErrSlotNotAvailable):
			h.logger.Warn("POST /consultations - Slot not available: date=%s, time=%s",
				req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookConsultation.ErrTimeNotInSchedule):
			h.logger.Warn("POST /consultations - Time not in schedule: date=%s, time=%s",
				req.Date, req.Time)
			handlers.RespondBadRequest(w, msgTimeNotInSchedule)

		case errors.Is(err, bookConsultation.ErrInvalidDate):
			h.logger.Warn("POST /consultations - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, bookConsultation.ErrInvalidTime):
			h.logger.Warn("POST /consultations - Invalid time: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, bookConsultation.ErrInvalidInput):
			h.logger.Warn("POST /consultations - Invalid input: company=%q, error=%v",
				req.CompanyName, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /consultations - Failed to book: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /consultations - Booked successfully: date=%s, time=%s, company=%q",
		req.Date, req.Time, req.CompanyName)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
