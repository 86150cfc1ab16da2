package reset_schedule

import (
	"net/http"

	"github.com/astroya/consultation-service/internal/api/handlers"
)

type Handler struct {
	availabilityService AvailabilityService
	scheduleService     ScheduleService
	logger              Logger
}

func NewHandler(
	availabilityService AvailabilityService,
	scheduleService ScheduleService,
	logger Logger,
) *Handler {
	return &Handler{
		availabilityService: availabilityService,
		scheduleService:     scheduleService,
		logger:              logger,
	}
}

// Handle POST /api/v1/admin/reset
// Возвращает таблицу правил к seed состоянию и очищает журнал бронирований
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.availabilityService.ResetToSeed(r.Context())
	h.scheduleService.ResetLedger(r.Context())

	h.logger.Info("POST /admin/reset - Schedule reset to seed state")
	handlers.RespondNoContent(w)
}
