package get_booked_times

import (
	"context"

	"github.com/astroya/consultation-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetBookedTimes(ctx context.Context, date string) (*models.BookedTimesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
