package delete_availability_rule

import (
	"context"

	"github.com/astroya/consultation-service/internal/service/availability/models"
)

// AvailabilityService интерфейс сервиса правил доступности
type AvailabilityService interface {
	DeleteRule(ctx context.Context, date string) (*models.MutationResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
