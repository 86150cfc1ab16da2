package list_availability_rules

import (
	"context"

	"github.com/astroya/consultation-service/internal/service/availability/models"
)

// AvailabilityService интерфейс сервиса правил доступности
type AvailabilityService interface {
	ListRules(ctx context.Context) *models.RuleListResponse
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
