package get_unavailable_times

import (
	"context"

	"github.com/astroya/consultation-service/internal/domain"
	"github.com/astroya/consultation-service/pkg/types"
)

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	// Get возвращает правило для даты или rules.ErrRuleNotFound
	Get(ctx context.Context, date types.DateString) (*domain.AvailabilityRule, error)
}

// LedgerRepository интерфейс журнала бронирований
type LedgerRepository interface {
	// GetTimes возвращает отсортированные забронированные времена даты
	GetTimes(ctx context.Context, date types.DateString) []types.TimeString
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
