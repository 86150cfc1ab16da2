package book_consultation

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
	GetTimes(ctx context.Context, date types.DateString) []types.TimeString
	Contains(ctx context.Context, date types.DateString, t types.TimeString) bool
	Insert(ctx context.Context, date types.DateString, t types.TimeString) error
}

// TransactionManager интерфейс для сериализации критических секций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
