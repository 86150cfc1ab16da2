package availability

import (
	"context"

	"github.com/astroya/consultation-service/internal/domain"
	"github.com/astroya/consultation-service/pkg/types"
)

// RuleRepository интерфейс репозитория правил доступности
type RuleRepository interface {
	Get(ctx context.Context, date types.DateString) (*domain.AvailabilityRule, error)
	Upsert(ctx context.Context, rule *domain.AvailabilityRule)
	Delete(ctx context.Context, date types.DateString) error
	List(ctx context.Context) domain.RuleTable
	ReplaceAll(ctx context.Context, table domain.RuleTable)
}

// SeedLoader интерфейс загрузчика начального состояния правил
type SeedLoader interface {
	Load() (domain.RuleTable, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
