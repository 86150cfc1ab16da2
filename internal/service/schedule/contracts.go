package schedule

import (
	"context"

	"github.com/astroya/consultation-service/pkg/types"
)

// LedgerRepository интерфейс журнала бронирований
type LedgerRepository interface {
	GetTimes(ctx context.Context, date types.DateString) []types.TimeString
	Reset(ctx context.Context)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
