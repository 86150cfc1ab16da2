package reset_schedule

import "context"

// AvailabilityService интерфейс сервиса правил доступности
type AvailabilityService interface {
	ResetToSeed(ctx context.Context)
}

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	ResetLedger(ctx context.Context)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
