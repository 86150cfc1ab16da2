package get_unavailable_times

import (
	"context"

	getUnavailableTimes "github.com/astroya/consultation-service/internal/usecase/get_unavailable_times"
)

type GetUnavailableTimesUseCase interface {
	Execute(ctx context.Context, req *getUnavailableTimes.Request) (*getUnavailableTimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
