package generate_week

import (
	"context"

	generateWeek "github.com/m04kA/DS-ScheduleService/internal/usecase/generate_week"
)

type GenerateWeekUseCase interface {
	Execute(ctx context.Context, req *generateWeek.Request) (*generateWeek.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
