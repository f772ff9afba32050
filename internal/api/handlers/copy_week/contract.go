package copy_week

import (
	"context"

	copyWeek "github.com/m04kA/DS-ScheduleService/internal/usecase/copy_week"
)

type CopyWeekUseCase interface {
	Execute(ctx context.Context, req *copyWeek.Request) (*copyWeek.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
