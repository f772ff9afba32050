package save_slot

import (
	"context"

	saveSlot "github.com/m04kA/DS-ScheduleService/internal/usecase/save_slot"
)

type SaveSlotUseCase interface {
	Execute(ctx context.Context, req *saveSlot.Request) (*saveSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
