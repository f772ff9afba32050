package publish_week

import (
	"context"

	"github.com/m04kA/DS-ScheduleService/internal/service/slots/models"
)

type SlotsService interface {
	PublishWeek(ctx context.Context, req *models.PublishWeekRequest) (*models.PublishWeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
