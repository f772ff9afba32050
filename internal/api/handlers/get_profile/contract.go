package get_profile

import (
	"context"

	"github.com/m04kA/DS-ScheduleService/internal/service/profiles/models"
)

type ProfilesService interface {
	GetByInstructorID(ctx context.Context, instructorID int64) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
