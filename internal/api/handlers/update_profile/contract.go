package update_profile

import (
	"context"

	"github.com/m04kA/DS-ScheduleService/internal/service/profiles/models"
)

type ProfilesService interface {
	Upsert(ctx context.Context, req *models.UpsertProfileRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
