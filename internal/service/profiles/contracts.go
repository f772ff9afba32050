package profiles

import (
	"context"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей инструкторов
type ProfileRepository interface {
	GetByInstructorID(ctx context.Context, instructorID int64) (*domain.ProfileDefaults, error)
	Upsert(ctx context.Context, p *domain.ProfileDefaults) (*domain.ProfileDefaults, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
