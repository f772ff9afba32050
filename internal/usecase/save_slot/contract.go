package save_slot

import (
	"context"
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	Update(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	GetByInstructorWithFilter(ctx context.Context, filter domain.InstructorSlotsFilter) ([]*domain.Slot, error)
}

// ProfileRepository интерфейс репозитория профилей инструкторов
type ProfileRepository interface {
	GetByInstructorID(ctx context.Context, instructorID int64) (*domain.ProfileDefaults, error)
}

// HolidayProvider интерфейс поставщика календаря праздников
type HolidayProvider interface {
	GetCalendar(ctx context.Context, from, to time.Time) (domain.HolidayCalendar, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
