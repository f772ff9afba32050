package check_slot

import (
	"context"
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByInstructorWithFilter(ctx context.Context, filter domain.InstructorSlotsFilter) ([]*domain.Slot, error)
}

// HolidayProvider интерфейс поставщика календаря праздников
type HolidayProvider interface {
	GetCalendar(ctx context.Context, from, to time.Time) (domain.HolidayCalendar, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
