package generate_week

import (
	"context"
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByInstructorWithFilter(ctx context.Context, filter domain.InstructorSlotsFilter) ([]*domain.Slot, error)
	CreateBatch(ctx context.Context, slots []*domain.Slot) ([]*domain.Slot, error)
}

// HolidayProvider интерфейс поставщика календаря праздников
type HolidayProvider interface {
	GetCalendar(ctx context.Context, from, to time.Time) (domain.HolidayCalendar, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
