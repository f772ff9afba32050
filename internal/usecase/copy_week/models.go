package copy_week

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
)

// Request модель запроса копирования недели вперед
type Request struct {
	InstructorID int64     // ID инструктора
	WeekStart    time.Time // Первый день исходной недели
}

// SkipSummary счётчики пропущенных слотов по категориям.
// Показывается пользователю как итог операции.
type SkipSummary struct {
	Collisions   int
	Restrictions int
	Other        int
}

// Total общее число пропущенных слотов
func (s SkipSummary) Total() int {
	return s.Collisions + s.Restrictions + s.Other
}

// Response модель ответа: принятые копии и сводка пропусков
type Response struct {
	Accepted []*domain.Slot
	Skipped  SkipSummary
}
