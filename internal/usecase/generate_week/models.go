package generate_week

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
)

// Request модель запроса генерации недели черновиков
type Request struct {
	InstructorID int64             // ID инструктора
	WeekStart    time.Time         // Первый день 7-дневного окна
	Config       domain.WeekConfig // Конфигурация генерации
}

// Response модель ответа с созданными черновиками
type Response struct {
	Slots []*domain.Slot // Черновики в хронологическом порядке
}
