package check_slot

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	"github.com/m04kA/DS-ScheduleService/pkg/types"
)

// Request модель запроса предварительной проверки слота
type Request struct {
	InstructorID    int64            // ID инструктора
	Date            time.Time        // Дата слота (без времени)
	StartTime       types.TimeString // Время начала ("10:00")
	DurationMinutes int              // Длительность в минутах
	ExcludeSlotID   *int64           // Редактируемый слот, исключается из коллизий
}

// Response результат проверки
type Response struct {
	Valid  bool
	Reason domain.RejectReason
}
