package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	"github.com/m04kA/DS-ScheduleService/pkg/types"
)

var (
	// 2026-03-03 - вторник, 2026-03-07 - суббота, 2026-03-08 - воскресенье
	tuesday  = time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	saturday = time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	sunday   = time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
)

func makeSlot(id int64, date time.Time, start, end string, status domain.SlotStatus) *domain.Slot {
	return &domain.Slot{
		ID:           id,
		InstructorID: 1,
		Date:         date,
		StartTime:    types.TimeString(start),
		EndTime:      types.TimeString(end),
		Kind:         domain.KindLesson,
		Status:       status,
	}
}

func TestCheckSlotOperatingWindow(t *testing.T) {
	// Старт в открытие - валидно (воскресенье, зоны не мешают)
	res := CheckSlot(sunday, domain.OpeningMinutes, 45, nil, nil, nil)
	assert.True(t, res.Valid)

	// Старт раньше открытия
	res = CheckSlot(sunday, domain.OpeningMinutes-15, 45, nil, nil, nil)
	assert.False(t, res.Valid)
	assert.Equal(t, domain.ReasonTooEarly, res.Reason)

	// Конец точно в закрытие - валидно
	res = CheckSlot(sunday, domain.ClosingMinutes-45, 45, nil, nil, nil)
	assert.True(t, res.Valid)

	// Конец позже закрытия
	res = CheckSlot(sunday, domain.ClosingMinutes-30, 45, nil, nil, nil)
	assert.False(t, res.Valid)
	assert.Equal(t, domain.ReasonTooLate, res.Reason)
}

func TestCheckSlotRestrictedZones(t *testing.T) {
	// 08:00 попадает в утреннюю зону в будний день
	res := CheckSlot(tuesday, 8*60, 45, nil, nil, nil)
	assert.False(t, res.Valid)
	assert.Equal(t, domain.ReasonRestrictedMorning, res.Reason)

	// Касание границы зоны не считается пересечением: конец 07:30
	res = CheckSlot(tuesday, 6*60+45, 45, nil, nil, nil)
	assert.True(t, res.Valid)

	// 17:00 попадает в вечернюю зону во вторник
	res = CheckSlot(tuesday, 17*60, 45, nil, nil, nil)
	assert.False(t, res.Valid)
	assert.Equal(t, domain.ReasonRestrictedEvening, res.Reason)

	// Та же вечерняя позиция в субботу разрешена
	res = CheckSlot(saturday, 17*60, 45, nil, nil, nil)
	assert.True(t, res.Valid)

	// Утренняя зона в субботу действует
	res = CheckSlot(saturday, 8*60, 45, nil, nil, nil)
	assert.False(t, res.Valid)
	assert.Equal(t, domain.ReasonRestrictedMorning, res.Reason)

	// Воскресенье освобождено от обеих зон
	assert.True(t, CheckSlot(sunday, 8*60, 45, nil, nil, nil).Valid)
	assert.True(t, CheckSlot(sunday, 17*60, 45, nil, nil, nil).Valid)
}

func TestCheckSlotHolidayExemption(t *testing.T) {
	holidays := domain.HolidayCalendar{
		tuesday.Format(domain.DateFormat): "Праздник",
	}

	// В праздник обе зоны сняты
	assert.True(t, CheckSlot(tuesday, 8*60, 45, nil, nil, holidays).Valid)
	assert.True(t, CheckSlot(tuesday, 17*60, 45, nil, nil, holidays).Valid)

	// Рабочее окно в праздник остаётся
	res := CheckSlot(tuesday, 5*60, 45, nil, nil, holidays)
	assert.False(t, res.Valid)
	assert.Equal(t, domain.ReasonTooEarly, res.Reason)
}

func TestCheckSlotCollision(t *testing.T) {
	daySlots := []*domain.Slot{
		makeSlot(10, sunday, "10:00", "11:00", domain.StatusBooked),
	}

	// Пересечение
	res := CheckSlot(sunday, 10*60+30, 45, daySlots, nil, nil)
	assert.False(t, res.Valid)
	assert.Equal(t, domain.ReasonCollision, res.Reason)

	// Полуоткрытые интервалы: конец ровно в начало чужого слота - не коллизия
	assert.True(t, CheckSlot(sunday, 9*60+15, 45, daySlots, nil, nil).Valid)

	// Старт ровно в конец чужого слота - не коллизия
	assert.True(t, CheckSlot(sunday, 11*60, 45, daySlots, nil, nil).Valid)
}

func TestCheckSlotIgnoresCancelledAndExcluded(t *testing.T) {
	daySlots := []*domain.Slot{
		makeSlot(10, sunday, "10:00", "11:00", domain.StatusCancelled),
		makeSlot(20, sunday, "12:00", "13:00", domain.StatusOpen),
	}

	// Отменённый слот не занимает интервал
	assert.True(t, CheckSlot(sunday, 10*60, 60, daySlots, nil, nil).Valid)

	// Редактируемый слот исключается из проверки коллизий
	excludeID := int64(20)
	assert.True(t, CheckSlot(sunday, 12*60, 60, daySlots, &excludeID, nil).Valid)

	// Без исключения тот же интервал конфликтует
	res := CheckSlot(sunday, 12*60, 60, daySlots, nil, nil)
	assert.Equal(t, domain.ReasonCollision, res.Reason)
}

func TestCheckSlotPrecedence(t *testing.T) {
	// Слот одновременно раньше открытия и поверх чужого: побеждает рабочее окно
	daySlots := []*domain.Slot{
		makeSlot(10, sunday, "05:00", "06:30", domain.StatusBlocked),
	}

	res := CheckSlot(sunday, 5*60+30, 45, daySlots, nil, nil)
	assert.Equal(t, domain.ReasonTooEarly, res.Reason)

	// Зона важнее коллизии
	daySlots = []*domain.Slot{
		makeSlot(11, tuesday, "08:00", "09:00", domain.StatusBlocked),
	}
	res = CheckSlot(tuesday, 8*60, 45, daySlots, nil, nil)
	assert.Equal(t, domain.ReasonRestrictedMorning, res.Reason)
}

func TestCheckSlotIdempotent(t *testing.T) {
	daySlots := []*domain.Slot{
		makeSlot(10, tuesday, "11:00", "11:45", domain.StatusBooked),
	}

	first := CheckSlot(tuesday, 14*60, 45, daySlots, nil, nil)
	second := CheckSlot(tuesday, 14*60, 45, daySlots, nil, nil)
	assert.Equal(t, first, second)
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(600, 660, 630, 690))
	assert.True(t, Overlaps(630, 690, 600, 660))
	assert.True(t, Overlaps(600, 700, 630, 660)) // вложенный
	assert.False(t, Overlaps(600, 660, 660, 720)) // касание границ
	assert.False(t, Overlaps(660, 720, 600, 660))
}
