// Package schedule содержит чистое ядро планирования: проверку валидности
// слота и математику запрещённых зон. Все функции - детерминированные
// вычисления над переданными снапшотами, без I/O и побочных эффектов.
package schedule

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
)

// CheckSlot проверяет, может ли интервал [startMinutes, startMinutes+duration)
// существовать на дате date среди слотов daySlots.
//
// Правила в порядке приоритета (первое сработавшее побеждает):
//  1. Рабочее окно: старт не раньше открытия, конец не позже закрытия.
//  2. Запрещённые зоны (утро/вечер) с исключениями для воскресений,
//     праздников и субботнего вечера.
//  3. Коллизия с существующим слотом той же даты (полуоткрытые интервалы,
//     слот excludeSlotID исключается - это редактируемый слот).
//
// daySlots должен содержать только слоты на дату date; слоты с
// нечитаемым временем пропускаются (гарантия формата - на вызывающей стороне).
func CheckSlot(
	date time.Time,
	startMinutes int,
	durationMinutes int,
	daySlots []*domain.Slot,
	excludeSlotID *int64,
	holidays domain.HolidayCalendar,
) domain.CheckResult {
	endMinutes := startMinutes + durationMinutes

	if startMinutes < domain.OpeningMinutes {
		return rejected(domain.ReasonTooEarly)
	}
	if endMinutes > domain.ClosingMinutes {
		return rejected(domain.ReasonTooLate)
	}

	if reason := RestrictedZone(date, startMinutes, endMinutes, holidays); reason != domain.ReasonNone {
		return rejected(reason)
	}

	for _, slot := range daySlots {
		if excludeSlotID != nil && slot.ID == *excludeSlotID {
			continue
		}
		if !slot.IsActive() {
			continue
		}

		slotStart, err := slot.StartMinutes()
		if err != nil {
			continue
		}
		slotEnd, err := slot.EndMinutes()
		if err != nil {
			continue
		}

		if Overlaps(startMinutes, endMinutes, slotStart, slotEnd) {
			return rejected(domain.ReasonCollision)
		}
	}

	return domain.CheckResult{Valid: true, Reason: domain.ReasonNone}
}

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и
// [bStart, bEnd). Интервалы, граничащие точно (один заканчивается там, где
// начинается другой), НЕ пересекаются.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

func rejected(reason domain.RejectReason) domain.CheckResult {
	return domain.CheckResult{Valid: false, Reason: reason}
}
