package schedule

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
)

// ZoneExempt возвращает true, если дата освобождена от всех запрещённых зон:
// воскресенье или объявленный праздник
func ZoneExempt(date time.Time, holidays domain.HolidayCalendar) bool {
	return date.Weekday() == time.Sunday || holidays.Contains(date)
}

// RestrictedZone возвращает причину отклонения, если интервал
// [startMinutes, endMinutes) пересекает применимую запрещённую зону.
// Утренняя зона действует во все неосвобождённые дни; вечерняя - во все,
// кроме субботы. Субботняя асимметрия сохранена намеренно.
func RestrictedZone(date time.Time, startMinutes, endMinutes int, holidays domain.HolidayCalendar) domain.RejectReason {
	if ZoneExempt(date, holidays) {
		return domain.ReasonNone
	}

	if Overlaps(startMinutes, endMinutes, domain.MorningZoneStartMinutes, domain.MorningZoneEndMinutes) {
		return domain.ReasonRestrictedMorning
	}

	if date.Weekday() != time.Saturday &&
		Overlaps(startMinutes, endMinutes, domain.EveningZoneStartMinutes, domain.EveningZoneEndMinutes) {
		return domain.ReasonRestrictedEvening
	}

	return domain.ReasonNone
}

// ZoneJumpTarget возвращает конец зоны для прыжка курсора генератора
func ZoneJumpTarget(reason domain.RejectReason) (int, bool) {
	switch reason {
	case domain.ReasonRestrictedMorning:
		return domain.MorningZoneEndMinutes, true
	case domain.ReasonRestrictedEvening:
		return domain.EveningZoneEndMinutes, true
	default:
		return 0, false
	}
}
