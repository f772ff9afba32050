package copy_week

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	"github.com/m04kA/DS-ScheduleService/internal/schedule"
)

// copyForward shifts every source slot by +7 calendar days, re-validates it
// against the target-week snapshot and classifies the outcome. Pure
// computation: no I/O, no mutation of the inputs.
//
// Every candidate is checked against the snapshot as it was BEFORE the
// batch: copies accepted earlier in the same batch do not enter the
// collision set of later candidates. Rejected slots are dropped and
// counted, never retried or rescheduled.
func copyForward(
	sourceSlots []*domain.Slot,
	targetWeekSlots []*domain.Slot,
	holidays domain.HolidayCalendar,
	defaults *domain.ProfileDefaults,
) ([]*domain.Slot, SkipSummary) {
	byDate := make(map[string][]*domain.Slot, len(targetWeekSlots))
	for _, s := range targetWeekSlots {
		key := s.Date.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], s)
	}

	accepted := make([]*domain.Slot, 0, len(sourceSlots))
	var skipped SkipSummary

	for _, src := range sourceSlots {
		// Календарный сдвиг на 7 дней, безопасный для границ месяца и
		// високосных лет
		targetDate := src.Date.AddDate(0, 0, domain.DaysPerWeek)

		duration := src.EffectiveDurationMinutes(defaults)

		startMinutes, err := src.StartMinutes()
		if err != nil {
			skipped.Other++
			continue
		}

		daySlots := byDate[targetDate.Format(domain.DateFormat)]

		check := schedule.CheckSlot(targetDate, startMinutes, duration, daySlots, nil, holidays)
		if !check.Valid {
			switch check.Reason.Category() {
			case domain.CategoryCollision:
				skipped.Collisions++
			case domain.CategoryRestriction:
				skipped.Restrictions++
			default:
				skipped.Other++
			}
			continue
		}

		copied, err := cloneShifted(src, targetDate, duration)
		if err != nil {
			skipped.Other++
			continue
		}
		accepted = append(accepted, copied)
	}

	return accepted, skipped
}

// cloneShifted клонирует слот на целевую дату без идентичности.
// Блокировка остаётся блокировкой; всё остальное становится
// неопубликованным черновиком без ученика.
func cloneShifted(src *domain.Slot, targetDate time.Time, duration int) (*domain.Slot, error) {
	endTime, err := src.StartTime.AddMinutes(duration)
	if err != nil {
		return nil, err
	}

	status := domain.StatusDraft
	var studentID *int64
	if src.Kind == domain.KindBlock {
		status = domain.StatusBlocked
	}

	return &domain.Slot{
		InstructorID:          src.InstructorID,
		StudentID:             studentID,
		Date:                  targetDate,
		StartTime:             src.StartTime,
		EndTime:               endTime,
		DurationMinutes:       duration,
		CustomDurationMinutes: src.CustomDurationMinutes,
		Kind:                  src.Kind,
		Status:                status,
		VehicleCategory:       src.VehicleCategory,
		Location:              src.Location,
		ExamCenter:            src.ExamCenter,
		BlockReason:           src.BlockReason,
		IsDouble:              src.IsDouble,
		Source:                src.Source,
	}, nil
}
