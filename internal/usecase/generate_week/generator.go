package generate_week

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	"github.com/m04kA/DS-ScheduleService/internal/schedule"
	"github.com/m04kA/DS-ScheduleService/pkg/types"
)

// buildWeekDrafts walks a 7-day window and packs non-overlapping draft
// lessons into each enabled working day. Pure computation over the
// snapshot: no I/O, deterministic for fixed inputs.
//
// The cursor does not move with a fixed step. Each iteration either
// emits a slot and advances by the effective duration, or jumps over
// the obstacle that rejected the position:
//   - lunch window -> jump to its end (when SkipLunch is set)
//   - restricted zone -> jump to the zone end
//   - position in the past -> skip one slot length
//   - collision -> snap to the latest end among overlapping slots,
//     so long blocked ranges are crossed in one step
//   - anything else the checker rejects -> probe forward 15 minutes
//
// Validity is re-checked only against pre-existing slots; drafts emitted
// in this pass cannot overlap each other because the cursor only moves
// forward.
func buildWeekDrafts(
	instructorID int64,
	weekStart time.Time,
	cfg domain.WeekConfig,
	existing []*domain.Slot,
	holidays domain.HolidayCalendar,
	now time.Time,
) ([]*domain.Slot, error) {
	startMinutes, err := cfg.StartTime.Minutes()
	if err != nil {
		return nil, err
	}
	endMinutes, err := cfg.EndTime.Minutes()
	if err != nil {
		return nil, err
	}

	effDuration := cfg.EffectiveDurationMinutes()
	byDate := groupByDate(existing)

	drafts := make([]*domain.Slot, 0)

	for dayOffset := 0; dayOffset < domain.DaysPerWeek; dayOffset++ {
		day := weekStart.AddDate(0, 0, dayOffset)
		if !cfg.IsWorkingDay(day.Weekday()) {
			continue
		}

		daySlots := byDate[day.Format(domain.DateFormat)]

		for cursor := startMinutes; cursor+effDuration <= endMinutes; {
			candidateEnd := cursor + effDuration

			// Lunch window
			if cfg.SkipLunch && schedule.Overlaps(cursor, candidateEnd, domain.LunchStartMinutes, domain.LunchEndMinutes) {
				cursor = domain.LunchEndMinutes
				continue
			}

			// Restricted zones
			if reason := schedule.RestrictedZone(day, cursor, candidateEnd, holidays); reason != domain.ReasonNone {
				if target, ok := schedule.ZoneJumpTarget(reason); ok {
					cursor = target
					continue
				}
			}

			// No backdated drafts
			if slotStartsInPast(day, cursor, now) {
				cursor += effDuration
				continue
			}

			// Collision: snap to the latest end among overlapping slots
			if latestEnd, found := latestOverlapEnd(daySlots, cursor, candidateEnd); found {
				cursor = latestEnd
				continue
			}

			// Final gatekeeper
			check := schedule.CheckSlot(day, cursor, effDuration, daySlots, nil, holidays)
			if !check.Valid {
				cursor += domain.ProbeStepMinutes
				continue
			}

			draft, err := newDraftSlot(instructorID, day, cursor, effDuration, cfg)
			if err != nil {
				return nil, err
			}
			drafts = append(drafts, draft)
			cursor = candidateEnd
		}
	}

	return drafts, nil
}

// latestOverlapEnd возвращает самый поздний конец среди слотов,
// пересекающих кандидата [startMinutes, endMinutes)
func latestOverlapEnd(daySlots []*domain.Slot, startMinutes, endMinutes int) (int, bool) {
	latest := -1
	for _, s := range daySlots {
		if !s.IsActive() {
			continue
		}
		slotStart, err := s.StartMinutes()
		if err != nil {
			continue
		}
		slotEnd, err := s.EndMinutes()
		if err != nil {
			continue
		}
		if schedule.Overlaps(startMinutes, endMinutes, slotStart, slotEnd) && slotEnd > latest {
			latest = slotEnd
		}
	}
	if latest < 0 {
		return 0, false
	}
	return latest, true
}

// slotStartsInPast проверяет, что абсолютное время начала кандидата
// строго раньше "сейчас"
func slotStartsInPast(day time.Time, startMinutes int, now time.Time) bool {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).
		Add(time.Duration(startMinutes) * time.Minute)
	return start.Before(now)
}

func newDraftSlot(instructorID int64, day time.Time, startMinutes, duration int, cfg domain.WeekConfig) (*domain.Slot, error) {
	start, err := types.NewTimeStringFromMinutes(startMinutes)
	if err != nil {
		return nil, err
	}
	end, err := types.NewTimeStringFromMinutes(startMinutes + duration)
	if err != nil {
		return nil, err
	}

	return &domain.Slot{
		InstructorID:    instructorID,
		Date:            day,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: duration,
		Kind:            domain.KindLesson,
		Status:          domain.StatusDraft,
		VehicleCategory: cfg.VehicleCategory,
		Location:        cfg.Location,
		ExamCenter:      cfg.ExamCenter,
		IsDouble:        cfg.IsDouble,
		Source:          domain.SourceTeacher,
	}, nil
}

func groupByDate(slots []*domain.Slot) map[string][]*domain.Slot {
	byDate := make(map[string][]*domain.Slot, len(slots))
	for _, s := range slots {
		key := s.Date.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], s)
	}
	return byDate
}
