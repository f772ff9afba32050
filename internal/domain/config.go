package domain

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/pkg/types"
)

// WeekConfig ephemeral configuration of one week-generation run.
// Supplied by the caller, never persisted.
type WeekConfig struct {
	WorkingDays           []int // weekday numbers, 0=Sunday .. 6=Saturday
	StartTime             types.TimeString
	EndTime               types.TimeString
	LessonDurationMinutes int
	IsDouble              bool
	VehicleCategory       string
	SkipLunch             bool
	ExamCenter            string
	Location              string
}

// EffectiveDurationMinutes returns the slot duration the generator places
func (c WeekConfig) EffectiveDurationMinutes() int {
	if c.IsDouble {
		return 2 * c.LessonDurationMinutes
	}
	return c.LessonDurationMinutes
}

// IsWorkingDay returns true if the weekday is enabled in the config
func (c WeekConfig) IsWorkingDay(wd time.Weekday) bool {
	for _, d := range c.WorkingDays {
		if d == int(wd) {
			return true
		}
	}
	return false
}

// ProfileDefaults per-instructor defaults applied when a request
// does not specify them explicitly
type ProfileDefaults struct {
	InstructorID          int64
	LessonDurationMinutes int
	DefaultDoubleLesson   bool
	VehicleCategories     []string
	ExamCenters           []string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HolidayCalendar mapping from ISO date (YYYY-MM-DD) to holiday name.
// Externally supplied, read-only for the engine. An empty calendar means
// no day is exempt, which keeps restricted zones enforced.
type HolidayCalendar map[string]string

// Contains returns true if the date is a declared holiday
func (h HolidayCalendar) Contains(date time.Time) bool {
	if h == nil {
		return false
	}
	_, ok := h[date.Format(DateFormat)]
	return ok
}
