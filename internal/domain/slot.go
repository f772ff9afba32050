package domain

import (
	"errors"
	"time"

	"github.com/m04kA/DS-ScheduleService/pkg/types"
)

// SlotKind represents what a slot occupies the calendar with
type SlotKind string

const (
	KindLesson SlotKind = "lesson"
	KindBlock  SlotKind = "block"
)

// SlotStatus represents the lifecycle status of a slot
type SlotStatus string

const (
	StatusOpen    SlotStatus = "open"
	StatusBooked  SlotStatus = "booked"
	StatusDraft   SlotStatus = "draft"
	StatusBlocked SlotStatus = "blocked"

	// Terminal states are assigned by external flows after the slot's
	// end time has passed; the engine never computes them
	StatusCompleted SlotStatus = "completed"
	StatusCancelled SlotStatus = "cancelled"
)

// SlotSource who placed the slot on the calendar. Informational only.
type SlotSource string

const (
	SourceTeacher SlotSource = "teacher"
	SourceStudent SlotSource = "student"
	SourceNone    SlotSource = ""
)

// ErrIllegalTransition возвращается при недопустимом переходе статуса
var ErrIllegalTransition = errors.New("domain: illegal slot status transition")

// Slot represents a time interval on an instructor's calendar.
// EndTime is frozen from DurationMinutes at write time and never
// recomputed from live profile defaults.
type Slot struct {
	ID           int64
	InstructorID int64
	StudentID    *int64 // nil for unassigned slots

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	DurationMinutes       int
	CustomDurationMinutes *int // block-only override

	Kind   SlotKind
	Status SlotStatus

	VehicleCategory string
	Location        string
	ExamCenter      string
	BlockReason     *string

	IsDouble bool
	Source   SlotSource

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLesson returns true if the slot is a drivable lesson
func (s *Slot) IsLesson() bool {
	return s.Kind == KindLesson
}

// IsBlock returns true if the slot blocks the interval without a lesson
func (s *Slot) IsBlock() bool {
	return s.Kind == KindBlock
}

// IsActive returns true if the slot still occupies its interval.
// Cancelled slots no longer participate in collision checks.
func (s *Slot) IsActive() bool {
	return s.Status != StatusCancelled
}

// StartMinutes returns the start time as minutes since midnight
func (s *Slot) StartMinutes() (int, error) {
	return s.StartTime.Minutes()
}

// EndMinutes returns the end time as minutes since midnight
func (s *Slot) EndMinutes() (int, error) {
	return s.EndTime.Minutes()
}

// EffectiveDurationMinutes восстанавливает длительность слота.
// Цепочка: замороженная длительность, затем пользовательская,
// затем длительность занятия из профиля (с удвоением).
func (s *Slot) EffectiveDurationMinutes(defaults *ProfileDefaults) int {
	if s.DurationMinutes > 0 {
		return s.DurationMinutes
	}
	if s.CustomDurationMinutes != nil && *s.CustomDurationMinutes > 0 {
		return *s.CustomDurationMinutes
	}
	base := DefaultLessonDurationMinutes
	if defaults != nil && defaults.LessonDurationMinutes > 0 {
		base = defaults.LessonDurationMinutes
	}
	if s.IsDouble {
		return 2 * base
	}
	return base
}

// AttachStudent returns the status a slot takes when a student is attached.
// Only open and draft slots accept a student.
func AttachStudent(status SlotStatus) (SlotStatus, error) {
	switch status {
	case StatusOpen, StatusDraft:
		return StatusBooked, nil
	default:
		return status, ErrIllegalTransition
	}
}

// DetachStudent returns the status a slot takes when its student is removed
func DetachStudent(status SlotStatus) (SlotStatus, error) {
	if status != StatusBooked {
		return status, ErrIllegalTransition
	}
	return StatusOpen, nil
}

// PublishDraft returns the status a draft takes when published
func PublishDraft(status SlotStatus) (SlotStatus, error) {
	if status != StatusDraft {
		return status, ErrIllegalTransition
	}
	return StatusOpen, nil
}

// InstructorSlotsFilter фильтр выборки слотов инструктора
type InstructorSlotsFilter struct {
	InstructorID     int64       // Обязательный параметр
	StartDate        *time.Time  // Начало периода (опционально)
	EndDate          *time.Time  // Конец периода (опционально)
	Status           *SlotStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool        // Включать ли отменённые слоты
}
