package save_slot

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	"github.com/m04kA/DS-ScheduleService/pkg/types"
)

// Request модель запроса создания или редактирования слота
type Request struct {
	SlotID       *int64 // nil - создание, иначе редактирование
	InstructorID int64
	StudentID    *int64

	Date      time.Time        // Дата слота (без времени)
	StartTime types.TimeString // Время начала ("10:00")

	Kind                  domain.SlotKind
	CustomDurationMinutes *int // только для блокировок
	IsDouble              bool

	VehicleCategory string
	Location        string
	ExamCenter      string
	BlockReason     string

	Draft  bool // сохранить как черновик (если не назначен ученик)
	Source domain.SlotSource
}

// Response модель ответа с сохранённым слотом
type Response struct {
	ID           int64
	InstructorID int64
	StudentID    *int64

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	DurationMinutes int
	Kind            domain.SlotKind
	Status          domain.SlotStatus

	VehicleCategory string
	Location        string
	ExamCenter      string
	BlockReason     *string

	IsDouble bool
	Source   domain.SlotSource

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomainSlot(s *domain.Slot) *Response {
	return &Response{
		ID:              s.ID,
		InstructorID:    s.InstructorID,
		StudentID:       s.StudentID,
		Date:            s.Date,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationMinutes: s.DurationMinutes,
		Kind:            s.Kind,
		Status:          s.Status,
		VehicleCategory: s.VehicleCategory,
		Location:        s.Location,
		ExamCenter:      s.ExamCenter,
		BlockReason:     s.BlockReason,
		IsDouble:        s.IsDouble,
		Source:          s.Source,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
