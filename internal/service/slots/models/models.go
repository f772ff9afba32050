package models

import (
	"errors"
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid slot status")
)

// Request модели

// GetScheduleRequest запрос расписания инструктора за период
type GetScheduleRequest struct {
	InstructorID     int64      `json:"instructorId"`
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые слоты
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetScheduleRequest) ToDomainFilter() (domain.InstructorSlotsFilter, error) {
	filter := domain.InstructorSlotsFilter{
		InstructorID:     r.InstructorID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainSlotStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// PublishWeekRequest запрос публикации черновиков недели
type PublishWeekRequest struct {
	InstructorID int64     `json:"instructorId"`
	WeekStart    time.Time `json:"weekStart"`
}

// CancelBookingRequest запрос снятия ученика со слота
type CancelBookingRequest struct {
	InstructorID int64 `json:"instructorId"`
}

// DeleteSlotRequest запрос удаления слота
type DeleteSlotRequest struct {
	InstructorID int64 `json:"instructorId"`
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID              int64  `json:"id"`
	InstructorID    int64  `json:"instructorId"`
	StudentID       *int64 `json:"studentId,omitempty"`
	Date            string `json:"date"`      // "2026-03-02"
	StartTime       string `json:"startTime"` // "10:00"
	EndTime         string `json:"endTime"`   // "10:45"
	DurationMinutes int    `json:"durationMinutes"`
	Kind            string `json:"kind"`
	Status          string `json:"status"`

	VehicleCategory string  `json:"vehicleCategory,omitempty"`
	Location        string  `json:"location,omitempty"`
	ExamCenter      string  `json:"examCenter,omitempty"`
	BlockReason     *string `json:"blockReason,omitempty"`
	IsDouble        bool    `json:"isDouble,omitempty"`
	Source          string  `json:"source,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ScheduleResponse ответ со списком слотов
type ScheduleResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// PublishWeekResponse итог публикации недели
type PublishWeekResponse struct {
	Published int `json:"published"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:              s.ID,
		InstructorID:    s.InstructorID,
		StudentID:       s.StudentID,
		Date:            s.Date.Format(domain.DateFormat),
		StartTime:       s.StartTime.String(),
		EndTime:         s.EndTime.String(),
		DurationMinutes: s.DurationMinutes,
		Kind:            string(s.Kind),
		Status:          string(s.Status),
		VehicleCategory: s.VehicleCategory,
		Location:        s.Location,
		ExamCenter:      s.ExamCenter,
		BlockReason:     s.BlockReason,
		IsDouble:        s.IsDouble,
		Source:          string(s.Source),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) *ScheduleResponse {
	if slots == nil {
		return &ScheduleResponse{
			Slots: []SlotResponse{},
		}
	}

	resp := &ScheduleResponse{
		Slots: make([]SlotResponse, len(slots)),
	}

	for i, s := range slots {
		if slotResp := FromDomainSlot(s); slotResp != nil {
			resp.Slots[i] = *slotResp
		}
	}

	return resp
}

// ToDomainSlotStatus конвертирует строку в domain.SlotStatus с валидацией
func ToDomainSlotStatus(status string) (domain.SlotStatus, error) {
	s := domain.SlotStatus(status)

	validStatuses := []domain.SlotStatus{
		domain.StatusOpen,
		domain.StatusBooked,
		domain.StatusDraft,
		domain.StatusBlocked,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
