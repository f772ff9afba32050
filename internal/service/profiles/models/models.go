package models

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
)

// UpsertProfileRequest запрос создания или обновления профиля инструктора
type UpsertProfileRequest struct {
	InstructorID          int64    `json:"instructorId"`
	LessonDurationMinutes int      `json:"lessonDurationMinutes"`
	DefaultDoubleLesson   bool     `json:"defaultDoubleLesson,omitempty"`
	VehicleCategories     []string `json:"vehicleCategories,omitempty"`
	ExamCenters           []string `json:"examCenters,omitempty"`
}

// ToDomainProfile конвертирует request в domain модель
func (r *UpsertProfileRequest) ToDomainProfile() *domain.ProfileDefaults {
	return &domain.ProfileDefaults{
		InstructorID:          r.InstructorID,
		LessonDurationMinutes: r.LessonDurationMinutes,
		DefaultDoubleLesson:   r.DefaultDoubleLesson,
		VehicleCategories:     r.VehicleCategories,
		ExamCenters:           r.ExamCenters,
	}
}

// ProfileResponse ответ с профилем инструктора
type ProfileResponse struct {
	InstructorID          int64     `json:"instructorId"`
	LessonDurationMinutes int       `json:"lessonDurationMinutes"`
	DefaultDoubleLesson   bool      `json:"defaultDoubleLesson"`
	VehicleCategories     []string  `json:"vehicleCategories"`
	ExamCenters           []string  `json:"examCenters"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// FromDomainProfile конвертирует domain модель в DTO
func FromDomainProfile(p *domain.ProfileDefaults) *ProfileResponse {
	if p == nil {
		return nil
	}

	return &ProfileResponse{
		InstructorID:          p.InstructorID,
		LessonDurationMinutes: p.LessonDurationMinutes,
		DefaultDoubleLesson:   p.DefaultDoubleLesson,
		VehicleCategories:     p.VehicleCategories,
		ExamCenters:           p.ExamCenters,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
