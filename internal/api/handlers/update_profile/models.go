package update_profile

import (
	"github.com/m04kA/DS-ScheduleService/internal/service/profiles/models"
)

// UpdateProfileRequest тело запроса обновления профиля инструктора
type UpdateProfileRequest struct {
	LessonDurationMinutes int      `json:"lessonDurationMinutes"`
	DefaultDoubleLesson   bool     `json:"defaultDoubleLesson,omitempty"`
	VehicleCategories     []string `json:"vehicleCategories,omitempty"`
	ExamCenters           []string `json:"examCenters,omitempty"`
}

// ToServiceRequest конвертирует handler-модель в service-модель
func (r *UpdateProfileRequest) ToServiceRequest(instructorID int64) *models.UpsertProfileRequest {
	return &models.UpsertProfileRequest{
		InstructorID:          instructorID,
		LessonDurationMinutes: r.LessonDurationMinutes,
		DefaultDoubleLesson:   r.DefaultDoubleLesson,
		VehicleCategories:     r.VehicleCategories,
		ExamCenters:           r.ExamCenters,
	}
}
