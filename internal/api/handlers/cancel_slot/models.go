package cancel_slot

import "github.com/m04kA/DS-ScheduleService/internal/service/slots/models"

// CancelSlotRequest HTTP request model
type CancelSlotRequest struct {
	InstructorID int64 `json:"instructorId"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelSlotRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		InstructorID: r.InstructorID,
	}
}
