package publish_week

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	"github.com/m04kA/DS-ScheduleService/internal/service/slots/models"
)

// PublishWeekRequest HTTP request model
type PublishWeekRequest struct {
	WeekStart string `json:"weekStart"` // "2026-03-02"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *PublishWeekRequest) ToServiceRequest(instructorID int64) (*models.PublishWeekRequest, error) {
	weekStart, err := time.Parse(domain.DateFormat, r.WeekStart)
	if err != nil {
		return nil, err
	}

	return &models.PublishWeekRequest{
		InstructorID: instructorID,
		WeekStart:    weekStart,
	}, nil
}
