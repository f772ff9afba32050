package check_slot

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	checkSlot "github.com/m04kA/DS-ScheduleService/internal/usecase/check_slot"
	"github.com/m04kA/DS-ScheduleService/pkg/types"
)

// CheckSlotRequest HTTP request model
type CheckSlotRequest struct {
	InstructorID    int64  `json:"instructorId"`
	Date            string `json:"date"`      // "2026-03-02"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	ExcludeSlotID   *int64 `json:"excludeSlotId,omitempty"`
}

// CheckSlotResponse HTTP response model
type CheckSlotResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckSlotRequest) ToUseCaseRequest() (*checkSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &checkSlot.Request{
		InstructorID:    r.InstructorID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		ExcludeSlotID:   r.ExcludeSlotID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkSlot.Response) *CheckSlotResponse {
	out := &CheckSlotResponse{Valid: resp.Valid}
	if !resp.Valid {
		out.Reason = resp.Reason.Message()
	}
	return out
}
