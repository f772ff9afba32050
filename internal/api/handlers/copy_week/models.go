package copy_week

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	copyWeek "github.com/m04kA/DS-ScheduleService/internal/usecase/copy_week"
)

// CopyWeekRequest HTTP request model
type CopyWeekRequest struct {
	WeekStart string `json:"weekStart"` // Первый день исходной недели, "2026-03-02"
}

// CopiedSlotModel одна принятая копия
type CopiedSlotModel struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Kind      string `json:"kind"`
	Status    string `json:"status"`
}

// SkipSummaryModel сводка пропущенных слотов по категориям
type SkipSummaryModel struct {
	Collisions   int `json:"collisions"`
	Restrictions int `json:"restrictions"`
	Other        int `json:"other"`
	Total        int `json:"total"`
}

// CopyWeekResponse HTTP response model
type CopyWeekResponse struct {
	Copied  int               `json:"copied"`
	Skipped SkipSummaryModel  `json:"skipped"`
	Slots   []CopiedSlotModel `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CopyWeekRequest) ToUseCaseRequest(instructorID int64) (*copyWeek.Request, error) {
	weekStart, err := time.Parse(domain.DateFormat, r.WeekStart)
	if err != nil {
		return nil, err
	}

	return &copyWeek.Request{
		InstructorID: instructorID,
		WeekStart:    weekStart,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *copyWeek.Response) *CopyWeekResponse {
	out := &CopyWeekResponse{
		Copied: len(resp.Accepted),
		Skipped: SkipSummaryModel{
			Collisions:   resp.Skipped.Collisions,
			Restrictions: resp.Skipped.Restrictions,
			Other:        resp.Skipped.Other,
			Total:        resp.Skipped.Total(),
		},
		Slots: make([]CopiedSlotModel, len(resp.Accepted)),
	}

	for i, s := range resp.Accepted {
		out.Slots[i] = CopiedSlotModel{
			ID:        s.ID,
			Date:      s.Date.Format(domain.DateFormat),
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Kind:      string(s.Kind),
			Status:    string(s.Status),
		}
	}

	return out
}
