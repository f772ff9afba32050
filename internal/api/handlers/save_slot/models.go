package save_slot

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	saveSlot "github.com/m04kA/DS-ScheduleService/internal/usecase/save_slot"
	"github.com/m04kA/DS-ScheduleService/pkg/types"
)

// SaveSlotRequest HTTP request model
type SaveSlotRequest struct {
	InstructorID int64  `json:"instructorId"`
	StudentID    *int64 `json:"studentId,omitempty"`

	Date      string `json:"date"`      // "2026-03-02"
	StartTime string `json:"startTime"` // "10:00"

	Kind                  string `json:"kind"` // "lesson" | "block"
	CustomDurationMinutes *int   `json:"customDurationMinutes,omitempty"`
	IsDouble              bool   `json:"isDouble,omitempty"`

	VehicleCategory string `json:"vehicleCategory,omitempty"`
	Location        string `json:"location,omitempty"`
	ExamCenter      string `json:"examCenter,omitempty"`
	BlockReason     string `json:"blockReason,omitempty"`

	Draft  bool   `json:"draft,omitempty"`
	Source string `json:"source,omitempty"` // "teacher" | "student"
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID              int64   `json:"id"`
	InstructorID    int64   `json:"instructorId"`
	StudentID       *int64  `json:"studentId,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Kind            string  `json:"kind"`
	Status          string  `json:"status"`
	VehicleCategory string  `json:"vehicleCategory,omitempty"`
	Location        string  `json:"location,omitempty"`
	ExamCenter      string  `json:"examCenter,omitempty"`
	BlockReason     *string `json:"blockReason,omitempty"`
	IsDouble        bool    `json:"isDouble,omitempty"`
	Source          string  `json:"source,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// slotID nil - создание нового слота, иначе редактирование существующего.
func (r *SaveSlotRequest) ToUseCaseRequest(slotID *int64) (*saveSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &saveSlot.Request{
		SlotID:                slotID,
		InstructorID:          r.InstructorID,
		StudentID:             r.StudentID,
		Date:                  date,
		StartTime:             startTime,
		Kind:                  domain.SlotKind(r.Kind),
		CustomDurationMinutes: r.CustomDurationMinutes,
		IsDouble:              r.IsDouble,
		VehicleCategory:       r.VehicleCategory,
		Location:              r.Location,
		ExamCenter:            r.ExamCenter,
		BlockReason:           r.BlockReason,
		Draft:                 r.Draft,
		Source:                domain.SlotSource(r.Source),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *saveSlot.Response) *SlotResponse {
	return &SlotResponse{
		ID:              resp.ID,
		InstructorID:    resp.InstructorID,
		StudentID:       resp.StudentID,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Kind:            string(resp.Kind),
		Status:          string(resp.Status),
		VehicleCategory: resp.VehicleCategory,
		Location:        resp.Location,
		ExamCenter:      resp.ExamCenter,
		BlockReason:     resp.BlockReason,
		IsDouble:        resp.IsDouble,
		Source:          string(resp.Source),
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
