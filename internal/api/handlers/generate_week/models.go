package generate_week

import (
	"time"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	generateWeek "github.com/m04kA/DS-ScheduleService/internal/usecase/generate_week"
	"github.com/m04kA/DS-ScheduleService/pkg/types"
)

// GenerateWeekRequest HTTP request model
type GenerateWeekRequest struct {
	WeekStart string           `json:"weekStart"` // "2026-03-02"
	Config    WeekConfigModel  `json:"config"`
}

// WeekConfigModel конфигурация генерации недели
type WeekConfigModel struct {
	WorkingDays           []int  `json:"workingDays"` // 0=воскресенье .. 6=суббота
	StartTime             string `json:"startTime"`   // "09:00"
	EndTime               string `json:"endTime"`     // "18:00"
	LessonDurationMinutes int    `json:"lessonDurationMinutes"`
	IsDouble              bool   `json:"isDouble,omitempty"`
	VehicleCategory       string `json:"vehicleCategory,omitempty"`
	SkipLunch             bool   `json:"skipLunch,omitempty"`
	ExamCenter            string `json:"examCenter,omitempty"`
	Location              string `json:"location,omitempty"`
}

// GeneratedSlotModel один сгенерированный черновик
type GeneratedSlotModel struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// GenerateWeekResponse HTTP response model
type GenerateWeekResponse struct {
	Generated int                  `json:"generated"`
	Slots     []GeneratedSlotModel `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateWeekRequest) ToUseCaseRequest(instructorID int64) (*generateWeek.Request, error) {
	weekStart, err := time.Parse(domain.DateFormat, r.WeekStart)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.Config.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.Config.EndTime)
	if err != nil {
		return nil, err
	}

	return &generateWeek.Request{
		InstructorID: instructorID,
		WeekStart:    weekStart,
		Config: domain.WeekConfig{
			WorkingDays:           r.Config.WorkingDays,
			StartTime:             startTime,
			EndTime:               endTime,
			LessonDurationMinutes: r.Config.LessonDurationMinutes,
			IsDouble:              r.Config.IsDouble,
			VehicleCategory:       r.Config.VehicleCategory,
			SkipLunch:             r.Config.SkipLunch,
			ExamCenter:            r.Config.ExamCenter,
			Location:              r.Config.Location,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateWeek.Response) *GenerateWeekResponse {
	out := &GenerateWeekResponse{
		Generated: len(resp.Slots),
		Slots:     make([]GeneratedSlotModel, len(resp.Slots)),
	}

	for i, s := range resp.Slots {
		out.Slots[i] = GeneratedSlotModel{
			ID:        s.ID,
			Date:      s.Date.Format(domain.DateFormat),
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Status:    string(s.Status),
		}
	}

	return out
}
