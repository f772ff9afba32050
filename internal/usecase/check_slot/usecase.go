package check_slot

import (
	"context"
	"fmt"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	"github.com/m04kA/DS-ScheduleService/internal/schedule"
)

// UseCase use case предварительной проверки валидности слота.
// Используется UI для pre-flight валидации до отправки формы сохранения.
type UseCase struct {
	slotRepo        SlotRepository
	holidayProvider HolidayProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, holidayProvider HolidayProvider, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		holidayProvider: holidayProvider,
		logger:          logger,
	}
}

// Execute выполняет проверку валидности слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSlot: instructor=%d, date=%s, start=%s, duration=%d",
		req.InstructorID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlot: validation failed: %v", err)
		return nil, err
	}

	startMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	// Календарь праздников. При недоступности сервиса продолжаем с пустым
	// календарем - день считается обычным, зоны остаются запрещёнными.
	holidays, err := uc.holidayProvider.GetCalendar(ctx, req.Date, req.Date)
	if err != nil {
		uc.logger.Warn("CheckSlot: holiday calendar unavailable, zones stay enforced: %v", err)
		holidays = domain.HolidayCalendar{}
	}

	daySlots, err := uc.slotRepo.GetByInstructorWithFilter(ctx, domain.InstructorSlotsFilter{
		InstructorID: req.InstructorID,
		StartDate:    &req.Date,
		EndDate:      &req.Date,
	})
	if err != nil {
		uc.logger.Error("CheckSlot: failed to get day slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get day slots: %v", ErrInternal, err)
	}

	result := schedule.CheckSlot(req.Date, startMinutes, req.DurationMinutes, daySlots, req.ExcludeSlotID, holidays)

	uc.logger.Info("CheckSlot: instructor=%d, date=%s, start=%s -> valid=%t reason=%q",
		req.InstructorID, req.Date.Format(domain.DateFormat), req.StartTime, result.Valid, result.Reason.Message())

	return &Response{Valid: result.Valid, Reason: result.Reason}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.InstructorID <= 0 {
		return fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	return nil
}
