package generate_week

import (
	"context"
	"fmt"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
)

// UseCase use case генерации недели черновиков.
// Вся пачка вычисляется против одного консистентного снапшота недели и
// пишется одним батчем в той же сериализуемой транзакции.
type UseCase struct {
	slotRepo        SlotRepository
	holidayProvider HolidayProvider
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	holidayProvider HolidayProvider,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		holidayProvider: holidayProvider,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет генерацию недели
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateWeek: instructor=%d, weekStart=%s, days=%v, window=%s-%s, duration=%d, double=%t",
		req.InstructorID, req.WeekStart.Format(domain.DateFormat), req.Config.WorkingDays,
		req.Config.StartTime, req.Config.EndTime, req.Config.LessonDurationMinutes, req.Config.IsDouble)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateWeek: validation failed: %v", err)
		return nil, err
	}

	weekEnd := req.WeekStart.AddDate(0, 0, domain.DaysPerWeek-1)

	holidays, err := uc.holidayProvider.GetCalendar(ctx, req.WeekStart, weekEnd)
	if err != nil {
		uc.logger.Warn("GenerateWeek: holiday calendar unavailable, zones stay enforced: %v", err)
		holidays = domain.HolidayCalendar{}
	}

	now := uc.timeProvider.Now()

	var drafts []*domain.Slot

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.slotRepo.GetByInstructorWithFilter(txCtx, domain.InstructorSlotsFilter{
			InstructorID: req.InstructorID,
			StartDate:    &req.WeekStart,
			EndDate:      &weekEnd,
		})
		if err != nil {
			uc.logger.Error("GenerateWeek: failed to get existing slots: %v", err)
			return fmt.Errorf("%w: failed to get existing slots: %v", ErrInternal, err)
		}

		drafts, err = buildWeekDrafts(req.InstructorID, req.WeekStart, req.Config, existing, holidays, now)
		if err != nil {
			uc.logger.Error("GenerateWeek: failed to build drafts: %v", err)
			return fmt.Errorf("%w: failed to build drafts: %v", ErrInternal, err)
		}

		if len(drafts) == 0 {
			return nil
		}

		drafts, err = uc.slotRepo.CreateBatch(txCtx, drafts)
		if err != nil {
			uc.logger.Error("GenerateWeek: failed to persist drafts: %v", err)
			return fmt.Errorf("%w: failed to persist drafts: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("GenerateWeek: generated %d drafts for instructor=%d, weekStart=%s",
		len(drafts), req.InstructorID, req.WeekStart.Format(domain.DateFormat))

	return &Response{Slots: drafts}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.InstructorID <= 0 {
		return fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
	}

	if req.WeekStart.IsZero() {
		return fmt.Errorf("%w: weekStart is required", ErrInvalidInput)
	}

	cfg := req.Config

	if len(cfg.WorkingDays) == 0 {
		return fmt.Errorf("%w: workingDays is required", ErrInvalidInput)
	}
	for _, d := range cfg.WorkingDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: workingDays must be in range 0..6", ErrInvalidInput)
		}
	}

	if err := cfg.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := cfg.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}
	if !cfg.StartTime.IsBefore(cfg.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if cfg.LessonDurationMinutes < domain.MinLessonDurationMinutes ||
		cfg.LessonDurationMinutes > domain.MaxLessonDurationMinutes {
		return fmt.Errorf("%w: lessonDuration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinLessonDurationMinutes, domain.MaxLessonDurationMinutes)
	}

	return nil
}
