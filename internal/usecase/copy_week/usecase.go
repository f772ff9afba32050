package copy_week

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	"github.com/m04kA/DS-ScheduleService/internal/infra/storage/profile"
)

// UseCase use case копирования недели расписания на неделю вперед.
// Исходная неделя читается вместе со снапшотом целевой недели в одной
// сериализуемой транзакции, принятые копии пишутся одним батчем.
type UseCase struct {
	slotRepo        SlotRepository
	profileRepo     ProfileRepository
	holidayProvider HolidayProvider
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	profileRepo ProfileRepository,
	holidayProvider HolidayProvider,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		profileRepo:     profileRepo,
		holidayProvider: holidayProvider,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет копирование недели
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CopyWeek: instructor=%d, weekStart=%s",
		req.InstructorID, req.WeekStart.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CopyWeek: validation failed: %v", err)
		return nil, err
	}

	sourceEnd := req.WeekStart.AddDate(0, 0, domain.DaysPerWeek-1)
	targetStart := req.WeekStart.AddDate(0, 0, domain.DaysPerWeek)
	targetEnd := sourceEnd.AddDate(0, 0, domain.DaysPerWeek)

	defaults, err := uc.profileRepo.GetByInstructorID(ctx, req.InstructorID)
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			uc.logger.Error("CopyWeek: failed to get instructor profile: %v", err)
			return nil, fmt.Errorf("%w: failed to get instructor profile: %v", ErrInternal, err)
		}
		defaults = nil
	}

	holidays, err := uc.holidayProvider.GetCalendar(ctx, targetStart, targetEnd)
	if err != nil {
		uc.logger.Warn("CopyWeek: holiday calendar unavailable, zones stay enforced: %v", err)
		holidays = domain.HolidayCalendar{}
	}

	var resp Response

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		sourceSlots, err := uc.slotRepo.GetByInstructorWithFilter(txCtx, domain.InstructorSlotsFilter{
			InstructorID: req.InstructorID,
			StartDate:    &req.WeekStart,
			EndDate:      &sourceEnd,
		})
		if err != nil {
			uc.logger.Error("CopyWeek: failed to get source week slots: %v", err)
			return fmt.Errorf("%w: failed to get source week slots: %v", ErrInternal, err)
		}

		targetSlots, err := uc.slotRepo.GetByInstructorWithFilter(txCtx, domain.InstructorSlotsFilter{
			InstructorID: req.InstructorID,
			StartDate:    &targetStart,
			EndDate:      &targetEnd,
		})
		if err != nil {
			uc.logger.Error("CopyWeek: failed to get target week slots: %v", err)
			return fmt.Errorf("%w: failed to get target week slots: %v", ErrInternal, err)
		}

		accepted, skipped := copyForward(sourceSlots, targetSlots, holidays, defaults)

		if len(accepted) > 0 {
			accepted, err = uc.slotRepo.CreateBatch(txCtx, accepted)
			if err != nil {
				uc.logger.Error("CopyWeek: failed to persist copies: %v", err)
				return fmt.Errorf("%w: failed to persist copies: %v", ErrInternal, err)
			}
		}

		resp = Response{Accepted: accepted, Skipped: skipped}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CopyWeek: instructor=%d copied %d slots, skipped %d (collisions=%d, restrictions=%d, other=%d)",
		req.InstructorID, len(resp.Accepted), resp.Skipped.Total(),
		resp.Skipped.Collisions, resp.Skipped.Restrictions, resp.Skipped.Other)

	return &resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.InstructorID <= 0 {
		return fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
	}
	if req.WeekStart.IsZero() {
		return fmt.Errorf("%w: weekStart is required", ErrInvalidInput)
	}
	return nil
}
