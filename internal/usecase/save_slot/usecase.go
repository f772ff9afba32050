package save_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	profileRepo "github.com/m04kA/DS-ScheduleService/internal/infra/storage/profile"
	slotRepo "github.com/m04kA/DS-ScheduleService/internal/infra/storage/slot"
	"github.com/m04kA/DS-ScheduleService/internal/schedule"
)

// UseCase use case сохранения одного слота (создание или редактирование).
// Вычисляет замороженную длительность и время конца, прогоняет проверку
// валидности и отдаёт принятую запись в хранилище.
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

// Execute выполняет сохранение слота.
// Проверки в порядке стоимости: формат входа, обязательные поля по виду
// слота, и только затем временная валидация против снапшота дня.
// Снапшот и запись идут в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveSlot: instructor=%d, date=%s, start=%s, kind=%s, edit=%t",
		req.InstructorID, req.Date.Format(domain.DateFormat), req.StartTime, req.Kind, req.SlotID != nil)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Обязательные поля по виду слота - до любых временных вычислений
	if err := validatePresence(req); err != nil {
		uc.logger.Warn("SaveSlot: presence validation failed: %v", err)
		return nil, err
	}

	// 3. Календарь праздников; при недоступности - пустой календарь,
	// запрещённые зоны остаются в силе
	holidays, err := uc.holidayProvider.GetCalendar(ctx, req.Date, req.Date)
	if err != nil {
		uc.logger.Warn("SaveSlot: holiday calendar unavailable, zones stay enforced: %v", err)
		holidays = domain.HolidayCalendar{}
	}

	var result *domain.Slot

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4. При редактировании убеждаемся, что слот существует и принадлежит инструктору
		var existing *domain.Slot
		if req.SlotID != nil {
			existing, err = uc.slotRepo.GetByID(txCtx, *req.SlotID)
			if err != nil {
				if errors.Is(err, slotRepo.ErrSlotNotFound) {
					uc.logger.Warn("SaveSlot: slot id=%d not found", *req.SlotID)
					return ErrSlotNotFound
				}
				uc.logger.Error("SaveSlot: failed to get slot id=%d: %v", *req.SlotID, err)
				return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
			}
			if existing.InstructorID != req.InstructorID {
				uc.logger.Warn("SaveSlot: slot id=%d belongs to instructor=%d, not %d",
					*req.SlotID, existing.InstructorID, req.InstructorID)
				return ErrSlotNotFound
			}
		}

		// 5. Дефолты профиля; отсутствие профиля - не ошибка
		defaults, err := uc.profileRepo.GetByInstructorID(txCtx, req.InstructorID)
		if err != nil && !errors.Is(err, profileRepo.ErrProfileNotFound) {
			uc.logger.Error("SaveSlot: failed to get profile: %v", err)
			return fmt.Errorf("%w: failed to get profile: %v", ErrInternal, err)
		}

		// 6. Замороженная длительность и время конца
		duration := computeDuration(req, defaults)
		endTime, err := req.StartTime.AddMinutes(duration)
		if err != nil {
			uc.logger.Warn("SaveSlot: cannot compute end time: %v", err)
			return fmt.Errorf("%w: cannot compute end time: %v", ErrInvalidInput, err)
		}

		// 7. Снапшот дня с блокировкой FOR UPDATE
		daySlots, err := uc.slotRepo.GetByInstructorWithFilter(txCtx, domain.InstructorSlotsFilter{
			InstructorID: req.InstructorID,
			StartDate:    &req.Date,
			EndDate:      &req.Date,
		})
		if err != nil {
			uc.logger.Error("SaveSlot: failed to get day slots: %v", err)
			return fmt.Errorf("%w: failed to get day slots: %v", ErrInternal, err)
		}

		// 8. Проверка валидности; редактируемый слот исключён из коллизий
		startMinutes, err := req.StartTime.Minutes()
		if err != nil {
			return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
		}

		check := schedule.CheckSlot(req.Date, startMinutes, duration, daySlots, req.SlotID, holidays)
		if !check.Valid {
			uc.logger.Warn("SaveSlot: rejected: instructor=%d, date=%s, start=%s, reason=%q",
				req.InstructorID, req.Date.Format(domain.DateFormat), req.StartTime, check.Reason.Message())
			return &RejectionError{Reason: check.Reason}
		}

		// 9. Материализуем запись
		s := &domain.Slot{
			InstructorID:          req.InstructorID,
			StudentID:             req.StudentID,
			Date:                  req.Date,
			StartTime:             req.StartTime,
			EndTime:               endTime,
			DurationMinutes:       duration,
			CustomDurationMinutes: req.CustomDurationMinutes,
			Kind:                  req.Kind,
			Status:                deriveStatus(req),
			VehicleCategory:       req.VehicleCategory,
			Location:              req.Location,
			ExamCenter:            req.ExamCenter,
			IsDouble:              req.IsDouble,
			Source:                req.Source,
		}
		if req.Kind == domain.KindBlock {
			reason := req.BlockReason
			s.BlockReason = &reason
		}

		// 10. Пишем
		if existing != nil {
			s.ID = existing.ID
			s.CreatedAt = existing.CreatedAt
			result, err = uc.slotRepo.Update(txCtx, s)
		} else {
			result, err = uc.slotRepo.Create(txCtx, s)
		}
		if err != nil {
			uc.logger.Error("SaveSlot: failed to persist slot: %v", err)
			return fmt.Errorf("%w: failed to persist slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SaveSlot: successfully saved slot id=%d, status=%s, %s-%s",
		result.ID, result.Status, result.StartTime, result.EndTime)

	return fromDomainSlot(result), nil
}
