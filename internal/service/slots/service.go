package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
	slotRepo "github.com/m04kA/DS-ScheduleService/internal/infra/storage/slot"
	"github.com/m04kA/DS-ScheduleService/internal/service/slots/models"
)

// Service сервис для работы с расписанием инструктора
type Service struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetSchedule получает слоты инструктора с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых слотов
//
// Примеры использования:
// - Все активные слоты: GetSchedule(ctx, &GetScheduleRequest{InstructorID: 123})
// - Слоты на дату: StartDate и EndDate указывают на одну дату
// - Слоты за период: StartDate и EndDate указывают на разные даты
// - Только черновики: указать Status = "draft"
// - Включая отменённые: IncludeCancelled = true
func (s *Service) GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	logMsg := fmt.Sprintf("GetSchedule: fetching slots for instructor=%d", req.InstructorID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetSchedule: invalid filter for instructor=%d: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	slots, err := s.slotRepo.GetByInstructorWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetSchedule: repository error for instructor=%d: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSchedule: successfully fetched %d slots for instructor=%d", len(slots), req.InstructorID)
	return models.FromDomainSlotList(slots), nil
}

// PublishWeek публикует все черновики недели, делая их видимыми ученикам.
// Черновики собираются и переводятся в open в одной сериализуемой транзакции,
// чтобы публикация была атомарной по отношению к параллельным записям.
func (s *Service) PublishWeek(ctx context.Context, req *models.PublishWeekRequest) (*models.PublishWeekResponse, error) {
	s.logger.Info("PublishWeek: instructor=%d, weekStart=%s",
		req.InstructorID, req.WeekStart.Format(domain.DateFormat))

	if req.InstructorID <= 0 || req.WeekStart.IsZero() {
		return nil, fmt.Errorf("%w: instructorID and weekStart are required", ErrInvalidInput)
	}

	weekEnd := req.WeekStart.AddDate(0, 0, domain.DaysPerWeek-1)
	draftStatus := domain.StatusDraft

	published := 0

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		drafts, err := s.slotRepo.GetByInstructorWithFilter(txCtx, domain.InstructorSlotsFilter{
			InstructorID: req.InstructorID,
			StartDate:    &req.WeekStart,
			EndDate:      &weekEnd,
			Status:       &draftStatus,
		})
		if err != nil {
			s.logger.Error("PublishWeek: repository error for instructor=%d: %v", req.InstructorID, err)
			return fmt.Errorf("%w: PublishWeek - repository error: %v", ErrInternal, err)
		}

		for _, draft := range drafts {
			next, err := domain.PublishDraft(draft.Status)
			if err != nil {
				// Снапшот собран по статусу draft, сюда попадать не должны
				s.logger.Warn("PublishWeek: slot id=%d skipped, status=%s", draft.ID, draft.Status)
				continue
			}

			if err := s.slotRepo.UpdateStatus(txCtx, draft.ID, next); err != nil {
				s.logger.Error("PublishWeek: failed to publish slot id=%d: %v", draft.ID, err)
				return fmt.Errorf("%w: PublishWeek - failed to publish slot: %v", ErrInternal, err)
			}
			published++
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("PublishWeek: published %d slots for instructor=%d, weekStart=%s",
		published, req.InstructorID, req.WeekStart.Format(domain.DateFormat))

	return &models.PublishWeekResponse{Published: published}, nil
}

// CancelBooking снимает ученика со слота и возвращает слот в open.
// Инструктор может отменять только записи в своём расписании.
func (s *Service) CancelBooking(ctx context.Context, slotID int64, req *models.CancelBookingRequest) (*models.SlotResponse, error) {
	s.logger.Info("CancelBooking: cancelling booking on slot id=%d by instructor=%d", slotID, req.InstructorID)

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("CancelBooking: slot id=%d not found", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("CancelBooking: repository error for slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: CancelBooking - repository error: %v", ErrInternal, err)
	}

	if slot.InstructorID != req.InstructorID {
		s.logger.Warn("CancelBooking: access denied for instructor=%d to slot id=%d", req.InstructorID, slotID)
		return nil, ErrAccessDenied
	}

	next, err := domain.DetachStudent(slot.Status)
	if err != nil {
		s.logger.Warn("CancelBooking: slot id=%d cannot be cancelled, status=%s", slotID, slot.Status)
		return nil, ErrCannotCancel
	}

	if err := s.slotRepo.SetStudent(ctx, slotID, nil, next); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("CancelBooking: slot id=%d not found during cancellation", slotID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("CancelBooking: repository error for slot id=%d: %v", slotID, err)
		return nil, fmt.Errorf("%w: CancelBooking - repository error: %v", ErrInternal, err)
	}

	slot.StudentID = nil
	slot.Status = next

	s.logger.Info("CancelBooking: successfully cancelled booking on slot id=%d", slotID)
	return models.FromDomainSlot(slot), nil
}

// Delete удаляет слот из расписания.
// Слот с записанным учеником удалить нельзя - сначала отмена записи.
func (s *Service) Delete(ctx context.Context, slotID int64, req *models.DeleteSlotRequest) error {
	s.logger.Info("Delete: deleting slot id=%d by instructor=%d", slotID, req.InstructorID)

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot id=%d not found", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if slot.InstructorID != req.InstructorID {
		s.logger.Warn("Delete: access denied for instructor=%d to slot id=%d", req.InstructorID, slotID)
		return ErrAccessDenied
	}

	if slot.Status == domain.StatusBooked {
		s.logger.Warn("Delete: slot id=%d has an active booking", slotID)
		return ErrSlotBooked
	}

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot id=%d not found during deletion", slotID)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%d: %v", slotID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted slot id=%d", slotID)
	return nil
}
