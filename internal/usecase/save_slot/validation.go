package save_slot

import (
	"fmt"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.InstructorID <= 0 {
		return fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
	}

	if req.SlotID != nil && *req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	if req.StudentID != nil && *req.StudentID <= 0 {
		return fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
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

	switch req.Kind {
	case domain.KindLesson, domain.KindBlock:
	default:
		return fmt.Errorf("%w: unknown slot kind %q", ErrInvalidInput, req.Kind)
	}

	if req.CustomDurationMinutes != nil && *req.CustomDurationMinutes <= 0 {
		return fmt.Errorf("%w: customDurationMinutes must be positive", ErrInvalidInput)
	}

	if len(req.Location) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location is too long", ErrInvalidInput)
	}

	if len(req.BlockReason) > domain.MaxBlockReasonLength {
		return fmt.Errorf("%w: block reason is too long", ErrInvalidInput)
	}

	return nil
}

// validatePresence проверяет обязательные поля по виду слота.
// Выполняется ДО временной валидации: дешёвая проверка - первой.
func validatePresence(req *Request) error {
	if req.Kind == domain.KindLesson {
		if req.Location == "" {
			return ErrMissingLocation
		}
		if req.VehicleCategory == "" {
			return ErrMissingVehicleCategory
		}
		if req.ExamCenter == "" {
			return ErrMissingExamCenter
		}
		return nil
	}

	if req.BlockReason == "" {
		return ErrMissingBlockReason
	}
	return nil
}

// computeDuration вычисляет замороженную длительность слота.
// Блокировка: пользовательская длительность или дефолт 60 минут.
// Занятие: длительность из профиля, удвоенная при isDouble.
func computeDuration(req *Request, defaults *domain.ProfileDefaults) int {
	if req.Kind == domain.KindBlock {
		if req.CustomDurationMinutes != nil {
			return *req.CustomDurationMinutes
		}
		return domain.DefaultBlockDurationMinutes
	}

	base := domain.DefaultLessonDurationMinutes
	if defaults != nil && defaults.LessonDurationMinutes > 0 {
		base = defaults.LessonDurationMinutes
	}
	if req.IsDouble {
		return 2 * base
	}
	return base
}

// deriveStatus выводит статус сохраняемого слота.
// Блокировка всегда blocked; слот с учеником - booked; явный черновик
// сохраняется как draft; иначе open.
func deriveStatus(req *Request) domain.SlotStatus {
	if req.Kind == domain.KindBlock {
		return domain.StatusBlocked
	}
	if req.StudentID != nil {
		return domain.StatusBooked
	}
	if req.Draft {
		return domain.StatusDraft
	}
	return domain.StatusOpen
}
