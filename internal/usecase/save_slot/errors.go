package save_slot

import (
	"errors"
	"fmt"

	"github.com/m04kA/DS-ScheduleService/internal/domain"
)

var (
	// ErrMissingLocation возвращается для занятия без места проведения
	ErrMissingLocation = errors.New("save_slot: location is required for a lesson")

	// ErrMissingVehicleCategory возвращается для занятия без категории ТС
	ErrMissingVehicleCategory = errors.New("save_slot: vehicle category is required for a lesson")

	// ErrMissingExamCenter возвращается для занятия без экзаменационного центра
	ErrMissingExamCenter = errors.New("save_slot: exam center is required for a lesson")

	// ErrMissingBlockReason возвращается для блокировки без причины
	ErrMissingBlockReason = errors.New("save_slot: reason is required for a block")

	// ErrSlotNotFound возвращается, когда редактируемый слот не найден
	ErrSlotNotFound = errors.New("save_slot: slot not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("save_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_slot: internal error")
)

// RejectionError отклонение слота проверкой валидности.
// Несёт тег причины; строка для пользователя выводится из тега.
type RejectionError struct {
	Reason domain.RejectReason
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("save_slot: slot rejected: %s", e.Reason.Message())
}
