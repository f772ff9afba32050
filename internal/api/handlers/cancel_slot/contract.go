package cancel_slot

import (
	"context"

	"github.com/m04kA/DS-ScheduleService/internal/service/slots/models"
)

type SlotsService interface {
	CancelBooking(ctx context.Context, slotID int64, req *models.CancelBookingRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
