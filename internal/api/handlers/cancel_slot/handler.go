package cancel_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ScheduleService/internal/api/handlers"
	slotsService "github.com/m04kA/DS-ScheduleService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSlotID      = "некорректный идентификатор слота"
	msgSlotNotFound       = "слот не найден"
	msgAccessDenied       = "нет прав на отмену записи в этом слоте"
	msgCannotCancel       = "запись в этом слоте нельзя отменить"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/{slotId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("POST /slots/{slotId}/cancel - Invalid slot id: %s", vars["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req CancelSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/{slotId}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CancelBooking(r.Context(), slotID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("POST /slots/{slotId}/cancel - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrAccessDenied):
			h.logger.Warn("POST /slots/{slotId}/cancel - Access denied: slot_id=%d, instructor_id=%d", slotID, req.InstructorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, slotsService.ErrCannotCancel):
			h.logger.Warn("POST /slots/{slotId}/cancel - Cannot cancel: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("POST /slots/{slotId}/cancel - Failed to cancel booking: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/{slotId}/cancel - Booking cancelled: slot_id=%d, instructor_id=%d", slotID, req.InstructorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
