package delete_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/DS-ScheduleService/internal/api/middleware"
	slotsService "github.com/m04kA/DS-ScheduleService/internal/service/slots"
	"github.com/m04kA/DS-ScheduleService/internal/service/slots/models"
)

const (
	msgInvalidSlotID = "некорректный идентификатор слота"
	msgMissingUser   = "не удалось определить пользователя"
	msgSlotNotFound  = "слот не найден"
	msgAccessDenied  = "нет прав на удаление этого слота"
	msgSlotBooked    = "нельзя удалить слот с активной записью"
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

// Handle DELETE /api/v1/slots/{slotId}
// Идентификатор инструктора берётся из заголовка X-User-ID, тело не требуется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("DELETE /slots/{slotId} - Invalid slot id: %s", vars["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	instructorID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /slots/{slotId} - Missing user id in context: slot_id=%d", slotID)
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingUser)
		return
	}

	err = h.service.Delete(r.Context(), slotID, &models.DeleteSlotRequest{InstructorID: instructorID})
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("DELETE /slots/{slotId} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrAccessDenied):
			h.logger.Warn("DELETE /slots/{slotId} - Access denied: slot_id=%d, instructor_id=%d", slotID, instructorID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, slotsService.ErrSlotBooked):
			h.logger.Warn("DELETE /slots/{slotId} - Slot has active booking: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotBooked)

		default:
			h.logger.Error("DELETE /slots/{slotId} - Failed to delete slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots/{slotId} - Slot deleted: slot_id=%d, instructor_id=%d", slotID, instructorID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
