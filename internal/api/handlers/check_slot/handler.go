package check_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/DS-ScheduleService/internal/api/handlers"
	checkSlot "github.com/m04kA/DS-ScheduleService/internal/usecase/check_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные параметры проверки"
)

type Handler struct {
	useCase CheckSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /slots/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkSlot.ErrInvalidInput):
			h.logger.Warn("POST /slots/check - Invalid input: instructor_id=%d, error=%v", req.InstructorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slots/check - Failed to check slot: instructor_id=%d, error=%v", req.InstructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots/check - Checked: instructor_id=%d, date=%s, start=%s, valid=%t",
		req.InstructorID, req.Date, req.StartTime, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
