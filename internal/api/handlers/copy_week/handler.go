package copy_week

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ScheduleService/internal/api/handlers"
	copyWeek "github.com/m04kA/DS-ScheduleService/internal/usecase/copy_week"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInstructorID = "некорректный идентификатор инструктора"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректные параметры копирования недели"
)

type Handler struct {
	useCase CopyWeekUseCase
	logger  Logger
}

func NewHandler(useCase CopyWeekUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/instructors/{instructorId}/weeks/copy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	instructorID, err := strconv.ParseInt(vars["instructorId"], 10, 64)
	if err != nil || instructorID <= 0 {
		h.logger.Warn("POST /weeks/copy - Invalid instructor id: %s", vars["instructorId"])
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	var req CopyWeekRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /weeks/copy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(instructorID)
	if err != nil {
		h.logger.Warn("POST /weeks/copy - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, copyWeek.ErrInvalidInput):
			h.logger.Warn("POST /weeks/copy - Invalid input: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /weeks/copy - Failed to copy week: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /weeks/copy - Copied %d slots, skipped %d: instructor_id=%d, weekStart=%s",
		len(result.Accepted), result.Skipped.Total(), instructorID, req.WeekStart)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
