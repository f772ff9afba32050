package generate_week

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ScheduleService/internal/api/handlers"
	generateWeek "github.com/m04kA/DS-ScheduleService/internal/usecase/generate_week"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInstructorID = "некорректный идентификатор инструктора"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidConfig       = "некорректная конфигурация генерации недели"
)

type Handler struct {
	useCase GenerateWeekUseCase
	logger  Logger
}

func NewHandler(useCase GenerateWeekUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/instructors/{instructorId}/weeks/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	instructorID, err := strconv.ParseInt(vars["instructorId"], 10, 64)
	if err != nil || instructorID <= 0 {
		h.logger.Warn("POST /weeks/generate - Invalid instructor id: %s", vars["instructorId"])
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	var req GenerateWeekRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /weeks/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(instructorID)
	if err != nil {
		h.logger.Warn("POST /weeks/generate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateWeek.ErrInvalidInput):
			h.logger.Warn("POST /weeks/generate - Invalid config: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("POST /weeks/generate - Failed to generate week: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /weeks/generate - Generated %d drafts: instructor_id=%d, weekStart=%s",
		len(result.Slots), instructorID, req.WeekStart)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
