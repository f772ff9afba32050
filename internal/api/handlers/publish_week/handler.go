package publish_week

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ScheduleService/internal/api/handlers"
	slotsService "github.com/m04kA/DS-ScheduleService/internal/service/slots"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInstructorID = "некорректный идентификатор инструктора"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректные параметры публикации недели"
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

// Handle POST /api/v1/instructors/{instructorId}/weeks/publish
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	instructorID, err := strconv.ParseInt(vars["instructorId"], 10, 64)
	if err != nil || instructorID <= 0 {
		h.logger.Warn("POST /weeks/publish - Invalid instructor id: %s", vars["instructorId"])
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	var req PublishWeekRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /weeks/publish - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(instructorID)
	if err != nil {
		h.logger.Warn("POST /weeks/publish - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.PublishWeek(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("POST /weeks/publish - Invalid input: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /weeks/publish - Failed to publish week: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /weeks/publish - Published %d slots: instructor_id=%d, weekStart=%s",
		result.Published, instructorID, req.WeekStart)
	handlers.RespondJSON(w, http.StatusOK, result)
}
