package get_schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/DS-ScheduleService/internal/domain"
	slotsService "github.com/m04kA/DS-ScheduleService/internal/service/slots"
	"github.com/m04kA/DS-ScheduleService/internal/service/slots/models"
)

const (
	msgInvalidInstructorID = "некорректный идентификатор инструктора"
	msgInvalidDateRange    = "некорректный формат периода, ожидается YYYY-MM-DD"
	msgInvalidFilter       = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/instructors/{instructorId}/schedule
// Query параметры: from, to (YYYY-MM-DD), status, includeCancelled
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	instructorID, err := strconv.ParseInt(vars["instructorId"], 10, 64)
	if err != nil || instructorID <= 0 {
		h.logger.Warn("GET /schedule - Invalid instructor id: %s", vars["instructorId"])
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	req := &models.GetScheduleRequest{InstructorID: instructorID}

	query := r.URL.Query()

	if from := query.Get("from"); from != "" {
		parsed, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			h.logger.Warn("GET /schedule - Invalid from date: %s", from)
			handlers.RespondBadRequest(w, msgInvalidDateRange)
			return
		}
		req.StartDate = &parsed
	}

	if to := query.Get("to"); to != "" {
		parsed, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			h.logger.Warn("GET /schedule - Invalid to date: %s", to)
			handlers.RespondBadRequest(w, msgInvalidDateRange)
			return
		}
		req.EndDate = &parsed
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if query.Get("includeCancelled") == "true" {
		req.IncludeCancelled = true
	}

	result, err := h.service.GetSchedule(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid filter: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /schedule - Failed to get schedule: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - Fetched %d slots: instructor_id=%d", len(result.Slots), instructorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
