package get_profile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ScheduleService/internal/api/handlers"
	profilesService "github.com/m04kA/DS-ScheduleService/internal/service/profiles"
)

const (
	msgInvalidInstructorID = "некорректный идентификатор инструктора"
	msgProfileNotFound     = "профиль инструктора не найден"
)

type Handler struct {
	service ProfilesService
	logger  Logger
}

func NewHandler(service ProfilesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/instructors/{instructorId}/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	instructorID, err := strconv.ParseInt(vars["instructorId"], 10, 64)
	if err != nil || instructorID <= 0 {
		h.logger.Warn("GET /instructors/{instructorId}/profile - Invalid instructor id: %s", vars["instructorId"])
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	result, err := h.service.GetByInstructorID(r.Context(), instructorID)
	if err != nil {
		switch {
		case errors.Is(err, profilesService.ErrProfileNotFound):
			h.logger.Warn("GET /instructors/{instructorId}/profile - Profile not found: instructor_id=%d", instructorID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		default:
			h.logger.Error("GET /instructors/{instructorId}/profile - Failed to get profile: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /instructors/{instructorId}/profile - Profile returned: instructor_id=%d", instructorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
