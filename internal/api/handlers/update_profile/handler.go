package update_profile

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/DS-ScheduleService/internal/api/middleware"
	profilesService "github.com/m04kA/DS-ScheduleService/internal/service/profiles"
)

const (
	msgInvalidInstructorID = "некорректный идентификатор инструктора"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUser         = "не удалось определить пользователя"
	msgAccessDenied        = "нет прав на изменение чужого профиля"
	msgInvalidInput        = "некорректные данные профиля"
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

// Handle PUT /api/v1/instructors/{instructorId}/profile
// Инструктор может менять только собственный профиль
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	instructorID, err := strconv.ParseInt(vars["instructorId"], 10, 64)
	if err != nil || instructorID <= 0 {
		h.logger.Warn("PUT /instructors/{instructorId}/profile - Invalid instructor id: %s", vars["instructorId"])
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /instructors/{instructorId}/profile - Missing user id in context: instructor_id=%d", instructorID)
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingUser)
		return
	}
	if userID != instructorID {
		h.logger.Warn("PUT /instructors/{instructorId}/profile - Access denied: instructor_id=%d, user_id=%d", instructorID, userID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /instructors/{instructorId}/profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), req.ToServiceRequest(instructorID))
	if err != nil {
		switch {
		case errors.Is(err, profilesService.ErrInvalidInput):
			h.logger.Warn("PUT /instructors/{instructorId}/profile - Invalid input: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /instructors/{instructorId}/profile - Failed to save profile: instructor_id=%d, error=%v", instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /instructors/{instructorId}/profile - Profile saved: instructor_id=%d", instructorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
