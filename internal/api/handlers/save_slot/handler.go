package save_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DS-ScheduleService/internal/api/handlers"
	"github.com/m04kA/DS-ScheduleService/internal/domain"
	saveSlot "github.com/m04kA/DS-ScheduleService/internal/usecase/save_slot"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidDateOrTime      = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidSlotID          = "некорректный идентификатор слота"
	msgSlotNotFound           = "слот не найден"
	msgMissingLocation        = "для занятия требуется место проведения"
	msgMissingVehicleCategory = "для занятия требуется категория транспортного средства"
	msgMissingExamCenter      = "для занятия требуется экзаменационный центр"
	msgMissingBlockReason     = "для блокировки требуется причина"
	msgInvalidInput           = "некорректные параметры слота"
)

type Handler struct {
	useCase SaveSlotUseCase
	logger  Logger
}

func NewHandler(useCase SaveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/slots
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, nil)
}

// HandleUpdate PUT /api/v1/slots/{slotId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("PUT /slots/{slotId} - Invalid slot id: %s", vars["slotId"])
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	h.handle(w, r, &slotID)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, slotID *int64) {
	var req SaveSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("SaveSlot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(slotID)
	if err != nil {
		h.logger.Warn("SaveSlot - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejection *saveSlot.RejectionError
		switch {
		case errors.As(err, &rejection):
			// Коллизия - конфликт с существующим слотом, остальное - нарушение правил времени
			status := http.StatusUnprocessableEntity
			if rejection.Reason.Category() == domain.CategoryCollision {
				status = http.StatusConflict
			}
			h.logger.Warn("SaveSlot - Slot rejected: instructor_id=%d, date=%s, start=%s, reason=%s",
				req.InstructorID, req.Date, req.StartTime, rejection.Reason.Message())
			handlers.RespondError(w, status, rejection.Reason.Message())

		case errors.Is(err, saveSlot.ErrSlotNotFound):
			h.logger.Warn("SaveSlot - Slot not found: instructor_id=%d", req.InstructorID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, saveSlot.ErrMissingLocation):
			h.logger.Warn("SaveSlot - Missing location: instructor_id=%d", req.InstructorID)
			handlers.RespondBadRequest(w, msgMissingLocation)

		case errors.Is(err, saveSlot.ErrMissingVehicleCategory):
			h.logger.Warn("SaveSlot - Missing vehicle category: instructor_id=%d", req.InstructorID)
			handlers.RespondBadRequest(w, msgMissingVehicleCategory)

		case errors.Is(err, saveSlot.ErrMissingExamCenter):
			h.logger.Warn("SaveSlot - Missing exam center: instructor_id=%d", req.InstructorID)
			handlers.RespondBadRequest(w, msgMissingExamCenter)

		case errors.Is(err, saveSlot.ErrMissingBlockReason):
			h.logger.Warn("SaveSlot - Missing block reason: instructor_id=%d", req.InstructorID)
			handlers.RespondBadRequest(w, msgMissingBlockReason)

		case errors.Is(err, saveSlot.ErrInvalidInput):
			h.logger.Warn("SaveSlot - Invalid input: instructor_id=%d, error=%v", req.InstructorID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("SaveSlot - Failed to save slot: instructor_id=%d, error=%v", req.InstructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if slotID != nil {
		status = http.StatusOK
	}

	h.logger.Info("SaveSlot - Slot saved successfully: slot_id=%d, instructor_id=%d, date=%s, status=%s",
		result.ID, req.InstructorID, req.Date, result.Status)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
