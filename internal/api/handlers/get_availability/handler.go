package get_availability

import (
	"errors"
	"net/http"

	"github.com/tutorhub/lesson-booking-service/internal/api/handlers"
	"github.com/tutorhub/lesson-booking-service/internal/api/handlers/model"
	availabilitySvc "github.com/tutorhub/lesson-booking-service/internal/service/availability"
)

// Сообщения об ошибках
const (
	msgInvalidInstructorID = "некорректный идентификатор преподавателя"
	msgNotFound            = "у преподавателя нет расписания"
	msgInternalError       = "внутренняя ошибка сервиса"
)

// Handler - GET /api/v1/instructors/{instructor_id}/availability
type Handler struct {
	service AvailabilityService
	logger  Logger
}

func New(service AvailabilityService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, err := handlers.PathInt64(r, "instructor_id")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidInstructorID)
		return
	}

	av, err := h.service.Get(r.Context(), instructorID)
	if err != nil {
		switch {
		case errors.Is(err, availabilitySvc.ErrValidation):
			handlers.RespondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, availabilitySvc.ErrAvailabilityNotFound):
			handlers.RespondError(w, http.StatusNotFound, msgNotFound)
		default:
			h.logger.Error("[get_availability handler] internal error: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, model.NewAvailabilityPayload(av))
}
