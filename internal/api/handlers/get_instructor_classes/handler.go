package get_instructor_classes

import (
	"errors"
	"net/http"

	"github.com/tutorhub/lesson-booking-service/internal/api/handlers"
	"github.com/tutorhub/lesson-booking-service/internal/api/handlers/model"
	classesSvc "github.com/tutorhub/lesson-booking-service/internal/service/classes"
)

// Сообщения об ошибках
const (
	msgInvalidInstructorID = "некорректный идентификатор преподавателя"
	msgInternalError       = "внутренняя ошибка сервиса"
)

// Handler - GET /api/v1/instructors/{instructor_id}/classes
type Handler struct {
	service ClassesService
	logger  Logger
}

func New(service ClassesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, err := handlers.PathInt64(r, "instructor_id")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidInstructorID)
		return
	}

	classes, err := h.service.ListByInstructor(r.Context(), instructorID)
	if err != nil {
		switch {
		case errors.Is(err, classesSvc.ErrValidation):
			handlers.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("[get_instructor_classes handler] internal error: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, model.NewClassListResponse(classes))
}
