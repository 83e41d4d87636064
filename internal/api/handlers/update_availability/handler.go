package update_availability

import (
	"errors"
	"net/http"

	"github.com/tutorhub/lesson-booking-service/internal/api/handlers"
	"github.com/tutorhub/lesson-booking-service/internal/api/handlers/model"
	"github.com/tutorhub/lesson-booking-service/internal/api/middleware"
	availabilitySvc "github.com/tutorhub/lesson-booking-service/internal/service/availability"
)

// Сообщения об ошибках
const (
	msgUnauthorized        = "пользователь не аутентифицирован"
	msgInvalidInstructorID = "некорректный идентификатор преподавателя"
	msgInvalidBody         = "некорректное тело запроса"
	msgAccessDenied        = "изменять расписание может только его владелец"
	msgInternalError       = "внутренняя ошибка сервиса"
)

// Handler - PUT /api/v1/instructors/{instructor_id}/availability
type Handler struct {
	service AvailabilityService
	logger  Logger
}

func New(service AvailabilityService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	instructorID, err := handlers.PathInt64(r, "instructor_id")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidInstructorID)
		return
	}

	if role != "admin" && actorID != instructorID {
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		return
	}

	var payload model.AvailabilityPayload
	if err := handlers.DecodeJSON(r, &payload); err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	av, err := payload.ToDomain(instructorID)
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	updated, err := h.service.Update(r.Context(), av)
	if err != nil {
		switch {
		case errors.Is(err, availabilitySvc.ErrValidation):
			handlers.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("[update_availability handler] internal error: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, model.NewAvailabilityPayload(updated))
}
