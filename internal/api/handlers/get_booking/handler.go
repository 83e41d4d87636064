package get_booking

import (
	"errors"
	"net/http"

	"github.com/tutorhub/lesson-booking-service/internal/api/handlers"
	"github.com/tutorhub/lesson-booking-service/internal/api/handlers/model"
	"github.com/tutorhub/lesson-booking-service/internal/api/middleware"
	"github.com/tutorhub/lesson-booking-service/internal/service/bookings"
	"github.com/tutorhub/lesson-booking-service/internal/service/bookings/models"
)

// Сообщения об ошибках
const (
	msgUnauthorized     = "пользователь не аутентифицирован"
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgAccessDenied     = "нет доступа к бронированию"
	msgInternalError    = "внутренняя ошибка сервиса"
)

// Handler - GET /api/v1/bookings/{booking_id}
type Handler struct {
	service BookingsService
	logger  Logger
}

func New(service BookingsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	role, _ := middleware.GetUserRole(r.Context())

	bookingID, err := handlers.PathInt64(r, "booking_id")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidBookingID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID, models.Actor{
		ID:   actorID,
		Role: models.ActorRole(role),
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, model.NewBookingResponse(booking))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bookings.ErrValidation):
		handlers.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, bookings.ErrBookingNotFound):
		handlers.RespondError(w, http.StatusNotFound, msgBookingNotFound)
	case errors.Is(err, bookings.ErrAccessDenied):
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
	default:
		h.logger.Error("[get_booking handler] internal error: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
	}
}
