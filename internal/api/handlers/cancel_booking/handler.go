package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/tutorhub/lesson-booking-service/internal/api/handlers"
	"github.com/tutorhub/lesson-booking-service/internal/api/middleware"
	cancelBookingUC "github.com/tutorhub/lesson-booking-service/internal/usecase/cancel_booking"
)

// Сообщения об ошибках
const (
	msgUnauthorized     = "пользователь не аутентифицирован"
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgInvalidBody      = "некорректное тело запроса"
	msgBookingNotFound  = "бронирование не найдено"
	msgAccessDenied     = "нет доступа к бронированию"
	msgInvalidStatus    = "бронирование нельзя отменить"
	msgWithinCutoff     = "отмена невозможна: до начала занятия меньше суток"
	msgRefundFailed     = "не удалось вернуть средства, бронирование сохранено"
	msgInternalError    = "внутренняя ошибка сервиса"
)

// CancelBookingRequest - запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// Handler - POST /api/v1/bookings/{booking_id}/cancel
type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func New(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
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

	var req CancelBookingRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidBody)
			return
		}
	}

	err = h.useCase.Handle(r.Context(), cancelBookingUC.CancelBookingIn{
		BookingID: bookingID,
		ActorID:   actorID,
		ActorRole: cancelBookingUC.ActorRole(role),
		Reason:    req.Reason,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cancelBookingUC.ErrValidation):
		handlers.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, cancelBookingUC.ErrBookingNotFound):
		handlers.RespondError(w, http.StatusNotFound, msgBookingNotFound)
	case errors.Is(err, cancelBookingUC.ErrAccessDenied):
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
	case errors.Is(err, cancelBookingUC.ErrInvalidStatus):
		handlers.RespondError(w, http.StatusConflict, msgInvalidStatus)
	case errors.Is(err, cancelBookingUC.ErrWithinCutoffWindow):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgWithinCutoff)
	case errors.Is(err, cancelBookingUC.ErrRefundFailed):
		handlers.RespondError(w, http.StatusBadGateway, msgRefundFailed)
	default:
		h.logger.Error("[cancel_booking handler] internal error: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
	}
}
