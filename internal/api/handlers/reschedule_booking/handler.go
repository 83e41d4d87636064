package reschedule_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/api/handlers"
	"github.com/tutorhub/lesson-booking-service/internal/api/handlers/model"
	"github.com/tutorhub/lesson-booking-service/internal/api/middleware"
	rescheduleUC "github.com/tutorhub/lesson-booking-service/internal/usecase/reschedule_booking"
)

// Сообщения об ошибках
const (
	msgUnauthorized     = "пользователь не аутентифицирован"
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgInvalidBody      = "некорректное тело запроса"
	msgBookingNotFound  = "бронирование не найдено"
	msgAccessDenied     = "нет доступа к бронированию"
	msgInvalidStatus    = "переносить можно только подтверждённые бронирования"
	msgWithinCutoff     = "перенос невозможен: до начала занятия меньше суток"
	msgSlotNotAvailable = "новое время недоступно"
	msgSlotFull         = "в новом слоте не осталось мест"
	msgCapacityExceeded = "в новом слоте не хватает мест для группы"
	msgInvalidDuration  = "запрошенный интервал не совпадает с границами слота"
	msgWindowTooSoon    = "до нового времени осталось слишком мало времени"
	msgWindowTooFar     = "новое время слишком далеко в будущем"
	msgInternalError    = "внутренняя ошибка сервиса"
)

// RescheduleBookingRequest - запрос на перенос бронирования.
// new_end_at необязателен; если задан, интервал сверяется с сеткой слотов.
type RescheduleBookingRequest struct {
	NewStartAt time.Time `json:"new_start_at"`
	NewEndAt   time.Time `json:"new_end_at,omitempty"`
}

// Handler - POST /api/v1/bookings/{booking_id}/reschedule
type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func New(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	bookingID, err := handlers.PathInt64(r, "booking_id")
	if err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	booking, err := h.useCase.Handle(r.Context(), rescheduleUC.RescheduleBookingIn{
		BookingID:  bookingID,
		StudentID:  studentID,
		NewStartAt: req.NewStartAt,
		NewEndAt:   req.NewEndAt,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, model.NewBookingResponse(booking))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, rescheduleUC.ErrValidation):
		handlers.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, rescheduleUC.ErrBookingNotFound):
		handlers.RespondError(w, http.StatusNotFound, msgBookingNotFound)
	case errors.Is(err, rescheduleUC.ErrAccessDenied):
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
	case errors.Is(err, rescheduleUC.ErrInvalidStatus):
		handlers.RespondError(w, http.StatusConflict, msgInvalidStatus)
	case errors.Is(err, rescheduleUC.ErrWithinCutoffWindow):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgWithinCutoff)
	case errors.Is(err, rescheduleUC.ErrSlotNotAvailable):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgSlotNotAvailable)
	case errors.Is(err, rescheduleUC.ErrSlotFull):
		handlers.RespondError(w, http.StatusConflict, msgSlotFull)
	case errors.Is(err, rescheduleUC.ErrCapacityExceeded):
		handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)
	case errors.Is(err, rescheduleUC.ErrInvalidDuration):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidDuration)
	case errors.Is(err, rescheduleUC.ErrWindowTooSoon):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgWindowTooSoon)
	case errors.Is(err, rescheduleUC.ErrWindowTooFar):
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgWindowTooFar)
	default:
		h.logger.Error("[reschedule_booking handler] internal error: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
	}
}
