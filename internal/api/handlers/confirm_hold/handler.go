package confirm_hold

import (
	"errors"
	"net/http"

	"github.com/tutorhub/lesson-booking-service/internal/api/handlers"
	"github.com/tutorhub/lesson-booking-service/internal/api/handlers/model"
	"github.com/tutorhub/lesson-booking-service/internal/api/middleware"
	confirmHoldUC "github.com/tutorhub/lesson-booking-service/internal/usecase/confirm_hold"
)

// Сообщения об ошибках
const (
	msgUnauthorized     = "пользователь не аутентифицирован"
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgAccessDenied     = "нет доступа к бронированию"
	msgAlreadyConfirmed = "бронирование уже подтверждено"
	msgHoldExpired      = "срок удержания слота истёк"
	msgInvalidStatus    = "бронирование нельзя подтвердить"
	msgPaymentFailed    = "не удалось списать средства"
	msgInternalError    = "внутренняя ошибка сервиса"
)

// Handler - POST /api/v1/bookings/{booking_id}/confirm
type Handler struct {
	useCase ConfirmHoldUseCase
	logger  Logger
}

func New(useCase ConfirmHoldUseCase, logger Logger) *Handler {
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

	booking, err := h.useCase.Handle(r.Context(), confirmHoldUC.ConfirmHoldIn{
		BookingID: bookingID,
		StudentID: studentID,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, model.NewBookingResponse(booking))
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, confirmHoldUC.ErrValidation):
		handlers.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, confirmHoldUC.ErrBookingNotFound):
		handlers.RespondError(w, http.StatusNotFound, msgBookingNotFound)
	case errors.Is(err, confirmHoldUC.ErrAccessDenied):
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
	case errors.Is(err, confirmHoldUC.ErrAlreadyConfirmed):
		handlers.RespondError(w, http.StatusConflict, msgAlreadyConfirmed)
	case errors.Is(err, confirmHoldUC.ErrHoldExpired):
		handlers.RespondError(w, http.StatusGone, msgHoldExpired)
	case errors.Is(err, confirmHoldUC.ErrInvalidStatus):
		handlers.RespondError(w, http.StatusConflict, msgInvalidStatus)
	case errors.Is(err, confirmHoldUC.ErrPaymentFailed):
		handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentFailed)
	default:
		h.logger.Error("[confirm_hold handler] internal error: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgInternalError)
	}
}
