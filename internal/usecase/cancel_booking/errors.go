package cancel_booking

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("cancel_booking usecase: validation error")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking usecase: booking not found")

	// ErrAccessDenied возвращается, когда актор не имеет отношения к бронированию
	ErrAccessDenied = errors.New("cancel_booking usecase: access denied")

	// ErrInvalidStatus возвращается, когда бронирование нельзя отменить из текущего статуса
	ErrInvalidStatus = errors.New("cancel_booking usecase: invalid booking status")

	// ErrWithinCutoffWindow возвращается студенту при отмене позже крайнего срока
	ErrWithinCutoffWindow = errors.New("cancel_booking usecase: within cutoff window")

	// ErrRefundFailed возвращается, когда возврат средств не удался.
	// Бронирование в этом случае остаётся без изменений.
	ErrRefundFailed = errors.New("cancel_booking usecase: refund failed")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("cancel_booking usecase: internal error")
)
