package confirm_hold

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("confirm_hold usecase: validation error")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// (в том числе когда истёкший холд уже удалён sweeper'ом)
	ErrBookingNotFound = errors.New("confirm_hold usecase: booking not found")

	// ErrAccessDenied возвращается, когда холд принадлежит другому студенту
	ErrAccessDenied = errors.New("confirm_hold usecase: access denied")

	// ErrAlreadyConfirmed возвращается при повторном подтверждении
	ErrAlreadyConfirmed = errors.New("confirm_hold usecase: booking already confirmed")

	// ErrHoldExpired возвращается, когда TTL холда истёк
	ErrHoldExpired = errors.New("confirm_hold usecase: hold expired")

	// ErrInvalidStatus возвращается, когда бронирование нельзя подтвердить из текущего статуса
	ErrInvalidStatus = errors.New("confirm_hold usecase: invalid booking status")

	// ErrPaymentFailed возвращается, когда списание средств не удалось
	ErrPaymentFailed = errors.New("confirm_hold usecase: payment confirmation failed")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("confirm_hold usecase: internal error")
)
