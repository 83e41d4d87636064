package bookings

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("bookings service: validation error")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings service: booking not found")

	// ErrAccessDenied возвращается, когда актор не имеет отношения к бронированию
	ErrAccessDenied = errors.New("bookings service: access denied")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("bookings service: internal error")
)
