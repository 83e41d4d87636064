package availability

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("availability service: validation error")

	// ErrAvailabilityNotFound возвращается, когда у преподавателя нет расписания
	ErrAvailabilityNotFound = errors.New("availability service: availability not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("availability service: internal error")
)
