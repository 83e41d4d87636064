package get_available_slots

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("get_available_slots usecase: validation error")

	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = errors.New("get_available_slots usecase: class not found")

	// ErrAvailabilityNotFound возвращается, когда у преподавателя нет расписания
	ErrAvailabilityNotFound = errors.New("get_available_slots usecase: availability not found")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("get_available_slots usecase: internal error")
)
