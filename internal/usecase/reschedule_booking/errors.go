package reschedule_booking

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("reschedule_booking usecase: validation error")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking usecase: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому студенту
	ErrAccessDenied = errors.New("reschedule_booking usecase: access denied")

	// ErrInvalidStatus возвращается, когда переносить можно только подтверждённые бронирования
	ErrInvalidStatus = errors.New("reschedule_booking usecase: invalid booking status")

	// ErrWithinCutoffWindow возвращается при переносе позже крайнего срока
	ErrWithinCutoffWindow = errors.New("reschedule_booking usecase: within cutoff window")

	// ErrSlotNotAvailable возвращается, когда новое время не входит в расписание
	ErrSlotNotAvailable = errors.New("reschedule_booking usecase: slot not available")

	// ErrSlotFull возвращается, когда новый индивидуальный слот уже занят
	ErrSlotFull = errors.New("reschedule_booking usecase: slot is full")

	// ErrCapacityExceeded возвращается, когда в новом групповом слоте не хватает
	// мест под переносимую группу
	ErrCapacityExceeded = errors.New("reschedule_booking usecase: slot capacity exceeded")

	// ErrInvalidDuration возвращается, когда запрошенный интервал не совпадает
	// с границами нового слота
	ErrInvalidDuration = errors.New("reschedule_booking usecase: invalid slot duration")

	// ErrWindowTooSoon возвращается, когда до нового времени меньше минимального срока
	ErrWindowTooSoon = errors.New("reschedule_booking usecase: slot starts too soon")

	// ErrWindowTooFar возвращается, когда новое время за пределами горизонта бронирования
	ErrWindowTooFar = errors.New("reschedule_booking usecase: slot is beyond booking horizon")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("reschedule_booking usecase: internal error")
)
