package request_hold

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("request_hold usecase: validation error")

	// ErrClassNotFound возвращается, когда занятие не найдено
	ErrClassNotFound = errors.New("request_hold usecase: class not found")

	// ErrAvailabilityNotFound возвращается, когда у преподавателя нет расписания
	ErrAvailabilityNotFound = errors.New("request_hold usecase: availability not found")

	// ErrSlotNotAvailable возвращается, когда запрошенное время не входит в расписание
	ErrSlotNotAvailable = errors.New("request_hold usecase: slot not available")

	// ErrSlotFull возвращается, когда индивидуальный слот уже занят
	ErrSlotFull = errors.New("request_hold usecase: slot is full")

	// ErrCapacityExceeded возвращается, когда в групповом слоте не хватает мест
	// под запрошенный размер группы
	ErrCapacityExceeded = errors.New("request_hold usecase: slot capacity exceeded")

	// ErrInvalidDuration возвращается, когда запрошенный интервал не совпадает
	// с границами слота
	ErrInvalidDuration = errors.New("request_hold usecase: invalid slot duration")

	// ErrWindowTooSoon возвращается, когда до начала занятия меньше минимального срока
	ErrWindowTooSoon = errors.New("request_hold usecase: slot starts too soon")

	// ErrWindowTooFar возвращается, когда занятие за пределами горизонта бронирования
	ErrWindowTooFar = errors.New("request_hold usecase: slot is beyond booking horizon")

	// ErrInvalidGroupSize возвращается при недопустимом размере группы для занятия
	ErrInvalidGroupSize = errors.New("request_hold usecase: invalid group size")

	// ErrPaymentFailed возвращается, когда блокировка средств не удалась
	ErrPaymentFailed = errors.New("request_hold usecase: payment hold failed")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("request_hold usecase: internal error")
)
