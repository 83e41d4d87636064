package request_hold

import "time"

// Сообщения об ошибках
const (
	msgInvalidBody        = "некорректное тело запроса"
	msgUnauthorized       = "пользователь не аутентифицирован"
	msgClassNotFound      = "занятие не найдено"
	msgNoAvailability     = "у преподавателя нет расписания"
	msgSlotNotAvailable   = "запрошенное время недоступно"
	msgSlotFull           = "в слоте не осталось мест"
	msgCapacityExceeded   = "в слоте не хватает мест для запрошенной группы"
	msgInvalidDuration    = "запрошенный интервал не совпадает с границами слота"
	msgWindowTooSoon      = "до начала занятия осталось слишком мало времени"
	msgWindowTooFar       = "занятие слишком далеко в будущем"
	msgInvalidGroupSize   = "недопустимый размер группы"
	msgPaymentFailed      = "не удалось заблокировать средства"
	msgInternalError      = "внутренняя ошибка сервиса"
)

// RequestHoldRequest - запрос на создание холда.
// end_at необязателен; если задан, интервал сверяется с сеткой слотов.
type RequestHoldRequest struct {
	InstructorID int64     `json:"instructor_id"`
	ClassID      int64     `json:"class_id"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at,omitempty"`
	GroupSize    int       `json:"group_size"`
	OccupantRefs []string  `json:"occupant_refs,omitempty"`
}
