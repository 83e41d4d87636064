package reschedule_booking

import "time"

// RescheduleBookingIn - входные данные для переноса бронирования.
// NewEndAt необязателен: если задан, запрошенный интервал обязан совпасть
// с границами нового слота.
type RescheduleBookingIn struct {
	BookingID  int64
	StudentID  int64
	NewStartAt time.Time
	NewEndAt   time.Time
}
