package schedule

import (
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
)

// OccupiedSeats подсчитывает занятые места слота, начинающегося в startAt (UTC).
// Учитываются только бронирования, занимающие вместимость на момент now:
// confirmed и pending с неистёкшим expiry. Истёкшие холды исключаются ещё
// до их физического удаления sweeper'ом.
//
// Для индивидуальных занятий место занимает любое активное бронирование
// инструктора с тем же startAt. Для групповых - суммируется groupSize
// бронирований того же класса с тем же startAt.
func OccupiedSeats(startAt time.Time, class *domain.Class, bookings []*domain.Booking, now time.Time) int {
	occupied := 0
	for _, b := range bookings {
		if !b.OccupiesCapacity(now) {
			continue
		}
		if !b.StartAt.Equal(startAt) {
			continue
		}
		if class.IsGroup() {
			if b.ClassID == class.ID {
				occupied += b.GroupSize
			}
			continue
		}
		occupied++
	}
	return occupied
}

// RemainingSeats возвращает оставшуюся вместимость слота.
// Насыщается в нуле, отрицательной не бывает.
func RemainingSeats(startAt time.Time, class *domain.Class, bookings []*domain.Booking, now time.Time) int {
	remaining := class.SlotCapacity() - OccupiedSeats(startAt, class, bookings, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}
