package schedule

import (
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
)

// ResolveDayIntervals возвращает сырые интервалы доступности инструктора на дату.
// Если на дату есть override - возвращает его как есть, даже пустой
// (пустой override означает "закрыто" и полностью отменяет недельный паттерн).
// Иначе возвращает интервалы недельного паттерна для дня недели.
//
// Функция чистая: без побочных эффектов, детерминирована при одинаковых входах.
func ResolveDayIntervals(av *domain.Availability, date time.Time) []domain.TimeRange {
	if override, ok := av.OverrideFor(date); ok {
		return override
	}
	return av.WeeklyPattern[date.Weekday()]
}
