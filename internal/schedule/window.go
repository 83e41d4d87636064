package schedule

import (
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
)

// WindowStatus результат проверки окна бронирования
type WindowStatus int

const (
	// WindowOK слот внутри окна бронирования
	WindowOK WindowStatus = iota
	// WindowTooSoon слот начинается раньше, чем now + leadTime
	WindowTooSoon
	// WindowTooFar слот за горизонтом бронирования
	WindowTooFar
)

// CheckWindow проверяет, что момент startAt попадает в окно бронирования:
// не раньше now + leadTime и не дальше горизонта (в целых днях от now)
func CheckWindow(startAt, now time.Time, leadTimeHours, horizonDays int) WindowStatus {
	earliest := now.Add(time.Duration(leadTimeHours) * time.Hour)
	if startAt.Before(earliest) {
		return WindowTooSoon
	}
	if horizonDays > 0 {
		latest := now.AddDate(0, 0, horizonDays)
		if startAt.After(latest) {
			return WindowTooFar
		}
	}
	return WindowOK
}

// SlotBoundaries материализует под-слоты даты в UTC-моменты.
// Возвращает пары локального времени начала и UTC-интервала.
type SlotInstant struct {
	Range   domain.TimeRange
	StartAt time.Time
	EndAt   time.Time
}

// MaterializeDaySlots составляет полный список под-слотов даты:
// резолвер -> партиционер -> привязка к UTC через таймзону инструктора.
// date - календарная дата (компоненты года/месяца/дня); loc - таймзона инструктора.
func MaterializeDaySlots(av *domain.Availability, date time.Time, loc *time.Location) ([]SlotInstant, error) {
	intervals := ResolveDayIntervals(av, date)

	ranges, err := PartitionIntervals(intervals, av.SlotDurationMinutes)
	if err != nil {
		return nil, err
	}

	slots := make([]SlotInstant, 0, len(ranges))
	for _, r := range ranges {
		startAt, err := r.Start.OnDate(date, loc)
		if err != nil {
			return nil, err
		}
		slots = append(slots, SlotInstant{
			Range:   r,
			StartAt: startAt,
			EndAt:   startAt.Add(time.Duration(av.SlotDurationMinutes) * time.Minute),
		})
	}
	return slots, nil
}

// FindSlot ищет под-слот даты, начинающийся ровно в startAt (UTC).
// Используется контроллером допуска: клиентское представление слотов носит
// рекомендательный характер, запрошенный интервал перепроверяется по availability.
func FindSlot(av *domain.Availability, date time.Time, loc *time.Location, startAt time.Time) (*SlotInstant, error) {
	slots, err := MaterializeDaySlots(av, date, loc)
	if err != nil {
		return nil, err
	}
	for i := range slots {
		if slots[i].StartAt.Equal(startAt) {
			return &slots[i], nil
		}
	}
	return nil, nil
}
