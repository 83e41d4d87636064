package get_available_slots

import "time"

// Максимальная длина запрашиваемого диапазона дат
const MaxRangeDays = 62

// GetAvailableSlotsIn - входные данные для выдачи доступных слотов.
// FromDate/ToDate - календарные даты в таймзоне преподавателя (включительно).
type GetAvailableSlotsIn struct {
	InstructorID int64
	ClassID      int64
	FromDate     time.Time
	ToDate       time.Time
}

// SlotOut - доступный под-слот в выдаче
type SlotOut struct {
	StartAt        time.Time
	EndAt          time.Time
	StartTime      string // локальное время HH:MM
	RemainingSeats int
	TotalSeats     int
}

// DaySlots - слоты одной календарной даты
type DaySlots struct {
	Date  string // YYYY-MM-DD в таймзоне преподавателя
	Slots []SlotOut
}

// GetAvailableSlotsOut - результат выдачи
type GetAvailableSlotsOut struct {
	Timezone            string
	SlotDurationMinutes int
	Days                []DaySlots
}
