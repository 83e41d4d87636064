package get_available_slots

import (
	"time"

	slotsUC "github.com/tutorhub/lesson-booking-service/internal/usecase/get_available_slots"
)

// Сообщения об ошибках
const (
	msgInvalidInstructorID = "некорректный идентификатор преподавателя"
	msgInvalidClassID      = "некорректный идентификатор занятия"
	msgInvalidDates        = "некорректные параметры from/to (ожидается YYYY-MM-DD)"
	msgClassNotFound       = "занятие не найдено"
	msgNoAvailability      = "у преподавателя нет расписания"
	msgInternalError       = "внутренняя ошибка сервиса"
)

// SlotResponse - доступный слот в ответе
type SlotResponse struct {
	StartAt        time.Time `json:"start_at"`
	EndAt          time.Time `json:"end_at"`
	StartTime      string    `json:"start_time"`
	RemainingSeats int       `json:"remaining_seats"`
	TotalSeats     int       `json:"total_seats"`
}

// DayResponse - слоты одной даты
type DayResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// GetAvailableSlotsResponse - ответ выдачи доступных слотов
type GetAvailableSlotsResponse struct {
	Timezone            string        `json:"timezone"`
	SlotDurationMinutes int           `json:"slot_duration_minutes"`
	Days                []DayResponse `json:"days"`
}

func newResponse(out *slotsUC.GetAvailableSlotsOut) GetAvailableSlotsResponse {
	resp := GetAvailableSlotsResponse{
		Timezone:            out.Timezone,
		SlotDurationMinutes: out.SlotDurationMinutes,
		Days:                make([]DayResponse, 0, len(out.Days)),
	}
	for _, day := range out.Days {
		d := DayResponse{Date: day.Date, Slots: make([]SlotResponse, 0, len(day.Slots))}
		for _, slot := range day.Slots {
			d.Slots = append(d.Slots, SlotResponse{
				StartAt:        slot.StartAt,
				EndAt:          slot.EndAt,
				StartTime:      slot.StartTime,
				RemainingSeats: slot.RemainingSeats,
				TotalSeats:     slot.TotalSeats,
			})
		}
		resp.Days = append(resp.Days, d)
	}
	return resp
}
