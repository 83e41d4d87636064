package model

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	"github.com/tutorhub/lesson-booking-service/pkg/types"
)

// TimeRangePayload - интервал локального времени в API
type TimeRangePayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AvailabilityPayload - представление расписания в API.
// Ключи weekly_pattern - дни недели "0".."6" (0 - воскресенье),
// ключи date_overrides - даты YYYY-MM-DD.
type AvailabilityPayload struct {
	InstructorID        int64                         `json:"instructor_id"`
	WeeklyPattern       map[string][]TimeRangePayload `json:"weekly_pattern"`
	DateOverrides       map[string][]TimeRangePayload `json:"date_overrides,omitempty"`
	SlotDurationMinutes int                           `json:"slot_duration_minutes"`
	LeadTimeHours       int                           `json:"lead_time_hours"`
	HorizonDays         int                           `json:"horizon_days"`
	Timezone            string                        `json:"timezone"`
}

// NewAvailabilityPayload собирает ответ из доменного расписания
func NewAvailabilityPayload(av *domain.Availability) AvailabilityPayload {
	payload := AvailabilityPayload{
		InstructorID:        av.InstructorID,
		WeeklyPattern:       make(map[string][]TimeRangePayload, len(av.WeeklyPattern)),
		SlotDurationMinutes: av.SlotDurationMinutes,
		LeadTimeHours:       av.LeadTimeHours,
		HorizonDays:         av.HorizonDays,
		Timezone:            av.Timezone,
	}
	for weekday, ranges := range av.WeeklyPattern {
		payload.WeeklyPattern[strconv.Itoa(int(weekday))] = encodeRanges(ranges)
	}
	if len(av.DateOverrides) > 0 {
		payload.DateOverrides = make(map[string][]TimeRangePayload, len(av.DateOverrides))
		for date, ranges := range av.DateOverrides {
			payload.DateOverrides[date] = encodeRanges(ranges)
		}
	}
	return payload
}

// ToDomain преобразует payload в доменное расписание
func (p AvailabilityPayload) ToDomain(instructorID int64) (*domain.Availability, error) {
	av := &domain.Availability{
		InstructorID:        instructorID,
		WeeklyPattern:       make(map[time.Weekday][]domain.TimeRange, len(p.WeeklyPattern)),
		DateOverrides:       make(map[string][]domain.TimeRange, len(p.DateOverrides)),
		SlotDurationMinutes: p.SlotDurationMinutes,
		LeadTimeHours:       p.LeadTimeHours,
		HorizonDays:         p.HorizonDays,
		Timezone:            p.Timezone,
	}
	for key, ranges := range p.WeeklyPattern {
		day, err := strconv.Atoi(key)
		if err != nil || day < 0 || day > 6 {
			return nil, fmt.Errorf("invalid weekday key %q", key)
		}
		av.WeeklyPattern[time.Weekday(day)] = decodeRanges(ranges)
	}
	for date, ranges := range p.DateOverrides {
		av.DateOverrides[date] = decodeRanges(ranges)
	}
	return av, nil
}

func encodeRanges(ranges []domain.TimeRange) []TimeRangePayload {
	result := make([]TimeRangePayload, 0, len(ranges))
	for _, r := range ranges {
		result = append(result, TimeRangePayload{Start: r.Start.String(), End: r.End.String()})
	}
	return result
}

func decodeRanges(ranges []TimeRangePayload) []domain.TimeRange {
	result := make([]domain.TimeRange, 0, len(ranges))
	for _, r := range ranges {
		result = append(result, domain.TimeRange{
			Start: types.TimeString(r.Start),
			End:   types.TimeString(r.End),
		})
	}
	return result
}
