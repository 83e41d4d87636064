package availability

import (
	"fmt"
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
)

func (s *Service) validate(av *domain.Availability) error {
	if av == nil {
		return fmt.Errorf("%w: availability is required", ErrValidation)
	}
	if av.InstructorID <= 0 {
		return fmt.Errorf("%w: instructor_id must be positive", ErrValidation)
	}
	if av.SlotDurationMinutes < domain.MinSlotDurationMinutes || av.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot_duration_minutes must be between %d and %d",
			ErrValidation, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}
	if av.LeadTimeHours < 0 || av.LeadTimeHours > domain.MaxLeadTimeHours {
		return fmt.Errorf("%w: lead_time_hours must be between 0 and %d", ErrValidation, domain.MaxLeadTimeHours)
	}
	if av.HorizonDays < 0 || av.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: horizon_days must be between 0 and %d", ErrValidation, domain.MaxHorizonDays)
	}
	if av.Timezone == "" {
		return fmt.Errorf("%w: timezone is required", ErrValidation)
	}
	if _, err := time.LoadLocation(av.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrValidation, av.Timezone)
	}

	for weekday, ranges := range av.WeeklyPattern {
		if weekday < time.Sunday || weekday > time.Saturday {
			return fmt.Errorf("%w: invalid weekday %d", ErrValidation, weekday)
		}
		if err := s.validateRanges(ranges); err != nil {
			return fmt.Errorf("%w (weekday %s)", err, weekday)
		}
	}

	for date, ranges := range av.DateOverrides {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			return fmt.Errorf("%w: invalid override date %q", ErrValidation, date)
		}
		// Пустой override допустим - дата закрыта целиком
		if err := s.validateRanges(ranges); err != nil {
			return fmt.Errorf("%w (override %s)", err, date)
		}
	}

	return nil
}

// validateRanges проверяет интервалы одного дня: корректные HH:MM,
// начало раньше конца, отсортированы и не пересекаются
func (s *Service) validateRanges(ranges []domain.TimeRange) error {
	for i, r := range ranges {
		if err := r.Start.Validate(); err != nil {
			return fmt.Errorf("%w: invalid interval start %q", ErrValidation, r.Start)
		}
		if err := r.End.Validate(); err != nil {
			return fmt.Errorf("%w: invalid interval end %q", ErrValidation, r.End)
		}
		if !r.Start.IsBefore(r.End) {
			return fmt.Errorf("%w: interval start %q must be before end %q", ErrValidation, r.Start, r.End)
		}
		if i > 0 && ranges[i-1].End.IsAfter(r.Start) {
			return fmt.Errorf("%w: intervals must be ordered and non-overlapping", ErrValidation)
		}
	}
	return nil
}
