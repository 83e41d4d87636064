package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	availabilityRepo "github.com/tutorhub/lesson-booking-service/internal/infra/storage/availability"
	classRepo "github.com/tutorhub/lesson-booking-service/internal/infra/storage/class"
	"github.com/tutorhub/lesson-booking-service/internal/schedule"
	"github.com/tutorhub/lesson-booking-service/pkg/ptr"
)

// UseCase - выдача доступных слотов: резолвер расписания, нарезка интервалов
// и подсчёт остатков вместимости с учётом активных холдов.
// Выдача носит рекомендательный характер - допуск перепроверяет слот заново.
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	classRepo        ClassRepository
	timeProvider     TimeProvider
	logger           Logger
}

func New(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	classRepo ClassRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		classRepo:        classRepo,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Handle возвращает доступные слоты преподавателя по датам
func (u *UseCase) Handle(ctx context.Context, in GetAvailableSlotsIn) (*GetAvailableSlotsOut, error) {
	if err := u.validate(in); err != nil {
		return nil, err
	}

	now := u.timeProvider.Now().UTC()

	class, err := u.classRepo.GetByID(ctx, in.ClassID)
	if err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			return nil, fmt.Errorf("%w: class_id=%d", ErrClassNotFound, in.ClassID)
		}
		return nil, fmt.Errorf("%w: Handle - get class: %v", ErrInternal, err)
	}
	if class.InstructorID != in.InstructorID {
		return nil, fmt.Errorf("%w: class_id=%d does not belong to instructor_id=%d", ErrClassNotFound, in.ClassID, in.InstructorID)
	}

	av, err := u.availabilityRepo.GetByInstructorID(ctx, in.InstructorID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			return nil, fmt.Errorf("%w: instructor_id=%d", ErrAvailabilityNotFound, in.InstructorID)
		}
		return nil, fmt.Errorf("%w: Handle - get availability: %v", ErrInternal, err)
	}

	loc, err := av.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: Handle - load timezone %q: %v", ErrInternal, av.Timezone, err)
	}

	// Один запрос на весь диапазон: активные бронирования преподавателя
	// c расчётом остатков в памяти по каждому под-слоту
	spanFrom := time.Date(in.FromDate.Year(), in.FromDate.Month(), in.FromDate.Day(), 0, 0, 0, 0, loc).UTC()
	spanTo := time.Date(in.ToDate.Year(), in.ToDate.Month(), in.ToDate.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, 2).UTC()

	bookings, err := u.bookingRepo.GetByInstructorWithFilter(ctx, domain.InstructorBookingsFilter{
		InstructorID: in.InstructorID,
		FromAt:       ptr.Ptr(spanFrom),
		ToAt:         ptr.Ptr(spanTo),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Handle - get bookings: %v", ErrInternal, err)
	}

	out := &GetAvailableSlotsOut{
		Timezone:            av.Timezone,
		SlotDurationMinutes: av.SlotDurationMinutes,
		Days:                make([]DaySlots, 0),
	}

	totalSeats := class.SlotCapacity()

	for date := in.FromDate; !date.After(in.ToDate); date = date.AddDate(0, 0, 1) {
		slots, err := schedule.MaterializeDaySlots(av, date, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: Handle - materialize slots for %s: %v", ErrInternal, date.Format(domain.DateFormat), err)
		}

		day := DaySlots{Date: date.Format(domain.DateFormat), Slots: make([]SlotOut, 0, len(slots))}
		for _, slot := range slots {
			if schedule.CheckWindow(slot.StartAt, now, av.LeadTimeHours, av.HorizonDays) != schedule.WindowOK {
				continue
			}
			remaining := schedule.RemainingSeats(slot.StartAt, class, bookings, now)
			if remaining == 0 {
				continue
			}
			day.Slots = append(day.Slots, SlotOut{
				StartAt:        slot.StartAt,
				EndAt:          slot.EndAt,
				StartTime:      string(slot.Range.Start),
				RemainingSeats: remaining,
				TotalSeats:     totalSeats,
			})
		}
		if len(day.Slots) > 0 {
			out.Days = append(out.Days, day)
		}
	}

	return out, nil
}

func (u *UseCase) validate(in GetAvailableSlotsIn) error {
	if in.InstructorID <= 0 {
		return fmt.Errorf("%w: instructor_id must be positive", ErrValidation)
	}
	if in.ClassID <= 0 {
		return fmt.Errorf("%w: class_id must be positive", ErrValidation)
	}
	if in.FromDate.IsZero() || in.ToDate.IsZero() {
		return fmt.Errorf("%w: from_date and to_date are required", ErrValidation)
	}
	if in.ToDate.Before(in.FromDate) {
		return fmt.Errorf("%w: to_date must not be before from_date", ErrValidation)
	}
	if in.ToDate.Sub(in.FromDate) > MaxRangeDays*24*time.Hour {
		return fmt.Errorf("%w: date range must not exceed %d days", ErrValidation, MaxRangeDays)
	}
	return nil
}
