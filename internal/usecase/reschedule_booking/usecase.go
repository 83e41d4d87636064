package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	availabilityRepo "github.com/tutorhub/lesson-booking-service/internal/infra/storage/availability"
	bookingRepo "github.com/tutorhub/lesson-booking-service/internal/infra/storage/booking"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/calendar"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/notifications"
	"github.com/tutorhub/lesson-booking-service/internal/schedule"
	"github.com/tutorhub/lesson-booking-service/pkg/ptr"
)

// Таймаут best-effort отправок после переноса
const notifyTimeout = 5 * time.Second

// UseCase - перенос подтверждённого бронирования на другой слот.
// Новый слот проходит тот же допуск, что и при создании холда, с одним
// отличием: переносимое бронирование не учитывается в занятых местах.
// Идентичность сохраняется - id и платёж не меняются, меняются только времена.
type UseCase struct {
	bookingRepo         BookingRepository
	availabilityRepo    AvailabilityRepository
	classRepo           ClassRepository
	notificationsClient NotificationsClient
	calendarClient      CalendarClient
	txManager           TxManager
	timeProvider        TimeProvider
	cutoff              time.Duration
	logger              Logger
}

func New(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	classRepo ClassRepository,
	notificationsClient NotificationsClient,
	calendarClient CalendarClient,
	txManager TxManager,
	timeProvider TimeProvider,
	cutoff time.Duration,
	logger Logger,
) *UseCase {
	if cutoff <= 0 {
		cutoff = time.Duration(domain.DefaultCutoffHours) * time.Hour
	}
	return &UseCase{
		bookingRepo:         bookingRepo,
		availabilityRepo:    availabilityRepo,
		classRepo:           classRepo,
		notificationsClient: notificationsClient,
		calendarClient:      calendarClient,
		txManager:           txManager,
		timeProvider:        timeProvider,
		cutoff:              cutoff,
		logger:              logger,
	}
}

// Handle переносит подтверждённое бронирование на новый слот
func (u *UseCase) Handle(ctx context.Context, in RescheduleBookingIn) (*domain.Booking, error) {
	if err := u.validate(in); err != nil {
		return nil, err
	}

	newStartAt := in.NewStartAt.UTC()
	now := u.timeProvider.Now().UTC()

	var updated *domain.Booking

	err := u.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booking, err := u.bookingRepo.GetByID(ctx, in.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return fmt.Errorf("%w: booking_id=%d", ErrBookingNotFound, in.BookingID)
			}
			return fmt.Errorf("%w: Handle - get booking: %v", ErrInternal, err)
		}
		if booking.StudentID != in.StudentID {
			return fmt.Errorf("%w: booking_id=%d", ErrAccessDenied, booking.ID)
		}
		if !booking.CanBeRescheduled() {
			return fmt.Errorf("%w: booking_id=%d status=%s", ErrInvalidStatus, booking.ID, booking.Status)
		}

		// Крайний срок отсчитывается от текущего времени занятия;
		// граница включена - в сам момент крайнего срока перенос уже закрыт
		if !now.Before(booking.StartAt.Add(-u.cutoff)) {
			return fmt.Errorf("%w: booking_id=%d starts at %s", ErrWithinCutoffWindow, booking.ID, booking.StartAt.Format(time.RFC3339))
		}

		class, err := u.classRepo.GetByID(ctx, booking.ClassID)
		if err != nil {
			return fmt.Errorf("%w: Handle - get class: %v", ErrInternal, err)
		}

		av, err := u.availabilityRepo.GetByInstructorID(ctx, booking.InstructorID)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
				return fmt.Errorf("%w: instructor_id=%d has no availability", ErrSlotNotAvailable, booking.InstructorID)
			}
			return fmt.Errorf("%w: Handle - get availability: %v", ErrInternal, err)
		}

		loc, err := av.Location()
		if err != nil {
			return fmt.Errorf("%w: Handle - load timezone %q: %v", ErrInternal, av.Timezone, err)
		}

		switch schedule.CheckWindow(newStartAt, now, av.LeadTimeHours, av.HorizonDays) {
		case schedule.WindowTooSoon:
			return fmt.Errorf("%w: lead time is %d hours", ErrWindowTooSoon, av.LeadTimeHours)
		case schedule.WindowTooFar:
			return fmt.Errorf("%w: horizon is %d days", ErrWindowTooFar, av.HorizonDays)
		}

		localDate := newStartAt.In(loc)
		slot, err := schedule.FindSlot(av, localDate, loc, newStartAt)
		if err != nil {
			return fmt.Errorf("%w: Handle - materialize slots: %v", ErrInternal, err)
		}
		if slot == nil {
			return fmt.Errorf("%w: new_start_at=%s", ErrSlotNotAvailable, newStartAt.Format(time.RFC3339))
		}

		// Явно запрошенный интервал сверяется с сеткой слотов, как при создании холда
		if endAt := in.NewEndAt.UTC(); !in.NewEndAt.IsZero() && !endAt.Equal(slot.EndAt) {
			return fmt.Errorf("%w: requested new_end_at=%s, slot ends at %s",
				ErrInvalidDuration, endAt.Format(time.RFC3339), slot.EndAt.Format(time.RFC3339))
		}

		existing, err := u.bookingRepo.GetByInstructorWithFilter(ctx, domain.InstructorBookingsFilter{
			InstructorID: booking.InstructorID,
			FromAt:       ptr.Ptr(slot.StartAt),
			ToAt:         ptr.Ptr(slot.EndAt),
		})
		if err != nil {
			return fmt.Errorf("%w: Handle - get bookings: %v", ErrInternal, err)
		}

		// Переносимое бронирование не конкурирует само с собой:
		// перенос внутри того же слота всегда проходит
		others := make([]*domain.Booking, 0, len(existing))
		for _, b := range existing {
			if b.ID == booking.ID {
				continue
			}
			others = append(others, b)
		}

		remaining := schedule.RemainingSeats(slot.StartAt, class, others, now)
		if remaining < booking.GroupSize {
			if class.IsGroup() {
				return fmt.Errorf("%w: remaining=%d requested=%d", ErrCapacityExceeded, remaining, booking.GroupSize)
			}
			return fmt.Errorf("%w: remaining=%d requested=%d", ErrSlotFull, remaining, booking.GroupSize)
		}

		if err := u.bookingRepo.UpdateTimes(ctx, booking.ID, slot.StartAt, slot.EndAt); err != nil {
			return fmt.Errorf("%w: Handle - update times: %v", ErrInternal, err)
		}

		updated = booking
		updated.StartAt = slot.StartAt
		updated.EndAt = slot.EndAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("[reschedule_booking] booking moved: booking_id=%d new_start_at=%s",
		updated.ID, updated.StartAt.Format(time.RFC3339))

	u.afterRescheduleBestEffort(updated)

	return updated, nil
}

func (u *UseCase) validate(in RescheduleBookingIn) error {
	if in.BookingID <= 0 {
		return fmt.Errorf("%w: booking_id must be positive", ErrValidation)
	}
	if in.StudentID <= 0 {
		return fmt.Errorf("%w: student_id must be positive", ErrValidation)
	}
	if in.NewStartAt.IsZero() {
		return fmt.Errorf("%w: new_start_at is required", ErrValidation)
	}
	if !in.NewEndAt.IsZero() && !in.NewEndAt.After(in.NewStartAt) {
		return fmt.Errorf("%w: new_end_at must be after new_start_at", ErrValidation)
	}
	return nil
}

func (u *UseCase) afterRescheduleBestEffort(booking *domain.Booking) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		err := u.notificationsClient.Send(ctx, notifications.Event{
			Type:         notifications.EventBookingRescheduled,
			BookingID:    booking.ID,
			StudentID:    booking.StudentID,
			InstructorID: booking.InstructorID,
			StartAt:      booking.StartAt,
		})
		if err != nil {
			u.logger.Warn("[reschedule_booking] notification failed: booking_id=%d: %v", booking.ID, err)
		}

		if err := u.calendarClient.DeleteEvent(ctx, booking.ID); err != nil {
			u.logger.Warn("[reschedule_booking] calendar cleanup failed: booking_id=%d: %v", booking.ID, err)
		}
		err = u.calendarClient.CreateEvent(ctx, calendar.Event{
			BookingID:    booking.ID,
			InstructorID: booking.InstructorID,
			Title:        fmt.Sprintf("Lesson with student %d", booking.StudentID),
			StartAt:      booking.StartAt,
			EndAt:        booking.EndAt,
		})
		if err != nil {
			u.logger.Warn("[reschedule_booking] calendar publish failed: booking_id=%d: %v", booking.ID, err)
		}
	}()
}
