package request_hold

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	availabilityRepo "github.com/tutorhub/lesson-booking-service/internal/infra/storage/availability"
	classRepo "github.com/tutorhub/lesson-booking-service/internal/infra/storage/class"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/payments"
	"github.com/tutorhub/lesson-booking-service/internal/schedule"
	"github.com/tutorhub/lesson-booking-service/pkg/ptr"
)

// UseCase - запрос временного удержания слота.
// Допуск выполняется в сериализуемой транзакции с блокировкой строк: проверка
// вместимости и вставка pending-бронирования неразделимы, овербукинг исключён.
// Блокировка средств выполняется после фиксации транзакции; при отказе
// процессора бронирование компенсируется удалением.
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	classRepo        ClassRepository
	paymentsClient   PaymentsClient
	txManager        TxManager
	timeProvider     TimeProvider
	holdTTL          time.Duration
	logger           Logger
}

func New(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	classRepo ClassRepository,
	paymentsClient PaymentsClient,
	txManager TxManager,
	timeProvider TimeProvider,
	holdTTL time.Duration,
	logger Logger,
) *UseCase {
	if holdTTL <= 0 {
		holdTTL = time.Duration(domain.DefaultHoldTTLMinutes) * time.Minute
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		classRepo:        classRepo,
		paymentsClient:   paymentsClient,
		txManager:        txManager,
		timeProvider:     timeProvider,
		holdTTL:          holdTTL,
		logger:           logger,
	}
}

// Handle создаёт pending-бронирование (холд) на запрошенный слот
func (u *UseCase) Handle(ctx context.Context, in RequestHoldIn) (*domain.Booking, error) {
	if err := u.validate(in); err != nil {
		return nil, err
	}

	startAt := in.StartAt.UTC()
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
	if err := u.checkGroupSize(class, in.GroupSize); err != nil {
		return nil, err
	}

	var booking *domain.Booking

	err = u.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		av, err := u.availabilityRepo.GetByInstructorID(ctx, in.InstructorID)
		if err != nil {
			if errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
				return fmt.Errorf("%w: instructor_id=%d", ErrAvailabilityNotFound, in.InstructorID)
			}
			return fmt.Errorf("%w: Handle - get availability: %v", ErrInternal, err)
		}

		loc, err := av.Location()
		if err != nil {
			return fmt.Errorf("%w: Handle - load timezone %q: %v", ErrInternal, av.Timezone, err)
		}

		switch schedule.CheckWindow(startAt, now, av.LeadTimeHours, av.HorizonDays) {
		case schedule.WindowTooSoon:
			return fmt.Errorf("%w: lead time is %d hours", ErrWindowTooSoon, av.LeadTimeHours)
		case schedule.WindowTooFar:
			return fmt.Errorf("%w: horizon is %d days", ErrWindowTooFar, av.HorizonDays)
		}

		// Запрошенный момент перепроверяется по расписанию: клиент мог
		// прислать устаревший или произвольный start_at
		localDate := startAt.In(loc)
		slot, err := schedule.FindSlot(av, localDate, loc, startAt)
		if err != nil {
			return fmt.Errorf("%w: Handle - materialize slots: %v", ErrInternal, err)
		}
		if slot == nil {
			return fmt.Errorf("%w: start_at=%s", ErrSlotNotAvailable, startAt.Format(time.RFC3339))
		}

		// Явно запрошенный интервал обязан совпасть с сеткой слотов:
		// запрос 10:00-11:00 при 30-минутной сетке не урезается молча
		if endAt := in.EndAt.UTC(); !in.EndAt.IsZero() && !endAt.Equal(slot.EndAt) {
			return fmt.Errorf("%w: requested end_at=%s, slot ends at %s",
				ErrInvalidDuration, endAt.Format(time.RFC3339), slot.EndAt.Format(time.RFC3339))
		}

		// FOR UPDATE на пересекающихся бронированиях: конкурирующие допуски
		// на тот же слот сериализуются
		existing, err := u.bookingRepo.GetByInstructorWithFilter(ctx, domain.InstructorBookingsFilter{
			InstructorID: in.InstructorID,
			FromAt:       ptr.Ptr(slot.StartAt),
			ToAt:         ptr.Ptr(slot.EndAt),
		})
		if err != nil {
			return fmt.Errorf("%w: Handle - get bookings: %v", ErrInternal, err)
		}

		remaining := schedule.RemainingSeats(slot.StartAt, class, existing, now)
		if remaining < in.GroupSize {
			// Для группового занятия нехватка мест - отдельный исход:
			// клиент может повторить запрос с меньшей группой
			if class.IsGroup() {
				return fmt.Errorf("%w: remaining=%d requested=%d", ErrCapacityExceeded, remaining, in.GroupSize)
			}
			return fmt.Errorf("%w: remaining=%d requested=%d", ErrSlotFull, remaining, in.GroupSize)
		}

		occupantRefs := in.OccupantRefs
		if len(occupantRefs) == 0 {
			occupantRefs = []string{fmt.Sprintf("student:%d", in.StudentID)}
		}

		booking, err = u.bookingRepo.Create(ctx, &domain.Booking{
			InstructorID: in.InstructorID,
			ClassID:      in.ClassID,
			StudentID:    in.StudentID,
			StartAt:      slot.StartAt,
			EndAt:        slot.EndAt,
			Status:       domain.StatusPending,
			ExpiresAt:    ptr.Ptr(now.Add(u.holdTTL)),
			GroupSize:    in.GroupSize,
			OccupantRefs: occupantRefs,
		})
		if err != nil {
			return fmt.Errorf("%w: Handle - create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("[request_hold] hold created: booking_id=%d instructor_id=%d start_at=%s expires_at=%s",
		booking.ID, booking.InstructorID, booking.StartAt.Format(time.RFC3339), booking.ExpiresAt.Format(time.RFC3339))

	// Блокировка средств - вне транзакции: внешний вызов не должен держать
	// блокировки строк. При отказе холд компенсируется удалением.
	amount := class.AmountFor(in.GroupSize)
	description := fmt.Sprintf("Lesson hold: booking %d, %s", booking.ID, class.Title)

	paymentRef, err := u.paymentsClient.CreateHoldCharge(ctx, amount, description)
	if err != nil {
		u.logger.Warn("[request_hold] payment hold failed, compensating: booking_id=%d: %v", booking.ID, err)
		if delErr := u.bookingRepo.Delete(ctx, booking.ID); delErr != nil {
			// Осиротевший pending снимет sweeper по истечении TTL
			u.logger.Error("[request_hold] compensation failed: booking_id=%d: %v", booking.ID, delErr)
		}
		if errors.Is(err, payments.ErrChargeDeclined) {
			return nil, fmt.Errorf("%w: charge declined", ErrPaymentFailed)
		}
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	if err := u.bookingRepo.SetPaymentRef(ctx, booking.ID, paymentRef); err != nil {
		u.logger.Error("[request_hold] set payment ref failed: booking_id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: Handle - set payment ref: %v", ErrInternal, err)
	}
	booking.PaymentRef = ptr.Ptr(paymentRef)

	return booking, nil
}

func (u *UseCase) checkGroupSize(class *domain.Class, groupSize int) error {
	if class.IsGroup() {
		if groupSize > class.Capacity {
			return fmt.Errorf("%w: group_size=%d exceeds class capacity=%d", ErrInvalidGroupSize, groupSize, class.Capacity)
		}
		return nil
	}
	if groupSize != 1 {
		return fmt.Errorf("%w: individual class admits exactly one seat", ErrInvalidGroupSize)
	}
	return nil
}
