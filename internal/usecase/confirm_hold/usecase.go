package confirm_hold

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	bookingRepo "github.com/tutorhub/lesson-booking-service/internal/infra/storage/booking"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/calendar"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/notifications"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/payments"
)

// Таймаут best-effort отправок после подтверждения
const notifyTimeout = 5 * time.Second

// UseCase - подтверждение холда: списание средств и перевод бронирования
// в confirmed. Подтверждённое бронирование теряет expiry и становится
// недосягаемым для sweeper'а.
type UseCase struct {
	bookingRepo         BookingRepository
	classRepo           ClassRepository
	paymentsClient      PaymentsClient
	notificationsClient NotificationsClient
	calendarClient      CalendarClient
	txManager           TxManager
	timeProvider        TimeProvider
	logger              Logger
}

func New(
	bookingRepo BookingRepository,
	classRepo ClassRepository,
	paymentsClient PaymentsClient,
	notificationsClient NotificationsClient,
	calendarClient CalendarClient,
	txManager TxManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:         bookingRepo,
		classRepo:           classRepo,
		paymentsClient:      paymentsClient,
		notificationsClient: notificationsClient,
		calendarClient:      calendarClient,
		txManager:           txManager,
		timeProvider:        timeProvider,
		logger:              logger,
	}
}

// Handle подтверждает pending-холд
func (u *UseCase) Handle(ctx context.Context, in ConfirmHoldIn) (*domain.Booking, error) {
	if in.BookingID <= 0 {
		return nil, fmt.Errorf("%w: booking_id must be positive", ErrValidation)
	}
	if in.StudentID <= 0 {
		return nil, fmt.Errorf("%w: student_id must be positive", ErrValidation)
	}

	now := u.timeProvider.Now().UTC()

	booking, err := u.bookingRepo.GetByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: booking_id=%d", ErrBookingNotFound, in.BookingID)
		}
		return nil, fmt.Errorf("%w: Handle - get booking: %v", ErrInternal, err)
	}
	if err := u.checkConfirmable(booking, in.StudentID, now); err != nil {
		return nil, err
	}
	if booking.PaymentRef == nil {
		return nil, fmt.Errorf("%w: booking_id=%d has no payment ref", ErrInternal, in.BookingID)
	}
	paymentRef := *booking.PaymentRef

	// Сначала списание, потом статус: confirmed-бронирование без оплаты
	// недопустимо, обратное (оплата без confirmed) разрешается возвратом
	if err := u.paymentsClient.ConfirmCharge(ctx, paymentRef); err != nil {
		if errors.Is(err, payments.ErrChargeDeclined) {
			return nil, fmt.Errorf("%w: charge declined", ErrPaymentFailed)
		}
		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	err = u.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// Перечитывание с FOR UPDATE: холд мог истечь или быть снят,
		// пока шло обращение к процессору
		fresh, err := u.bookingRepo.GetByID(ctx, in.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return fmt.Errorf("%w: booking_id=%d", ErrBookingNotFound, in.BookingID)
			}
			return fmt.Errorf("%w: Handle - reread booking: %v", ErrInternal, err)
		}
		if err := u.checkConfirmable(fresh, in.StudentID, u.timeProvider.Now().UTC()); err != nil {
			return err
		}
		if err := u.bookingRepo.Confirm(ctx, in.BookingID, paymentRef); err != nil {
			return fmt.Errorf("%w: Handle - confirm booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		// Деньги списаны, но статус не переключён - возвращаем списание
		u.logger.Warn("[confirm_hold] confirm failed after charge, refunding: booking_id=%d: %v", in.BookingID, err)
		u.refundBestEffort(ctx, booking, paymentRef)
		return nil, err
	}

	booking.Status = domain.StatusConfirmed
	booking.ExpiresAt = nil

	u.logger.Info("[confirm_hold] booking confirmed: booking_id=%d payment_ref=%s", booking.ID, paymentRef)

	u.notifyBestEffort(booking)
	u.publishCalendarBestEffort(booking)

	return booking, nil
}

func (u *UseCase) checkConfirmable(booking *domain.Booking, studentID int64, now time.Time) error {
	if booking.StudentID != studentID {
		return fmt.Errorf("%w: booking_id=%d", ErrAccessDenied, booking.ID)
	}
	switch booking.Status {
	case domain.StatusConfirmed:
		return fmt.Errorf("%w: booking_id=%d", ErrAlreadyConfirmed, booking.ID)
	case domain.StatusPending:
		if booking.IsExpiredHold(now) {
			return fmt.Errorf("%w: booking_id=%d expired at %s", ErrHoldExpired, booking.ID, booking.ExpiresAt.Format(time.RFC3339))
		}
		return nil
	default:
		return fmt.Errorf("%w: booking_id=%d status=%s", ErrInvalidStatus, booking.ID, booking.Status)
	}
}

func (u *UseCase) refundBestEffort(ctx context.Context, booking *domain.Booking, paymentRef string) {
	class, err := u.classRepo.GetByID(ctx, booking.ClassID)
	if err != nil {
		u.logger.Error("[confirm_hold] refund skipped, class lookup failed: booking_id=%d: %v", booking.ID, err)
		return
	}
	if err := u.paymentsClient.Refund(ctx, paymentRef, class.AmountFor(booking.GroupSize)); err != nil {
		u.logger.Error("[confirm_hold] refund failed: booking_id=%d payment_ref=%s: %v", booking.ID, paymentRef, err)
	}
}

func (u *UseCase) notifyBestEffort(booking *domain.Booking) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		err := u.notificationsClient.Send(ctx, notifications.Event{
			Type:         notifications.EventBookingConfirmed,
			BookingID:    booking.ID,
			StudentID:    booking.StudentID,
			InstructorID: booking.InstructorID,
			StartAt:      booking.StartAt,
		})
		if err != nil {
			u.logger.Warn("[confirm_hold] notification failed: booking_id=%d: %v", booking.ID, err)
		}
	}()
}

func (u *UseCase) publishCalendarBestEffort(booking *domain.Booking) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		err := u.calendarClient.CreateEvent(ctx, calendar.Event{
			BookingID:    booking.ID,
			InstructorID: booking.InstructorID,
			Title:        fmt.Sprintf("Lesson with student %d", booking.StudentID),
			StartAt:      booking.StartAt,
			EndAt:        booking.EndAt,
		})
		if err != nil {
			u.logger.Warn("[confirm_hold] calendar publish failed: booking_id=%d: %v", booking.ID, err)
		}
	}()
}
