package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	bookingRepo "github.com/tutorhub/lesson-booking-service/internal/infra/storage/booking"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/notifications"
)

// Таймаут best-effort отправок после отмены
const notifyTimeout = 5 * time.Second

// UseCase - отмена бронирования.
// Порядок необратимых шагов: сначала возврат средств, затем отмена в БД.
// Если возврат не удался, бронирование остаётся нетронутым - слот занятым,
// деньги заблокированными; повторная попытка отмены безопасна.
type UseCase struct {
	bookingRepo         BookingRepository
	classRepo           ClassRepository
	paymentsClient      PaymentsClient
	notificationsClient NotificationsClient
	calendarClient      CalendarClient
	txManager           TxManager
	timeProvider        TimeProvider
	cutoff              time.Duration
	platformFeePercent  float64
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
	cutoff time.Duration,
	platformFeePercent float64,
	logger Logger,
) *UseCase {
	if cutoff <= 0 {
		cutoff = time.Duration(domain.DefaultCutoffHours) * time.Hour
	}
	if platformFeePercent < 0 || platformFeePercent >= 100 {
		platformFeePercent = domain.DefaultPlatformFeePercent
	}
	return &UseCase{
		bookingRepo:         bookingRepo,
		classRepo:           classRepo,
		paymentsClient:      paymentsClient,
		notificationsClient: notificationsClient,
		calendarClient:      calendarClient,
		txManager:           txManager,
		timeProvider:        timeProvider,
		cutoff:              cutoff,
		platformFeePercent:  platformFeePercent,
		logger:              logger,
	}
}

// Handle отменяет бронирование от имени студента, преподавателя или администратора
func (u *UseCase) Handle(ctx context.Context, in CancelBookingIn) error {
	if err := u.validate(in); err != nil {
		return err
	}

	now := u.timeProvider.Now().UTC()

	booking, err := u.bookingRepo.GetByID(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: booking_id=%d", ErrBookingNotFound, in.BookingID)
		}
		return fmt.Errorf("%w: Handle - get booking: %v", ErrInternal, err)
	}

	if err := u.checkAccess(booking, in); err != nil {
		return err
	}
	if !booking.CanBeCancelled() {
		return fmt.Errorf("%w: booking_id=%d status=%s", ErrInvalidStatus, booking.ID, booking.Status)
	}

	// Студент связан крайним сроком; преподаватель и администратор - нет,
	// но с их отмены удерживается комиссия площадки
	feePercent := 0.0
	if in.ActorRole == RoleStudent {
		// Граница включена - в сам момент крайнего срока отмена уже закрыта
		if !now.Before(booking.StartAt.Add(-u.cutoff)) {
			return fmt.Errorf("%w: booking_id=%d starts at %s", ErrWithinCutoffWindow, booking.ID, booking.StartAt.Format(time.RFC3339))
		}
	} else {
		feePercent = u.platformFeePercent
	}

	if err := u.refund(ctx, booking, feePercent); err != nil {
		return err
	}

	err = u.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		fresh, err := u.bookingRepo.GetByID(ctx, in.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return fmt.Errorf("%w: booking_id=%d", ErrBookingNotFound, in.BookingID)
			}
			return fmt.Errorf("%w: Handle - reread booking: %v", ErrInternal, err)
		}
		if !fresh.CanBeCancelled() {
			return fmt.Errorf("%w: booking_id=%d status=%s", ErrInvalidStatus, fresh.ID, fresh.Status)
		}
		if err := u.bookingRepo.Cancel(ctx, in.BookingID, in.Reason); err != nil {
			return fmt.Errorf("%w: Handle - cancel booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	u.logger.Info("[cancel_booking] booking cancelled: booking_id=%d actor_role=%s fee_percent=%.1f",
		booking.ID, in.ActorRole, feePercent)

	u.afterCancelBestEffort(booking)

	return nil
}

// refund возвращает средства до отмены в БД. Для холдов без payment ref
// возвращать нечего.
func (u *UseCase) refund(ctx context.Context, booking *domain.Booking, feePercent float64) error {
	if booking.PaymentRef == nil {
		return nil
	}

	class, err := u.classRepo.GetByID(ctx, booking.ClassID)
	if err != nil {
		return fmt.Errorf("%w: Handle - get class: %v", ErrInternal, err)
	}

	amount := class.AmountFor(booking.GroupSize) * (1 - feePercent/100)
	if err := u.paymentsClient.Refund(ctx, *booking.PaymentRef, amount); err != nil {
		u.logger.Warn("[cancel_booking] refund failed, booking left intact: booking_id=%d: %v", booking.ID, err)
		return fmt.Errorf("%w: %v", ErrRefundFailed, err)
	}
	return nil
}

func (u *UseCase) checkAccess(booking *domain.Booking, in CancelBookingIn) error {
	switch in.ActorRole {
	case RoleStudent:
		if booking.StudentID != in.ActorID {
			return fmt.Errorf("%w: booking_id=%d", ErrAccessDenied, booking.ID)
		}
	case RoleInstructor:
		if booking.InstructorID != in.ActorID {
			return fmt.Errorf("%w: booking_id=%d", ErrAccessDenied, booking.ID)
		}
	case RoleAdmin:
	default:
		return fmt.Errorf("%w: unknown actor role %q", ErrValidation, in.ActorRole)
	}
	return nil
}

func (u *UseCase) validate(in CancelBookingIn) error {
	if in.BookingID <= 0 {
		return fmt.Errorf("%w: booking_id must be positive", ErrValidation)
	}
	if in.ActorID <= 0 {
		return fmt.Errorf("%w: actor_id must be positive", ErrValidation)
	}
	if len(in.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrValidation, domain.MaxCancellationReasonLength)
	}
	return nil
}

func (u *UseCase) afterCancelBestEffort(booking *domain.Booking) {
	wasConfirmed := booking.Status == domain.StatusConfirmed

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		err := u.notificationsClient.Send(ctx, notifications.Event{
			Type:         notifications.EventBookingCancelled,
			BookingID:    booking.ID,
			StudentID:    booking.StudentID,
			InstructorID: booking.InstructorID,
			StartAt:      booking.StartAt,
		})
		if err != nil {
			u.logger.Warn("[cancel_booking] notification failed: booking_id=%d: %v", booking.ID, err)
		}

		// Запись в календаре существует только у подтверждённых бронирований
		if wasConfirmed {
			if err := u.calendarClient.DeleteEvent(ctx, booking.ID); err != nil {
				u.logger.Warn("[cancel_booking] calendar cleanup failed: booking_id=%d: %v", booking.ID, err)
			}
		}
	}()
}
