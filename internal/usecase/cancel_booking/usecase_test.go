package cancel_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	bookingRepo "github.com/tutorhub/lesson-booking-service/internal/infra/storage/booking"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/notifications"
	"github.com/tutorhub/lesson-booking-service/pkg/ptr"
)

var testNow = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeTxManager struct{ mu sync.Mutex }

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeBookingRepo struct {
	booking      *domain.Booking
	cancelled    bool
	cancelReason string
}

func (r *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	if r.booking == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	clone := *r.booking
	return &clone, nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, _ int64, reason string) error {
	r.cancelled = true
	r.cancelReason = reason
	r.booking.Status = domain.StatusCancelled
	return nil
}

type fakeClassRepo struct{ class *domain.Class }

func (r *fakeClassRepo) GetByID(context.Context, int64) (*domain.Class, error) {
	return r.class, nil
}

type fakePayments struct {
	refundErr     error
	refundCalls   int
	refundAmounts []float64
}

func (p *fakePayments) Refund(_ context.Context, _ string, amount float64) error {
	p.refundCalls++
	if p.refundErr != nil {
		return p.refundErr
	}
	p.refundAmounts = append(p.refundAmounts, amount)
	return nil
}

type fakeNotifications struct {
	mu     sync.Mutex
	events []notifications.Event
}

func (n *fakeNotifications) Send(_ context.Context, event notifications.Event) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return nil
}

type fakeCalendar struct {
	mu      sync.Mutex
	deleted []int64
}

func (c *fakeCalendar) DeleteEvent(_ context.Context, bookingID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, bookingID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Подтверждённое занятие через неделю - далеко за крайним сроком
func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:           1,
		InstructorID: 10,
		ClassID:      100,
		StudentID:    5,
		StartAt:      time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		EndAt:        time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC),
		Status:       domain.StatusConfirmed,
		GroupSize:    1,
		PaymentRef:   ptr.Ptr("ch-1"),
	}
}

func newTestUseCase(repo *fakeBookingRepo, pay *fakePayments) *UseCase {
	return New(
		repo,
		&fakeClassRepo{class: &domain.Class{ID: 100, InstructorID: 10, Mode: domain.ModeIndividual, Price: 1000}},
		pay,
		&fakeNotifications{},
		&fakeCalendar{},
		&fakeTxManager{},
		&fakeClock{now: testNow},
		24*time.Hour,
		5.0,
		nopLogger{},
	)
}

func TestHandle_StudentCancel_FullRefund(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	pay := &fakePayments{}
	uc := newTestUseCase(repo, pay)

	err := uc.Handle(context.Background(), CancelBookingIn{
		BookingID: 1, ActorID: 5, ActorRole: RoleStudent, Reason: "не смогу прийти",
	})
	require.NoError(t, err)

	assert.True(t, repo.cancelled)
	assert.Equal(t, "не смогу прийти", repo.cancelReason)
	require.Len(t, pay.refundAmounts, 1)
	assert.InDelta(t, 1000.0, pay.refundAmounts[0], 0.001)
}

func TestHandle_StudentCancel_WithinCutoff(t *testing.T) {
	booking := confirmedBooking()
	// Занятие через 3 часа - внутри суточного окна
	booking.StartAt = testNow.Add(3 * time.Hour)
	booking.EndAt = booking.StartAt.Add(time.Hour)
	repo := &fakeBookingRepo{booking: booking}
	pay := &fakePayments{}
	uc := newTestUseCase(repo, pay)

	err := uc.Handle(context.Background(), CancelBookingIn{BookingID: 1, ActorID: 5, ActorRole: RoleStudent})
	assert.ErrorIs(t, err, ErrWithinCutoffWindow)
	assert.False(t, repo.cancelled)
	assert.Zero(t, pay.refundCalls)
}

func TestHandle_StudentCancel_CutoffBoundaryInstant(t *testing.T) {
	booking := confirmedBooking()
	// Занятие ровно через 24 часа - граница включена, отмена уже закрыта
	booking.StartAt = testNow.Add(24 * time.Hour)
	booking.EndAt = booking.StartAt.Add(time.Hour)
	repo := &fakeBookingRepo{booking: booking}
	pay := &fakePayments{}
	uc := newTestUseCase(repo, pay)

	err := uc.Handle(context.Background(), CancelBookingIn{BookingID: 1, ActorID: 5, ActorRole: RoleStudent})
	assert.ErrorIs(t, err, ErrWithinCutoffWindow)
	assert.False(t, repo.cancelled)
	assert.Zero(t, pay.refundCalls)
}

func TestHandle_InstructorCancel_BypassesCutoff_WithFee(t *testing.T) {
	booking := confirmedBooking()
	booking.StartAt = testNow.Add(3 * time.Hour)
	booking.EndAt = booking.StartAt.Add(time.Hour)
	repo := &fakeBookingRepo{booking: booking}
	pay := &fakePayments{}
	uc := newTestUseCase(repo, pay)

	err := uc.Handle(context.Background(), CancelBookingIn{BookingID: 1, ActorID: 10, ActorRole: RoleInstructor})
	require.NoError(t, err)

	assert.True(t, repo.cancelled)
	// Возврат за вычетом 5% комиссии площадки
	require.Len(t, pay.refundAmounts, 1)
	assert.InDelta(t, 950.0, pay.refundAmounts[0], 0.001)
}

func TestHandle_AdminCancel_WithFee(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	pay := &fakePayments{}
	uc := newTestUseCase(repo, pay)

	err := uc.Handle(context.Background(), CancelBookingIn{BookingID: 1, ActorID: 777, ActorRole: RoleAdmin})
	require.NoError(t, err)

	require.Len(t, pay.refundAmounts, 1)
	assert.InDelta(t, 950.0, pay.refundAmounts[0], 0.001)
}

func TestHandle_RefundFailure_LeavesBookingIntact(t *testing.T) {
	repo := &fakeBookingRepo{booking: confirmedBooking()}
	pay := &fakePayments{refundErr: errors.New("processor down")}
	uc := newTestUseCase(repo, pay)

	err := uc.Handle(context.Background(), CancelBookingIn{BookingID: 1, ActorID: 5, ActorRole: RoleStudent})
	assert.ErrorIs(t, err, ErrRefundFailed)

	// Возврат не прошёл: бронирование не тронуто, слот остаётся занятым
	assert.False(t, repo.cancelled)
	assert.Equal(t, domain.StatusConfirmed, repo.booking.Status)
}

func TestHandle_PendingHold_CancelWithoutPayment(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusPending
	booking.ExpiresAt = ptr.Ptr(testNow.Add(5 * time.Minute))
	booking.PaymentRef = nil
	repo := &fakeBookingRepo{booking: booking}
	pay := &fakePayments{}
	uc := newTestUseCase(repo, pay)

	err := uc.Handle(context.Background(), CancelBookingIn{BookingID: 1, ActorID: 5, ActorRole: RoleStudent})
	require.NoError(t, err)

	assert.True(t, repo.cancelled)
	assert.Zero(t, pay.refundCalls)
}

func TestHandle_ForeignBooking(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{booking: confirmedBooking()}, &fakePayments{})

	err := uc.Handle(context.Background(), CancelBookingIn{BookingID: 1, ActorID: 6, ActorRole: RoleStudent})
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = uc.Handle(context.Background(), CancelBookingIn{BookingID: 1, ActorID: 11, ActorRole: RoleInstructor})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestHandle_AlreadyCancelled(t *testing.T) {
	booking := confirmedBooking()
	booking.Status = domain.StatusCancelled
	uc := newTestUseCase(&fakeBookingRepo{booking: booking}, &fakePayments{})

	err := uc.Handle(context.Background(), CancelBookingIn{BookingID: 1, ActorID: 5, ActorRole: RoleStudent})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestHandle_NotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePayments{})

	err := uc.Handle(context.Background(), CancelBookingIn{BookingID: 1, ActorID: 5, ActorRole: RoleStudent})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
