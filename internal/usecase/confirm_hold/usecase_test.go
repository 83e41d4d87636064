package confirm_hold

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	bookingRepo "github.com/tutorhub/lesson-booking-service/internal/infra/storage/booking"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/calendar"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/notifications"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/payments"
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
	booking   *domain.Booking
	confirmed bool
}

func (r *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	if r.booking == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	clone := *r.booking
	return &clone, nil
}

func (r *fakeBookingRepo) Confirm(_ context.Context, _ int64, paymentRef string) error {
	r.confirmed = true
	r.booking.Status = domain.StatusConfirmed
	r.booking.ExpiresAt = nil
	r.booking.PaymentRef = ptr.Ptr(paymentRef)
	return nil
}

type fakeClassRepo struct{ class *domain.Class }

func (r *fakeClassRepo) GetByID(context.Context, int64) (*domain.Class, error) {
	return r.class, nil
}

type fakePayments struct {
	confirmErr    error
	confirmCalls  int
	refundCalls   int
	refundAmounts []float64
}

func (p *fakePayments) ConfirmCharge(context.Context, string) error {
	p.confirmCalls++
	return p.confirmErr
}

func (p *fakePayments) Refund(_ context.Context, _ string, amount float64) error {
	p.refundCalls++
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
	mu     sync.Mutex
	events []calendar.Event
}

func (c *fakeCalendar) CreateEvent(_ context.Context, event calendar.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingHold() *domain.Booking {
	return &domain.Booking{
		ID:           1,
		InstructorID: 10,
		ClassID:      100,
		StudentID:    5,
		StartAt:      time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		EndAt:        time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC),
		Status:       domain.StatusPending,
		ExpiresAt:    ptr.Ptr(testNow.Add(5 * time.Minute)),
		GroupSize:    1,
		PaymentRef:   ptr.Ptr("ch-1"),
	}
}

func newTestUseCase(repo *fakeBookingRepo, pay *fakePayments) *UseCase {
	return New(
		repo,
		&fakeClassRepo{class: &domain.Class{ID: 100, InstructorID: 10, Mode: domain.ModeIndividual, Price: 1500}},
		pay,
		&fakeNotifications{},
		&fakeCalendar{},
		&fakeTxManager{},
		&fakeClock{now: testNow},
		nopLogger{},
	)
}

func TestHandle_Success(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingHold()}
	pay := &fakePayments{}
	uc := newTestUseCase(repo, pay)

	booking, err := uc.Handle(context.Background(), ConfirmHoldIn{BookingID: 1, StudentID: 5})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.Nil(t, booking.ExpiresAt)
	assert.True(t, repo.confirmed)
	assert.Equal(t, 1, pay.confirmCalls)
	assert.Zero(t, pay.refundCalls)
}

func TestHandle_ExpiredHold(t *testing.T) {
	hold := pendingHold()
	hold.ExpiresAt = ptr.Ptr(testNow.Add(-time.Second))
	repo := &fakeBookingRepo{booking: hold}
	pay := &fakePayments{}
	uc := newTestUseCase(repo, pay)

	_, err := uc.Handle(context.Background(), ConfirmHoldIn{BookingID: 1, StudentID: 5})
	assert.ErrorIs(t, err, ErrHoldExpired)

	// Истёкший холд не воскресает: ни списания, ни подтверждения
	assert.False(t, repo.confirmed)
	assert.Zero(t, pay.confirmCalls)
}

func TestHandle_AlreadyConfirmed(t *testing.T) {
	hold := pendingHold()
	hold.Status = domain.StatusConfirmed
	hold.ExpiresAt = nil
	uc := newTestUseCase(&fakeBookingRepo{booking: hold}, &fakePayments{})

	_, err := uc.Handle(context.Background(), ConfirmHoldIn{BookingID: 1, StudentID: 5})
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
}

func TestHandle_CancelledBooking(t *testing.T) {
	hold := pendingHold()
	hold.Status = domain.StatusCancelled
	uc := newTestUseCase(&fakeBookingRepo{booking: hold}, &fakePayments{})

	_, err := uc.Handle(context.Background(), ConfirmHoldIn{BookingID: 1, StudentID: 5})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestHandle_NotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePayments{})

	_, err := uc.Handle(context.Background(), ConfirmHoldIn{BookingID: 1, StudentID: 5})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestHandle_ForeignBooking(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{booking: pendingHold()}, &fakePayments{})

	_, err := uc.Handle(context.Background(), ConfirmHoldIn{BookingID: 1, StudentID: 6})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestHandle_ChargeDeclined(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingHold()}
	pay := &fakePayments{confirmErr: payments.ErrChargeDeclined}
	uc := newTestUseCase(repo, pay)

	_, err := uc.Handle(context.Background(), ConfirmHoldIn{BookingID: 1, StudentID: 5})
	assert.ErrorIs(t, err, ErrPaymentFailed)
	assert.False(t, repo.confirmed)
}
