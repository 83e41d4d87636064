package reschedule_booking

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
	"github.com/tutorhub/lesson-booking-service/pkg/ptr"
)

var testNow = time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

// Подтверждённое занятие: понедельник 10 марта, 10:00-11:00 UTC
var currentStart = time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeTxManager struct{ mu sync.Mutex }

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	updated  map[int64][2]time.Time
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			clone := *b
			return &clone, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeBookingRepo) GetByInstructorWithFilter(_ context.Context, filter domain.InstructorBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range r.bookings {
		if b.InstructorID != filter.InstructorID {
			continue
		}
		if filter.FromAt != nil && b.StartAt.Before(*filter.FromAt) {
			continue
		}
		if filter.ToAt != nil && !b.StartAt.Before(*filter.ToAt) {
			continue
		}
		if !b.OccupiesCapacity(testNow) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeBookingRepo) UpdateTimes(_ context.Context, id int64, startAt, endAt time.Time) error {
	if r.updated == nil {
		r.updated = make(map[int64][2]time.Time)
	}
	r.updated[id] = [2]time.Time{startAt, endAt}
	for _, b := range r.bookings {
		if b.ID == id {
			b.StartAt = startAt
			b.EndAt = endAt
		}
	}
	return nil
}

type fakeAvailabilityRepo struct{ av *domain.Availability }

func (r *fakeAvailabilityRepo) GetByInstructorID(context.Context, int64) (*domain.Availability, error) {
	return r.av, nil
}

type fakeClassRepo struct{ class *domain.Class }

func (r *fakeClassRepo) GetByID(context.Context, int64) (*domain.Class, error) {
	return r.class, nil
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

type fakeCalendar struct{ mu sync.Mutex }

func (c *fakeCalendar) CreateEvent(context.Context, calendar.Event) error { return nil }
func (c *fakeCalendar) DeleteEvent(context.Context, int64) error          { return nil }

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAvailability() *domain.Availability {
	return &domain.Availability{
		ID:           1,
		InstructorID: 10,
		WeeklyPattern: map[time.Weekday][]domain.TimeRange{
			time.Monday: {{Start: "10:00", End: "13:00"}},
		},
		DateOverrides:       map[string][]domain.TimeRange{},
		SlotDurationMinutes: 60,
		LeadTimeHours:       12,
		HorizonDays:         30,
		Timezone:            "UTC",
	}
}

func confirmedBooking(id int64, startAt time.Time) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		InstructorID: 10,
		ClassID:      100,
		StudentID:    5,
		StartAt:      startAt,
		EndAt:        startAt.Add(time.Hour),
		Status:       domain.StatusConfirmed,
		GroupSize:    1,
		PaymentRef:   ptr.Ptr("ch-1"),
	}
}

func newTestUseCase(repo *fakeBookingRepo) *UseCase {
	return New(
		repo,
		&fakeAvailabilityRepo{av: testAvailability()},
		&fakeClassRepo{class: &domain.Class{ID: 100, InstructorID: 10, Mode: domain.ModeIndividual, Price: 1000}},
		&fakeNotifications{},
		&fakeCalendar{},
		&fakeTxManager{},
		&fakeClock{now: testNow},
		24*time.Hour,
		nopLogger{},
	)
}

func TestHandle_Success(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking(1, currentStart)}}
	uc := newTestUseCase(repo)

	newStart := currentStart.Add(time.Hour) // 11:00 того же дня

	booking, err := uc.Handle(context.Background(), RescheduleBookingIn{
		BookingID: 1, StudentID: 5, NewStartAt: newStart,
	})
	require.NoError(t, err)

	assert.Equal(t, newStart, booking.StartAt)
	assert.Equal(t, newStart.Add(time.Hour), booking.EndAt)
	// Идентичность сохранена
	assert.Equal(t, int64(1), booking.ID)
	assert.Equal(t, "ch-1", *booking.PaymentRef)
	assert.Equal(t, [2]time.Time{newStart, newStart.Add(time.Hour)}, repo.updated[1])
}

func TestHandle_SameSlot_ExcludesSelf(t *testing.T) {
	// Перенос на тот же слот: бронирование не конкурирует само с собой
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking(1, currentStart)}}
	uc := newTestUseCase(repo)

	booking, err := uc.Handle(context.Background(), RescheduleBookingIn{
		BookingID: 1, StudentID: 5, NewStartAt: currentStart,
	})
	require.NoError(t, err)
	assert.Equal(t, currentStart, booking.StartAt)
}

func TestHandle_TargetSlotFull(t *testing.T) {
	other := confirmedBooking(2, currentStart.Add(time.Hour))
	other.StudentID = 6
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		confirmedBooking(1, currentStart),
		other,
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Handle(context.Background(), RescheduleBookingIn{
		BookingID: 1, StudentID: 5, NewStartAt: currentStart.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Empty(t, repo.updated)
}

func TestHandle_TargetGroupCapacityExceeded(t *testing.T) {
	// Групповое занятие на 3 места: переносимая группа из 2 не влезает
	// к уже занятым 2 местам в целевом слоте
	moved := confirmedBooking(1, currentStart)
	moved.GroupSize = 2
	occupying := confirmedBooking(2, currentStart.Add(time.Hour))
	occupying.StudentID = 6
	occupying.GroupSize = 2

	repo := &fakeBookingRepo{bookings: []*domain.Booking{moved, occupying}}
	uc := New(
		repo,
		&fakeAvailabilityRepo{av: testAvailability()},
		&fakeClassRepo{class: &domain.Class{ID: 100, InstructorID: 10, Mode: domain.ModeGroup, Capacity: 3, GroupPrice: 500}},
		&fakeNotifications{},
		&fakeCalendar{},
		&fakeTxManager{},
		&fakeClock{now: testNow},
		24*time.Hour,
		nopLogger{},
	)

	_, err := uc.Handle(context.Background(), RescheduleBookingIn{
		BookingID: 1, StudentID: 5, NewStartAt: currentStart.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Empty(t, repo.updated)
}

func TestHandle_NewEndAtMismatch(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking(1, currentStart)}}
	uc := newTestUseCase(repo)

	// Запрошенный интервал длиннее слота - перенос не урезается молча
	newStart := currentStart.Add(time.Hour)
	_, err := uc.Handle(context.Background(), RescheduleBookingIn{
		BookingID: 1, StudentID: 5, NewStartAt: newStart, NewEndAt: newStart.Add(2 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)
	assert.Empty(t, repo.updated)
}

func TestHandle_TargetNotInSchedule(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking(1, currentStart)}}
	uc := newTestUseCase(repo)

	// Вторник - день без расписания
	_, err := uc.Handle(context.Background(), RescheduleBookingIn{
		BookingID: 1, StudentID: 5, NewStartAt: currentStart.AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestHandle_WithinCutoff(t *testing.T) {
	// Занятие завтра в 10:00 - меньше суток до начала
	soon := time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking(1, soon)}}
	uc := newTestUseCase(repo)

	_, err := uc.Handle(context.Background(), RescheduleBookingIn{
		BookingID: 1, StudentID: 5, NewStartAt: currentStart,
	})
	assert.ErrorIs(t, err, ErrWithinCutoffWindow)
}

func TestHandle_CutoffBoundaryInstant(t *testing.T) {
	// Ровно за 24 часа до начала перенос уже закрыт
	exactly := testNow.Add(24 * time.Hour)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking(1, exactly)}}
	uc := newTestUseCase(repo)

	_, err := uc.Handle(context.Background(), RescheduleBookingIn{
		BookingID: 1, StudentID: 5, NewStartAt: currentStart,
	})
	assert.ErrorIs(t, err, ErrWithinCutoffWindow)
}

func TestHandle_PendingHold_NotReschedulable(t *testing.T) {
	hold := confirmedBooking(1, currentStart)
	hold.Status = domain.StatusPending
	hold.ExpiresAt = ptr.Ptr(testNow.Add(5 * time.Minute))
	repo := &fakeBookingRepo{bookings: []*domain.Booking{hold}}
	uc := newTestUseCase(repo)

	_, err := uc.Handle(context.Background(), RescheduleBookingIn{
		BookingID: 1, StudentID: 5, NewStartAt: currentStart.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestHandle_ForeignBooking(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking(1, currentStart)}}
	uc := newTestUseCase(repo)

	_, err := uc.Handle(context.Background(), RescheduleBookingIn{
		BookingID: 1, StudentID: 6, NewStartAt: currentStart.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestHandle_NotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Handle(context.Background(), RescheduleBookingIn{
		BookingID: 1, StudentID: 5, NewStartAt: currentStart,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
