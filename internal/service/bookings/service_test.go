package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	bookingRepo "github.com/tutorhub/lesson-booking-service/internal/infra/storage/booking"
	"github.com/tutorhub/lesson-booking-service/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	booking    *domain.Booking
	list       []*domain.Booking
	lastFilter domain.InstructorBookingsFilter
}

func (r *fakeBookingRepo) GetByID(context.Context, int64) (*domain.Booking, error) {
	if r.booking == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return r.booking, nil
}

func (r *fakeBookingRepo) GetByStudentID(context.Context, int64, *domain.BookingStatus) ([]*domain.Booking, error) {
	return r.list, nil
}

func (r *fakeBookingRepo) GetByInstructorWithFilter(_ context.Context, filter domain.InstructorBookingsFilter) ([]*domain.Booking, error) {
	r.lastFilter = filter
	return r.list, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:           1,
		InstructorID: 10,
		ClassID:      100,
		StudentID:    5,
		StartAt:      time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		Status:       domain.StatusConfirmed,
		GroupSize:    1,
	}
}

func TestGetByID_AccessControl(t *testing.T) {
	svc := New(&fakeBookingRepo{booking: testBooking()}, nopLogger{})

	tests := []struct {
		name    string
		actor   models.Actor
		wantErr error
	}{
		{"владелец-студент", models.Actor{ID: 5, Role: models.RoleStudent}, nil},
		{"чужой студент", models.Actor{ID: 6, Role: models.RoleStudent}, ErrAccessDenied},
		{"преподаватель занятия", models.Actor{ID: 10, Role: models.RoleInstructor}, nil},
		{"чужой преподаватель", models.Actor{ID: 11, Role: models.RoleInstructor}, ErrAccessDenied},
		{"администратор", models.Actor{ID: 999, Role: models.RoleAdmin}, nil},
		{"неизвестная роль", models.Actor{ID: 5, Role: "manager"}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking, err := svc.GetByID(context.Background(), 1, tt.actor)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), booking.ID)
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := New(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, models.Actor{ID: 5, Role: models.RoleStudent})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetStudentBookings_AccessControl(t *testing.T) {
	svc := New(&fakeBookingRepo{list: []*domain.Booking{testBooking()}}, nopLogger{})

	// Свои бронирования
	result, err := svc.GetStudentBookings(context.Background(), 5, nil, models.Actor{ID: 5, Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Len(t, result, 1)

	// Чужие бронирования недоступны студенту и преподавателю
	_, err = svc.GetStudentBookings(context.Background(), 5, nil, models.Actor{ID: 6, Role: models.RoleStudent})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetStudentBookings(context.Background(), 5, nil, models.Actor{ID: 10, Role: models.RoleInstructor})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Администратору доступны
	_, err = svc.GetStudentBookings(context.Background(), 5, nil, models.Actor{ID: 999, Role: models.RoleAdmin})
	assert.NoError(t, err)
}

func TestGetInstructorBookings_AccessControl(t *testing.T) {
	repo := &fakeBookingRepo{list: []*domain.Booking{testBooking()}}
	svc := New(repo, nopLogger{})

	query := models.InstructorBookingsQuery{InstructorID: 10}

	// Свои занятия
	_, err := svc.GetInstructorBookings(context.Background(), query, models.Actor{ID: 10, Role: models.RoleInstructor})
	require.NoError(t, err)
	assert.Equal(t, int64(10), repo.lastFilter.InstructorID)

	// Чужие занятия недоступны
	_, err = svc.GetInstructorBookings(context.Background(), query, models.Actor{ID: 11, Role: models.RoleInstructor})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetInstructorBookings(context.Background(), query, models.Actor{ID: 5, Role: models.RoleStudent})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetInstructorBookings_InvalidRange(t *testing.T) {
	svc := New(&fakeBookingRepo{}, nopLogger{})

	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)

	_, err := svc.GetInstructorBookings(context.Background(), models.InstructorBookingsQuery{
		InstructorID: 10,
		FromAt:       &from,
		ToAt:         &to,
	}, models.Actor{ID: 10, Role: models.RoleInstructor})
	assert.ErrorIs(t, err, ErrValidation)
}
