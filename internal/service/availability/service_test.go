package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	availabilityRepo "github.com/tutorhub/lesson-booking-service/internal/infra/storage/availability"
)

type fakeAvailabilityRepo struct {
	av       *domain.Availability
	upserted *domain.Availability
}

func (r *fakeAvailabilityRepo) GetByInstructorID(context.Context, int64) (*domain.Availability, error) {
	if r.av == nil {
		return nil, availabilityRepo.ErrAvailabilityNotFound
	}
	return r.av, nil
}

func (r *fakeAvailabilityRepo) Upsert(_ context.Context, av *domain.Availability) (*domain.Availability, error) {
	r.upserted = av
	return av, nil
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validAvailability() *domain.Availability {
	return &domain.Availability{
		InstructorID: 10,
		WeeklyPattern: map[time.Weekday][]domain.TimeRange{
			time.Monday: {{Start: "10:00", End: "13:00"}},
		},
		DateOverrides: map[string][]domain.TimeRange{
			"2025-03-10": {},
		},
		SlotDurationMinutes: 60,
		LeadTimeHours:       12,
		HorizonDays:         30,
		Timezone:            "Europe/Berlin",
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := New(&fakeAvailabilityRepo{}, nopLogger{})

	_, err := svc.Get(context.Background(), 10)
	assert.ErrorIs(t, err, ErrAvailabilityNotFound)
}

func TestUpdate_Success(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := New(repo, nopLogger{})

	updated, err := svc.Update(context.Background(), validAvailability())
	require.NoError(t, err)
	assert.Equal(t, int64(10), updated.InstructorID)
	assert.NotNil(t, repo.upserted)
}

func TestUpdate_Validation(t *testing.T) {
	svc := New(&fakeAvailabilityRepo{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*domain.Availability)
	}{
		{"нулевой преподаватель", func(av *domain.Availability) { av.InstructorID = 0 }},
		{"слишком короткий слот", func(av *domain.Availability) { av.SlotDurationMinutes = 5 }},
		{"слишком длинный слот", func(av *domain.Availability) { av.SlotDurationMinutes = 600 }},
		{"отрицательный lead time", func(av *domain.Availability) { av.LeadTimeHours = -1 }},
		{"горизонт за пределом", func(av *domain.Availability) { av.HorizonDays = 1000 }},
		{"пустая таймзона", func(av *domain.Availability) { av.Timezone = "" }},
		{"неизвестная таймзона", func(av *domain.Availability) { av.Timezone = "Mars/Olympus" }},
		{"некорректное время", func(av *domain.Availability) {
			av.WeeklyPattern[time.Monday] = []domain.TimeRange{{Start: "25:00", End: "26:00"}}
		}},
		{"начало позже конца", func(av *domain.Availability) {
			av.WeeklyPattern[time.Monday] = []domain.TimeRange{{Start: "13:00", End: "10:00"}}
		}},
		{"пересекающиеся интервалы", func(av *domain.Availability) {
			av.WeeklyPattern[time.Monday] = []domain.TimeRange{
				{Start: "10:00", End: "12:00"},
				{Start: "11:00", End: "13:00"},
			}
		}},
		{"некорректная дата override", func(av *domain.Availability) {
			av.DateOverrides["10.03.2025"] = []domain.TimeRange{}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			av := validAvailability()
			tt.mutate(av)
			_, err := svc.Update(context.Background(), av)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUpdate_TouchingIntervalsAllowed(t *testing.T) {
	svc := New(&fakeAvailabilityRepo{}, nopLogger{})

	av := validAvailability()
	av.WeeklyPattern[time.Monday] = []domain.TimeRange{
		{Start: "10:00", End: "12:00"},
		{Start: "12:00", End: "14:00"},
	}

	_, err := svc.Update(context.Background(), av)
	assert.NoError(t, err)
}
