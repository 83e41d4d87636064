package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	"github.com/tutorhub/lesson-booking-service/pkg/ptr"
)

var (
	now    = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	slotAt = time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
)

func individualClass() *domain.Class {
	return &domain.Class{ID: 10, InstructorID: 1, Mode: domain.ModeIndividual, Price: 40}
}

func groupClass(capacity int) *domain.Class {
	return &domain.Class{ID: 20, InstructorID: 1, Mode: domain.ModeGroup, Capacity: capacity, GroupPrice: 15}
}

func confirmedAt(classID int64, startAt time.Time, groupSize int) *domain.Booking {
	return &domain.Booking{
		ClassID:   classID,
		StartAt:   startAt,
		Status:    domain.StatusConfirmed,
		GroupSize: groupSize,
	}
}

func TestRemainingSeats_Individual(t *testing.T) {
	class := individualClass()

	assert.Equal(t, 1, RemainingSeats(slotAt, class, nil, now))

	taken := []*domain.Booking{confirmedAt(class.ID, slotAt, 1)}
	assert.Equal(t, 0, RemainingSeats(slotAt, class, taken, now))

	// Бронирование на другое время не влияет
	other := []*domain.Booking{confirmedAt(class.ID, slotAt.Add(30*time.Minute), 1)}
	assert.Equal(t, 1, RemainingSeats(slotAt, class, other, now))
}

// Вместимость насыщается в нуле и никогда не уходит в минус
func TestRemainingSeats_SaturatesAtZero(t *testing.T) {
	class := individualClass()

	bookings := []*domain.Booking{
		confirmedAt(class.ID, slotAt, 1),
		confirmedAt(class.ID, slotAt, 1),
		confirmedAt(class.ID, slotAt, 1),
	}
	assert.Equal(t, 0, RemainingSeats(slotAt, class, bookings, now))
}

func TestRemainingSeats_Group(t *testing.T) {
	class := groupClass(5)

	existing := []*domain.Booking{confirmedAt(class.ID, slotAt, 3)}
	remaining := RemainingSeats(slotAt, class, existing, now)
	assert.Equal(t, 2, remaining)

	// Запрос на 3 места не проходит, на 2 - проходит целиком
	slot := &domain.Slot{RemainingSeats: remaining}
	assert.False(t, slot.Admits(3))
	assert.True(t, slot.Admits(2))
}

func TestRemainingSeats_GroupIgnoresOtherClasses(t *testing.T) {
	class := groupClass(5)

	// Бронирование другого класса на тот же момент не считается
	other := []*domain.Booking{confirmedAt(999, slotAt, 4)}
	assert.Equal(t, 5, RemainingSeats(slotAt, class, other, now))
}

// Индивидуальный режим: место занимает любое активное бронирование инструктора
// с тем же временем начала, независимо от класса
func TestRemainingSeats_IndividualCountsAnyClass(t *testing.T) {
	class := individualClass()

	other := []*domain.Booking{confirmedAt(999, slotAt, 1)}
	assert.Equal(t, 0, RemainingSeats(slotAt, class, other, now))
}

// Истёкший pending-холд не занимает вместимость ещё до физического удаления
func TestRemainingSeats_ExpiredHoldExcluded(t *testing.T) {
	class := individualClass()

	expired := &domain.Booking{
		ClassID:   class.ID,
		StartAt:   slotAt,
		Status:    domain.StatusPending,
		GroupSize: 1,
		ExpiresAt: ptr.Ptr(now.Add(-time.Minute)),
	}
	assert.Equal(t, 1, RemainingSeats(slotAt, class, []*domain.Booking{expired}, now))

	active := &domain.Booking{
		ClassID:   class.ID,
		StartAt:   slotAt,
		Status:    domain.StatusPending,
		GroupSize: 1,
		ExpiresAt: ptr.Ptr(now.Add(5 * time.Minute)),
	}
	assert.Equal(t, 0, RemainingSeats(slotAt, class, []*domain.Booking{active}, now))
}

func TestRemainingSeats_CancelledExcluded(t *testing.T) {
	class := individualClass()

	cancelled := confirmedAt(class.ID, slotAt, 1)
	cancelled.Status = domain.StatusCancelled
	assert.Equal(t, 1, RemainingSeats(slotAt, class, []*domain.Booking{cancelled}, now))
}
