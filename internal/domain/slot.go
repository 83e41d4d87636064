package domain

import (
	"time"

	"github.com/tutorhub/lesson-booking-service/pkg/types"
)

// Slot is a derived, never persisted projection of a bookable interval:
// availability minus active bookings, computed on demand
type Slot struct {
	Date            time.Time        // calendar date in the instructor's timezone
	StartTime       types.TimeString // local start time
	StartAt         time.Time        // UTC instant
	EndAt           time.Time        // UTC instant
	DurationMinutes int
	Mode            ClassMode
	RemainingSeats  int
	TotalSeats      int
}

// IsFull returns true if the slot has no remaining seats
func (s *Slot) IsFull() bool {
	return s.RemainingSeats <= 0
}

// Admits returns true if a request for groupSize seats fits the remaining capacity.
// Group admission is all-or-nothing: partial admission is never performed.
func (s *Slot) Admits(groupSize int) bool {
	return groupSize > 0 && groupSize <= s.RemainingSeats
}
