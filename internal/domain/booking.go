package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusPending is a hold: capacity is reserved until ExpiresAt while payment is in flight
	StatusPending BookingStatus = "pending"
	// StatusConfirmed is a paid booking
	StatusConfirmed BookingStatus = "confirmed"
	// StatusCompleted is set by a post-hoc process once the lesson end time has passed
	StatusCompleted BookingStatus = "completed"
	// StatusCancelled is set on explicit cancellation
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a lesson booking in the system.
// StartAt/EndAt are UTC instants; all timezone interpretation happens
// against the instructor's availability record.
type Booking struct {
	ID           int64
	InstructorID int64
	ClassID      int64
	StudentID    int64
	StartAt      time.Time
	EndAt        time.Time
	Status       BookingStatus

	// ExpiresAt is set only while the booking is a pending hold.
	// Confirmation clears it, making the record immune to the expiry sweep.
	ExpiresAt *time.Time

	// GroupSize is the number of seats this booking occupies (always 1 for individual classes)
	GroupSize int

	// OccupantRefs holds the student contact plus optional group member contacts
	OccupantRefs []string

	// PaymentRef is the opaque id of the hold charge at the payment processor
	PaymentRef *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpiredHold returns true if the booking is a pending hold whose TTL has elapsed
func (b *Booking) IsExpiredHold(now time.Time) bool {
	return b.Status == StatusPending && b.ExpiresAt != nil && !b.ExpiresAt.After(now)
}

// OccupiesCapacity returns true if the booking counts toward slot capacity as of now.
// Expired pending holds do not occupy capacity even before the sweeper deletes them.
func (b *Booking) OccupiesCapacity(now time.Time) bool {
	switch b.Status {
	case StatusConfirmed:
		return true
	case StatusPending:
		return !b.IsExpiredHold(now)
	default:
		return false
	}
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can be moved to another slot
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusConfirmed
}

// InstructorBookingsFilter filters instructor bookings by time range and status
type InstructorBookingsFilter struct {
	InstructorID    int64      // required
	ClassID         *int64     // optional class filter
	FromAt          *time.Time // start of the UTC window (inclusive)
	ToAt            *time.Time // end of the UTC window (exclusive)
	Status          *BookingStatus
	IncludeInactive bool // include cancelled/completed bookings
}
