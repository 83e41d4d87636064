package domain

import (
	"time"

	"github.com/tutorhub/lesson-booking-service/pkg/types"
)

// TimeRange is a raw availability interval [Start, End) in the instructor's local time
type TimeRange struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Availability describes when an instructor can be booked.
// The weekly pattern is keyed by weekday; date overrides fully replace the
// pattern for their date when present - an empty override means "closed".
type Availability struct {
	ID           int64
	InstructorID int64

	// WeeklyPattern maps weekday to ordered local-time intervals
	WeeklyPattern map[time.Weekday][]TimeRange

	// DateOverrides maps "YYYY-MM-DD" to intervals replacing the weekly pattern for that date
	DateOverrides map[string][]TimeRange

	// SlotDurationMinutes is uniform across the instructor
	SlotDurationMinutes int

	// LeadTimeHours is the minimum notice before a slot may be booked
	LeadTimeHours int

	// HorizonDays bounds how far in the future slots may be booked (0 = unlimited)
	HorizonDays int

	// Timezone is the IANA zone interpreting all local times and cutoff rules
	Timezone string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location resolves the instructor's IANA timezone
func (a *Availability) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// OverrideFor returns the override intervals for a date and whether an override exists.
// The second return value distinguishes "closed" (empty override) from "no override".
func (a *Availability) OverrideFor(date time.Time) ([]TimeRange, bool) {
	ranges, ok := a.DateOverrides[date.Format(DateFormat)]
	return ranges, ok
}

// HasBookingHorizon returns true if there is a limit on how far in advance bookings can be made
func (a *Availability) HasBookingHorizon() bool {
	return a.HorizonDays > 0
}
