package domain

import "time"

// ClassMode distinguishes one-on-one lessons from group classes
type ClassMode string

const (
	ModeIndividual ClassMode = "individual"
	ModeGroup      ClassMode = "group"
)

// Class represents a bookable lesson type offered by an instructor
type Class struct {
	ID           int64
	InstructorID int64
	Title        string
	Mode         ClassMode

	// Capacity is the maximum concurrent occupants per slot; meaningful only in group mode
	Capacity int

	// Price is the per-lesson price for individual mode
	Price float64

	// GroupPrice is the per-seat price for group mode
	GroupPrice float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsGroup returns true for group classes
func (c *Class) IsGroup() bool {
	return c.Mode == ModeGroup
}

// SlotCapacity returns the number of seats per slot (always 1 for individual mode)
func (c *Class) SlotCapacity() int {
	if c.Mode == ModeGroup {
		return c.Capacity
	}
	return 1
}

// AmountFor returns the charge amount for a booking of groupSize seats
func (c *Class) AmountFor(groupSize int) float64 {
	if c.Mode == ModeGroup {
		return c.GroupPrice * float64(groupSize)
	}
	return c.Price
}
