package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 60
	DefaultLeadTimeHours       = 12
	DefaultHorizonDays         = 30 // 0 = unlimited
	DefaultHoldTTLMinutes      = 10
	DefaultCutoffHours         = 24
	DefaultPlatformFeePercent  = 5.0
)

// Business validation constants
const (
	MinSlotDurationMinutes = 15
	MaxSlotDurationMinutes = 240
	MinGroupCapacity       = 2
	MaxGroupCapacity       = 50
	MaxGroupSize           = 50
	MaxHorizonDays         = 365
	MaxLeadTimeHours       = 336 // 2 weeks
	MaxOccupantRefs        = 50
	MaxCancellationReasonLength = 500
	MaxClassTitleLength         = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих вместимость слота
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

// OccupyingStatuses список статусов, учитываемых при подсчёте занятых мест
// Pending учитывается только до истечения expiry (фильтруется по времени)
var OccupyingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
