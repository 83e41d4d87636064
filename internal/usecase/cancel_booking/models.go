package cancel_booking

// ActorRole - роль инициатора отмены
type ActorRole string

const (
	RoleStudent    ActorRole = "student"
	RoleInstructor ActorRole = "instructor"
	RoleAdmin      ActorRole = "admin"
)

// CancelBookingIn - входные данные для отмены бронирования
type CancelBookingIn struct {
	BookingID int64
	ActorID   int64
	ActorRole ActorRole
	Reason    string
}
