package confirm_hold

// ConfirmHoldIn - входные данные для подтверждения холда
type ConfirmHoldIn struct {
	BookingID int64
	StudentID int64
}
