package cancel_booking

import (
	"context"

	cancelBookingUC "github.com/tutorhub/lesson-booking-service/internal/usecase/cancel_booking"
)

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CancelBookingUseCase - сценарий отмены бронирования
type CancelBookingUseCase interface {
	Handle(ctx context.Context, in cancelBookingUC.CancelBookingIn) error
}
