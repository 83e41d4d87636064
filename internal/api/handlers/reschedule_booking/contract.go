package reschedule_booking

import (
	"context"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	rescheduleUC "github.com/tutorhub/lesson-booking-service/internal/usecase/reschedule_booking"
)

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RescheduleBookingUseCase - сценарий переноса бронирования
type RescheduleBookingUseCase interface {
	Handle(ctx context.Context, in rescheduleUC.RescheduleBookingIn) (*domain.Booking, error)
}
