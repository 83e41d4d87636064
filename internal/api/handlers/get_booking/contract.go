package get_booking

import (
	"context"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	"github.com/tutorhub/lesson-booking-service/internal/service/bookings/models"
)

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingsService - сервис чтения бронирований
type BookingsService interface {
	GetByID(ctx context.Context, bookingID int64, actor models.Actor) (*domain.Booking, error)
}
