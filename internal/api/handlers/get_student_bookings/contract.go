package get_student_bookings

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
	GetStudentBookings(ctx context.Context, studentID int64, status *domain.BookingStatus, actor models.Actor) ([]*domain.Booking, error)
}
