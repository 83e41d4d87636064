package get_available_slots

import (
	"context"
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
)

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider - интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// BookingRepository - репозиторий бронирований
type BookingRepository interface {
	GetByInstructorWithFilter(ctx context.Context, filter domain.InstructorBookingsFilter) ([]*domain.Booking, error)
}

// AvailabilityRepository - репозиторий расписаний преподавателей
type AvailabilityRepository interface {
	GetByInstructorID(ctx context.Context, instructorID int64) (*domain.Availability, error)
}

// ClassRepository - репозиторий занятий
type ClassRepository interface {
	GetByID(ctx context.Context, classID int64) (*domain.Class, error)
}
