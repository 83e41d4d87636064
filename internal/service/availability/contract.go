package availability

import (
	"context"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
)

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AvailabilityRepository - репозиторий расписаний преподавателей
type AvailabilityRepository interface {
	GetByInstructorID(ctx context.Context, instructorID int64) (*domain.Availability, error)
	Upsert(ctx context.Context, av *domain.Availability) (*domain.Availability, error)
}
