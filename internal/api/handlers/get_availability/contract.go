package get_availability

import (
	"context"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
)

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AvailabilityService - сервис расписаний преподавателей
type AvailabilityService interface {
	Get(ctx context.Context, instructorID int64) (*domain.Availability, error)
}
