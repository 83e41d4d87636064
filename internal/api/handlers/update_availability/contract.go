package update_availability

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
	Update(ctx context.Context, av *domain.Availability) (*domain.Availability, error)
}
