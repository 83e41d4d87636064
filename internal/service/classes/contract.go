package classes

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

// ClassRepository - репозиторий типов занятий
type ClassRepository interface {
	Create(ctx context.Context, class *domain.Class) (*domain.Class, error)
	GetByInstructorID(ctx context.Context, instructorID int64) ([]*domain.Class, error)
}
