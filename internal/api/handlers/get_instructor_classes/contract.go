package get_instructor_classes

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

// ClassesService - сервис управления типами занятий
type ClassesService interface {
	ListByInstructor(ctx context.Context, instructorID int64) ([]*domain.Class, error)
}
