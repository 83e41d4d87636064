package create_class

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
	Create(ctx context.Context, class *domain.Class) (*domain.Class, error)
}
