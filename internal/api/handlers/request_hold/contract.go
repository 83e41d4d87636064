package request_hold

import (
	"context"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	requestHoldUC "github.com/tutorhub/lesson-booking-service/internal/usecase/request_hold"
)

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequestHoldUseCase - сценарий запроса холда
type RequestHoldUseCase interface {
	Handle(ctx context.Context, in requestHoldUC.RequestHoldIn) (*domain.Booking, error)
}
