package confirm_hold

import (
	"context"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	confirmHoldUC "github.com/tutorhub/lesson-booking-service/internal/usecase/confirm_hold"
)

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ConfirmHoldUseCase - сценарий подтверждения холда
type ConfirmHoldUseCase interface {
	Handle(ctx context.Context, in confirmHoldUC.ConfirmHoldIn) (*domain.Booking, error)
}
