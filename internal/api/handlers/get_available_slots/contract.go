package get_available_slots

import (
	"context"
	"time"

	slotsUC "github.com/tutorhub/lesson-booking-service/internal/usecase/get_available_slots"
)

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// GetAvailableSlotsUseCase - сценарий выдачи доступных слотов
type GetAvailableSlotsUseCase interface {
	Handle(ctx context.Context, in slotsUC.GetAvailableSlotsIn) (*slotsUC.GetAvailableSlotsOut, error)
}

// TimeProvider - интерфейс для получения текущего времени.
// Диапазон дат по умолчанию отсчитывается от инжектированных часов.
type TimeProvider interface {
	Now() time.Time
}
