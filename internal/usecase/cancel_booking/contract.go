package cancel_booking

import (
	"context"
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	"github.com/tutorhub/lesson-booking-service/internal/integrations/notifications"
)

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider - интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// TxManager - менеджер транзакций с сериализуемым уровнем изоляции
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookingRepository - репозиторий бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// ClassRepository - репозиторий занятий
type ClassRepository interface {
	GetByID(ctx context.Context, classID int64) (*domain.Class, error)
}

// PaymentsClient - клиент платёжного процессора
type PaymentsClient interface {
	Refund(ctx context.Context, paymentRef string, amount float64) error
}

// NotificationsClient - клиент сервиса уведомлений (best-effort)
type NotificationsClient interface {
	Send(ctx context.Context, event notifications.Event) error
}

// CalendarClient - клиент календарного сервиса (best-effort)
type CalendarClient interface {
	DeleteEvent(ctx context.Context, bookingID int64) error
}
