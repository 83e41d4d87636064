package request_hold

import (
	"context"
	"time"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
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
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByInstructorWithFilter(ctx context.Context, filter domain.InstructorBookingsFilter) ([]*domain.Booking, error)
	SetPaymentRef(ctx context.Context, bookingID int64, paymentRef string) error
	Delete(ctx context.Context, bookingID int64) error
}

// AvailabilityRepository - репозиторий расписаний преподавателей
type AvailabilityRepository interface {
	GetByInstructorID(ctx context.Context, instructorID int64) (*domain.Availability, error)
}

// ClassRepository - репозиторий занятий
type ClassRepository interface {
	GetByID(ctx context.Context, classID int64) (*domain.Class, error)
}

// PaymentsClient - клиент платёжного процессора
type PaymentsClient interface {
	CreateHoldCharge(ctx context.Context, amount float64, description string) (string, error)
}
