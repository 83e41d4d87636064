package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Таймаут одного прохода очистки
const sweepTimeout = 30 * time.Second

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider - интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// BookingRepository - репозиторий бронирований
type BookingRepository interface {
	DeleteExpiredHolds(ctx context.Context, now time.Time) (int64, error)
}

// Metrics - счётчик удалённых холдов
type Metrics interface {
	AddSweepDeleted(count int64)
}

// Sweeper периодически удаляет истёкшие pending-холды.
// Чистка - фоновая гигиена: истёкшие холды и без неё не учитываются
// в вместимости (фильтр на уровне запросов), поэтому проход никогда
// не блокирует допуск и выполняется вне бизнес-транзакций.
type Sweeper struct {
	cron         *cron.Cron
	bookingRepo  BookingRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

func New(bookingRepo BookingRepository, metrics Metrics, timeProvider TimeProvider, logger Logger) *Sweeper {
	return &Sweeper{
		cron:         cron.New(),
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Start регистрирует задачу очистки по cron-расписанию и запускает планировщик
func (s *Sweeper) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return fmt.Errorf("sweeper: invalid schedule %q: %w", schedule, err)
	}
	s.cron.Start()
	s.logger.Info("[sweeper] started: schedule=%q", schedule)
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущего прохода
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("[sweeper] stopped")
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	now := s.timeProvider.Now().UTC()

	deleted, err := s.bookingRepo.DeleteExpiredHolds(ctx, now)
	if err != nil {
		s.logger.Error("[sweeper] sweep failed: %v", err)
		return
	}
	if deleted > 0 {
		s.metrics.AddSweepDeleted(deleted)
		s.logger.Info("[sweeper] removed expired holds: count=%d", deleted)
	} else {
		s.logger.Debug("[sweeper] nothing to remove")
	}
}
