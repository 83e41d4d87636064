package booking

import (
	"context"
	"database/sql"
	"time"

	"github.com/tutorhub/lesson-booking-service/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner интерфейс для начала транзакций
// Поддерживает *sql.DB и *dbmetrics.DB
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}

// TimeProvider - интерфейс для получения текущего времени.
// Фильтр активных холдов сверяет expires_at с инжектированными часами.
type TimeProvider interface {
	Now() time.Time
}
