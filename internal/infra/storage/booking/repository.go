package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	"github.com/tutorhub/lesson-booking-service/pkg/dbmetrics"
	"github.com/tutorhub/lesson-booking-service/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"instructor_id",
	"class_id",
	"student_id",
	"start_at",
	"end_at",
	"status",
	"expires_at",
	"group_size",
	"occupant_refs",
	"payment_ref",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db           DBExecutor
	timeProvider TimeProvider
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor, timeProvider TimeProvider) *Repository {
	return &Repository{db: db, timeProvider: timeProvider}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Контроллер допуска всегда вызывает Create внутри сериализуемой транзакции
// вместе с чтением занятости - это единственная защита от гонки check-then-insert.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"instructor_id",
			"class_id",
			"student_id",
			"start_at",
			"end_at",
			"status",
			"expires_at",
			"group_size",
			"occupant_refs",
			"payment_ref",
		).
		Values(
			booking.InstructorID,
			booking.ClassID,
			booking.StudentID,
			booking.StartAt,
			booking.EndAt,
			booking.Status,
			booking.ExpiresAt,
			booking.GroupSize,
			pq.Array(booking.OccupantRefs),
			booking.PaymentRef,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE) - подтверждение, перенос
// и отмена работают с заблокированной строкой
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByStudentID получает список бронирований студента
// Опционально фильтрует по статусу
func (r *Repository) GetByStudentID(ctx context.Context, studentID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("start_at DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStudentID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStudentID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByInstructorWithFilter получает бронирования инструктора с фильтрацией
// по окну времени, классу и статусу.
//
// Если фильтр не включает неактивные бронирования, возвращаются только записи,
// занимающие вместимость: confirmed и pending с неистёкшим expiry. Истёкшие
// холды отфильтровываются на уровне запроса - ленивая часть sweeper'а.
//
// Внутри транзакции выборка с окном времени блокируется (FOR UPDATE) -
// так контроллер допуска сериализует check-then-insert по ключу слота.
func (r *Repository) GetByInstructorWithFilter(ctx context.Context, filter domain.InstructorBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"instructor_id": filter.InstructorID})

	if filter.ClassID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"class_id": *filter.ClassID})
	}
	if filter.FromAt != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_at": *filter.FromAt})
	}
	if filter.ToAt != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": *filter.ToAt})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"status": domain.StatusConfirmed},
			squirrel.And{
				squirrel.Eq{"status": domain.StatusPending},
				squirrel.Gt{"expires_at": r.timeProvider.Now().UTC()},
			},
		})
	}

	selectBuilder = selectBuilder.OrderBy("start_at ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.FromAt != nil && filter.ToAt != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Confirm переводит холд в confirmed: статус, payment_ref, сброс expiry
// Сброс expires_at делает запись невидимой для sweeper'а
func (r *Repository) Confirm(ctx context.Context, id int64, paymentRef string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusConfirmed).
		Set("payment_ref", paymentRef).
		Set("expires_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Confirm - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Confirm", query, args)
}

// UpdateTimes переносит бронирование на новый интервал, сохраняя идентичность записи
func (r *Repository) UpdateTimes(ctx context.Context, id int64, startAt, endAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("start_at", startAt).
		Set("end_at", endAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateTimes - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateTimes", query, args)
}

// SetPaymentRef сохраняет ссылку на созданный холд-чардж платёжного процессора
func (r *Repository) SetPaymentRef(ctx context.Context, id int64, paymentRef string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_ref", paymentRef).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPaymentRef - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "SetPaymentRef", query, args)
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("expires_at", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Cancel", query, args)
}

// Delete физически удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Delete", query, args)
}

// DeleteExpiredHolds удаляет pending-холды с истёкшим expiry
// Идемпотентна: подтверждённые бронирования не затрагиваются, так как
// подтверждение сбрасывает expires_at
func (r *Repository) DeleteExpiredHolds(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"status": domain.StatusPending}).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredHolds - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredHolds - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpiredHolds - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// execExpectingRow выполняет запрос и требует ровно одну затронутую строку
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в доменную модель
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.InstructorID,
		&booking.ClassID,
		&booking.StudentID,
		&booking.StartAt,
		&booking.EndAt,
		&booking.Status,
		&booking.ExpiresAt,
		&booking.GroupSize,
		pq.Array(&booking.OccupantRefs),
		&booking.PaymentRef,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.StartAt = booking.StartAt.UTC()
	booking.EndAt = booking.EndAt.UTC()
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
