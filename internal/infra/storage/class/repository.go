package class

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	"github.com/tutorhub/lesson-booking-service/pkg/dbmetrics"
	"github.com/tutorhub/lesson-booking-service/pkg/psqlbuilder"
)

var classColumns = []string{
	"id",
	"instructor_id",
	"title",
	"mode",
	"capacity",
	"price",
	"group_price",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с классами (типами занятий)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория классов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый класс
func (r *Repository) Create(ctx context.Context, class *domain.Class) (*domain.Class, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("classes").
		Columns("instructor_id", "title", "mode", "capacity", "price", "group_price").
		Values(class.InstructorID, class.Title, class.Mode, class.Capacity, class.Price, class.GroupPrice).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&class.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	class.CreatedAt = createdAt.Time
	class.UpdatedAt = updatedAt.Time

	return class, nil
}

// GetByID получает класс по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Class, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(classColumns...).
		From("classes").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var class domain.Class
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&class.ID,
		&class.InstructorID,
		&class.Title,
		&class.Mode,
		&class.Capacity,
		&class.Price,
		&class.GroupPrice,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan class: %v", ErrScanRow, err)
	}

	class.CreatedAt = createdAt.Time
	class.UpdatedAt = updatedAt.Time

	return &class, nil
}

// GetByInstructorID получает список классов инструктора
func (r *Repository) GetByInstructorID(ctx context.Context, instructorID int64) ([]*domain.Class, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(classColumns...).
		From("classes").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	classes := make([]*domain.Class, 0)
	for rows.Next() {
		var class domain.Class
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&class.ID,
			&class.InstructorID,
			&class.Title,
			&class.Mode,
			&class.Capacity,
			&class.Price,
			&class.GroupPrice,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByInstructorID - scan row: %v", ErrScanRow, err)
		}

		class.CreatedAt = createdAt.Time
		class.UpdatedAt = updatedAt.Time
		classes = append(classes, &class)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorID - rows error: %v", ErrScanRow, err)
	}

	return classes, nil
}
