package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	"github.com/tutorhub/lesson-booking-service/pkg/dbmetrics"
	"github.com/tutorhub/lesson-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с доступностью инструкторов
// weekly_pattern и date_overrides хранятся как JSONB
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByInstructorID получает запись доступности инструктора
func (r *Repository) GetByInstructorID(ctx context.Context, instructorID int64) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"instructor_id",
		"weekly_pattern",
		"date_overrides",
		"slot_duration_minutes",
		"lead_time_hours",
		"horizon_days",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("availabilities").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorID - build select query: %v", ErrBuildQuery, err)
	}

	var av domain.Availability
	var patternRaw, overridesRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&av.ID,
		&av.InstructorID,
		&patternRaw,
		&overridesRaw,
		&av.SlotDurationMinutes,
		&av.LeadTimeHours,
		&av.HorizonDays,
		&av.Timezone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorID - scan availability: %v", ErrScanRow, err)
	}

	av.WeeklyPattern, err = decodeWeeklyPattern(patternRaw)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorID - decode weekly pattern: %v", ErrScanRow, err)
	}

	if err := json.Unmarshal(overridesRaw, &av.DateOverrides); err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorID - decode date overrides: %v", ErrScanRow, err)
	}
	if av.DateOverrides == nil {
		av.DateOverrides = map[string][]domain.TimeRange{}
	}

	av.CreatedAt = createdAt.Time
	av.UpdatedAt = updatedAt.Time

	return &av, nil
}

// Upsert создает или полностью заменяет запись доступности инструктора
func (r *Repository) Upsert(ctx context.Context, av *domain.Availability) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	patternRaw, err := encodeWeeklyPattern(av.WeeklyPattern)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - encode weekly pattern: %v", ErrEncodePattern, err)
	}

	overridesRaw, err := json.Marshal(av.DateOverrides)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - encode date overrides: %v", ErrEncodePattern, err)
	}

	query, args, err := psqlbuilder.Insert("availabilities").
		Columns(
			"instructor_id",
			"weekly_pattern",
			"date_overrides",
			"slot_duration_minutes",
			"lead_time_hours",
			"horizon_days",
			"timezone",
		).
		Values(
			av.InstructorID,
			patternRaw,
			overridesRaw,
			av.SlotDurationMinutes,
			av.LeadTimeHours,
			av.HorizonDays,
			av.Timezone,
		).
		Suffix(`ON CONFLICT (instructor_id) DO UPDATE SET
			weekly_pattern = EXCLUDED.weekly_pattern,
			date_overrides = EXCLUDED.date_overrides,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			lead_time_hours = EXCLUDED.lead_time_hours,
			horizon_days = EXCLUDED.horizon_days,
			timezone = EXCLUDED.timezone,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&av.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	av.CreatedAt = createdAt.Time
	av.UpdatedAt = updatedAt.Time

	return av, nil
}

// encodeWeeklyPattern сериализует недельный паттерн в JSON
// Ключи - номера дней недели по time.Weekday (0 = воскресенье)
func encodeWeeklyPattern(pattern map[time.Weekday][]domain.TimeRange) ([]byte, error) {
	encoded := make(map[string][]domain.TimeRange, len(pattern))
	for day, ranges := range pattern {
		encoded[strconv.Itoa(int(day))] = ranges
	}
	return json.Marshal(encoded)
}

// decodeWeeklyPattern разбирает JSON недельного паттерна
func decodeWeeklyPattern(raw []byte) (map[time.Weekday][]domain.TimeRange, error) {
	var encoded map[string][]domain.TimeRange
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, err
	}

	pattern := make(map[time.Weekday][]domain.TimeRange, len(encoded))
	for key, ranges := range encoded {
		day, err := strconv.Atoi(key)
		if err != nil || day < 0 || day > 6 {
			return nil, fmt.Errorf("invalid weekday key %q", key)
		}
		pattern[time.Weekday(day)] = ranges
	}
	return pattern, nil
}
