package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")
)

// TimeString время суток в формате "HH:MM" (локальное время, без даты и таймзоны)
// Используется для хранения расписаний и времени начала слотов
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero проверяет, что время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат HH:MM (часы 00-23, минуты 00-59)
func (t TimeString) Validate() error {
	hours, minutes, err := t.parts()
	if err != nil {
		return err
	}
	if hours < 0 || hours > 23 {
		return fmt.Errorf("%w: hours out of range: %d", ErrInvalidTimeString, hours)
	}
	if minutes < 0 || minutes > 59 {
		return fmt.Errorf("%w: minutes out of range: %d", ErrInvalidTimeString, minutes)
	}
	return nil
}

// TotalMinutes возвращает количество минут с начала суток
func (t TimeString) TotalMinutes() (int, error) {
	hours, minutes, err := t.parts()
	if err != nil {
		return 0, err
	}
	return hours*60 + minutes, nil
}

// AddMinutes возвращает новое время, сдвинутое на указанное количество минут
// Результат может выходить за пределы суток (например, "23:30" + 60 = "24:30")
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.TotalMinutes()
	if err != nil {
		return "", err
	}
	total += minutes
	if total < 0 {
		return "", fmt.Errorf("%w: negative result", ErrInvalidTimeString)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// OnDate привязывает время к дате в указанной таймзоне и возвращает момент в UTC
func (t TimeString) OnDate(date time.Time, loc *time.Location) (time.Time, error) {
	hours, minutes, err := t.parts()
	if err != nil {
		return time.Time{}, err
	}
	local := time.Date(date.Year(), date.Month(), date.Day(), hours, minutes, 0, 0, loc)
	return local.UTC(), nil
}

// Value реализует driver.Valuer для сохранения в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
	// Postgres TIME приходит как "10:00:00" - нормализуем до HH:MM
	if len(*t) > 5 {
		*t = (*t)[:5]
	}
	return nil
}

// parts разбирает строку на часы и минуты
func (t TimeString) parts() (int, int, error) {
	s := string(t)
	idx := strings.IndexByte(s, ':')
	if idx < 0 || len(s)-idx-1 < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	hours, err := strconv.Atoi(s[:idx])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minutes, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return hours, minutes, nil
}
