package get_available_slots

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func TestParseDateRange_DefaultWeekFromClock(t *testing.T) {
	now := time.Date(2025, 3, 3, 15, 30, 0, 0, time.UTC)
	h := &Handler{timeProvider: &fakeClock{now: now}}

	r := httptest.NewRequest("GET", "/api/v1/instructors/10/slots?class_id=100", nil)

	from, to, err := h.parseDateRange(r)
	require.NoError(t, err)

	// Диапазон по умолчанию отсчитывается от инжектированных часов
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), to)
}

func TestParseDateRange_ExplicitDates(t *testing.T) {
	h := &Handler{timeProvider: &fakeClock{now: time.Date(2025, 3, 3, 15, 30, 0, 0, time.UTC)}}

	r := httptest.NewRequest("GET", "/api/v1/instructors/10/slots?class_id=100&from=2025-04-01&to=2025-04-07", nil)

	from, to, err := h.parseDateRange(r)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 4, 7, 0, 0, 0, 0, time.UTC), to)
}

func TestParseDateRange_MalformedDate(t *testing.T) {
	h := &Handler{timeProvider: &fakeClock{now: time.Date(2025, 3, 3, 15, 30, 0, 0, time.UTC)}}

	r := httptest.NewRequest("GET", "/api/v1/instructors/10/slots?class_id=100&from=01.04.2025&to=2025-04-07", nil)

	_, _, err := h.parseDateRange(r)
	assert.Error(t, err)
}
