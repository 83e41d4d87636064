package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	cases := []struct {
		value   string
		wantErr bool
	}{
		{value: "00:00"},
		{value: "09:30"},
		{value: "23:59"},
		{value: "24:00", wantErr: true},
		{value: "12:60", wantErr: true},
		{value: "9:5", wantErr: true},
		{value: "abc", wantErr: true},
		{value: "", wantErr: true},
	}

	for _, c := range cases {
		err := TimeString(c.value).Validate()
		if c.wantErr {
			assert.Error(t, err, "value %q", c.value)
		} else {
			assert.NoError(t, err, "value %q", c.value)
		}
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	cases := []struct {
		start    string
		minutes  int
		expected string
	}{
		{start: "09:00", minutes: 30, expected: "09:30"},
		{start: "09:30", minutes: 30, expected: "10:00"},
		{start: "09:00", minutes: 90, expected: "10:30"},
		{start: "23:30", minutes: 60, expected: "24:30"},
		{start: "10:15", minutes: 0, expected: "10:15"},
	}

	for _, c := range cases {
		got, err := TimeString(c.start).AddMinutes(c.minutes)
		require.NoError(t, err)
		assert.Equal(t, TimeString(c.expected), got)
	}
}

func TestTimeString_Comparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:30"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	instant, err := TimeString("09:00").OnDate(date, loc)
	require.NoError(t, err)

	// Летом Берлин UTC+2: 09:00 локального = 07:00 UTC
	assert.Equal(t, time.Date(2024, 6, 3, 7, 0, 0, 0, time.UTC), instant)
	assert.Equal(t, time.UTC, instant.Location())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:15")))
	assert.Equal(t, TimeString("08:15"), ts)
}
