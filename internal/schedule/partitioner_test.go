package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	"github.com/tutorhub/lesson-booking-service/pkg/types"
)

func rng(start, end string) domain.TimeRange {
	return domain.TimeRange{Start: types.TimeString(start), End: types.TimeString(end)}
}

func TestPartitionInterval(t *testing.T) {
	cases := []struct {
		name     string
		interval domain.TimeRange
		duration int
		expected []domain.TimeRange
	}{
		{
			name:     "hour into two half-hour slots",
			interval: rng("09:00", "10:00"),
			duration: 30,
			expected: []domain.TimeRange{rng("09:00", "09:30"), rng("09:30", "10:00")},
		},
		{
			name:     "trailing fragment dropped",
			interval: rng("09:00", "10:15"),
			duration: 30,
			expected: []domain.TimeRange{rng("09:00", "09:30"), rng("09:30", "10:00")},
		},
		{
			name:     "interval shorter than duration yields nothing",
			interval: rng("09:00", "09:20"),
			duration: 30,
			expected: []domain.TimeRange{},
		},
		{
			name:     "exact single slot",
			interval: rng("14:00", "15:00"),
			duration: 60,
			expected: []domain.TimeRange{rng("14:00", "15:00")},
		},
		{
			name:     "boundaries derived from interval start, not round hours",
			interval: rng("09:10", "10:40"),
			duration: 45,
			expected: []domain.TimeRange{rng("09:10", "09:55"), rng("09:55", "10:40")},
		},
		{
			name:     "empty interval",
			interval: rng("09:00", "09:00"),
			duration: 30,
			expected: []domain.TimeRange{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := PartitionInterval(c.interval, c.duration)
			require.NoError(t, err)
			assert.Equal(t, c.expected, got)
		})
	}
}

// Количество слотов всегда ⌊L/D⌋, слоты не пересекаются, идут по возрастанию,
// каждый ровно длительности D
func TestPartitionInterval_Properties(t *testing.T) {
	durations := []int{15, 30, 45, 60, 90}
	intervals := []domain.TimeRange{
		rng("08:00", "12:00"),
		rng("09:05", "11:35"),
		rng("00:00", "23:59"),
		rng("10:00", "10:00"),
	}

	for _, interval := range intervals {
		startMin, err := interval.Start.TotalMinutes()
		require.NoError(t, err)
		endMin, err := interval.End.TotalMinutes()
		require.NoError(t, err)
		length := endMin - startMin

		for _, d := range durations {
			slots, err := PartitionInterval(interval, d)
			require.NoError(t, err)
			assert.Len(t, slots, length/d, "interval %v duration %d", interval, d)

			prevEnd := interval.Start
			for _, s := range slots {
				sStart, err := s.Start.TotalMinutes()
				require.NoError(t, err)
				sEnd, err := s.End.TotalMinutes()
				require.NoError(t, err)

				assert.Equal(t, d, sEnd-sStart, "slot length")
				assert.False(t, s.Start.IsBefore(prevEnd), "slots must not overlap")
				prevEnd = s.End
			}
		}
	}
}

func TestPartitionIntervals_InvalidDuration(t *testing.T) {
	_, err := PartitionIntervals([]domain.TimeRange{rng("09:00", "10:00")}, 0)
	assert.Error(t, err)
}
