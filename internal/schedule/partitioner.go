package schedule

import (
	"fmt"

	"github.com/tutorhub/lesson-booking-service/internal/domain"
	"github.com/tutorhub/lesson-booking-service/pkg/types"
)

// PartitionInterval нарезает сырой интервал [Start, End) на под-интервалы
// фиксированной длительности, жадно от начала интервала.
// Неполный хвост короче durationMinutes отбрасывается (не округляется и не дополняется).
// Интервал короче durationMinutes даёт пустой результат.
func PartitionInterval(interval domain.TimeRange, durationMinutes int) ([]domain.TimeRange, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("schedule: non-positive slot duration %d", durationMinutes)
	}

	startMin, err := interval.Start.TotalMinutes()
	if err != nil {
		return nil, fmt.Errorf("schedule: invalid interval start: %w", err)
	}
	endMin, err := interval.End.TotalMinutes()
	if err != nil {
		return nil, fmt.Errorf("schedule: invalid interval end: %w", err)
	}

	slots := make([]domain.TimeRange, 0)
	for cur := startMin; cur+durationMinutes <= endMin; cur += durationMinutes {
		slots = append(slots, domain.TimeRange{
			Start: minutesToTime(cur),
			End:   minutesToTime(cur + durationMinutes),
		})
	}
	return slots, nil
}

// PartitionIntervals нарезает упорядоченный набор интервалов, сохраняя порядок
func PartitionIntervals(intervals []domain.TimeRange, durationMinutes int) ([]domain.TimeRange, error) {
	slots := make([]domain.TimeRange, 0)
	for _, interval := range intervals {
		sub, err := PartitionInterval(interval, durationMinutes)
		if err != nil {
			return nil, err
		}
		slots = append(slots, sub...)
	}
	return slots, nil
}

func minutesToTime(total int) types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60))
}
