package request_hold

import "time"

// RequestHoldIn - входные данные для запроса временного удержания слота.
// EndAt необязателен: если задан, запрошенный интервал обязан совпасть
// с границами слота из расписания.
type RequestHoldIn struct {
	StudentID    int64
	InstructorID int64
	ClassID      int64
	StartAt      time.Time
	EndAt        time.Time
	GroupSize    int
	OccupantRefs []string
}
