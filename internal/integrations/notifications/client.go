package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Типы событий, отправляемых в сервис уведомлений
const (
	EventBookingConfirmed   = "booking.confirmed"
	EventBookingRescheduled = "booking.rescheduled"
	EventBookingCancelled   = "booking.cancelled"
)

var ErrSendFailed = fmt.Errorf("notifications client: send failed")

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Event - событие для отправки уведомления участникам бронирования
type Event struct {
	EventID      string    `json:"event_id"`
	Type         string    `json:"type"`
	BookingID    int64     `json:"booking_id"`
	StudentID    int64     `json:"student_id"`
	InstructorID int64     `json:"instructor_id"`
	StartAt      time.Time `json:"start_at"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Client - HTTP-клиент сервиса уведомлений.
// Отправка выполняется по принципу best-effort: ошибки логируются вызывающей стороной.
type Client struct {
	baseURL string
	client  *http.Client
	logger  Logger
}

func NewClient(baseURL string, timeout time.Duration, logger Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Send отправляет событие в сервис уведомлений
func (c *Client) Send(ctx context.Context, event Event) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: Send - marshal event: %v", ErrSendFailed, err)
	}

	url := fmt.Sprintf("%s/internal/events", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: Send - create request: %v", ErrSendFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("[notifications] Send: type=%s booking_id=%d", event.Type, event.BookingID)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: Send - do request: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("%w: Send - unexpected status %d", ErrSendFailed, resp.StatusCode)
	}
	return nil
}
