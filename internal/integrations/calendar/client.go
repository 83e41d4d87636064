package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

var ErrCalendarUnavailable = fmt.Errorf("calendar client: service unavailable")

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Event - запись в календаре преподавателя
type Event struct {
	BookingID    int64     `json:"booking_id"`
	InstructorID int64     `json:"instructor_id"`
	Title        string    `json:"title"`
	StartAt      time.Time `json:"start_at"`
	EndAt        time.Time `json:"end_at"`
}

// Client - HTTP-клиент календарного сервиса.
// Все операции best-effort: расписание в БД остаётся источником истины.
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

// CreateEvent создаёт запись о занятии в календаре преподавателя
func (c *Client) CreateEvent(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: CreateEvent - marshal event: %v", ErrCalendarUnavailable, err)
	}

	url := fmt.Sprintf("%s/internal/events", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: CreateEvent - create request: %v", ErrCalendarUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("[calendar] CreateEvent: booking_id=%d", event.BookingID)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: CreateEvent - do request: %v", ErrCalendarUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%w: CreateEvent - unexpected status %d", ErrCalendarUnavailable, resp.StatusCode)
	}
	return nil
}

// DeleteEvent удаляет запись о занятии из календаря преподавателя
func (c *Client) DeleteEvent(ctx context.Context, bookingID int64) error {
	url := fmt.Sprintf("%s/internal/events/%d", c.baseURL, bookingID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("%w: DeleteEvent - create request: %v", ErrCalendarUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: DeleteEvent - do request: %v", ErrCalendarUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("%w: DeleteEvent - unexpected status %d", ErrCalendarUnavailable, resp.StatusCode)
	}
	return nil
}
