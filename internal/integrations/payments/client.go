package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger - интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client - HTTP-клиент платёжного процессора
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

// CreateHoldCharge блокирует средства под бронирование и возвращает ссылку на платёж.
// Ключ идемпотентности защищает от двойного списания при повторе запроса.
func (c *Client) CreateHoldCharge(ctx context.Context, amount float64, description string) (string, error) {
	body, err := json.Marshal(HoldChargeRequest{Amount: amount, Description: description})
	if err != nil {
		return "", fmt.Errorf("%w: CreateHoldCharge - marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/charges/hold", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: CreateHoldCharge - create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	c.logger.Debug("[payments] CreateHoldCharge: amount=%.2f", amount)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: CreateHoldCharge - do request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		var result HoldChargeResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return "", fmt.Errorf("%w: CreateHoldCharge - decode response: %v", ErrInvalidResponse, err)
		}
		if result.PaymentRef == "" {
			return "", fmt.Errorf("%w: CreateHoldCharge - empty payment_ref", ErrInvalidResponse)
		}
		c.logger.Info("[payments] CreateHoldCharge: created payment_ref=%s", result.PaymentRef)
		return result.PaymentRef, nil
	case http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		var errResp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		c.logger.Warn("[payments] CreateHoldCharge: declined: %s", errResp.Error)
		return "", fmt.Errorf("%w: %s", ErrChargeDeclined, errResp.Error)
	default:
		return "", fmt.Errorf("%w: CreateHoldCharge - unexpected status %d", ErrInternal, resp.StatusCode)
	}
}

// ConfirmCharge подтверждает списание заблокированных средств
func (c *Client) ConfirmCharge(ctx context.Context, paymentRef string) error {
	url := fmt.Sprintf("%s/internal/charges/%s/confirm", c.baseURL, paymentRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("%w: ConfirmCharge - create request: %v", ErrInternal, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: ConfirmCharge - do request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		c.logger.Info("[payments] ConfirmCharge: confirmed payment_ref=%s", paymentRef)
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%w: payment_ref=%s", ErrChargeNotFound, paymentRef)
	case http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		var errResp errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("%w: %s", ErrChargeDeclined, errResp.Error)
	default:
		return fmt.Errorf("%w: ConfirmCharge - unexpected status %d", ErrInternal, resp.StatusCode)
	}
}

// Refund возвращает средства (полностью или частично - за вычетом комиссии)
func (c *Client) Refund(ctx context.Context, paymentRef string, amount float64) error {
	body, err := json.Marshal(RefundRequest{Amount: amount})
	if err != nil {
		return fmt.Errorf("%w: Refund - marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/charges/%s/refund", c.baseURL, paymentRef)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: Refund - create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: Refund - do request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		c.logger.Info("[payments] Refund: refunded payment_ref=%s amount=%.2f", paymentRef, amount)
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%w: payment_ref=%s", ErrChargeNotFound, paymentRef)
	default:
		return fmt.Errorf("%w: Refund - unexpected status %d", ErrInternal, resp.StatusCode)
	}
}
