package payments

// HoldChargeRequest - запрос на блокировку средств под бронирование
type HoldChargeRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// HoldChargeResponse - ответ процессора на блокировку средств
type HoldChargeResponse struct {
	PaymentRef string `json:"payment_ref"`
	Status     string `json:"status"`
}

// RefundRequest - запрос на возврат средств
type RefundRequest struct {
	Amount float64 `json:"amount"`
}

type errorResponse struct {
	Error string `json:"error"`
}
