package payments

import "errors"

var (
	// ErrChargeDeclined возвращается, когда процессор отклонил операцию
	ErrChargeDeclined = errors.New("payments client: charge declined")

	// ErrChargeNotFound возвращается, когда платёж не найден у процессора
	ErrChargeNotFound = errors.New("payments client: charge not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе процессора
	ErrInvalidResponse = errors.New("payments client: invalid response")
)
