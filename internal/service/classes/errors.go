package classes

import "errors"

var (
	// ErrValidation возвращается при некорректных входных данных
	ErrValidation = errors.New("classes service: validation error")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("classes service: internal error")
)
