package calculate_price

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("calculate_price: session not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_price: internal error")
)
