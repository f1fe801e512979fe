package change_date

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("change_date: session not found")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("change_date: invalid date")

	// ErrDateInPast возвращается, когда дата раньше сегодняшнего дня
	ErrDateInPast = errors.New("change_date: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна бронирования
	ErrDateTooFarInFuture = errors.New("change_date: date is too far in the future")

	// ErrSubmissionInProgress возвращается, пока бронь отправляется
	ErrSubmissionInProgress = errors.New("change_date: booking submission in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("change_date: internal error")
)
