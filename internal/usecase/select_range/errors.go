package select_range

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("select_range: session not found")

	// ErrInvalidRange возвращается при некорректном начале или длительности
	ErrInvalidRange = errors.New("select_range: invalid range")

	// ErrCourtNotSelected возвращается, пока не выбран корт
	ErrCourtNotSelected = errors.New("select_range: court is not selected")

	// ErrDateNotSelected возвращается, пока не выбрана дата
	ErrDateNotSelected = errors.New("select_range: date is not selected")

	// ErrSlotUnavailable возвращается, когда один из слотов диапазона занят
	ErrSlotUnavailable = errors.New("select_range: range contains a booked slot")

	// ErrSubmissionInProgress возвращается, пока бронь отправляется
	ErrSubmissionInProgress = errors.New("select_range: booking submission in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("select_range: internal error")
)
