package get_slot_grid

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("get_slot_grid: session not found")

	// ErrCourtNotSelected возвращается, пока не выбран корт
	ErrCourtNotSelected = errors.New("get_slot_grid: court is not selected")

	// ErrDateNotSelected возвращается, пока не выбрана дата
	ErrDateNotSelected = errors.New("get_slot_grid: date is not selected")

	// ErrBackendUnavailable возвращается, когда занятость слотов получить не удалось
	ErrBackendUnavailable = errors.New("get_slot_grid: booked slots are unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_slot_grid: internal error")
)
