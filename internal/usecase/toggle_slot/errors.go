package toggle_slot

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("toggle_slot: session not found")

	// ErrInvalidSlot возвращается, когда индекс вне сетки
	ErrInvalidSlot = errors.New("toggle_slot: slot is not part of the grid")

	// ErrCourtNotSelected возвращается, пока не выбран корт
	ErrCourtNotSelected = errors.New("toggle_slot: court is not selected")

	// ErrDateNotSelected возвращается, пока не выбрана дата
	ErrDateNotSelected = errors.New("toggle_slot: date is not selected")

	// ErrNotConsecutive возвращается, когда добавление слота разрывает непрерывность
	ErrNotConsecutive = errors.New("toggle_slot: slots must be consecutive")

	// ErrBreaksContiguity возвращается при снятии внутреннего слота
	ErrBreaksContiguity = errors.New("toggle_slot: only the ends of the selection can be removed")

	// ErrSlotUnavailable возвращается, когда слот уже занят
	ErrSlotUnavailable = errors.New("toggle_slot: slot is already booked")

	// ErrSubmissionInProgress возвращается, пока бронь отправляется
	ErrSubmissionInProgress = errors.New("toggle_slot: booking submission in progress")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("toggle_slot: internal error")
)
