package confirm_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("confirm_booking: session not found")

	// ErrEmptySelection возвращается, когда не выбран ни один слот
	ErrEmptySelection = errors.New("confirm_booking: no slots selected")

	// ErrBelowMinimum возвращается, когда выбрано меньше минимума для вида спорта
	ErrBelowMinimum = errors.New("confirm_booking: selection is shorter than the minimum")

	// ErrPlayerIncomplete возвращается, когда не заполнены имя или телефон
	ErrPlayerIncomplete = errors.New("confirm_booking: player details are incomplete")

	// ErrEmailRequired возвращается, когда email обязателен, но не указан
	ErrEmailRequired = errors.New("confirm_booking: email is required")

	// ErrPriceMissing возвращается, когда цену не удалось определить
	ErrPriceMissing = errors.New("confirm_booking: price is not calculated")

	// ErrSubmissionInProgress возвращается при повторном подтверждении, пока первое не завершено
	ErrSubmissionInProgress = errors.New("confirm_booking: booking submission in progress")

	// ErrConflict возвращается, когда слоты заняты или проверку выполнить не удалось
	ErrConflict = errors.New("confirm_booking: slots are not available")

	// ErrRejected возвращается, когда бэкенд отклонил бронь
	ErrRejected = errors.New("confirm_booking: booking rejected")

	// ErrBackend возвращается, когда бэкенд не смог создать бронь
	ErrBackend = errors.New("confirm_booking: backend error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)

// BackendError несет сообщение бэкенда для пользователя
type BackendError struct {
	Kind    error // ErrConflict, ErrRejected или ErrBackend
	Message string
	Cause   error
}

func (e *BackendError) Error() string {
	if e.Cause != nil {
		return e.Kind.Error() + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Kind.Error() + ": " + e.Message
}

func (e *BackendError) Unwrap() error {
	return e.Kind
}

// UserMessage возвращает сообщение бэкенда, если ошибка его содержит
func UserMessage(err error) (string, bool) {
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message, true
	}
	return "", false
}
