package arenaapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (запрос не был отправлен или не дошел)
	ErrInternal = errors.New("arenaapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("arenaapi client: invalid response")

	// ErrRejected возвращается, когда бэкенд ответил success=false
	ErrRejected = errors.New("arenaapi client: request rejected")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что расчет цены недоступен и следует использовать резервный тариф
	ErrServiceDegraded = errors.New("arenaapi unavailable: graceful degradation applied")
)

// Rejection отказ бэкенда (success=false) с сообщением для пользователя
type Rejection struct {
	Message string
}

func (r *Rejection) Error() string {
	return ErrRejected.Error() + ": " + r.Message
}

func (r *Rejection) Unwrap() error {
	return ErrRejected
}
