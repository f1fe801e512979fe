package sessions

import (
	"errors"

	"github.com/m04kA/SMC-ArenaBooking/internal/integrations/arenaapi"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrUnknownSport возвращается, когда вида спорта нет в каталоге
	ErrUnknownSport = errors.New("sessions: unknown sport")

	// ErrUnknownCourt возвращается, когда корта нет в каталоге или он другого вида спорта
	ErrUnknownCourt = errors.New("sessions: unknown court")

	// ErrInvalidName возвращается при слишком коротком или длинном имени
	ErrInvalidName = errors.New("sessions: invalid player name")

	// ErrInvalidPhone возвращается при некорректном номере телефона
	ErrInvalidPhone = errors.New("sessions: invalid phone number")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("sessions: invalid email")

	// ErrInvalidPlayerCount возвращается при недопустимом количестве игроков
	ErrInvalidPlayerCount = errors.New("sessions: invalid player count")

	// ErrSpecialRequestsTooLong возвращается при слишком длинных пожеланиях
	ErrSpecialRequestsTooLong = errors.New("sessions: special requests are too long")

	// ErrInvalidPaymentType возвращается при неизвестном типе оплаты
	ErrInvalidPaymentType = errors.New("sessions: invalid payment type")

	// ErrInvalidPromoCode возвращается при пустом или слишком длинном промокоде
	ErrInvalidPromoCode = errors.New("sessions: invalid promo code")

	// ErrPriceNotCalculated возвращается, когда промокод применяется до расчета цены
	ErrPriceNotCalculated = errors.New("sessions: price is not calculated yet")

	// ErrPromoRejected возвращается, когда бэкенд отклонил промокод
	ErrPromoRejected = errors.New("sessions: promo code rejected")

	// ErrPromoUnavailable возвращается, когда проверить промокод не удалось
	ErrPromoUnavailable = errors.New("sessions: promo service unavailable")

	// ErrPriceChanged возвращается, когда цена изменилась во время проверки промокода
	ErrPriceChanged = errors.New("sessions: price changed while applying promo code")

	// ErrSubmissionInProgress возвращается, пока бронь отправляется
	ErrSubmissionInProgress = errors.New("sessions: booking submission in progress")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions: internal error")
)

// RejectionMessage возвращает сообщение бэкенда об отказе в промокоде
func RejectionMessage(err error) (string, bool) {
	return arenaapi.RejectionMessage(err)
}
