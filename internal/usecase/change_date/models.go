package change_date

import "github.com/m04kA/SMC-ArenaBooking/internal/domain"

// Request модель запроса на смену даты
type Request struct {
	SessionID string
	Date      string // YYYY-MM-DD, якорь рабочего дня
}

// Response модель ответа
type Response struct {
	Draft   domain.Draft
	MinDate string // сегодня
	MaxDate string // сегодня + окно бронирования
}
