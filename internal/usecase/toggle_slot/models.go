package toggle_slot

import "github.com/m04kA/SMC-ArenaBooking/internal/domain"

// Request модель запроса на переключение слота
type Request struct {
	SessionID string
	Index     int // индекс слота в сетке
}

// Response модель ответа
type Response struct {
	Draft        domain.Draft
	Selected     bool // слот выбран после переключения
	MinSlots     int
	MeetsMinimum bool
}
