package select_range

import (
	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// Request модель запроса на выбор диапазона по длительности
type Request struct {
	SessionID     string
	StartTime     types.TimeString
	DurationHours float64
}

// Response модель ответа
type Response struct {
	Draft        domain.Draft
	MinSlots     int
	MeetsMinimum bool
}
