package get_slot_grid

import (
	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// Request модель запроса сетки слотов
type Request struct {
	SessionID string
}

// Response модель ответа: проекция сетки для UI
type Response struct {
	Draft    domain.Draft
	Slots    []SlotView
	MinSlots int
	Changed  bool // сессия сменила корт или дату во время запроса, занятость не сохранена
}

// SlotView состояние одного слота сетки
type SlotView struct {
	Index      int
	Time       types.TimeString
	Label      string // "11:00 PM"
	Status     domain.SlotStatus
	NextDay    bool
	ActualDate string // календарная дата слота, YYYY-MM-DD
}
