package get_slot_grid

import (
	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	getSlotGrid "github.com/m04kA/SMC-ArenaBooking/internal/usecase/get_slot_grid"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Index      int    `json:"index"`
	Time       string `json:"time"`  // "23:00"
	Label      string `json:"label"` // "11:00 PM"
	Status     string `json:"status"`
	NextDay    bool   `json:"isNextDay"`
	ActualDate string `json:"actualDate"`
}

// SlotGridResponse HTTP response model
type SlotGridResponse struct {
	Session  handlers.SessionResponse `json:"session"`
	Slots    []SlotResponse           `json:"slots"`
	MinSlots int                      `json:"minSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(p *handlers.Presenter, resp *getSlotGrid.Response) SlotGridResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			Index:      s.Index,
			Time:       s.Time.String(),
			Label:      s.Label,
			Status:     string(s.Status),
			NextDay:    s.NextDay,
			ActualDate: s.ActualDate,
		}
	}

	return SlotGridResponse{
		Session:  p.Session(resp.Draft),
		Slots:    slots,
		MinSlots: resp.MinSlots,
	}
}
