package toggle_slot

import (
	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	toggleSlot "github.com/m04kA/SMC-ArenaBooking/internal/usecase/toggle_slot"
)

// ToggleSlotResponse HTTP response model
type ToggleSlotResponse struct {
	Session  handlers.SessionResponse `json:"session"`
	Selected bool                     `json:"selected"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(p *handlers.Presenter, resp *toggleSlot.Response) ToggleSlotResponse {
	return ToggleSlotResponse{
		Session:  p.Session(resp.Draft),
		Selected: resp.Selected,
	}
}
