package apply_promo

import (
	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions/models"
)

// ApplyPromoRequest HTTP request model
type ApplyPromoRequest struct {
	PromoCode string `json:"promoCode"`
}

// ApplyPromoResponse HTTP response model
type ApplyPromoResponse struct {
	Success      bool                     `json:"success"`
	Session      handlers.SessionResponse `json:"session"`
	DiscountText string                   `json:"discountText,omitempty"`
	Message      string                   `json:"message,omitempty"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP модель
func FromServiceResponse(p *handlers.Presenter, resp *models.PromoResponse) ApplyPromoResponse {
	return ApplyPromoResponse{
		Success:      true,
		Session:      p.Session(resp.Draft),
		DiscountText: resp.DiscountText,
		Message:      resp.Message,
	}
}
