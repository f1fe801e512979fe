package update_player

import "github.com/m04kA/SMC-ArenaBooking/internal/service/sessions/models"

// UpdatePlayerRequest HTTP request model
type UpdatePlayerRequest struct {
	Name            string `json:"playerName"`
	Phone           string `json:"playerPhone"`
	Email           string `json:"playerEmail,omitempty"`
	Count           int    `json:"playerCount,omitempty"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdatePlayerRequest) ToServiceRequest() *models.PlayerRequest {
	return &models.PlayerRequest{
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		Count:           r.Count,
		SpecialRequests: r.SpecialRequests,
	}
}
