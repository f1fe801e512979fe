package create_session

import "github.com/m04kA/SMC-ArenaBooking/internal/service/sessions/models"

// CreateSessionRequest HTTP request model; оба поля необязательны
type CreateSessionRequest struct {
	Sport   string `json:"sport,omitempty"`
	CourtID string `json:"courtId,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateSessionRequest) ToServiceRequest() *models.CreateSessionRequest {
	return &models.CreateSessionRequest{
		Sport:   r.Sport,
		CourtID: r.CourtID,
	}
}
