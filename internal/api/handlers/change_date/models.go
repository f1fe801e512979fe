package change_date

import (
	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	changeDate "github.com/m04kA/SMC-ArenaBooking/internal/usecase/change_date"
)

// ChangeDateRequest HTTP request model
type ChangeDateRequest struct {
	Date string `json:"date"` // "2024-06-10"
}

// ChangeDateResponse HTTP response model
type ChangeDateResponse struct {
	Session handlers.SessionResponse `json:"session"`
	MinDate string                   `json:"minDate"`
	MaxDate string                   `json:"maxDate"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ChangeDateRequest) ToUseCaseRequest(sessionID string) *changeDate.Request {
	return &changeDate.Request{
		SessionID: sessionID,
		Date:      r.Date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(p *handlers.Presenter, resp *changeDate.Response) ChangeDateResponse {
	return ChangeDateResponse{
		Session: p.Session(resp.Draft),
		MinDate: resp.MinDate,
		MaxDate: resp.MaxDate,
	}
}
