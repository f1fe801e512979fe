package select_range

import (
	selectRange "github.com/m04kA/SMC-ArenaBooking/internal/usecase/select_range"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// SelectRangeRequest HTTP request model
type SelectRangeRequest struct {
	StartTime string  `json:"startTime"` // "23:00"
	Duration  float64 `json:"duration"`  // часы, 1.5
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectRangeRequest) ToUseCaseRequest(sessionID string) *selectRange.Request {
	return &selectRange.Request{
		SessionID:     sessionID,
		StartTime:     types.TimeString(r.StartTime),
		DurationHours: r.Duration,
	}
}
