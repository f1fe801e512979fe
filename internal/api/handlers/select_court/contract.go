package select_court

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

type SessionService interface {
	SelectCourt(ctx context.Context, id, sport, courtID string) (domain.Draft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
