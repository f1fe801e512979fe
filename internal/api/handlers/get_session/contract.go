package get_session

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

type SessionService interface {
	Get(ctx context.Context, id string) (domain.Draft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
