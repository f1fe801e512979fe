package remove_promo

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

type SessionService interface {
	RemovePromo(ctx context.Context, id string) (domain.Draft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
