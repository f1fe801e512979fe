package apply_promo

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions/models"
)

type SessionService interface {
	ApplyPromo(ctx context.Context, id, code string) (*models.PromoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
