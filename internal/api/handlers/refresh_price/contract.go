package refresh_price

import (
	"context"

	calculatePrice "github.com/m04kA/SMC-ArenaBooking/internal/usecase/calculate_price"
)

type CalculatePriceUseCase interface {
	Execute(ctx context.Context, sessionID string) (*calculatePrice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
