package set_payment_type

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

type SessionService interface {
	SetPaymentType(ctx context.Context, id, paymentType string) (domain.Draft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
