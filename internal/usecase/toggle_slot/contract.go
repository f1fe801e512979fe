package toggle_slot

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-ArenaBooking/internal/usecase/calculate_price"
)

// SessionRepository интерфейс хранилища черновиков
type SessionRepository interface {
	Update(ctx context.Context, id string, fn session.UpdateFunc) (domain.Draft, error)
}

// PriceCalculator пересчет цены после изменения выбора
type PriceCalculator interface {
	Execute(ctx context.Context, sessionID string) (*calculate_price.Response, error)
}

// Catalog правила видов спорта
type Catalog interface {
	MinSlotsFor(sport string) int
}

// Metrics учет отклоненных выборов
type Metrics interface {
	IncSelectionRejection(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
