package confirm_booking

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-ArenaBooking/internal/integrations/arenaapi"
	"github.com/m04kA/SMC-ArenaBooking/internal/usecase/calculate_price"
)

// SessionRepository интерфейс хранилища черновиков
type SessionRepository interface {
	Get(ctx context.Context, id string) (domain.Draft, error)
	Update(ctx context.Context, id string, fn session.UpdateFunc) (domain.Draft, error)
	Delete(ctx context.Context, id string) error
}

// ArenaClient интерфейс клиента API арены
type ArenaClient interface {
	CheckConflicts(ctx context.Context, req arenaapi.ConflictRequest) (arenaapi.ConflictResult, error)
	CreateBooking(ctx context.Context, req arenaapi.CreateBookingRequest) (*arenaapi.CreateBookingResponse, error)
}

// PriceCalculator расчет цены, если черновик еще без цены
type PriceCalculator interface {
	Execute(ctx context.Context, sessionID string) (*calculate_price.Response, error)
}

// Catalog правила видов спорта
type Catalog interface {
	MinSlotsFor(sport string) int
}

// Metrics учет отправок
type Metrics interface {
	IncConflictFailClosed()
	IncBookingSubmitted(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
