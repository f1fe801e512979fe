package calculate_price

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-ArenaBooking/internal/integrations/arenaapi"
)

// SessionRepository интерфейс хранилища черновиков
type SessionRepository interface {
	Get(ctx context.Context, id string) (domain.Draft, error)
	Update(ctx context.Context, id string, fn session.UpdateFunc) (domain.Draft, error)
}

// ArenaClient интерфейс клиента API арены
type ArenaClient interface {
	CalculatePriceWithGracefulDegradation(ctx context.Context, req arenaapi.PriceRequest) (int64, error)
}

// Catalog резервные тарифы по видам спорта
type Catalog interface {
	FallbackPrice(sport string, durationHours float64) int64
}

// Metrics учет использования резервного тарифа
type Metrics interface {
	IncPriceFallback(sport string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
