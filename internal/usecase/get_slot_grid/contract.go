package get_slot_grid

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// SessionRepository интерфейс хранилища черновиков
type SessionRepository interface {
	Get(ctx context.Context, id string) (domain.Draft, error)
	Update(ctx context.Context, id string, fn session.UpdateFunc) (domain.Draft, error)
}

// ArenaClient интерфейс клиента API арены
type ArenaClient interface {
	BookedSlots(ctx context.Context, court string, anchor domain.Anchor) ([]types.TimeString, error)
}

// Catalog правила видов спорта
type Catalog interface {
	MinSlotsFor(sport string) int
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
