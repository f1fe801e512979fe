package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-ArenaBooking/internal/integrations/arenaapi"
)

// SessionRepository интерфейс хранилища черновиков
type SessionRepository interface {
	Create(ctx context.Context, draft domain.Draft) error
	Get(ctx context.Context, id string) (domain.Draft, error)
	Update(ctx context.Context, id string, fn session.UpdateFunc) (domain.Draft, error)
	Delete(ctx context.Context, id string) error
}

// ArenaClient интерфейс клиента API арены
type ArenaClient interface {
	ApplyPromoCode(ctx context.Context, req arenaapi.PromoRequest) (*arenaapi.PromoResult, error)
}

// Catalog каталог видов спорта и кортов
type Catalog interface {
	Sports() []domain.Sport
	Sport(name string) (domain.Sport, error)
	Court(sport, courtID string) (domain.Court, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
