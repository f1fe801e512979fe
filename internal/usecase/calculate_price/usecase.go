package calculate_price

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-ArenaBooking/internal/integrations/arenaapi"
)

// UseCase use case расчета цены выбранных слотов
type UseCase struct {
	sessions SessionRepository
	client   ArenaClient
	catalog  Catalog
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRepository, client ArenaClient, catalog Catalog, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		client:   client,
		catalog:  catalog,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute пересчитывает цену черновика.
// Ошибка расчета никогда не блокирует бронирование: используется hourlyRate[sport] * duration.
func (uc *UseCase) Execute(ctx context.Context, sessionID string) (*Response, error) {
	// 1. Читаем текущий выбор
	draft, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	if draft.Selection.IsEmpty() {
		return &Response{Draft: draft}, nil
	}

	// 2. Запрашиваем динамическую цену (сетевой вызов вне блокировки сессии)
	amount, source, warning := uc.quote(ctx, draft)

	// 3. Сохраняем, только если выбор не изменился за время запроса
	stale := false
	updated, err := uc.sessions.Update(ctx, sessionID, func(current domain.Draft) (domain.Draft, error) {
		if !samePricingInput(current, draft) {
			stale = true
			return current, nil
		}
		return current.WithPrice(amount, source, warning), nil
	})
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("CalculatePrice: failed to update session=%s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: failed to update session: %v", ErrInternal, err)
	}

	if stale {
		uc.logger.Info("CalculatePrice: session=%s selection changed during pricing, result dropped", sessionID)
	}

	return &Response{Draft: updated, Stale: stale}, nil
}

func (uc *UseCase) quote(ctx context.Context, draft domain.Draft) (int64, domain.PriceSource, string) {
	req := arenaapi.NewPriceRequest(draft.CourtID, draft.Anchor, draft.Selection)

	amount, err := uc.client.CalculatePriceWithGracefulDegradation(ctx, req)
	if err == nil {
		return amount, domain.PriceDynamic, ""
	}

	fallback := uc.catalog.FallbackPrice(draft.Sport, draft.DurationHours)
	uc.logger.Warn("CalculatePrice: using fallback price %d for sport=%s, duration=%.1fh: %v",
		fallback, draft.Sport, draft.DurationHours, err)
	if uc.metrics != nil {
		uc.metrics.IncPriceFallback(draft.Sport)
	}
	return fallback, domain.PriceFallback, FallbackWarning
}

// samePricingInput сравнивает то, от чего зависит цена
func samePricingInput(a, b domain.Draft) bool {
	return a.CourtID == b.CourtID &&
		a.Sport == b.Sport &&
		a.Anchor.Equal(b.Anchor) &&
		reflect.DeepEqual(a.Selection.Slots(), b.Selection.Slots())
}
