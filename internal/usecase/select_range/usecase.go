package select_range

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/session"
)

// UseCase use case выбора непрерывного диапазона по началу и длительности
// (административный сценарий бронирования)
type UseCase struct {
	sessions SessionRepository
	grid     *domain.Grid
	catalog  Catalog
	pricer   PriceCalculator
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRepository, grid *domain.Grid, catalog Catalog, pricer PriceCalculator, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		grid:     grid,
		catalog:  catalog,
		pricer:   pricer,
		logger:   logger,
	}
}

// Execute заменяет выбор диапазоном из сетки. Неполный слот округляется вверх.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectRange: session=%s, start=%s, duration=%.2fh", req.SessionID, req.StartTime, req.DurationHours)

	// 1. Валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectRange: validation failed: %v", err)
		return nil, err
	}

	// 2. Переводим длительность в слоты сетки
	sel, err := uc.grid.RangeForDuration(req.StartTime, req.DurationHours)
	if err != nil {
		uc.logger.Warn("SelectRange: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	// 3. Сохраняем выбор
	draft, err := uc.sessions.Update(ctx, req.SessionID, func(d domain.Draft) (domain.Draft, error) {
		switch {
		case d.Submitting:
			return d, ErrSubmissionInProgress
		case d.CourtID == "":
			return d, ErrCourtNotSelected
		case d.Anchor.IsZero():
			return d, ErrDateNotSelected
		}
		if booked, found := firstUnavailable(d, sel); found {
			return d, fmt.Errorf("%w: %s", ErrSlotUnavailable, booked.Time)
		}
		return d.WithSelection(uc.grid, sel), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		case errors.Is(err, ErrSubmissionInProgress),
			errors.Is(err, ErrCourtNotSelected),
			errors.Is(err, ErrDateNotSelected),
			errors.Is(err, ErrSlotUnavailable):
			uc.logger.Warn("SelectRange: session=%s: %v", req.SessionID, err)
			return nil, err
		}
		uc.logger.Error("SelectRange: failed to update session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to update session: %v", ErrInternal, err)
	}

	// 4. Пересчитываем цену
	if uc.pricer != nil {
		priced, err := uc.pricer.Execute(ctx, req.SessionID)
		if err != nil {
			uc.logger.Error("SelectRange: price refresh failed for session=%s: %v", req.SessionID, err)
		} else {
			draft = priced.Draft
		}
	}

	minSlots := uc.catalog.MinSlotsFor(draft.Sport)
	return &Response{
		Draft:        draft,
		MinSlots:     minSlots,
		MeetsMinimum: draft.Selection.MeetsMinimum(minSlots),
	}, nil
}
