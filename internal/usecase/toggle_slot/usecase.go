package toggle_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/session"
)

// Причины отказа для метрик
const (
	reasonNotConsecutive   = "not_consecutive"
	reasonBreaksContiguity = "breaks_contiguity"
	reasonUnavailable      = "unavailable"
)

// UseCase use case выбора/снятия слота
type UseCase struct {
	sessions SessionRepository
	grid     *domain.Grid
	catalog  Catalog
	pricer   PriceCalculator
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionRepository,
	grid *domain.Grid,
	catalog Catalog,
	pricer PriceCalculator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions: sessions,
		grid:     grid,
		catalog:  catalog,
		pricer:   pricer,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute переключает слот. Отклоненное переключение не меняет черновик.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ToggleSlot: session=%s, index=%d", req.SessionID, req.Index)

	// 1. Находим слот в сетке
	slot, err := uc.grid.At(req.Index)
	if err != nil {
		uc.logger.Warn("ToggleSlot: %v", err)
		return nil, fmt.Errorf("%w: index %d", ErrInvalidSlot, req.Index)
	}

	// 2. Применяем переключение под блокировкой сессии
	draft, err := uc.sessions.Update(ctx, req.SessionID, func(d domain.Draft) (domain.Draft, error) {
		if err := checkReady(d); err != nil {
			return d, err
		}

		sel, err := d.Selection.ToggleAvailable(slot, func(s domain.Slot) bool {
			return d.IsUnavailable(s.Time)
		})
		if err != nil {
			return d, err
		}
		return d.WithSelection(uc.grid, sel), nil
	})
	if err != nil {
		return nil, uc.mapError(req, err)
	}

	uc.logger.Info("ToggleSlot: session=%s now has %d slot(s), %.1fh", req.SessionID, draft.Selection.Len(), draft.DurationHours)

	// 3. Пересчитываем цену; ошибка расчета не блокирует выбор
	if uc.pricer != nil {
		priced, err := uc.pricer.Execute(ctx, req.SessionID)
		if err != nil {
			uc.logger.Error("ToggleSlot: price refresh failed for session=%s: %v", req.SessionID, err)
		} else {
			draft = priced.Draft
		}
	}

	minSlots := uc.catalog.MinSlotsFor(draft.Sport)
	return &Response{
		Draft:        draft,
		Selected:     draft.Selection.Contains(slot.Index),
		MinSlots:     minSlots,
		MeetsMinimum: draft.Selection.MeetsMinimum(minSlots),
	}, nil
}

func checkReady(d domain.Draft) error {
	switch {
	case d.Submitting:
		return ErrSubmissionInProgress
	case d.CourtID == "":
		return ErrCourtNotSelected
	case d.Anchor.IsZero():
		return ErrDateNotSelected
	}
	return nil
}

func (uc *UseCase) mapError(req *Request, err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return ErrSessionNotFound
	case errors.Is(err, domain.ErrNotConsecutive):
		uc.reject(req, reasonNotConsecutive)
		return ErrNotConsecutive
	case errors.Is(err, domain.ErrBreaksContiguity):
		uc.reject(req, reasonBreaksContiguity)
		return ErrBreaksContiguity
	case errors.Is(err, domain.ErrSlotUnavailable):
		uc.reject(req, reasonUnavailable)
		return ErrSlotUnavailable
	case errors.Is(err, ErrCourtNotSelected),
		errors.Is(err, ErrDateNotSelected),
		errors.Is(err, ErrSubmissionInProgress):
		uc.logger.Warn("ToggleSlot: session=%s: %v", req.SessionID, err)
		return err
	}

	uc.logger.Error("ToggleSlot: failed to update session=%s: %v", req.SessionID, err)
	return fmt.Errorf("%w: failed to update session: %v", ErrInternal, err)
}

func (uc *UseCase) reject(req *Request, reason string) {
	uc.logger.Warn("ToggleSlot: session=%s, index=%d rejected: %s", req.SessionID, req.Index, reason)
	if uc.metrics != nil {
		uc.metrics.IncSelectionRejection(reason)
	}
}
