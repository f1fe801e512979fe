package get_slot_grid

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/session"
)

// UseCase use case получения сетки слотов с занятостью
type UseCase struct {
	sessions SessionRepository
	client   ArenaClient
	grid     *domain.Grid
	catalog  Catalog
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRepository, client ArenaClient, grid *domain.Grid, catalog Catalog, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		client:   client,
		grid:     grid,
		catalog:  catalog,
		logger:   logger,
	}
}

// Execute загружает занятые слоты корта на рабочий день и возвращает проекцию сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlotGrid: session=%s", req.SessionID)

	// 1. Получаем черновик
	draft, err := uc.sessions.Get(ctx, req.SessionID)
	if err != nil {
		return nil, uc.mapSessionError("get", req.SessionID, err)
	}

	if draft.CourtID == "" {
		return nil, ErrCourtNotSelected
	}
	if draft.Anchor.IsZero() {
		return nil, ErrDateNotSelected
	}

	// 2. Запрашиваем занятость у бэкенда (вне блокировки сессии)
	booked, err := uc.client.BookedSlots(ctx, draft.CourtID, draft.Anchor)
	if err != nil {
		uc.logger.Error("GetSlotGrid: failed to load booked slots for court=%s, date=%s: %v", draft.CourtID, draft.Anchor, err)
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	// 3. Сохраняем занятость, если корт и дата не изменились
	changed := false
	updated, err := uc.sessions.Update(ctx, req.SessionID, func(current domain.Draft) (domain.Draft, error) {
		if current.CourtID != draft.CourtID || !current.Anchor.Equal(draft.Anchor) {
			changed = true
			return current, nil
		}
		return current.WithUnavailable(booked), nil
	})
	if err != nil {
		return nil, uc.mapSessionError("update", req.SessionID, err)
	}

	if changed {
		uc.logger.Warn("GetSlotGrid: session=%s changed court or date during lookup", req.SessionID)
		// проекция строится по запрошенным корту и дате
		updated = draft.WithUnavailable(booked)
	}

	uc.logger.Info("GetSlotGrid: court=%s, date=%s, booked=%d", draft.CourtID, draft.Anchor, len(booked))

	return &Response{
		Draft:    updated,
		Slots:    project(uc.grid, updated),
		MinSlots: uc.catalog.MinSlotsFor(updated.Sport),
		Changed:  changed,
	}, nil
}

func (uc *UseCase) mapSessionError(op, sessionID string, err error) error {
	if errors.Is(err, session.ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	uc.logger.Error("GetSlotGrid: failed to %s session=%s: %v", op, sessionID, err)
	return fmt.Errorf("%w: failed to %s session: %v", ErrInternal, op, err)
}
