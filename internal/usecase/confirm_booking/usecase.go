package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-ArenaBooking/internal/integrations/arenaapi"
)

// UseCase use case подтверждения брони
type UseCase struct {
	sessions     SessionRepository
	client       ArenaClient
	grid         *domain.Grid
	catalog      Catalog
	pricer       PriceCalculator
	metrics      Metrics
	logger       Logger
	requireEmail bool
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionRepository,
	client ArenaClient,
	grid *domain.Grid,
	catalog Catalog,
	pricer PriceCalculator,
	metrics Metrics,
	logger Logger,
	requireEmail bool,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		client:       client,
		grid:         grid,
		catalog:      catalog,
		pricer:       pricer,
		metrics:      metrics,
		logger:       logger,
		requireEmail: requireEmail,
	}
}

// Execute отправляет бронь. Черновик помечается как отправляемый, повторное
// подтверждение до завершения отклоняется. При любой ошибке черновик остается
// прежним, при успехе удаляется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: session=%s", req.SessionID)

	// 1. Досчитываем цену, если ее еще нет
	if err := uc.ensurePrice(ctx, req.SessionID); err != nil {
		return nil, err
	}

	// 2. Проверяем черновик и ставим флаг отправки
	draft, err := uc.sessions.Update(ctx, req.SessionID, func(d domain.Draft) (domain.Draft, error) {
		if err := validateDraft(d, uc.catalog.MinSlotsFor(d.Sport), uc.requireEmail); err != nil {
			return d, err
		}
		return d.WithSubmitting(true), nil
	})
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		if isValidationError(err) {
			uc.logger.Warn("ConfirmBooking: session=%s validation failed: %v", req.SessionID, err)
			return nil, err
		}
		uc.logger.Error("ConfirmBooking: failed to update session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to update session: %v", ErrInternal, err)
	}

	// 3. Проверяем конфликты (закрыта по умолчанию)
	conflict, err := uc.client.CheckConflicts(ctx, arenaapi.ConflictRequest{
		Court:         draft.CourtID,
		Date:          draft.Anchor.String(),
		SelectedSlots: draft.Selection.Slots(),
	})
	if err != nil {
		uc.logger.Error("ConfirmBooking: conflict check failed for session=%s, blocking: %v", req.SessionID, err)
		if uc.metrics != nil {
			uc.metrics.IncConflictFailClosed()
		}
		uc.release(ctx, req.SessionID)
		uc.submitted(resultConflict)
		return nil, &BackendError{Kind: ErrConflict, Message: conflict.Message, Cause: err}
	}
	if conflict.HasConflict {
		uc.logger.Warn("ConfirmBooking: session=%s has conflicts %v: %s", req.SessionID, conflict.Conflicts, conflict.Message)
		uc.release(ctx, req.SessionID)
		uc.submitted(resultConflict)
		return nil, &BackendError{Kind: ErrConflict, Message: conflict.Message}
	}

	// 4. Создаем бронь
	created, err := uc.client.CreateBooking(ctx, arenaapi.NewCreateBookingRequest(draft))
	if err != nil {
		uc.release(ctx, req.SessionID)
		if arenaapi.IsRejected(err) {
			uc.logger.Warn("ConfirmBooking: backend rejected session=%s: %v", req.SessionID, err)
			uc.submitted(resultRejected)
			msg, _ := arenaapi.RejectionMessage(err)
			return nil, &BackendError{Kind: ErrRejected, Message: msg}
		}
		uc.logger.Error("ConfirmBooking: failed to create booking for session=%s: %v", req.SessionID, err)
		uc.submitted(resultError)
		return nil, &BackendError{Kind: ErrBackend, Message: "Booking failed. Please try again.", Cause: err}
	}

	// 5. Черновик больше не нужен
	if err := uc.sessions.Delete(ctx, req.SessionID); err != nil && !errors.Is(err, session.ErrSessionNotFound) {
		uc.logger.Error("ConfirmBooking: failed to delete session=%s after booking %s: %v", req.SessionID, created.BookingID, err)
	}
	uc.submitted(resultSuccess)

	resp := &Response{
		BookingID:    created.BookingID,
		Message:      created.Message,
		TotalAmount:  draft.TotalAmount,
		AmountDueNow: draft.AmountDueNow(),
		PaymentType:  draft.PaymentType,
		Booked:       draft.WithSubmitting(false),
	}
	if window, ok := draft.Window(uc.grid); ok {
		resp.Window = window.Display()
	}

	uc.logger.Info("ConfirmBooking: session=%s booked as %s, %s", req.SessionID, created.BookingID, resp.Window)
	return resp, nil
}

func (uc *UseCase) ensurePrice(ctx context.Context, sessionID string) error {
	draft, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get session=%s: %v", sessionID, err)
		return fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	if draft.PriceSource != domain.PriceNone || draft.Selection.IsEmpty() || uc.pricer == nil {
		return nil
	}

	if _, err := uc.pricer.Execute(ctx, sessionID); err != nil {
		uc.logger.Error("ConfirmBooking: failed to price session=%s: %v", sessionID, err)
	}
	return nil
}

// release снимает флаг отправки; выполняется и после отмены запроса клиентом
func (uc *UseCase) release(ctx context.Context, sessionID string) {
	_, err := uc.sessions.Update(context.WithoutCancel(ctx), sessionID, func(d domain.Draft) (domain.Draft, error) {
		return d.WithSubmitting(false), nil
	})
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to release session=%s: %v", sessionID, err)
	}
}

func (uc *UseCase) submitted(result string) {
	if uc.metrics != nil {
		uc.metrics.IncBookingSubmitted(result)
	}
}

func isValidationError(err error) bool {
	for _, target := range []error{
		ErrSubmissionInProgress,
		ErrEmptySelection,
		ErrBelowMinimum,
		ErrPlayerIncomplete,
		ErrEmailRequired,
		ErrPriceMissing,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
