package change_date

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/session"
)

// UseCase use case смены даты (якоря рабочего дня)
type UseCase struct {
	sessions     SessionRepository
	location     *time.Location
	windowDays   int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRepository, location *time.Location, windowDays int, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		sessions:     sessions,
		location:     location,
		windowDays:   windowDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute устанавливает якорь ровно один раз на смену даты.
// Выбор, занятость и цена сбрасываются: слоты привязаны к дню.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ChangeDate: session=%s, date=%s", req.SessionID, req.Date)

	// 1. Разбираем дату
	anchor, err := domain.ParseAnchor(req.Date)
	if err != nil {
		uc.logger.Warn("ChangeDate: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	// 2. Проверяем окно бронирования
	minDate, maxDate := bookingWindow(uc.timeProvider.Now(), uc.location, uc.windowDays)
	if err := validateDate(anchor, minDate, maxDate, uc.windowDays); err != nil {
		uc.logger.Warn("ChangeDate: date validation failed: %v", err)
		return nil, err
	}

	// 3. Обновляем черновик
	draft, err := uc.sessions.Update(ctx, req.SessionID, func(d domain.Draft) (domain.Draft, error) {
		if d.Submitting {
			return d, ErrSubmissionInProgress
		}
		return d.WithAnchor(anchor), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		case errors.Is(err, ErrSubmissionInProgress):
			uc.logger.Warn("ChangeDate: session=%s is submitting", req.SessionID)
			return nil, err
		}
		uc.logger.Error("ChangeDate: failed to update session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to update session: %v", ErrInternal, err)
	}

	uc.logger.Info("ChangeDate: session=%s anchored to %s", req.SessionID, anchor)

	return &Response{
		Draft:   draft,
		MinDate: minDate.String(),
		MaxDate: maxDate.String(),
	}, nil
}
