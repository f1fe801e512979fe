package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-ArenaBooking/internal/integrations/arenaapi"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions/models"
)

// Service сервис простых операций над черновиком брони
type Service struct {
	sessions          SessionRepository
	client            ArenaClient
	catalog           Catalog
	grid              *domain.Grid
	phoneRegion       string
	bookingWindowDays int
	timeProvider      TimeProvider
	logger            Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	sessions SessionRepository,
	client ArenaClient,
	catalog Catalog,
	grid *domain.Grid,
	phoneRegion string,
	bookingWindowDays int,
	logger Logger,
) *Service {
	return &Service{
		sessions:          sessions,
		client:            client,
		catalog:           catalog,
		grid:              grid,
		phoneRegion:       phoneRegion,
		bookingWindowDays: bookingWindowDays,
		timeProvider:      &RealTimeProvider{},
		logger:            logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Create создает новую сессию мастера бронирования
func (s *Service) Create(ctx context.Context, req *models.CreateSessionRequest) (domain.Draft, error) {
	draft := domain.NewDraft(uuid.NewString(), s.timeProvider.Now())

	if req != nil && req.Sport != "" {
		sport, court, err := s.lookupCourt(req.Sport, req.CourtID)
		if err != nil {
			s.logger.Warn("Create: %v", err)
			return domain.Draft{}, err
		}
		draft = draft.WithCourt(sport, court)
	}

	if err := s.sessions.Create(ctx, draft); err != nil {
		s.logger.Error("Create: repository error for session=%s: %v", draft.ID, err)
		return domain.Draft{}, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: session=%s created, sport=%s, court=%s", draft.ID, draft.Sport, draft.CourtID)
	return draft, nil
}

// Get возвращает черновик
func (s *Service) Get(ctx context.Context, id string) (domain.Draft, error) {
	if !isSessionID(id) {
		return domain.Draft{}, ErrSessionNotFound
	}

	draft, err := s.sessions.Get(ctx, id)
	if err != nil {
		return domain.Draft{}, s.repositoryError("Get", id, err)
	}
	return draft, nil
}

// Discard удаляет черновик (сброс мастера)
func (s *Service) Discard(ctx context.Context, id string) error {
	if !isSessionID(id) {
		return ErrSessionNotFound
	}

	if err := s.sessions.Delete(ctx, id); err != nil {
		return s.repositoryError("Discard", id, err)
	}

	s.logger.Info("Discard: session=%s discarded", id)
	return nil
}

// SelectCourt выбирает вид спорта и корт; смена корта сбрасывает выбор слотов
func (s *Service) SelectCourt(ctx context.Context, id, sportName, courtID string) (domain.Draft, error) {
	if !isSessionID(id) {
		return domain.Draft{}, ErrSessionNotFound
	}

	sport, court, err := s.lookupCourt(sportName, courtID)
	if err != nil {
		s.logger.Warn("SelectCourt: session=%s: %v", id, err)
		return domain.Draft{}, err
	}

	return s.update(ctx, "SelectCourt", id, func(d domain.Draft) (domain.Draft, error) {
		return d.WithCourt(sport, court), nil
	})
}

// UpdatePlayer проверяет и сохраняет данные игрока
func (s *Service) UpdatePlayer(ctx context.Context, id string, req *models.PlayerRequest) (domain.Draft, error) {
	if !isSessionID(id) {
		return domain.Draft{}, ErrSessionNotFound
	}

	player, err := validatePlayer(req, s.phoneRegion)
	if err != nil {
		s.logger.Warn("UpdatePlayer: session=%s validation failed: %v", id, err)
		return domain.Draft{}, err
	}

	return s.update(ctx, "UpdatePlayer", id, func(d domain.Draft) (domain.Draft, error) {
		return d.WithPlayer(player), nil
	})
}

// SetPaymentType выбирает предоплату 50% или полную оплату
func (s *Service) SetPaymentType(ctx context.Context, id, paymentType string) (domain.Draft, error) {
	if !isSessionID(id) {
		return domain.Draft{}, ErrSessionNotFound
	}

	pt, err := parsePaymentType(paymentType)
	if err != nil {
		return domain.Draft{}, err
	}

	return s.update(ctx, "SetPaymentType", id, func(d domain.Draft) (domain.Draft, error) {
		return d.WithPaymentType(pt), nil
	})
}

// ApplyPromo проверяет промокод на бэкенде и применяет скидку.
// Скидка сохраняется, только если исходная сумма не изменилась за время проверки.
func (s *Service) ApplyPromo(ctx context.Context, id, code string) (*models.PromoResponse, error) {
	if !isSessionID(id) {
		return nil, ErrSessionNotFound
	}

	// 1. Валидация кода
	code, err := normalizePromoCode(code)
	if err != nil {
		return nil, err
	}

	// 2. Читаем текущую цену
	draft, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, s.repositoryError("ApplyPromo", id, err)
	}
	if draft.OriginalAmount <= 0 {
		return nil, ErrPriceNotCalculated
	}

	// 3. Проверяем код на бэкенде
	result, err := s.client.ApplyPromoCode(ctx, arenaapi.PromoRequest{
		PromoCode:     code,
		BookingAmount: draft.OriginalAmount,
		Sport:         draft.Sport,
	})
	if err != nil {
		if arenaapi.IsRejected(err) {
			s.logger.Warn("ApplyPromo: session=%s, code=%s rejected: %v", id, code, err)
			return nil, fmt.Errorf("%w: %w", ErrPromoRejected, err)
		}
		s.logger.Error("ApplyPromo: session=%s, code=%s: %v", id, code, err)
		return nil, fmt.Errorf("%w: %v", ErrPromoUnavailable, err)
	}

	// 4. Применяем скидку к той же сумме
	updated, err := s.update(ctx, "ApplyPromo", id, func(d domain.Draft) (domain.Draft, error) {
		if d.OriginalAmount != draft.OriginalAmount {
			return d, ErrPriceChanged
		}
		return d.WithPromo(code, result.DiscountAmount, result.FinalAmount), nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ApplyPromo: session=%s, code=%s, discount=%d, total=%d", id, code, result.DiscountAmount, result.FinalAmount)
	return &models.PromoResponse{
		Draft:        updated,
		DiscountText: result.DiscountText,
		Message:      result.Message,
	}, nil
}

// RemovePromo снимает промокод и восстанавливает исходную сумму
func (s *Service) RemovePromo(ctx context.Context, id string) (domain.Draft, error) {
	if !isSessionID(id) {
		return domain.Draft{}, ErrSessionNotFound
	}

	return s.update(ctx, "RemovePromo", id, func(d domain.Draft) (domain.Draft, error) {
		return d.WithoutPromo(), nil
	})
}

// Catalog возвращает виды спорта, корты и окно работы арены
func (s *Service) Catalog() *models.CatalogResponse {
	return &models.CatalogResponse{
		Sports:            s.catalog.Sports(),
		OpenHour:          s.grid.OpenHour(),
		CloseHour:         s.grid.CloseHour(),
		SlotMinutes:       domain.SlotDurationMinutes,
		BookingWindowDays: s.bookingWindowDays,
	}
}

// update применяет fn к черновику; пока бронь отправляется, черновик не меняется
func (s *Service) update(ctx context.Context, op, id string, fn session.UpdateFunc) (domain.Draft, error) {
	draft, err := s.sessions.Update(ctx, id, func(d domain.Draft) (domain.Draft, error) {
		if d.Submitting {
			return d, ErrSubmissionInProgress
		}
		return fn(d)
	})
	if err != nil {
		if errors.Is(err, ErrSubmissionInProgress) || errors.Is(err, ErrPriceChanged) {
			s.logger.Warn("%s: session=%s: %v", op, id, err)
			return domain.Draft{}, err
		}
		return domain.Draft{}, s.repositoryError(op, id, err)
	}
	return draft, nil
}

func (s *Service) lookupCourt(sportName, courtID string) (domain.Sport, domain.Court, error) {
	sport, err := s.catalog.Sport(sportName)
	if err != nil {
		return domain.Sport{}, domain.Court{}, fmt.Errorf("%w: %s", ErrUnknownSport, sportName)
	}
	court, err := s.catalog.Court(sportName, courtID)
	if err != nil {
		return domain.Sport{}, domain.Court{}, fmt.Errorf("%w: %s", ErrUnknownCourt, courtID)
	}
	return sport, court, nil
}

func (s *Service) repositoryError(op, id string, err error) error {
	if errors.Is(err, session.ErrSessionNotFound) {
		s.logger.Warn("%s: session=%s not found", op, id)
		return ErrSessionNotFound
	}
	s.logger.Error("%s: repository error for session=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

// isSessionID отсекает идентификаторы, которые не могут существовать
func isSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
