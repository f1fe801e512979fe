package arenaapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// Исходы вызова для метрик
const (
	outcomeOK       = "ok"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

// Client клиент для работы с API арены: цены, занятость слотов, создание брони
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
	booked     singleflight.Group
}

// NewClient создает новый экземпляр клиента API арены
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// BookedSlots возвращает занятые метки времени корта на рабочий день.
// Одновременные запросы для одного корта и даты объединяются в один вызов.
func (c *Client) BookedSlots(ctx context.Context, court string, anchor domain.Anchor) ([]types.TimeString, error) {
	key := court + "|" + anchor.String()

	v, err, shared := c.booked.Do(key, func() (interface{}, error) {
		started := time.Now()

		var labels []types.TimeString
		status, err := c.postJSON(ctx, EndpointBookedSlots, BookedSlotsRequest{Court: court, Date: anchor.String()}, &labels)
		if err != nil {
			c.metrics.ObserveBackend(EndpointBookedSlots, outcomeError, started)
			return nil, err
		}
		if status != http.StatusOK {
			c.metrics.ObserveBackend(EndpointBookedSlots, outcomeRejected, started)
			return nil, fmt.Errorf("%w: booked slots: unexpected status code %d", ErrInvalidResponse, status)
		}

		c.metrics.ObserveBackend(EndpointBookedSlots, outcomeOK, started)
		return labels, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.log.Info("BookedSlots: shared lookup for court=%s, date=%s", court, anchor)
	}

	labels := v.([]types.TimeString)
	out := make([]types.TimeString, len(labels))
	copy(out, labels)
	return out, nil
}

// CalculatePrice запрашивает динамическую цену выбранных слотов
func (c *Client) CalculatePrice(ctx context.Context, req PriceRequest) (int64, error) {
	started := time.Now()

	var resp PriceResponse
	status, err := c.postJSON(ctx, EndpointCalculatePrice, req, &resp)
	if err != nil {
		c.metrics.ObserveBackend(EndpointCalculatePrice, outcomeError, started)
		return 0, err
	}

	// Обработка статус-кодов
	if status != http.StatusOK {
		c.metrics.ObserveBackend(EndpointCalculatePrice, outcomeRejected, started)
		return 0, fmt.Errorf("%w: calculate price: unexpected status code %d", ErrInvalidResponse, status)
	}
	if !resp.Success {
		c.metrics.ObserveBackend(EndpointCalculatePrice, outcomeRejected, started)
		return 0, &Rejection{Message: messageOr(resp.Message, "Price calculation failed")}
	}

	c.metrics.ObserveBackend(EndpointCalculatePrice, outcomeOK, started)
	return int64(math.Round(resp.TotalPrice)), nil
}

// CalculatePriceWithGracefulDegradation запрашивает цену с graceful degradation.
// При любой ошибке возвращает ErrServiceDegraded, что позволяет использовать резервный тариф.
func (c *Client) CalculatePriceWithGracefulDegradation(ctx context.Context, req PriceRequest) (int64, error) {
	c.log.Info("Calculating price for court=%s, date=%s, slots=%d", req.CourtID, req.BookingDate, len(req.SelectedSlots))

	price, err := c.CalculatePrice(ctx, req)
	if err != nil {
		c.log.Error("Pricing unavailable, applying graceful degradation for court=%s: %v", req.CourtID, err)
		return 0, fmt.Errorf("%w: court=%s, error=%v", ErrServiceDegraded, req.CourtID, err)
	}

	c.log.Info("Successfully calculated price for court=%s: %d", req.CourtID, price)
	return price, nil
}

// CheckConflicts проверяет, что слоты все еще свободны.
// Закрыт по умолчанию: если проверку выполнить не удалось, результат HasConflict=true
// с сообщением ConflictCheckFailedMessage, а причина возвращается в ошибке.
func (c *Client) CheckConflicts(ctx context.Context, req ConflictRequest) (ConflictResult, error) {
	started := time.Now()
	failed := ConflictResult{HasConflict: true, Message: ConflictCheckFailedMessage}

	var result ConflictResult
	status, err := c.postJSON(ctx, EndpointCheckConflicts, req, &result)
	if err != nil {
		c.metrics.ObserveBackend(EndpointCheckConflicts, outcomeError, started)
		c.log.Error("CheckConflicts: court=%s, date=%s: %v", req.Court, req.Date, err)
		return failed, err
	}

	if status != http.StatusOK {
		c.metrics.ObserveBackend(EndpointCheckConflicts, outcomeError, started)
		c.log.Error("CheckConflicts: court=%s, date=%s: unexpected status code %d", req.Court, req.Date, status)
		return failed, fmt.Errorf("%w: check conflicts: unexpected status code %d", ErrInvalidResponse, status)
	}

	c.metrics.ObserveBackend(EndpointCheckConflicts, outcomeOK, started)
	return result, nil
}

// CreateBooking отправляет бронь на бэкенд
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	started := time.Now()

	var resp CreateBookingResponse
	status, err := c.postJSON(ctx, EndpointCreateBooking, req, &resp)
	if err != nil {
		c.metrics.ObserveBackend(EndpointCreateBooking, outcomeError, started)
		return nil, err
	}

	switch {
	case status == http.StatusOK && resp.Success:
		c.metrics.ObserveBackend(EndpointCreateBooking, outcomeOK, started)
		return &resp, nil
	case status < http.StatusInternalServerError:
		c.metrics.ObserveBackend(EndpointCreateBooking, outcomeRejected, started)
		return nil, &Rejection{Message: messageOr(resp.Message, "Booking failed")}
	default:
		c.metrics.ObserveBackend(EndpointCreateBooking, outcomeError, started)
		return nil, fmt.Errorf("%w: create booking: status code %d: %s", ErrInvalidResponse, status, resp.Message)
	}
}

// ApplyPromoCode проверяет промокод и возвращает скидку
func (c *Client) ApplyPromoCode(ctx context.Context, req PromoRequest) (*PromoResult, error) {
	started := time.Now()

	var resp PromoResponse
	status, err := c.postJSON(ctx, EndpointApplyPromoCode, req, &resp)
	if err != nil {
		c.metrics.ObserveBackend(EndpointApplyPromoCode, outcomeError, started)
		return nil, err
	}

	switch {
	case status == http.StatusOK && resp.Success:
		c.metrics.ObserveBackend(EndpointApplyPromoCode, outcomeOK, started)
		return &PromoResult{
			Code:           req.PromoCode,
			DiscountAmount: int64(math.Round(resp.DiscountAmount)),
			FinalAmount:    int64(math.Round(resp.FinalAmount)),
			DiscountText:   resp.DiscountText,
			Message:        resp.Message,
		}, nil
	case status < http.StatusInternalServerError:
		c.metrics.ObserveBackend(EndpointApplyPromoCode, outcomeRejected, started)
		return nil, &Rejection{Message: messageOr(resp.Message, "Invalid promo code")}
	default:
		c.metrics.ObserveBackend(EndpointApplyPromoCode, outcomeError, started)
		return nil, fmt.Errorf("%w: apply promo code: status code %d", ErrInvalidResponse, status)
	}
}

// postJSON выполняет POST запрос и декодирует тело ответа в out.
// Тело декодируется и для 4xx: бэкенд возвращает в нем success=false и message.
func (c *Client) postJSON(ctx context.Context, endpoint string, body, out interface{}) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		if resp.StatusCode == http.StatusOK {
			return resp.StatusCode, fmt.Errorf("%w: empty response body", ErrInvalidResponse)
		}
		return resp.StatusCode, nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		if resp.StatusCode != http.StatusOK {
			// тело ошибки в другом формате, важен только статус
			return resp.StatusCode, nil
		}
		return resp.StatusCode, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return resp.StatusCode, nil
}

// IsRejected возвращает true, если бэкенд отклонил запрос по бизнес-причине
func IsRejected(err error) bool {
	return errors.Is(err, ErrRejected)
}

// RejectionMessage возвращает сообщение отказа бэкенда
func RejectionMessage(err error) (string, bool) {
	var r *Rejection
	if errors.As(err, &r) {
		return r.Message, true
	}
	return "", false
}

func messageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
