package arenaapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/pkg/logger"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, logger.Nop(), nil)
}

func anchor(t *testing.T) domain.Anchor {
	t.Helper()
	a, err := domain.ParseAnchor("2024-06-10")
	require.NoError(t, err)
	return a
}

func crossMidnightSelection(t *testing.T) domain.Selection {
	t.Helper()
	g := domain.DefaultGrid()
	sel, err := g.Range("23:00", 3)
	require.NoError(t, err)
	return sel
}

func TestClient_BookedSlots(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, EndpointBookedSlots, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req BookedSlotsRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "padel-1", req.Court)
		assert.Equal(t, "2024-06-10", req.Date)

		_, _ = w.Write([]byte(`["18:00","00:30"]`))
	})

	labels, err := client.BookedSlots(context.Background(), "padel-1", anchor(t))
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"18:00", "00:30"}, labels)
}

func TestClient_BookedSlotsDeduplicatesConcurrentCalls(t *testing.T) {
	var calls int32
	release := make(chan struct{})

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		<-release
		_, _ = w.Write([]byte(`["14:00"]`))
	})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			labels, err := client.BookedSlots(context.Background(), "padel-1", anchor(t))
			assert.NoError(t, err)
			assert.Equal(t, []types.TimeString{"14:00"}, labels)
		}()
	}

	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(5))
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(1))
}

func TestClient_BookedSlotsServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
	})

	_, err := client.BookedSlots(context.Background(), "padel-1", anchor(t))
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_CalculatePrice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, EndpointCalculatePrice, r.URL.Path)

		var req PriceRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "padel-1", req.CourtID)
		assert.Equal(t, "2024-06-10", req.BookingDate)
		if assert.Len(t, req.SelectedSlots, 3) {
			assert.Equal(t, types.TimeString("00:00"), req.SelectedSlots[2].Time)
			assert.Equal(t, 20, req.SelectedSlots[2].Index)
		}

		_, _ = w.Write([]byte(`{"success":true,"total_price":8250.0}`))
	})

	price, err := client.CalculatePrice(context.Background(), NewPriceRequest("padel-1", anchor(t), crossMidnightSelection(t)))
	require.NoError(t, err)
	assert.Equal(t, int64(8250), price)
}

func TestClient_CalculatePriceWithGracefulDegradation(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"success false", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"message":"no pricing rule"}`))
		}},
		{"garbage", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			_, err := client.CalculatePriceWithGracefulDegradation(context.Background(), NewPriceRequest("padel-1", anchor(t), crossMidnightSelection(t)))
			assert.ErrorIs(t, err, ErrServiceDegraded)
		})
	}
}

func TestClient_CalculatePriceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, time.Second, logger.Nop(), nil)

	_, err := client.CalculatePriceWithGracefulDegradation(context.Background(), NewPriceRequest("padel-1", anchor(t), crossMidnightSelection(t)))
	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestClient_CheckConflicts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req ConflictRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2024-06-10", req.Date)

		_, _ = w.Write([]byte(`{"hasConflict":true,"message":"Slots no longer available","conflicts":["23:30"]}`))
	})

	res, err := client.CheckConflicts(context.Background(), ConflictRequest{Court: "padel-1", Date: "2024-06-10", SelectedSlots: crossMidnightSelection(t).Slots()})
	require.NoError(t, err)
	assert.True(t, res.HasConflict)
	assert.Equal(t, "Slots no longer available", res.Message)
	assert.Equal(t, []types.TimeString{"23:30"}, res.Conflicts)
}

func TestClient_CheckConflictsFailsClosed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"hasConflict":false,"message":"oops"}`))
	})

	res, err := client.CheckConflicts(context.Background(), ConflictRequest{Court: "padel-1", Date: "2024-06-10"})
	assert.Error(t, err)
	assert.True(t, res.HasConflict)
	assert.Equal(t, ConflictCheckFailedMessage, res.Message)
}

func TestClient_CheckConflictsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"hasConflict":false}`))
	}))
	t.Cleanup(srv.Close)
	client := NewClient(srv.URL, 50*time.Millisecond, logger.Nop(), nil)

	res, err := client.CheckConflicts(context.Background(), ConflictRequest{Court: "padel-1", Date: "2024-06-10"})
	assert.ErrorIs(t, err, ErrInternal)
	assert.True(t, res.HasConflict)
	assert.Equal(t, ConflictCheckFailedMessage, res.Message)
}

func TestClient_CreateBookingSendsAnchorDate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, EndpointCreateBooking, r.URL.Path)

		var req CreateBookingRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2024-06-10", req.Date)
		assert.Equal(t, "2024-06-10", req.BookingDate)
		assert.Equal(t, "2024-06-11", req.ActualEndDate)
		assert.True(t, req.IsCrossMidnight)
		assert.Equal(t, 1.5, req.Duration)

		_, _ = w.Write([]byte(`{"success":true,"bookingId":"BK-1001","message":"Booking created successfully"}`))
	})

	c := domain.DefaultCatalog()
	sport, _ := c.Sport("padel")
	court, _ := c.Court("padel", "padel-1")
	draft := domain.NewDraft("s-1", time.Now()).
		WithCourt(sport, court).
		WithAnchor(anchor(t)).
		WithSelection(domain.DefaultGrid(), crossMidnightSelection(t))

	resp, err := client.CreateBooking(context.Background(), NewCreateBookingRequest(draft))
	require.NoError(t, err)
	assert.Equal(t, "BK-1001", resp.BookingID)
}

func TestClient_CreateBookingRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success":false,"message":"Please enter a valid email address"}`))
	})

	_, err := client.CreateBooking(context.Background(), CreateBookingRequest{})
	assert.True(t, IsRejected(err))
	assert.Contains(t, err.Error(), "Please enter a valid email address")
}

func TestClient_CreateBookingServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.CreateBooking(context.Background(), CreateBookingRequest{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.False(t, IsRejected(err))
}

func TestClient_ApplyPromoCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req PromoRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.PromoCode != "SUMMER10" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"success":false,"message":"Invalid promo code"}`))
			return
		}
		assert.Equal(t, int64(5500), req.BookingAmount)
		assert.Equal(t, "padel", req.Sport)
		_, _ = w.Write([]byte(`{"success":true,"discount_amount":550,"final_amount":4950,"discount_text":"You saved ₨550!"}`))
	})

	res, err := client.ApplyPromoCode(context.Background(), PromoRequest{PromoCode: "SUMMER10", BookingAmount: 5500, Sport: "padel"})
	require.NoError(t, err)
	assert.Equal(t, int64(550), res.DiscountAmount)
	assert.Equal(t, int64(4950), res.FinalAmount)
	assert.Equal(t, "SUMMER10", res.Code)

	_, err = client.ApplyPromoCode(context.Background(), PromoRequest{PromoCode: "NOPE", BookingAmount: 5500, Sport: "padel"})
	assert.True(t, IsRejected(err))
	assert.Contains(t, err.Error(), "Invalid promo code")
}

func TestRejectionMessage(t *testing.T) {
	msg, ok := RejectionMessage(fmt.Errorf("wrapped: %w", &Rejection{Message: "Court closed"}))
	assert.True(t, ok)
	assert.Equal(t, "Court closed", msg)

	_, ok = RejectionMessage(ErrInvalidResponse)
	assert.False(t, ok)
}
