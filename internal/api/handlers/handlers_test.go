package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "Error checking availability")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"message":"Error checking availability"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Date string `json:"date"`
	}

	r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"date":"2024-06-10"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "2024-06-10", v.Date)

	r = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"day":"2024-06-10"}`))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestSessionID(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/sessions/{sessionId}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := SessionID(w, r)
		if !ok {
			return
		}
		RespondJSON(w, http.StatusOK, map[string]string{"id": id})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/7c9e6679-7425-40de-944b-e07fc1f90ae7", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/42", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPresenter_Session(t *testing.T) {
	catalog := domain.DefaultCatalog()
	grid := domain.DefaultGrid()
	sport, _ := catalog.Sport("padel")
	court, _ := catalog.Court("padel", "padel-1")
	anchor, err := domain.ParseAnchor("2024-06-10")
	require.NoError(t, err)
	sel, err := grid.Range("23:00", 3)
	require.NoError(t, err)

	draft := domain.NewDraft("s-1", time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)).
		WithCourt(sport, court).
		WithAnchor(anchor).
		WithSelection(grid, sel).
		WithPrice(8250, domain.PriceFallback, "Live pricing is unavailable")

	resp := NewPresenter(grid, catalog).Session(draft)

	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, "11:00 PM (Jun 10) – 12:30 AM (Jun 11)", resp.Window)
	assert.True(t, resp.CrossMidnight)
	assert.True(t, resp.MeetsMinimum)
	assert.Equal(t, int64(4125), resp.AmountDueNow)
	assert.Equal(t, "fallback", resp.PriceSource)
	assert.Equal(t, "Live pricing is unavailable", resp.Warning)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"unavailableSlots":[]`)
	assert.Contains(t, string(body), `"selectedSlots":[{"time":"23:00","index":18}`)
}
