package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

var draftNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func padelDraft(t *testing.T) Draft {
	t.Helper()
	c := DefaultCatalog()
	sport, err := c.Sport("padel")
	require.NoError(t, err)
	court, err := c.Court("padel", "padel-1")
	require.NoError(t, err)

	return NewDraft("s-1", draftNow).
		WithCourt(sport, court).
		WithAnchor(mustAnchor(t, "2024-06-10"))
}

func TestDraft_WithSelectionDerivesWindow(t *testing.T) {
	g := DefaultGrid()
	d := padelDraft(t).WithSelection(g, toggleAll(t, g, "23:00", "23:30", "00:00"))

	assert.Equal(t, types.TimeString("23:00"), d.StartTime)
	assert.Equal(t, types.TimeString("00:30"), d.EndTime)
	assert.Equal(t, "2024-06-10", d.ActualStartDate)
	assert.Equal(t, "2024-06-11", d.ActualEndDate)
	assert.True(t, d.CrossMidnight)
	assert.Equal(t, 1.5, d.DurationHours)
	assert.Equal(t, "2024-06-10", d.Anchor.String())

	d = d.WithSelection(g, Selection{})
	assert.Empty(t, d.StartTime)
	assert.Empty(t, d.ActualEndDate)
	assert.False(t, d.CrossMidnight)
	assert.Zero(t, d.DurationHours)
}

func TestDraft_WithAnchorResetsSlots(t *testing.T) {
	g := DefaultGrid()
	d := padelDraft(t).
		WithUnavailable([]types.TimeString{"18:00"}).
		WithSelection(g, toggleAll(t, g, "20:00", "20:30")).
		WithPrice(5500, PriceDynamic, "")

	same := d.WithAnchor(mustAnchor(t, "2024-06-10"))
	assert.Equal(t, 2, same.Selection.Len())

	moved := d.WithAnchor(mustAnchor(t, "2024-06-11"))
	assert.True(t, moved.Selection.IsEmpty())
	assert.Empty(t, moved.Unavailable)
	assert.Zero(t, moved.TotalAmount)
	assert.Equal(t, PriceNone, moved.PriceSource)
	assert.Equal(t, "2024-06-11", moved.Anchor.String())

	// receiver untouched
	assert.Equal(t, 2, d.Selection.Len())
	assert.Equal(t, int64(5500), d.TotalAmount)
}

func TestDraft_WithCourtResetsSlots(t *testing.T) {
	g := DefaultGrid()
	c := DefaultCatalog()
	d := padelDraft(t).WithSelection(g, toggleAll(t, g, "20:00", "20:30"))

	sport, _ := c.Sport("padel")
	court, _ := c.Court("padel", "padel-2")
	moved := d.WithCourt(sport, court)

	assert.Equal(t, "padel-2", moved.CourtID)
	assert.True(t, moved.Selection.IsEmpty())
	assert.Equal(t, "2024-06-10", moved.Anchor.String())
}

func TestDraft_PriceAndPromo(t *testing.T) {
	d := padelDraft(t).WithPrice(5500, PriceFallback, "pricing unavailable")
	assert.Equal(t, int64(5500), d.OriginalAmount)
	assert.Equal(t, PriceFallback, d.PriceSource)

	d = d.WithPromo("SUMMER10", 550, 4950)
	assert.Equal(t, int64(4950), d.TotalAmount)
	assert.Equal(t, int64(2475), d.AmountDueNow())

	d = d.WithPaymentType(PaymentFull)
	assert.Equal(t, int64(4950), d.AmountDueNow())

	d = d.WithoutPromo()
	assert.Equal(t, int64(5500), d.TotalAmount)
	assert.Zero(t, d.DiscountAmount)
	assert.Empty(t, d.PromoCode)
}

func TestDraft_IsUnavailable(t *testing.T) {
	d := padelDraft(t).WithUnavailable([]types.TimeString{"18:00", "00:30"})

	assert.True(t, d.IsUnavailable("00:30"))
	assert.False(t, d.IsUnavailable("19:00"))
}

func TestDraft_JSONRoundTrip(t *testing.T) {
	g := DefaultGrid()
	d := padelDraft(t).
		WithSelection(g, toggleAll(t, g, "23:30", "00:00")).
		WithPlayer(Player{Name: "Ali", Phone: "+923001234567", Count: 4})

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var decoded Draft
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, d.Selection, decoded.Selection)
	assert.True(t, d.Anchor.Equal(decoded.Anchor))
	assert.Equal(t, d.Player, decoded.Player)
	assert.Equal(t, d.EndTime, decoded.EndTime)
	assert.True(t, decoded.CrossMidnight)
}

func TestPlayer_IsComplete(t *testing.T) {
	assert.False(t, Player{Name: "Ali"}.IsComplete())
	assert.True(t, Player{Name: "Ali", Phone: "123"}.IsComplete())
}
