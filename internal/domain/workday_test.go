package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

func mustAnchor(t *testing.T, s string) Anchor {
	t.Helper()
	a, err := ParseAnchor(s)
	require.NoError(t, err)
	return a
}

func TestResolveActualDate(t *testing.T) {
	anchor := mustAnchor(t, "2024-06-10")
	nextDay := time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, anchor.Date(), ResolveActualDate(anchor, "23:00"))
	assert.Equal(t, nextDay, ResolveActualDate(anchor, "00:30"))
	assert.Equal(t, nextDay, ResolveActualDate(anchor, "05:00"))
	assert.Equal(t, anchor.Date(), ResolveActualDate(anchor, "05:30"))
	assert.Equal(t, anchor.Date(), ResolveActualDate(anchor, "06:00"))
}

func TestResolveActualDate_MonthRollover(t *testing.T) {
	anchor := mustAnchor(t, "2024-12-31")
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), ResolveActualDate(anchor, "01:00"))
}

func TestResolveWindow_CrossMidnightScenario(t *testing.T) {
	g := DefaultGrid()
	anchor := mustAnchor(t, "2024-06-10")
	sel := toggleAll(t, g, "23:00", "23:30", "00:00")

	w, ok := ResolveWindow(g, anchor, sel)
	require.True(t, ok)

	assert.Equal(t, types.TimeString("23:00"), w.StartTime)
	assert.Equal(t, types.TimeString("00:30"), w.EndTime)
	assert.Equal(t, "2024-06-10", w.ActualStartDate.Format(DateFormat))
	assert.Equal(t, "2024-06-11", w.ActualEndDate.Format(DateFormat))
	assert.True(t, w.CrossMidnight)
	assert.Equal(t, 1.5, w.DurationHours)
	assert.Equal(t, "2024-06-10", w.Anchor.String())
	assert.Equal(t, "11:00 PM (Jun 10) – 12:30 AM (Jun 11)", w.Display())
}

func TestIsCrossMidnight(t *testing.T) {
	g := DefaultGrid()

	tests := []struct {
		name   string
		labels []types.TimeString
		want   bool
	}{
		{"evening only", []types.TimeString{"18:00", "18:30"}, false},
		{"ends exactly at midnight", []types.TimeString{"23:00", "23:30"}, true},
		{"after midnight only", []types.TimeString{"01:00", "01:30"}, false},
		{"spans midnight", []types.TimeString{"23:30", "00:00"}, true},
		// 05:30 is not next-day tagged, so a run ending at it flips back to the anchor date
		{"ends at 05:30", []types.TimeString{"04:30", "05:00"}, true},
		{"last slot ends at closing", []types.TimeString{"05:00", "05:30"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := toggleAll(t, g, tt.labels...)
			assert.Equal(t, tt.want, IsCrossMidnight(g, sel))
		})
	}

	assert.False(t, IsCrossMidnight(g, Selection{}))
}

func TestResolveWindow_Empty(t *testing.T) {
	_, ok := ResolveWindow(DefaultGrid(), mustAnchor(t, "2024-06-10"), Selection{})
	assert.False(t, ok)
}

func TestAnchor(t *testing.T) {
	a := NewAnchor(time.Date(2024, 6, 10, 23, 45, 0, 0, time.UTC))
	assert.Equal(t, "2024-06-10", a.String())
	assert.True(t, a.Equal(mustAnchor(t, "2024-06-10")))
	assert.True(t, Anchor{}.IsZero())
	assert.Equal(t, "", Anchor{}.String())

	_, err := ParseAnchor("10/06/2024")
	assert.ErrorIs(t, err, ErrInvalidAnchor)
}

func TestAnchor_JSON(t *testing.T) {
	data, err := json.Marshal(mustAnchor(t, "2024-06-10"))
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-10"`, string(data))

	var a Anchor
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-29"`), &a))
	assert.Equal(t, "2024-02-29", a.String())

	require.NoError(t, json.Unmarshal([]byte(`""`), &a))
	assert.True(t, a.IsZero())

	assert.ErrorIs(t, json.Unmarshal([]byte(`"2024-13-01"`), &a), ErrInvalidAnchor)
}
