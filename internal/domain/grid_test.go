package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

func TestDefaultGrid_Layout(t *testing.T) {
	g := DefaultGrid()
	slots := g.Slots()

	require.Len(t, slots, 32)
	assert.Equal(t, types.TimeString("14:00"), slots[0].Time)
	assert.Equal(t, types.TimeString("23:30"), slots[19].Time)
	assert.Equal(t, types.TimeString("00:00"), slots[20].Time)
	assert.Equal(t, types.TimeString("05:30"), slots[31].Time)
	assert.Equal(t, types.TimeString("06:00"), g.ClosingLabel())
}

func TestNewGrid_IndicesStrictlyIncreaseByOne(t *testing.T) {
	windows := [][2]int{{14, 6}, {8, 22}, {22, 2}, {0, 23}, {23, 0}, {18, 24}}

	for _, w := range windows {
		g, err := NewGrid(w[0], w[1])
		require.NoError(t, err, "window %v", w)

		seen := make(map[types.TimeString]bool)
		for i, slot := range g.Slots() {
			assert.Equal(t, i, slot.Index, "window %v", w)
			assert.False(t, seen[slot.Time], "duplicate label %s in window %v", slot.Time, w)
			seen[slot.Time] = true
		}
	}
}

func TestNewGrid_SameDayWindow(t *testing.T) {
	g, err := NewGrid(8, 10)
	require.NoError(t, err)

	labels := make([]types.TimeString, 0, g.Len())
	for _, s := range g.Slots() {
		labels = append(labels, s.Time)
	}
	assert.Equal(t, []types.TimeString{"08:00", "08:30", "09:00", "09:30"}, labels)
	assert.Equal(t, types.TimeString("10:00"), g.ClosingLabel())
}

func TestNewGrid_InvalidWindow(t *testing.T) {
	tests := []struct {
		name        string
		open, close int
	}{
		{"equal hours", 10, 10},
		{"negative open", -1, 6},
		{"open past 23", 24, 6},
		{"close past 24", 14, 25},
		{"full day", 0, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.open, tt.close)
			assert.ErrorIs(t, err, ErrInvalidOperatingWindow)
		})
	}
}

func TestGrid_IndexOfAndAt(t *testing.T) {
	g := DefaultGrid()

	idx, err := g.IndexOf("00:00")
	require.NoError(t, err)
	assert.Equal(t, 20, idx)

	slot, err := g.At(idx)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("00:00"), slot.Time)

	_, err = g.IndexOf("10:00")
	assert.ErrorIs(t, err, ErrSlotNotInGrid)

	_, err = g.At(32)
	assert.ErrorIs(t, err, ErrSlotNotInGrid)
	_, err = g.At(-1)
	assert.ErrorIs(t, err, ErrSlotNotInGrid)
}

func TestGrid_EndBoundary(t *testing.T) {
	g := DefaultGrid()

	assert.Equal(t, types.TimeString("14:30"), g.EndBoundary(0))
	assert.Equal(t, types.TimeString("00:00"), g.EndBoundary(19))
	assert.Equal(t, types.TimeString("06:00"), g.EndBoundary(31))
}

func TestGrid_SlotsReturnsCopy(t *testing.T) {
	g := DefaultGrid()
	slots := g.Slots()
	slots[0].Time = "09:00"

	first, err := g.At(0)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("14:00"), first.Time)
}

func TestGrid_RangeForDuration(t *testing.T) {
	g := DefaultGrid()

	sel, err := g.RangeForDuration("23:00", 1.5)
	require.NoError(t, err)
	assert.Equal(t, 3, sel.Len())
	last, _ := sel.Last()
	assert.Equal(t, types.TimeString("00:00"), last.Time)

	// partial slots round up
	sel, err = g.RangeForDuration("14:00", 1.25)
	require.NoError(t, err)
	assert.Equal(t, 3, sel.Len())

	_, err = g.RangeForDuration("05:00", 2)
	assert.ErrorIs(t, err, ErrRangeOutsideGrid)

	_, err = g.RangeForDuration("14:00", 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = g.RangeForDuration("12:00", 1)
	assert.ErrorIs(t, err, ErrSlotNotInGrid)
}

func TestIsNextDayLabel(t *testing.T) {
	tests := []struct {
		label types.TimeString
		want  bool
	}{
		{"00:00", true},
		{"00:30", true},
		{"05:00", true},
		{"05:30", false},
		{"06:00", false},
		{"14:00", false},
		{"23:30", false},
		{"bad", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNextDayLabel(tt.label), "label %s", tt.label)
	}
}

func TestSlot_IsAdjacentTo(t *testing.T) {
	g := DefaultGrid()
	s19, _ := g.At(19)
	s20, _ := g.At(20)
	s21, _ := g.At(21)

	assert.True(t, s19.IsAdjacentTo(s20))
	assert.True(t, s20.IsAdjacentTo(s19))
	assert.False(t, s19.IsAdjacentTo(s21))
	assert.False(t, s19.IsAdjacentTo(s19))
	assert.True(t, s20.IsNextDay())
	assert.False(t, s19.IsNextDay())
}
