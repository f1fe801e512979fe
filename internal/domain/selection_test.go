package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

func slotAt(t *testing.T, g *Grid, label types.TimeString) Slot {
	t.Helper()
	idx, err := g.IndexOf(label)
	require.NoError(t, err)
	s, err := g.At(idx)
	require.NoError(t, err)
	return s
}

func toggleAll(t *testing.T, g *Grid, labels ...types.TimeString) Selection {
	t.Helper()
	var sel Selection
	for _, l := range labels {
		var err error
		sel, err = sel.Toggle(slotAt(t, g, l))
		require.NoError(t, err, "toggle %s", l)
	}
	return sel
}

func TestSelection_ToggleAcrossMidnight(t *testing.T) {
	g := DefaultGrid()
	sel := toggleAll(t, g, "23:00", "23:30", "00:00")

	assert.Equal(t, 3, sel.Len())
	assert.True(t, sel.IsContiguous())
	assert.Equal(t, 1.5, sel.DurationHours())
	assert.Equal(t, 90, sel.DurationMinutes())
}

func TestSelection_ToggleExtendsEitherEnd(t *testing.T) {
	g := DefaultGrid()
	sel := toggleAll(t, g, "16:00", "16:30", "15:30")

	first, _ := sel.First()
	last, _ := sel.Last()
	assert.Equal(t, types.TimeString("15:30"), first.Time)
	assert.Equal(t, types.TimeString("16:30"), last.Time)
}

func TestSelection_ToggleRejectsGap(t *testing.T) {
	g := DefaultGrid()
	sel := toggleAll(t, g, "14:00", "14:30")

	got, err := sel.Toggle(slotAt(t, g, "16:00"))
	assert.ErrorIs(t, err, ErrNotConsecutive)
	assert.Equal(t, sel, got)
	assert.Equal(t, 2, sel.Len())
}

func TestSelection_RemovingInteriorAlwaysRejected(t *testing.T) {
	g := DefaultGrid()

	for size := 3; size <= 6; size++ {
		start := 10
		slots := g.Slots()[start : start+size]
		sel, err := NewSelection(slots...)
		require.NoError(t, err)

		for i := 1; i < size-1; i++ {
			got, err := sel.Toggle(slots[i])
			assert.ErrorIs(t, err, ErrBreaksContiguity, "size %d interior %d", size, i)
			assert.Equal(t, size, got.Len())
		}

		head, err := sel.Toggle(slots[0])
		require.NoError(t, err)
		assert.Equal(t, size-1, head.Len())
		assert.True(t, head.IsContiguous())

		tail, err := sel.Toggle(slots[size-1])
		require.NoError(t, err)
		assert.Equal(t, size-1, tail.Len())
		assert.True(t, tail.IsContiguous())
	}
}

func TestSelection_RemoveLastSlotEmpties(t *testing.T) {
	g := DefaultGrid()
	sel := toggleAll(t, g, "20:00")

	sel, err := sel.Toggle(slotAt(t, g, "20:00"))
	require.NoError(t, err)
	assert.True(t, sel.IsEmpty())
	_, ok := sel.First()
	assert.False(t, ok)
}

func TestSelection_AcceptedSelectionsAreSortedAndContiguous(t *testing.T) {
	g := DefaultGrid()
	sequence := []types.TimeString{"22:00", "21:30", "23:00", "22:30", "14:00", "21:00", "23:30", "00:00", "21:00"}

	var sel Selection
	for _, l := range sequence {
		next, err := sel.Toggle(slotAt(t, g, l))
		if err == nil {
			sel = next
		}
		slots := sel.Slots()
		for i := 1; i < len(slots); i++ {
			assert.Equal(t, slots[i-1].Index+1, slots[i].Index)
		}
	}
}

func TestSelection_ToggleAvailable(t *testing.T) {
	g := DefaultGrid()
	booked := func(s Slot) bool { return s.Time == "18:00" }

	var sel Selection
	_, err := sel.ToggleAvailable(slotAt(t, g, "18:00"), booked)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	sel, err = sel.ToggleAvailable(slotAt(t, g, "18:30"), booked)
	require.NoError(t, err)
	assert.Equal(t, 1, sel.Len())
}

func TestSelection_MeetsMinimum(t *testing.T) {
	g := DefaultGrid()
	catalog := DefaultCatalog()

	for _, sport := range catalog.Sports() {
		for n := 0; n <= 4; n++ {
			sel, err := NewSelection(g.Slots()[:n]...)
			require.NoError(t, err)
			assert.Equal(t, n >= sport.MinSlots, catalog.MeetsMinimum(sel, sport.Name), "sport %s n=%d", sport.Name, n)
		}
	}
}

func TestNewSelection(t *testing.T) {
	g := DefaultGrid()
	slots := g.Slots()

	sel, err := NewSelection(slots[3], slots[1], slots[2])
	require.NoError(t, err)
	first, _ := sel.First()
	assert.Equal(t, 1, first.Index)

	_, err = NewSelection(slots[1], slots[3])
	assert.ErrorIs(t, err, ErrNotConsecutive)
}

func TestSelection_JSON(t *testing.T) {
	g := DefaultGrid()

	data, err := json.Marshal(Selection{})
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	sel := toggleAll(t, g, "23:30", "00:00")
	data, err = json.Marshal(sel)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"time":"23:30","index":19},{"time":"00:00","index":20}]`, string(data))

	var decoded Selection
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sel, decoded)

	err = json.Unmarshal([]byte(`[{"time":"14:00","index":0},{"time":"15:00","index":2}]`), &decoded)
	assert.ErrorIs(t, err, ErrNotConsecutive)
}
