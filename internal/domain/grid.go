package domain

import (
	"fmt"
	"math"

	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// Grid is the ordered sequence of bookable slots for one operating window.
// It is built once from static configuration and never mutated afterwards.
type Grid struct {
	slots     []Slot
	byLabel   map[types.TimeString]int
	openHour  int
	closeHour int
	closing   types.TimeString
}

// NewGrid builds the slot grid for a window opening at openHour and closing at
// closeHour. When closeHour <= openHour the window wraps past midnight, e.g.
// 14 -> 6 yields 14:00 ... 23:30, 00:00 ... 05:30 with indices 0..31.
func NewGrid(openHour, closeHour int) (*Grid, error) {
	if openHour < 0 || openHour > 23 || closeHour < 0 || closeHour > 24 {
		return nil, fmt.Errorf("%w: open=%d close=%d", ErrInvalidOperatingWindow, openHour, closeHour)
	}
	if openHour == closeHour || (closeHour == 24 && openHour == 0) {
		return nil, fmt.Errorf("%w: window must be shorter than a day", ErrInvalidOperatingWindow)
	}

	var hours []int
	if closeHour > openHour {
		for h := openHour; h < closeHour; h++ {
			hours = append(hours, h)
		}
	} else {
		for h := openHour; h < 24; h++ {
			hours = append(hours, h)
		}
		for h := 0; h < closeHour; h++ {
			hours = append(hours, h)
		}
	}

	g := &Grid{
		slots:     make([]Slot, 0, len(hours)*2),
		byLabel:   make(map[types.TimeString]int, len(hours)*2),
		openHour:  openHour,
		closeHour: closeHour,
		closing:   types.FromMinutes(closeHour * 60),
	}

	for _, h := range hours {
		for _, m := range []int{0, SlotDurationMinutes} {
			label := types.FromMinutes(h*60 + m)
			g.byLabel[label] = len(g.slots)
			g.slots = append(g.slots, Slot{Time: label, Index: len(g.slots)})
		}
	}

	return g, nil
}

// MustGrid panics on an invalid window. Intended for tests and static defaults.
func MustGrid(openHour, closeHour int) *Grid {
	g, err := NewGrid(openHour, closeHour)
	if err != nil {
		panic(err)
	}
	return g
}

// DefaultGrid returns the 14:00 -> 06:00 arena grid
func DefaultGrid() *Grid {
	return MustGrid(DefaultOpenHour, DefaultCloseHour)
}

// Len returns the number of slots
func (g *Grid) Len() int {
	return len(g.slots)
}

// Slots returns a copy of the grid
func (g *Grid) Slots() []Slot {
	out := make([]Slot, len(g.slots))
	copy(out, g.slots)
	return out
}

// At returns the slot at index
func (g *Grid) At(index int) (Slot, error) {
	if index < 0 || index >= len(g.slots) {
		return Slot{}, fmt.Errorf("%w: index %d", ErrSlotNotInGrid, index)
	}
	return g.slots[index], nil
}

// IndexOf returns the grid index of a label
func (g *Grid) IndexOf(label types.TimeString) (int, error) {
	idx, ok := g.byLabel[label]
	if !ok {
		return -1, fmt.Errorf("%w: %s", ErrSlotNotInGrid, label)
	}
	return idx, nil
}

// OpenHour returns the opening hour of the window
func (g *Grid) OpenHour() int {
	return g.openHour
}

// CloseHour returns the closing hour of the window
func (g *Grid) CloseHour() int {
	return g.closeHour
}

// ClosingLabel returns the nominal closing label ("06:00" for the default window)
func (g *Grid) ClosingLabel() types.TimeString {
	return g.closing
}

// EndBoundary returns the exclusive end label of a run ending at lastIndex:
// the next slot's label, or the closing label when lastIndex is the final slot.
func (g *Grid) EndBoundary(lastIndex int) types.TimeString {
	next := lastIndex + 1
	if next >= 0 && next < len(g.slots) {
		return g.slots[next].Time
	}
	return g.closing
}

// Range returns the contiguous selection of count slots starting at start
func (g *Grid) Range(start types.TimeString, count int) (Selection, error) {
	if count <= 0 {
		return Selection{}, ErrInvalidDuration
	}
	first, err := g.IndexOf(start)
	if err != nil {
		return Selection{}, err
	}
	if first+count > len(g.slots) {
		return Selection{}, fmt.Errorf("%w: %d slots from %s", ErrRangeOutsideGrid, count, start)
	}
	return Selection{slots: g.Slots()[first : first+count]}, nil
}

// RangeForDuration converts a duration in hours into a run of slots starting at start.
// Partial slots are rounded up, so 1.25h books three slots.
func (g *Grid) RangeForDuration(start types.TimeString, hours float64) (Selection, error) {
	if hours <= 0 {
		return Selection{}, ErrInvalidDuration
	}
	count := int(math.Ceil(hours * 60 / SlotDurationMinutes))
	return g.Range(start, count)
}
