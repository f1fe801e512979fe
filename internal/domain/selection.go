package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Selection is the ordered, contiguous run of slots chosen for one booking.
// It is an immutable value: every operation returns a new Selection and the
// receiver is left untouched, so a rejected toggle never changes state.
type Selection struct {
	slots []Slot
}

// NewSelection sorts the slots by index and checks they form one contiguous run
func NewSelection(slots ...Slot) (Selection, error) {
	candidate := sortedCopy(slots)
	if !isContiguous(candidate) {
		return Selection{}, ErrNotConsecutive
	}
	return Selection{slots: candidate}, nil
}

// Len returns the number of selected slots
func (s Selection) Len() int {
	return len(s.slots)
}

// IsEmpty returns true if nothing is selected
func (s Selection) IsEmpty() bool {
	return len(s.slots) == 0
}

// Slots returns a copy of the selected slots in index order
func (s Selection) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// First returns the earliest slot. ok is false for an empty selection.
func (s Selection) First() (Slot, bool) {
	if len(s.slots) == 0 {
		return Slot{}, false
	}
	return s.slots[0], true
}

// Last returns the latest slot. ok is false for an empty selection.
func (s Selection) Last() (Slot, bool) {
	if len(s.slots) == 0 {
		return Slot{}, false
	}
	return s.slots[len(s.slots)-1], true
}

// Contains reports whether the slot with the given index is selected
func (s Selection) Contains(index int) bool {
	for _, slot := range s.slots {
		if slot.Index == index {
			return true
		}
	}
	return false
}

// IsContiguous reports whether every consecutive pair differs by exactly one index
func (s Selection) IsContiguous() bool {
	return isContiguous(s.slots)
}

// DurationMinutes returns slot count * 30
func (s Selection) DurationMinutes() int {
	return len(s.slots) * SlotDurationMinutes
}

// DurationHours returns slot count * 0.5
func (s Selection) DurationHours() float64 {
	return float64(s.DurationMinutes()) / 60
}

// MeetsMinimum reports whether the selection has at least minSlots slots
func (s Selection) MeetsMinimum(minSlots int) bool {
	return len(s.slots) >= minSlots
}

// Toggle adds the slot if it is not selected, removes it otherwise.
//
// Adding is accepted only if the result is still one contiguous run, which
// allows extending either end or starting fresh from an empty selection.
// Removing is accepted only if the result is empty or still contiguous, so
// only the ends of a run can be removed.
func (s Selection) Toggle(slot Slot) (Selection, error) {
	if s.Contains(slot.Index) {
		candidate := make([]Slot, 0, len(s.slots))
		for _, existing := range s.slots {
			if existing.Index != slot.Index {
				candidate = append(candidate, existing)
			}
		}
		if len(candidate) > 0 && !isContiguous(candidate) {
			return s, ErrBreaksContiguity
		}
		return Selection{slots: candidate}, nil
	}

	candidate := sortedCopy(append(s.Slots(), slot))
	if !isContiguous(candidate) {
		return s, ErrNotConsecutive
	}
	return Selection{slots: candidate}, nil
}

// ToggleAvailable is Toggle with slots booked by someone else filtered out first
func (s Selection) ToggleAvailable(slot Slot, unavailable func(Slot) bool) (Selection, error) {
	if unavailable != nil && unavailable(slot) {
		return s, fmt.Errorf("%w: %s", ErrSlotUnavailable, slot.Time)
	}
	return s.Toggle(slot)
}

// MarshalJSON encodes the selection as an array of {time, index}
func (s Selection) MarshalJSON() ([]byte, error) {
	if s.slots == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.slots)
}

// UnmarshalJSON decodes and re-validates the run
func (s *Selection) UnmarshalJSON(data []byte) error {
	var slots []Slot
	if err := json.Unmarshal(data, &slots); err != nil {
		return err
	}
	sel, err := NewSelection(slots...)
	if err != nil {
		return err
	}
	*s = sel
	return nil
}

func sortedCopy(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

func isContiguous(slots []Slot) bool {
	for i := 1; i < len(slots); i++ {
		if slots[i].Index != slots[i-1].Index+1 {
			return false
		}
	}
	return true
}
