package domain

import "github.com/m04kA/SMC-ArenaBooking/pkg/types"

// SlotStatus represents how a slot is rendered for the current draft
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotSelected  SlotStatus = "selected"
	SlotBooked    SlotStatus = "booked"
)

// Slot is a fixed 30-minute bookable unit of the operating window.
// Index is the position within the whole grid, so two slots are adjacent
// iff their indices differ by exactly 1, including across midnight.
type Slot struct {
	Time  types.TimeString `json:"time"`
	Index int              `json:"index"`
}

// IsNextDay returns true if the slot is displayed under the following calendar date
func (s Slot) IsNextDay() bool {
	return IsNextDayLabel(s.Time)
}

// IsAdjacentTo returns true if the slots are neighbours in the grid
func (s Slot) IsAdjacentTo(other Slot) bool {
	diff := s.Index - other.Index
	return diff == 1 || diff == -1
}

// IsNextDayLabel returns true for labels strictly before 05:30.
// 05:30 itself stays on the workday anchor's date.
func IsNextDayLabel(label types.TimeString) bool {
	m := label.Minutes()
	return m >= 0 && m < NextDayCutoffMinutes
}
