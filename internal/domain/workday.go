package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// Anchor is the workday date picked by the user. It is the only date sent to
// and stored by the backend for a booking, even when slots run past midnight.
type Anchor struct {
	date time.Time
}

// NewAnchor truncates t to its calendar date
func NewAnchor(t time.Time) Anchor {
	if t.IsZero() {
		return Anchor{}
	}
	y, m, d := t.Date()
	return Anchor{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseAnchor parses a YYYY-MM-DD date
func ParseAnchor(s string) (Anchor, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Anchor{}, fmt.Errorf("%w: %q", ErrInvalidAnchor, s)
	}
	return NewAnchor(t), nil
}

// IsZero returns true if no date has been picked yet
func (a Anchor) IsZero() bool {
	return a.date.IsZero()
}

// Date returns the anchor as midnight UTC
func (a Anchor) Date() time.Time {
	return a.date
}

// String formats the anchor as YYYY-MM-DD
func (a Anchor) String() string {
	if a.IsZero() {
		return ""
	}
	return a.date.Format(DateFormat)
}

// Equal compares two anchors by calendar date
func (a Anchor) Equal(other Anchor) bool {
	return a.date.Equal(other.date)
}

// MarshalJSON encodes the anchor as "YYYY-MM-DD" (empty string when unset)
func (a Anchor) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON decodes "YYYY-MM-DD"
func (a *Anchor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*a = Anchor{}
		return nil
	}
	parsed, err := ParseAnchor(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ResolveActualDate returns the calendar date a label falls on for this workday:
// anchor+1 for next-day tagged labels (strictly before 05:30), anchor otherwise.
func ResolveActualDate(anchor Anchor, label types.TimeString) time.Time {
	if IsNextDayLabel(label) {
		return anchor.date.AddDate(0, 0, 1)
	}
	return anchor.date
}

// IsCrossMidnight reports whether the run's start slot and its end boundary
// resolve to different calendar dates.
func IsCrossMidnight(grid *Grid, sel Selection) bool {
	first, ok := sel.First()
	if !ok {
		return false
	}
	last, _ := sel.Last()
	return IsNextDayLabel(first.Time) != IsNextDayLabel(grid.EndBoundary(last.Index))
}

// BookingWindow is the derived time range of a selection for one workday
type BookingWindow struct {
	Anchor          Anchor
	StartTime       types.TimeString
	EndTime         types.TimeString
	ActualStartDate time.Time
	ActualEndDate   time.Time
	CrossMidnight   bool
	DurationHours   float64
}

// ResolveWindow derives start/end labels and their calendar dates.
// ok is false for an empty selection.
func ResolveWindow(grid *Grid, anchor Anchor, sel Selection) (BookingWindow, bool) {
	first, ok := sel.First()
	if !ok {
		return BookingWindow{}, false
	}
	last, _ := sel.Last()
	end := grid.EndBoundary(last.Index)

	return BookingWindow{
		Anchor:          anchor,
		StartTime:       first.Time,
		EndTime:         end,
		ActualStartDate: ResolveActualDate(anchor, first.Time),
		ActualEndDate:   ResolveActualDate(anchor, end),
		CrossMidnight:   IsCrossMidnight(grid, sel),
		DurationHours:   sel.DurationHours(),
	}, true
}

// Display renders the window for people, e.g. "11:00 PM (Jun 10) – 1:00 AM (Jun 11)"
func (w BookingWindow) Display() string {
	return fmt.Sprintf("%s (%s) – %s (%s)",
		w.StartTime.Format12h(), w.ActualStartDate.Format("Jan 2"),
		w.EndTime.Format12h(), w.ActualEndDate.Format("Jan 2"))
}
