package domain

import "errors"

var (
	// ErrInvalidOperatingWindow is returned when the open/close hours cannot form a grid
	ErrInvalidOperatingWindow = errors.New("domain: invalid operating window")

	// ErrSlotNotInGrid is returned when a label or index is outside the grid
	ErrSlotNotInGrid = errors.New("domain: slot is not part of the grid")

	// ErrRangeOutsideGrid is returned when a start+duration range runs past the closing time
	ErrRangeOutsideGrid = errors.New("domain: range runs past the closing time")

	// ErrInvalidDuration is returned for non-positive durations
	ErrInvalidDuration = errors.New("domain: duration must be positive")

	// ErrNotConsecutive is returned when adding a slot would create two disjoint runs
	ErrNotConsecutive = errors.New("selection: slots are not consecutive")

	// ErrBreaksContiguity is returned when removing an interior slot would split the run
	ErrBreaksContiguity = errors.New("selection: removing this slot would break contiguity")

	// ErrSlotUnavailable is returned when the slot is already booked for the workday
	ErrSlotUnavailable = errors.New("selection: slot is already booked")

	// ErrInvalidAnchor is returned when a workday date cannot be parsed
	ErrInvalidAnchor = errors.New("domain: invalid workday date")

	// ErrUnknownSport is returned when the sport is not in the catalog
	ErrUnknownSport = errors.New("domain: unknown sport")

	// ErrUnknownCourt is returned when the court is not in the catalog or belongs to another sport
	ErrUnknownCourt = errors.New("domain: unknown court")

	// ErrInvalidCatalog is returned when the sports configuration is inconsistent
	ErrInvalidCatalog = errors.New("domain: invalid sports catalog")
)
