package domain

import (
	"fmt"
	"math"
)

// Court is a bookable court or lane.
// Courts sharing a non-empty SharedSpace are the same physical surface.
type Court struct {
	ID          string `json:"id" toml:"id"`
	Name        string `json:"name" toml:"name"`
	SharedSpace string `json:"sharedSpace,omitempty" toml:"shared_space"`
}

// Sport describes booking rules for one sport
type Sport struct {
	Name       string  `json:"name" toml:"name"`
	MinSlots   int     `json:"minSlots" toml:"min_slots"`
	HourlyRate int64   `json:"hourlyRate" toml:"hourly_rate"` // fallback rate when dynamic pricing is unavailable
	Courts     []Court `json:"courts" toml:"courts"`
}

// Catalog is the static sport/court configuration of the arena
type Catalog struct {
	order   []string
	sports  map[string]Sport
	courts  map[string]Court
	courtOf map[string]string // court id -> sport
}

// NewCatalog validates and indexes the sports configuration
func NewCatalog(sports []Sport) (*Catalog, error) {
	c := &Catalog{
		sports:  make(map[string]Sport, len(sports)),
		courts:  make(map[string]Court),
		courtOf: make(map[string]string),
	}

	for _, s := range sports {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: sport name is required", ErrInvalidCatalog)
		}
		if _, dup := c.sports[s.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate sport %s", ErrInvalidCatalog, s.Name)
		}
		if s.MinSlots <= 0 {
			s.MinSlots = DefaultMinSlots
		}
		if s.HourlyRate <= 0 {
			s.HourlyRate = DefaultHourlyRate
		}
		for _, court := range s.Courts {
			if court.ID == "" {
				return nil, fmt.Errorf("%w: court id is required for %s", ErrInvalidCatalog, s.Name)
			}
			if owner, dup := c.courtOf[court.ID]; dup {
				return nil, fmt.Errorf("%w: court %s is listed for %s and %s", ErrInvalidCatalog, court.ID, owner, s.Name)
			}
			c.courts[court.ID] = court
			c.courtOf[court.ID] = s.Name
		}
		c.sports[s.Name] = s
		c.order = append(c.order, s.Name)
	}

	return c, nil
}

// DefaultSports is the arena's sport list with its fallback hourly rates
func DefaultSports() []Sport {
	return []Sport{
		{Name: "padel", MinSlots: 2, HourlyRate: 5500, Courts: []Court{
			{ID: "padel-1", Name: "Court 1: Purple Mondo"},
			{ID: "padel-2", Name: "Court 2: Teracotta Court"},
		}},
		{Name: "cricket", MinSlots: 2, HourlyRate: 3000, Courts: []Court{
			{ID: "cricket-1", Name: "Court 1: 110x50ft"},
			{ID: "cricket-2", Name: "Court 2: 130x60ft Multi", SharedSpace: "multi-130x60"},
		}},
		{Name: "futsal", MinSlots: 2, HourlyRate: 2500, Courts: []Court{
			{ID: "futsal-1", Name: "Court 1: 130x60ft Multi", SharedSpace: "multi-130x60"},
		}},
		{Name: "pickleball", MinSlots: 2, HourlyRate: 2500, Courts: []Court{
			{ID: "pickleball-1", Name: "Court 1: Professional"},
		}},
		{Name: "axe_throw", MinSlots: 1, HourlyRate: 4000, Courts: []Court{
			{ID: "axe-1", Name: "Lane 1: Axe Throw"},
		}},
		{Name: "archery", MinSlots: 1, HourlyRate: 3500, Courts: []Court{
			{ID: "archery-1", Name: "Lane 1: Archery Range"},
		}},
	}
}

// DefaultCatalog returns the catalog built from DefaultSports
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultSports())
	if err != nil {
		panic(err)
	}
	return c
}

// Sports returns the sports in configuration order
func (c *Catalog) Sports() []Sport {
	out := make([]Sport, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.sports[name])
	}
	return out
}

// Sport looks a sport up by name
func (c *Catalog) Sport(name string) (Sport, error) {
	s, ok := c.sports[name]
	if !ok {
		return Sport{}, fmt.Errorf("%w: %s", ErrUnknownSport, name)
	}
	return s, nil
}

// Court looks a court up and checks it belongs to the sport
func (c *Catalog) Court(sport, courtID string) (Court, error) {
	court, ok := c.courts[courtID]
	if !ok || c.courtOf[courtID] != sport {
		return Court{}, fmt.Errorf("%w: %s for %s", ErrUnknownCourt, courtID, sport)
	}
	return court, nil
}

// MinSlotsFor returns the minimum slot count for a sport (2 if unknown)
func (c *Catalog) MinSlotsFor(sport string) int {
	if s, ok := c.sports[sport]; ok {
		return s.MinSlots
	}
	return DefaultMinSlots
}

// HourlyRateFor returns the static fallback hourly rate for a sport
func (c *Catalog) HourlyRateFor(sport string) int64 {
	if s, ok := c.sports[sport]; ok {
		return s.HourlyRate
	}
	return DefaultHourlyRate
}

// MeetsMinimum gates leaving the slot step of the wizard
func (c *Catalog) MeetsMinimum(sel Selection, sport string) bool {
	return sel.MeetsMinimum(c.MinSlotsFor(sport))
}

// FallbackPrice returns round(hourlyRate * duration)
func (c *Catalog) FallbackPrice(sport string, durationHours float64) int64 {
	return int64(math.Round(float64(c.HourlyRateFor(sport)) * durationHours))
}
