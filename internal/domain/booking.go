package domain

import (
	"math"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// PaymentType is how much the player pays upfront
type PaymentType string

const (
	PaymentAdvance PaymentType = "advance" // 50% upfront
	PaymentFull    PaymentType = "full"
)

// PriceSource tells where TotalAmount came from
type PriceSource string

const (
	PriceNone     PriceSource = ""
	PriceDynamic  PriceSource = "dynamic"
	PriceFallback PriceSource = "fallback"
)

// Player holds the contact details collected on the player step
type Player struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email,omitempty"`
	Count           int    `json:"count"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// IsComplete returns true when the mandatory contact fields are present
func (p Player) IsComplete() bool {
	return p.Name != "" && p.Phone != ""
}

// Draft is the booking being assembled by one wizard session.
// Every With* method returns an updated copy; the receiver is never changed.
type Draft struct {
	ID        string `json:"id"`
	Sport     string `json:"sport"`
	CourtID   string `json:"courtId"`
	CourtName string `json:"courtName"`

	Anchor      Anchor             `json:"anchor"`
	Selection   Selection          `json:"selection"`
	Unavailable []types.TimeString `json:"unavailable"`

	// Derived from Selection and Anchor
	StartTime       types.TimeString `json:"startTime"`
	EndTime         types.TimeString `json:"endTime"`
	ActualStartDate string           `json:"actualStartDate,omitempty"`
	ActualEndDate   string           `json:"actualEndDate,omitempty"`
	CrossMidnight   bool             `json:"crossMidnight"`
	DurationHours   float64          `json:"durationHours"`

	OriginalAmount int64       `json:"originalAmount"`
	DiscountAmount int64       `json:"discountAmount"`
	TotalAmount    int64       `json:"totalAmount"`
	PriceSource    PriceSource `json:"priceSource"`
	PriceWarning   string      `json:"priceWarning,omitempty"`
	PromoCode      string      `json:"promoCode,omitempty"`

	Player      Player      `json:"player"`
	PaymentType PaymentType `json:"paymentType"`

	Submitting bool      `json:"submitting"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewDraft starts an empty draft
func NewDraft(id string, now time.Time) Draft {
	return Draft{
		ID:          id,
		PaymentType: PaymentAdvance,
		Player:      Player{Count: 2},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// WithCourt selects the sport and court. Slots are court-scoped, so the
// selection and availability of the previous court are dropped.
func (d Draft) WithCourt(sport Sport, court Court) Draft {
	if d.Sport == sport.Name && d.CourtID == court.ID {
		return d
	}
	d.Sport = sport.Name
	d.CourtID = court.ID
	d.CourtName = court.Name
	return d.clearSlots()
}

// WithAnchor sets the workday date. Slots are day-scoped for conflict
// checking, so any change of date resets the selection.
func (d Draft) WithAnchor(anchor Anchor) Draft {
	if d.Anchor.Equal(anchor) {
		return d
	}
	d.Anchor = anchor
	return d.clearSlots()
}

// WithUnavailable stores the booked labels returned by the backend for the current anchor
func (d Draft) WithUnavailable(labels []types.TimeString) Draft {
	d.Unavailable = append([]types.TimeString(nil), labels...)
	return d
}

// IsUnavailable reports whether a label is booked for the current anchor
func (d Draft) IsUnavailable(label types.TimeString) bool {
	for _, booked := range d.Unavailable {
		if booked == label {
			return true
		}
	}
	return false
}

// WithSelection replaces the selection and recomputes every derived field.
// The price is reset and must be fetched again for the new run.
func (d Draft) WithSelection(grid *Grid, sel Selection) Draft {
	d.Selection = sel
	d = d.withoutPrice()

	window, ok := ResolveWindow(grid, d.Anchor, sel)
	if !ok {
		d.StartTime, d.EndTime = "", ""
		d.ActualStartDate, d.ActualEndDate = "", ""
		d.CrossMidnight = false
		d.DurationHours = 0
		return d
	}

	d.StartTime = window.StartTime
	d.EndTime = window.EndTime
	d.ActualStartDate = window.ActualStartDate.Format(DateFormat)
	d.ActualEndDate = window.ActualEndDate.Format(DateFormat)
	d.CrossMidnight = window.CrossMidnight
	d.DurationHours = window.DurationHours
	return d
}

// WithPrice stores a computed price; any applied promo is dropped
func (d Draft) WithPrice(amount int64, source PriceSource, warning string) Draft {
	d.OriginalAmount = amount
	d.TotalAmount = amount
	d.DiscountAmount = 0
	d.PromoCode = ""
	d.PriceSource = source
	d.PriceWarning = warning
	return d
}

// WithPromo applies a validated promo code
func (d Draft) WithPromo(code string, discount, final int64) Draft {
	d.PromoCode = code
	d.DiscountAmount = discount
	d.TotalAmount = final
	return d
}

// WithoutPromo restores the original amount
func (d Draft) WithoutPromo() Draft {
	d.PromoCode = ""
	d.DiscountAmount = 0
	d.TotalAmount = d.OriginalAmount
	return d
}

// WithPlayer stores contact details
func (d Draft) WithPlayer(p Player) Draft {
	d.Player = p
	return d
}

// WithPaymentType sets advance or full payment
func (d Draft) WithPaymentType(pt PaymentType) Draft {
	d.PaymentType = pt
	return d
}

// WithSubmitting flags an outstanding submission
func (d Draft) WithSubmitting(submitting bool) Draft {
	d.Submitting = submitting
	return d
}

// Touch updates the modification time
func (d Draft) Touch(now time.Time) Draft {
	d.UpdatedAt = now
	return d
}

// AmountDueNow returns the advance (50%) or the full amount
func (d Draft) AmountDueNow() int64 {
	if d.PaymentType == PaymentFull {
		return d.TotalAmount
	}
	return int64(math.Round(float64(d.TotalAmount) * AdvancePaymentPercent / 100))
}

// Window returns the derived booking window for display
func (d Draft) Window(grid *Grid) (BookingWindow, bool) {
	return ResolveWindow(grid, d.Anchor, d.Selection)
}

func (d Draft) clearSlots() Draft {
	d.Unavailable = nil
	d.Selection = Selection{}
	d.StartTime, d.EndTime = "", ""
	d.ActualStartDate, d.ActualEndDate = "", ""
	d.CrossMidnight = false
	d.DurationHours = 0
	return d.withoutPrice()
}

func (d Draft) withoutPrice() Draft {
	d.OriginalAmount = 0
	d.DiscountAmount = 0
	d.TotalAmount = 0
	d.PromoCode = ""
	d.PriceSource = PriceNone
	d.PriceWarning = ""
	return d
}
