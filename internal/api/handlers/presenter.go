package handlers

import (
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// SessionResponse представление черновика для UI
type SessionResponse struct {
	ID        string `json:"id"`
	Sport     string `json:"sport,omitempty"`
	CourtID   string `json:"courtId,omitempty"`
	CourtName string `json:"courtName,omitempty"`
	Date      string `json:"date,omitempty"` // якорь рабочего дня

	SelectedSlots   []domain.Slot      `json:"selectedSlots"`
	StartTime       types.TimeString   `json:"startTime,omitempty"`
	EndTime         types.TimeString   `json:"endTime,omitempty"`
	ActualStartDate string             `json:"actualStartDate,omitempty"`
	ActualEndDate   string             `json:"actualEndDate,omitempty"`
	CrossMidnight   bool               `json:"isCrossMidnight"`
	DurationHours   float64            `json:"duration"`
	Window          string             `json:"window,omitempty"`
	Unavailable     []types.TimeString `json:"unavailableSlots"`
	MinSlots        int                `json:"minSlots"`
	MeetsMinimum    bool               `json:"meetsMinimum"`

	OriginalAmount int64  `json:"originalAmount"`
	DiscountAmount int64  `json:"discountAmount"`
	TotalAmount    int64  `json:"totalAmount"`
	AmountDueNow   int64  `json:"amountDueNow"`
	PriceSource    string `json:"priceSource,omitempty"`
	Warning        string `json:"warning,omitempty"`
	PromoCode      string `json:"promoCode,omitempty"`

	Player      PlayerResponse `json:"player"`
	PaymentType string         `json:"paymentType"`
	Submitting  bool           `json:"submitting"`
	UpdatedAt   string         `json:"updatedAt"`
}

// PlayerResponse данные игрока
type PlayerResponse struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email,omitempty"`
	Count           int    `json:"count"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// MinSlotsProvider минимальная длина брони по виду спорта
type MinSlotsProvider interface {
	MinSlotsFor(sport string) int
}

// Presenter строит представление черновика; зависит от сетки арены и каталога
type Presenter struct {
	grid    *domain.Grid
	catalog MinSlotsProvider
}

// NewPresenter создает новый Presenter
func NewPresenter(grid *domain.Grid, catalog MinSlotsProvider) *Presenter {
	return &Presenter{grid: grid, catalog: catalog}
}

// Session конвертирует черновик в HTTP модель
func (p *Presenter) Session(d domain.Draft) SessionResponse {
	minSlots := p.catalog.MinSlotsFor(d.Sport)

	resp := SessionResponse{
		ID:              d.ID,
		Sport:           d.Sport,
		CourtID:         d.CourtID,
		CourtName:       d.CourtName,
		SelectedSlots:   d.Selection.Slots(),
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		ActualStartDate: d.ActualStartDate,
		ActualEndDate:   d.ActualEndDate,
		CrossMidnight:   d.CrossMidnight,
		DurationHours:   d.DurationHours,
		Unavailable:     d.Unavailable,
		MinSlots:        minSlots,
		MeetsMinimum:    d.Selection.MeetsMinimum(minSlots),
		OriginalAmount:  d.OriginalAmount,
		DiscountAmount:  d.DiscountAmount,
		TotalAmount:     d.TotalAmount,
		AmountDueNow:    d.AmountDueNow(),
		PriceSource:     string(d.PriceSource),
		Warning:         d.PriceWarning,
		PromoCode:       d.PromoCode,
		Player: PlayerResponse{
			Name:            d.Player.Name,
			Phone:           d.Player.Phone,
			Email:           d.Player.Email,
			Count:           d.Player.Count,
			SpecialRequests: d.Player.SpecialRequests,
		},
		PaymentType: string(d.PaymentType),
		Submitting:  d.Submitting,
		UpdatedAt:   d.UpdatedAt.UTC().Format(time.RFC3339),
	}

	if !d.Anchor.IsZero() {
		resp.Date = d.Anchor.String()
	}
	if resp.Unavailable == nil {
		resp.Unavailable = []types.TimeString{}
	}
	if window, ok := d.Window(p.grid); ok {
		resp.Window = window.Display()
	}

	return resp
}
