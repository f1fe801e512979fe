package arenaapi

import (
	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

// Сообщение проверки конфликтов, когда бэкенд недоступен
const ConflictCheckFailedMessage = "Error checking availability"

// Эндпоинты бэкенда (используются и как метка метрик)
const (
	EndpointBookedSlots    = "/api/booked-slots"
	EndpointCalculatePrice = "/api/calculate-price"
	EndpointCheckConflicts = "/api/check-conflicts"
	EndpointCreateBooking  = "/api/create-booking"
	EndpointApplyPromoCode = "/api/apply-promo-code"
)

// BookedSlotsRequest запрос занятых слотов корта на рабочий день
type BookedSlotsRequest struct {
	Court string `json:"court"`
	Date  string `json:"date"`
}

// PriceRequest запрос динамического расчета цены
type PriceRequest struct {
	CourtID       string        `json:"court_id"`
	BookingDate   string        `json:"booking_date"`
	SelectedSlots []domain.Slot `json:"selected_slots"`
}

// NewPriceRequest собирает запрос цены из выбора; дата всегда якорь рабочего дня
func NewPriceRequest(courtID string, anchor domain.Anchor, sel domain.Selection) PriceRequest {
	return PriceRequest{
		CourtID:       courtID,
		BookingDate:   anchor.String(),
		SelectedSlots: sel.Slots(),
	}
}

// PriceResponse ответ расчета цены
type PriceResponse struct {
	Success    bool    `json:"success"`
	TotalPrice float64 `json:"total_price"`
	Message    string  `json:"message,omitempty"`
}

// ConflictRequest запрос проверки конфликтов перед подтверждением
type ConflictRequest struct {
	Court         string        `json:"court"`
	Date          string        `json:"date"`
	SelectedSlots []domain.Slot `json:"selectedSlots"`
}

// ConflictResult результат проверки конфликтов
type ConflictResult struct {
	HasConflict bool               `json:"hasConflict"`
	Message     string             `json:"message"`
	Conflicts   []types.TimeString `json:"conflicts,omitempty"`
}

// CreateBookingRequest полезная нагрузка создания брони.
// Date и BookingDate всегда равны якорю, даже если слоты переходят через полночь.
type CreateBookingRequest struct {
	Sport           string             `json:"sport"`
	Court           string             `json:"court"`
	CourtName       string             `json:"courtName"`
	Date            string             `json:"date"`
	BookingDate     string             `json:"booking_date"`
	StartTime       types.TimeString   `json:"startTime"`
	EndTime         types.TimeString   `json:"endTime"`
	Duration        float64            `json:"duration"`
	SelectedSlots   []domain.Slot      `json:"selectedSlots"`
	ActualStartDate string             `json:"actualStartDate"`
	ActualEndDate   string             `json:"actualEndDate"`
	IsCrossMidnight bool               `json:"isCrossMidnight"`
	PlayerName      string             `json:"playerName"`
	PlayerPhone     string             `json:"playerPhone"`
	PlayerEmail     string             `json:"playerEmail"`
	PlayerCount     int                `json:"playerCount"`
	SpecialRequests string             `json:"specialRequests"`
	PaymentType     domain.PaymentType `json:"paymentType"`
	TotalAmount     int64              `json:"totalAmount"`
	OriginalAmount  int64              `json:"originalAmount"`
	DiscountAmount  int64              `json:"discountAmount"`
	PromoCode       string             `json:"promoCode,omitempty"`
}

// NewCreateBookingRequest собирает полезную нагрузку из черновика
func NewCreateBookingRequest(d domain.Draft) CreateBookingRequest {
	anchor := d.Anchor.String()
	return CreateBookingRequest{
		Sport:           d.Sport,
		Court:           d.CourtID,
		CourtName:       d.CourtName,
		Date:            anchor,
		BookingDate:     anchor,
		StartTime:       d.StartTime,
		EndTime:         d.EndTime,
		Duration:        d.DurationHours,
		SelectedSlots:   d.Selection.Slots(),
		ActualStartDate: d.ActualStartDate,
		ActualEndDate:   d.ActualEndDate,
		IsCrossMidnight: d.CrossMidnight,
		PlayerName:      d.Player.Name,
		PlayerPhone:     d.Player.Phone,
		PlayerEmail:     d.Player.Email,
		PlayerCount:     d.Player.Count,
		SpecialRequests: d.Player.SpecialRequests,
		PaymentType:     d.PaymentType,
		TotalAmount:     d.TotalAmount,
		OriginalAmount:  d.OriginalAmount,
		DiscountAmount:  d.DiscountAmount,
		PromoCode:       d.PromoCode,
	}
}

// CreateBookingResponse ответ создания брони
type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Message   string `json:"message,omitempty"`
}

// PromoRequest запрос применения промокода
type PromoRequest struct {
	PromoCode     string `json:"promo_code"`
	BookingAmount int64  `json:"booking_amount"`
	Sport         string `json:"sport"`
}

// PromoResult примененный промокод в рупиях
type PromoResult struct {
	Code           string
	DiscountAmount int64
	FinalAmount    int64
	DiscountText   string
	Message        string
}

// PromoResponse ответ применения промокода
type PromoResponse struct {
	Success        bool    `json:"success"`
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
	DiscountText   string  `json:"discount_text,omitempty"`
	Message        string  `json:"message,omitempty"`
}
