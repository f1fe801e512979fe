package confirm_booking

import (
	confirmBooking "github.com/m04kA/SMC-ArenaBooking/internal/usecase/confirm_booking"
)

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	Success      bool   `json:"success"`
	BookingID    string `json:"bookingId"`
	Message      string `json:"message"`
	Window       string `json:"window"`
	TotalAmount  int64  `json:"totalAmount"`
	AmountDueNow int64  `json:"amountDueNow"`
	PaymentType  string `json:"paymentType"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *confirmBooking.Response) ConfirmBookingResponse {
	return ConfirmBookingResponse{
		Success:      true,
		BookingID:    resp.BookingID,
		Message:      resp.Message,
		Window:       resp.Window,
		TotalAmount:  resp.TotalAmount,
		AmountDueNow: resp.AmountDueNow,
		PaymentType:  string(resp.PaymentType),
	}
}
