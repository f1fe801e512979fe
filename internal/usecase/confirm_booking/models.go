package confirm_booking

import "github.com/m04kA/SMC-ArenaBooking/internal/domain"

// Результаты отправки для метрик
const (
	resultSuccess  = "success"
	resultConflict = "conflict"
	resultRejected = "rejected"
	resultError    = "error"
)

// Request модель запроса подтверждения
type Request struct {
	SessionID string
}

// Response модель ответа при успешной брони
type Response struct {
	BookingID    string
	Message      string
	Window       string // "11:00 PM (Jun 10) – 12:30 AM (Jun 11)"
	TotalAmount  int64
	AmountDueNow int64
	PaymentType  domain.PaymentType
	Booked       domain.Draft // черновик в момент отправки
}
