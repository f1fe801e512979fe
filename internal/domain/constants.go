package domain

// Slot grid defaults (arena operates 14:00 -> 06:00 next day)
const (
	SlotDurationMinutes = 30
	DefaultOpenHour     = 14
	DefaultCloseHour    = 6

	// NextDayCutoffMinutes slots strictly before 05:30 are tagged "next day" for display
	NextDayCutoffMinutes = 5*60 + 30
)

// Booking rules
const (
	DefaultMinSlots          = 2 // 1 hour
	DefaultHourlyRate        = 2500
	DefaultBookingWindowDays = 90
	AdvancePaymentPercent    = 50
	MaxPlayerNameLength      = 100
	MaxSpecialRequestsLength = 500
	MaxPromoCodeLength       = 32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
