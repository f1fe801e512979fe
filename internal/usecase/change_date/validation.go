package change_date

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

// bookingWindow возвращает [сегодня, сегодня+days] в часовом поясе арены
func bookingWindow(now time.Time, loc *time.Location, days int) (domain.Anchor, domain.Anchor) {
	today := domain.NewAnchor(now.In(loc))
	last := domain.NewAnchor(today.Date().AddDate(0, 0, days))
	return today, last
}

// validateDate проверяет, что дата внутри окна бронирования
func validateDate(anchor, minDate, maxDate domain.Anchor, days int) error {
	if anchor.Date().Before(minDate.Date()) {
		return ErrDateInPast
	}

	// Если окно = 0, ограничения сверху нет
	if days == 0 {
		return nil
	}

	if anchor.Date().After(maxDate.Date()) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, days)
	}

	return nil
}
