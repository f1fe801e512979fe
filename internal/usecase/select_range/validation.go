package select_range

import (
	"fmt"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

// validateRequest проверяет формат метки и длительность до обращения к сетке
func validateRequest(req *Request) error {
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}
	if req.DurationHours <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidRange)
	}
	return nil
}

// firstUnavailable возвращает первый занятый слот диапазона
func firstUnavailable(d domain.Draft, sel domain.Selection) (domain.Slot, bool) {
	for _, s := range sel.Slots() {
		if d.IsUnavailable(s.Time) {
			return s, true
		}
	}
	return domain.Slot{}, false
}
