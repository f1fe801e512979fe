package confirm_booking

import (
	"fmt"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

// validateDraft проверяет, что черновик можно отправить
func validateDraft(d domain.Draft, minSlots int, requireEmail bool) error {
	if d.Submitting {
		return ErrSubmissionInProgress
	}

	if d.Selection.IsEmpty() {
		return ErrEmptySelection
	}

	if !d.Selection.MeetsMinimum(minSlots) {
		return fmt.Errorf("%w: %s requires at least %d slot(s)", ErrBelowMinimum, d.Sport, minSlots)
	}

	if !d.Player.IsComplete() {
		return ErrPlayerIncomplete
	}

	if requireEmail && d.Player.Email == "" {
		return ErrEmailRequired
	}

	if d.PriceSource == domain.PriceNone {
		return ErrPriceMissing
	}

	return nil
}
