package calculate_price

import "github.com/m04kA/SMC-ArenaBooking/internal/domain"

// Предупреждение, когда цена рассчитана по резервному тарифу
const FallbackWarning = "Live pricing is unavailable; showing the standard hourly rate."

// Response модель ответа
type Response struct {
	Draft domain.Draft
	// Stale true, если выбор изменился во время расчета и цена не сохранена
	Stale bool
}
