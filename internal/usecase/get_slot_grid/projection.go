package get_slot_grid

import "github.com/m04kA/SMC-ArenaBooking/internal/domain"

// project строит проекцию сетки. Занятый слот показывается занятым,
// даже если он остался в выборе: такой выбор отклонит проверка конфликтов.
func project(grid *domain.Grid, d domain.Draft) []SlotView {
	slots := grid.Slots()
	views := make([]SlotView, 0, len(slots))

	for _, s := range slots {
		status := domain.SlotAvailable
		switch {
		case d.IsUnavailable(s.Time):
			status = domain.SlotBooked
		case d.Selection.Contains(s.Index):
			status = domain.SlotSelected
		}

		views = append(views, SlotView{
			Index:      s.Index,
			Time:       s.Time,
			Label:      s.Time.Format12h(),
			Status:     status,
			NextDay:    s.IsNextDay(),
			ActualDate: domain.ResolveActualDate(d.Anchor, s.Time).Format(domain.DateFormat),
		})
	}

	return views
}
