package select_range

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-ArenaBooking/internal/integrations/arenaapi"
	"github.com/m04kA/SMC-ArenaBooking/internal/usecase/calculate_price"
	"github.com/m04kA/SMC-ArenaBooking/pkg/logger"
	"github.com/m04kA/SMC-ArenaBooking/pkg/types"
)

type fixedPrice int64

func (p fixedPrice) CalculatePriceWithGracefulDegradation(ctx context.Context, req arenaapi.PriceRequest) (int64, error) {
	return int64(p), nil
}

func newUseCase(t *testing.T, booked ...types.TimeString) (*UseCase, *session.MemoryRepository) {
	t.Helper()
	catalog := domain.DefaultCatalog()
	repo := session.NewMemoryRepository(time.Hour, nil)

	sport, err := catalog.Sport("cricket")
	require.NoError(t, err)
	court, err := catalog.Court("cricket", "cricket-1")
	require.NoError(t, err)
	anchor, err := domain.ParseAnchor("2024-06-10")
	require.NoError(t, err)

	draft := domain.NewDraft("s-1", time.Now()).WithCourt(sport, court).WithAnchor(anchor).WithUnavailable(booked)
	require.NoError(t, repo.Create(context.Background(), draft))

	pricer := calculate_price.NewUseCase(repo, fixedPrice(4500), catalog, nil, logger.Nop())
	return NewUseCase(repo, domain.DefaultGrid(), catalog, pricer, logger.Nop()), repo
}

func TestSelectRange_Execute(t *testing.T) {
	tests := []struct {
		name      string
		start     types.TimeString
		hours     float64
		wantSlots int
		wantEnd   types.TimeString
		wantCross bool
	}{
		{"one and a half hours", "17:00", 1.5, 3, "18:30", false},
		{"partial slot rounds up", "17:00", 1.25, 3, "18:30", false},
		{"across midnight", "23:00", 2, 4, "01:00", true},
		{"until closing", "04:00", 2, 4, "06:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newUseCase(t)

			resp, err := uc.Execute(context.Background(), &Request{SessionID: "s-1", StartTime: tt.start, DurationHours: tt.hours})
			require.NoError(t, err)

			assert.Equal(t, tt.wantSlots, resp.Draft.Selection.Len())
			assert.Equal(t, tt.start, resp.Draft.StartTime)
			assert.Equal(t, tt.wantEnd, resp.Draft.EndTime)
			assert.Equal(t, tt.wantCross, resp.Draft.CrossMidnight)
			assert.Equal(t, int64(4500), resp.Draft.TotalAmount)
			assert.True(t, resp.MeetsMinimum)
		})
	}
}

func TestSelectRange_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		start   types.TimeString
		hours   float64
		wantErr error
	}{
		{"bad label", "7pm", 1, ErrInvalidRange},
		{"zero duration", "17:00", 0, ErrInvalidRange},
		{"off grid label", "17:15", 1, ErrInvalidRange},
		{"past closing", "05:30", 1, ErrInvalidRange},
		{"contains booked slot", "17:00", 2, ErrSlotUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := newUseCase(t, "18:00")

			_, err := uc.Execute(context.Background(), &Request{SessionID: "s-1", StartTime: tt.start, DurationHours: tt.hours})
			assert.ErrorIs(t, err, tt.wantErr)

			draft, err := repo.Get(context.Background(), "s-1")
			require.NoError(t, err)
			assert.True(t, draft.Selection.IsEmpty())
		})
	}
}

func TestSelectRange_SessionNotFound(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing", StartTime: "17:00", DurationHours: 1})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
