package update_player

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions/models"
)

type SessionService interface {
	UpdatePlayer(ctx context.Context, id string, req *models.PlayerRequest) (domain.Draft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
