package create_session

import (
	"context"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions/models"
)

type SessionService interface {
	Create(ctx context.Context, req *models.CreateSessionRequest) (domain.Draft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
