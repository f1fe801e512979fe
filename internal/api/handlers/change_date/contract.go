package change_date

import (
	"context"

	changeDate "github.com/m04kA/SMC-ArenaBooking/internal/usecase/change_date"
)

type ChangeDateUseCase interface {
	Execute(ctx context.Context, req *changeDate.Request) (*changeDate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
