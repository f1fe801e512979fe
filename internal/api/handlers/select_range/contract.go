package select_range

import (
	"context"

	selectRange "github.com/m04kA/SMC-ArenaBooking/internal/usecase/select_range"
)

type SelectRangeUseCase interface {
	Execute(ctx context.Context, req *selectRange.Request) (*selectRange.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
