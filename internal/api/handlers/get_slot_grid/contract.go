package get_slot_grid

import (
	"context"

	getSlotGrid "github.com/m04kA/SMC-ArenaBooking/internal/usecase/get_slot_grid"
)

type GetSlotGridUseCase interface {
	Execute(ctx context.Context, req *getSlotGrid.Request) (*getSlotGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
