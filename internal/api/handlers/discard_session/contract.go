package discard_session

import "context"

type SessionService interface {
	Discard(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
