package session

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

// UpdateFunc вычисляет новое состояние черновика из текущего.
// Ошибка отменяет обновление, сохраненное состояние не меняется.
type UpdateFunc func(draft domain.Draft) (domain.Draft, error)

// DBExecutor интерфейс для работы с БД
// Поддерживает *sql.DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}
