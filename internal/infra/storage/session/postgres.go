package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/pkg/psqlbuilder"
)

const sessionsTable = "booking_sessions"

// PostgresRepository хранит черновики в PostgreSQL (state jsonb).
// Обновления одной сессии сериализуются через SELECT ... FOR UPDATE.
type PostgresRepository struct {
	db    DBExecutor
	ttl   time.Duration
	clock TimeProvider
}

// NewPostgresRepository создает новый экземпляр репозитория сессий
func NewPostgresRepository(db DBExecutor, ttl time.Duration, clock TimeProvider) *PostgresRepository {
	if clock == nil {
		clock = RealTimeProvider{}
	}
	return &PostgresRepository{db: db, ttl: ttl, clock: clock}
}

// Create сохраняет новый черновик
func (r *PostgresRepository) Create(ctx context.Context, draft domain.Draft) error {
	query, args, err := r.insertQuery(draft)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Create - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSessionExists
	}

	return nil
}

// Get возвращает черновик по ID
func (r *PostgresRepository) Get(ctx context.Context, id string) (domain.Draft, error) {
	query, args, err := r.selectQuery(id, false)
	if err != nil {
		return domain.Draft{}, err
	}

	return scanDraft(r.db.QueryRowContext(ctx, query, args...), "Get")
}

// Update применяет fn к текущему состоянию в транзакции со строковой блокировкой
func (r *PostgresRepository) Update(ctx context.Context, id string, fn UpdateFunc) (domain.Draft, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Draft{}, fmt.Errorf("%w: Update - begin: %v", ErrTransaction, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// 1. Блокируем строку сессии
	query, args, err := r.selectQuery(id, true)
	if err != nil {
		return domain.Draft{}, err
	}

	current, err := scanDraft(tx.QueryRowContext(ctx, query, args...), "Update")
	if err != nil {
		return domain.Draft{}, err
	}

	// 2. Вычисляем новое состояние
	updated, err := fn(current)
	if err != nil {
		return current, err
	}

	now := r.clock.Now()
	updated = updated.Touch(now)

	state, err := json.Marshal(updated)
	if err != nil {
		return domain.Draft{}, fmt.Errorf("%w: Update - marshal: %v", ErrEncodeState, err)
	}

	// 3. Сохраняем
	query, args, err = psqlbuilder.Update(sessionsTable).
		Set("state", string(state)).
		Set("expires_at", now.Add(r.ttl)).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Draft{}, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return domain.Draft{}, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Draft{}, fmt.Errorf("%w: Update - commit: %v", ErrTransaction, err)
	}

	return updated, nil
}

// Delete удаляет черновик
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete(sessionsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteExpired удаляет истекшие черновики и возвращает их количество
func (r *PostgresRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query, args, err := psqlbuilder.Delete(sessionsTable).
		Where(squirrel.LtOrEq{"expires_at": r.clock.Now()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	return result.RowsAffected()
}

func (r *PostgresRepository) insertQuery(draft domain.Draft) (string, []interface{}, error) {
	state, err := json.Marshal(draft)
	if err != nil {
		return "", nil, fmt.Errorf("%w: Create - marshal: %v", ErrEncodeState, err)
	}

	now := r.clock.Now()
	query, args, err := psqlbuilder.Insert(sessionsTable).
		Columns("id", "state", "expires_at", "created_at", "updated_at").
		Values(draft.ID, string(state), now.Add(r.ttl), now, now).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}

func (r *PostgresRepository) selectQuery(id string, forUpdate bool) (string, []interface{}, error) {
	builder := psqlbuilder.Select("state").
		From(sessionsTable).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Gt{"expires_at": r.clock.Now()})

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: build select query: %v", ErrBuildQuery, err)
	}
	return query, args, nil
}

func scanDraft(row *sql.Row, op string) (domain.Draft, error) {
	var state []byte
	err := row.Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Draft{}, ErrSessionNotFound
	}
	if err != nil {
		return domain.Draft{}, fmt.Errorf("%w: %s - scan state: %v", ErrScanRow, op, err)
	}

	var draft domain.Draft
	if err := json.Unmarshal(state, &draft); err != nil {
		return domain.Draft{}, fmt.Errorf("%w: %s - unmarshal: %v", ErrEncodeState, op, err)
	}
	return draft, nil
}
