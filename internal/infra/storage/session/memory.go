package session

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
)

type memoryEntry struct {
	mu        sync.Mutex
	draft     domain.Draft
	expiresAt time.Time
	deleted   bool
}

// MemoryRepository хранит черновики в памяти процесса.
// Обновления одной сессии сериализуются мьютексом записи.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	clock   TimeProvider
}

// NewMemoryRepository создает хранилище с временем жизни ttl с момента последнего изменения
func NewMemoryRepository(ttl time.Duration, clock TimeProvider) *MemoryRepository {
	if clock == nil {
		clock = RealTimeProvider{}
	}
	return &MemoryRepository{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Create сохраняет новый черновик
func (r *MemoryRepository) Create(ctx context.Context, draft domain.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[draft.ID]; ok {
		existing.mu.Lock()
		alive := !existing.deleted && !r.expired(existing)
		existing.mu.Unlock()
		if alive {
			return ErrSessionExists
		}
	}

	r.entries[draft.ID] = &memoryEntry{
		draft:     draft,
		expiresAt: r.clock.Now().Add(r.ttl),
	}
	return nil
}

// Get возвращает черновик по ID
func (r *MemoryRepository) Get(ctx context.Context, id string) (domain.Draft, error) {
	entry, err := r.lookup(id)
	if err != nil {
		return domain.Draft{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.deleted || r.expired(entry) {
		return domain.Draft{}, ErrSessionNotFound
	}
	return entry.draft, nil
}

// Update применяет fn к текущему состоянию под блокировкой сессии
func (r *MemoryRepository) Update(ctx context.Context, id string, fn UpdateFunc) (domain.Draft, error) {
	entry, err := r.lookup(id)
	if err != nil {
		return domain.Draft{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.deleted || r.expired(entry) {
		return domain.Draft{}, ErrSessionNotFound
	}
	if err := ctx.Err(); err != nil {
		return domain.Draft{}, err
	}

	updated, err := fn(entry.draft)
	if err != nil {
		return entry.draft, err
	}

	now := r.clock.Now()
	entry.draft = updated.Touch(now)
	entry.expiresAt = now.Add(r.ttl)
	return entry.draft, nil
}

// Delete удаляет черновик
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	entry, ok := r.entries[id]
	delete(r.entries, id)
	r.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}

	entry.mu.Lock()
	entry.deleted = true
	entry.mu.Unlock()
	return nil
}

// DeleteExpired удаляет истекшие черновики и возвращает их количество
func (r *MemoryRepository) DeleteExpired(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, entry := range r.entries {
		if entry.mu.TryLock() {
			if r.expired(entry) {
				entry.deleted = true
				delete(r.entries, id)
				removed++
			}
			entry.mu.Unlock()
		}
	}
	return removed, nil
}

func (r *MemoryRepository) lookup(id string) (*memoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry, nil
}

func (r *MemoryRepository) expired(entry *memoryEntry) bool {
	return !r.clock.Now().Before(entry.expiresAt)
}
