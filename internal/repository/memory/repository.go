// Package memory provides an in-process repository.Repository used by tests
// and the testing environment.
package memory

import (
	"context"
	"sync"
	"time"

	"day-planner/internal/errors"
	"day-planner/internal/repository"
)

// Repository keeps slots in a map. The zero value is not usable; call New.
type Repository struct {
	mu     sync.RWMutex
	slots  map[string]repository.Slot
	closed bool
	now    func() time.Time
}

var _ repository.Repository = (*Repository)(nil)

// New returns an empty memory repository
func New() *Repository {
	return &Repository{
		slots: make(map[string]repository.Slot),
		now:   time.Now,
	}
}

// GetSlot returns a copy of the stored slot
func (r *Repository) GetSlot(ctx context.Context, key string) (*repository.Slot, error) {
	if err := r.check(ctx, "get slot"); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	slot, ok := r.slots[key]
	if !ok {
		return nil, errors.NewNotFoundError("slot", key)
	}
	return &slot, nil
}

// PutSlot stores slot, replacing any previous value under the same key
func (r *Repository) PutSlot(ctx context.Context, slot *repository.Slot) error {
	if err := r.check(ctx, "put slot"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if slot.UpdatedAt.IsZero() {
		slot.UpdatedAt = r.now()
	}
	r.slots[slot.Key] = *slot
	return nil
}

// DeleteSlot removes the slot stored under key
func (r *Repository) DeleteSlot(ctx context.Context, key string) error {
	if err := r.check(ctx, "delete slot"); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.slots[key]; !ok {
		return errors.NewNotFoundError("slot", key)
	}
	delete(r.slots, key)
	return nil
}

// Close marks the repository closed; later calls fail with a storage error
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *Repository) check(ctx context.Context, operation string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageError(operation, err)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return errors.NewStorageError(operation, errRepositoryClosed)
	}
	return nil
}
