// Package repository defines the local key-value store the planner persists into.
package repository

import (
	"context"
	"time"
)

// Slot is a single named value in the key-value store.
type Slot struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Repository defines the interface for key-value storage operations.
// GetSlot returns a not_found AppError when the key is absent.
type Repository interface {
	GetSlot(ctx context.Context, key string) (*Slot, error)
	PutSlot(ctx context.Context, slot *Slot) error
	DeleteSlot(ctx context.Context, key string) error

	// Utility
	Close() error
}
