package sqlite

import (
	"context"
	"database/sql"
	"time"

	"day-planner/internal/errors"
	"day-planner/internal/repository"
	"day-planner/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Option configures a SQLiteRepository.
type Option func(*SQLiteRepository)

// WithQueryTimeout bounds every statement by the given duration.
func WithQueryTimeout(timeout time.Duration) Option {
	return func(r *SQLiteRepository) {
		r.queryTimeout = timeout
	}
}

// SQLiteRepository implements repository.Repository on a single SQLite table
type SQLiteRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

var _ repository.Repository = (*SQLiteRepository)(nil)

// New creates a new SQLite repository instance
func New(dbPath string, opts ...Option) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// One connection keeps ":memory:" databases shared across statements.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	repo := &SQLiteRepository{db: db}
	for _, opt := range opts {
		opt(repo)
	}
	return repo, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// GetSlot retrieves a slot by key
func (r *SQLiteRepository) GetSlot(ctx context.Context, key string) (*repository.Slot, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT key, value, updated_at FROM slots WHERE key = ?`
	return QuerySingle(ctx, r.db, query, ScanSlot, "slot", key, key)
}

// PutSlot inserts or fully replaces the slot with the same key
func (r *SQLiteRepository) PutSlot(ctx context.Context, slot *repository.Slot) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if slot.UpdatedAt.IsZero() {
		slot.UpdatedAt = timeNow()
	}

	query := `
	INSERT INTO slots (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	return ExecuteWithRowsAffected(ctx, r.db, query, "slot", slot.Key, slot.Key, slot.Value, FormatTimeForDB(slot.UpdatedAt))
}

// DeleteSlot deletes a slot by key
func (r *SQLiteRepository) DeleteSlot(ctx context.Context, key string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `DELETE FROM slots WHERE key = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "slot", key, key)
}

func (r *SQLiteRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}
