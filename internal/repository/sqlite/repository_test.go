package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "day-planner/internal/errors"
	"day-planner/internal/repository"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := New(filepath.Join(t.TempDir(), "myday.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestGetSlot_Missing(t *testing.T) {
	repo := setupTestDB(t)

	slot, err := repo.GetSlot(context.Background(), "myDayGenieTasks")

	assert.Nil(t, slot)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestPutSlot_ThenGet(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	updated := time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)

	err := repo.PutSlot(ctx, &repository.Slot{Key: "myDayGenieTasks", Value: `[{"id":"a"}]`, UpdatedAt: updated})
	require.NoError(t, err)

	slot, err := repo.GetSlot(ctx, "myDayGenieTasks")
	require.NoError(t, err)
	assert.Equal(t, "myDayGenieTasks", slot.Key)
	assert.Equal(t, `[{"id":"a"}]`, slot.Value)
	assert.True(t, updated.Equal(slot.UpdatedAt))
}

func TestPutSlot_Overwrites(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.PutSlot(ctx, &repository.Slot{Key: "k", Value: "first"}))
	require.NoError(t, repo.PutSlot(ctx, &repository.Slot{Key: "k", Value: "second"}))

	slot, err := repo.GetSlot(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", slot.Value)
}

func TestPutSlot_StampsUpdatedAt(t *testing.T) {
	original := timeNow
	defer func() { timeNow = original }()
	fixed := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }

	repo := setupTestDB(t)
	slot := &repository.Slot{Key: "k", Value: "v"}

	require.NoError(t, repo.PutSlot(context.Background(), slot))
	assert.Equal(t, fixed, slot.UpdatedAt)

	stored, err := repo.GetSlot(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, fixed.Equal(stored.UpdatedAt))
}

func TestPutSlot_EmptyValue(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.PutSlot(ctx, &repository.Slot{Key: "k", Value: ""}))

	slot, err := repo.GetSlot(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "", slot.Value)
}

func TestDeleteSlot(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.PutSlot(ctx, &repository.Slot{Key: "k", Value: "v"}))
	require.NoError(t, repo.DeleteSlot(ctx, "k"))

	_, err := repo.GetSlot(ctx, "k")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestDeleteSlot_Missing(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.DeleteSlot(context.Background(), "nope")

	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestNew_InMemory(t *testing.T) {
	repo, err := New(":memory:", WithQueryTimeout(5*time.Second))
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.PutSlot(ctx, &repository.Slot{Key: "k", Value: "v"}))

	slot, err := repo.GetSlot(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", slot.Value)
	assert.Equal(t, 5*time.Second, repo.queryTimeout)
}

func TestNew_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "myday.db")
	ctx := context.Background()

	repo, err := New(path)
	require.NoError(t, err)
	require.NoError(t, repo.PutSlot(ctx, &repository.Slot{Key: "k", Value: "kept"}))
	require.NoError(t, repo.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	slot, err := reopened.GetSlot(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "kept", slot.Value)
}

func TestGetSlot_CancelledContext(t *testing.T) {
	repo := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.GetSlot(ctx, "k")

	assert.Error(t, err)
	assert.False(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}
