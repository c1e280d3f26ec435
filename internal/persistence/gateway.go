// Package persistence stores the whole task collection as one JSON value in a
// named slot of the key-value repository.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"day-planner/internal/domain"
	"day-planner/internal/errors"
	"day-planner/internal/repository"
)

// DefaultKey is the slot the planner reads and writes
const DefaultKey = "myDayGenieTasks"

// CorruptPolicy decides what Load does with a stored value it cannot decode.
type CorruptPolicy string

const (
	// CorruptFail returns a corrupt_data error.
	CorruptFail CorruptPolicy = "fail"
	// CorruptReset logs a warning and starts from an empty collection.
	CorruptReset CorruptPolicy = "reset"
)

// IsValid reports whether p is a known policy
func (p CorruptPolicy) IsValid() bool {
	return p == CorruptFail || p == CorruptReset
}

// Gateway saves and loads the full task collection.
type Gateway interface {
	Save(ctx context.Context, tasks []domain.Task) error
	Load(ctx context.Context) ([]domain.Task, error)
}

// Option configures a KVGateway.
type Option func(*KVGateway)

// WithKey overrides the slot key.
func WithKey(key string) Option {
	return func(g *KVGateway) {
		g.key = key
	}
}

// WithCorruptPolicy sets how unreadable stored data is handled.
func WithCorruptPolicy(policy CorruptPolicy) Option {
	return func(g *KVGateway) {
		g.policy = policy
	}
}

// WithLogger sets the logger used for load/save diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(g *KVGateway) {
		g.logger = logger
	}
}

// KVGateway implements Gateway on top of a repository.Repository.
type KVGateway struct {
	repo   repository.Repository
	key    string
	policy CorruptPolicy
	mapper *TaskMapper
	schema *jsonschema.Schema
	logger *log.Logger
}

var _ Gateway = (*KVGateway)(nil)

// NewGateway creates a gateway writing to DefaultKey unless overridden
func NewGateway(repo repository.Repository, opts ...Option) (*KVGateway, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, err
	}

	g := &KVGateway{
		repo:   repo,
		key:    DefaultKey,
		policy: CorruptFail,
		mapper: NewTaskMapper(),
		schema: schema,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.key == "" {
		return nil, errors.NewInvalidInputError("key", g.key, "slot key cannot be empty")
	}
	if !g.policy.IsValid() {
		return nil, errors.NewInvalidInputError("on_corrupt", g.policy, "must be 'fail' or 'reset'")
	}
	return g, nil
}

// Key returns the slot key the gateway uses
func (g *KVGateway) Key() string {
	return g.key
}

// Save overwrites the slot with the full collection
func (g *KVGateway) Save(ctx context.Context, tasks []domain.Task) error {
	data, err := json.Marshal(g.mapper.ToRecords(tasks))
	if err != nil {
		return errors.NewStorageError("encode tasks", err)
	}

	if err := g.repo.PutSlot(ctx, &repository.Slot{Key: g.key, Value: string(data)}); err != nil {
		return asStorageError("save tasks", err)
	}

	g.logger.Debug("saved tasks", "key", g.key, "count", len(tasks))
	return nil
}

// Load returns the stored collection, or an empty one when the slot is absent
func (g *KVGateway) Load(ctx context.Context) ([]domain.Task, error) {
	slot, err := g.repo.GetSlot(ctx, g.key)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			g.logger.Debug("no stored tasks, starting empty", "key", g.key)
			return []domain.Task{}, nil
		}
		return nil, asStorageError("load tasks", err)
	}

	tasks, err := g.decode(slot.Value)
	if err != nil {
		if g.policy == CorruptReset {
			g.logger.Warn("discarding unreadable stored tasks", "key", g.key, "err", err)
			return []domain.Task{}, nil
		}
		return nil, errors.NewCorruptDataError(g.key, err)
	}

	g.logger.Debug("loaded tasks", "key", g.key, "count", len(tasks))
	return tasks, nil
}

// Discard removes the slot entirely. An absent slot is not an error.
func (g *KVGateway) Discard(ctx context.Context) error {
	err := g.repo.DeleteSlot(ctx, g.key)
	if err != nil && !errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return asStorageError("discard tasks", err)
	}
	g.logger.Debug("discarded stored tasks", "key", g.key)
	return nil
}

func (g *KVGateway) decode(value string) ([]domain.Task, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(value), &doc); err != nil {
		return nil, fmt.Errorf("parse stored value: %w", err)
	}

	if err := g.schema.Validate(doc); err != nil {
		return nil, toSchemaError(err)
	}

	var records []TaskRecord
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	return g.mapper.ToDomainSlice(records)
}

// asStorageError keeps typed repository errors (timeouts included) and wraps
// anything else as a storage error.
func asStorageError(operation string, err error) error {
	if appErr, ok := errors.AsAppError(err); ok {
		if appErr.IsType(errors.ErrorTypeStorage) || appErr.IsType(errors.ErrorTypeTimeout) {
			return appErr
		}
	}
	return errors.NewStorageError(operation, err)
}
