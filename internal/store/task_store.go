// Package store owns the day's task collection. It is the only code that
// mutates tasks, and it saves the whole collection after every change.
package store

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"day-planner/internal/domain"
	"day-planner/internal/errors"
	"day-planner/internal/persistence"
)

// maxIDAttempts bounds retries when a generated id is already taken.
const maxIDAttempts = 8

// NewTaskInput holds the fields supplied when a task is created.
type NewTaskInput struct {
	Name      string
	Category  domain.Category
	Time      domain.ClockTime
	Important bool
	Routine   bool
}

// Option configures a TaskStore.
type Option func(*TaskStore)

// WithClock sets the source of creation timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *TaskStore) {
		s.clock = clock
	}
}

// WithIDGenerator sets the source of task ids.
func WithIDGenerator(next func() string) Option {
	return func(s *TaskStore) {
		s.nextID = next
	}
}

// WithLogger sets the store logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *TaskStore) {
		s.logger = logger
	}
}

// TaskStore holds the ordered task collection in memory. It is not safe for
// concurrent use.
type TaskStore struct {
	gateway persistence.Gateway
	tasks   []domain.Task
	clock   func() time.Time
	nextID  func() string
	logger  *log.Logger
}

// Open loads the stored collection once and returns a ready store
func Open(ctx context.Context, gateway persistence.Gateway, opts ...Option) (*TaskStore, error) {
	s := &TaskStore{
		gateway: gateway,
		clock:   time.Now,
		nextID:  uuid.NewString,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	tasks, err := gateway.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.tasks = tasks
	if s.tasks == nil {
		s.tasks = []domain.Task{}
	}

	s.logger.Debug("task store opened", "count", len(s.tasks))
	return s, nil
}

// Create appends a new pending task and saves. Fields are stored as given.
func (s *TaskStore) Create(ctx context.Context, input NewTaskInput) (domain.Task, error) {
	id, err := s.uniqueID()
	if err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:        id,
		Name:      input.Name,
		Category:  input.Category,
		Time:      input.Time,
		Important: input.Important,
		Routine:   input.Routine,
		Completed: false,
		CreatedAt: s.clock().UTC().Truncate(time.Millisecond),
	}

	next := make([]domain.Task, len(s.tasks), len(s.tasks)+1)
	copy(next, s.tasks)
	next = append(next, task)

	if err := s.commit(ctx, next); err != nil {
		return domain.Task{}, err
	}

	s.logger.Debug("task created", "id", task.ID, "category", task.Category, "time", task.Time)
	return task, nil
}

// ToggleCompletion flips the completed flag of the task with id and saves.
// An unknown id is ignored.
func (s *TaskStore) ToggleCompletion(ctx context.Context, id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("toggle ignored, no such task", "id", id)
		return nil
	}

	next := s.snapshot()
	next[idx].Completed = !next[idx].Completed

	if err := s.commit(ctx, next); err != nil {
		return err
	}

	s.logger.Debug("task toggled", "id", id, "completed", next[idx].Completed)
	return nil
}

// Delete removes the task with id, keeping the order of the rest, and saves.
// An unknown id is ignored.
func (s *TaskStore) Delete(ctx context.Context, id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("delete ignored, no such task", "id", id)
		return nil
	}

	next := make([]domain.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:idx]...)
	next = append(next, s.tasks[idx+1:]...)

	if err := s.commit(ctx, next); err != nil {
		return err
	}

	s.logger.Debug("task deleted", "id", id)
	return nil
}

// ClearAll empties the collection and saves, even when it is already empty
func (s *TaskStore) ClearAll(ctx context.Context) error {
	if err := s.commit(ctx, []domain.Task{}); err != nil {
		return err
	}

	s.logger.Debug("all tasks cleared")
	return nil
}

// GetAll returns a copy of the collection in insertion order
func (s *TaskStore) GetAll() []domain.Task {
	return s.snapshot()
}

// Get returns the task with id
func (s *TaskStore) Get(id string) (domain.Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Task{}, false
	}
	return s.tasks[idx], true
}

// Len returns the number of tasks
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// commit saves next and only then makes it the live collection
func (s *TaskStore) commit(ctx context.Context, next []domain.Task) error {
	if err := s.gateway.Save(ctx, next); err != nil {
		s.logger.Debug("save failed, keeping previous state", "err", err)
		return err
	}
	s.tasks = next
	return nil
}

func (s *TaskStore) snapshot() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *TaskStore) indexOf(id string) int {
	for i, task := range s.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskStore) uniqueID() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := s.nextID()
		if id != "" && s.indexOf(id) < 0 {
			return id, nil
		}
	}
	return "", errors.WrapError(
		fmt.Errorf("no unique id after %d attempts", maxIDAttempts),
		errors.ErrorTypeStorage,
		"could not assign a task id",
	)
}
