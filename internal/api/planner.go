package api

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"day-planner/internal/config"
	"day-planner/internal/domain"
	"day-planner/internal/errors"
	"day-planner/internal/logging"
	"day-planner/internal/persistence"
	"day-planner/internal/store"
	"day-planner/internal/validation"
	"day-planner/internal/view"
)

// Planner defines the operations the presentation layer can invoke
type Planner interface {
	// ========== Task Management Workflows ==========

	// AddTask validates the form and creates a pending task
	AddTask(ctx context.Context, form validation.TaskForm) (domain.Task, error)

	// ToggleTask flips completion of the task matching id or a unique id prefix
	ToggleTask(ctx context.Context, id string) (domain.Task, error)

	// DeleteTask removes the task matching id or a unique id prefix
	DeleteTask(ctx context.Context, id string) (domain.Task, error)

	// ResetDay clears every task for a new day
	ResetDay(ctx context.Context) error

	// ========== Query Operations ==========

	// GetTask returns the task matching id or a unique id prefix
	GetTask(ctx context.Context, id string) (domain.Task, error)

	// ListTasks returns all tasks in insertion order
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// TasksByTime returns the by-time projection
	TasksByTime(ctx context.Context) ([]view.TimeGroup, error)

	// TasksByCategory returns the by-category projection
	TasksByCategory(ctx context.Context) ([]view.CategoryGroup, error)

	// DaySummary returns counts for the current day
	DaySummary(ctx context.Context) (*DayStatistics, error)
}

// Storage is the persistence the planner opens its store on.
type Storage interface {
	persistence.Gateway
	Discard(ctx context.Context) error
}

// Option configures Open.
type Option func(*openOptions)

type openOptions struct {
	logger            *log.Logger
	discardUnreadable bool
	storeOpts         []store.Option
}

// WithLogger sets the logger shared by the planner and its store.
func WithLogger(logger *log.Logger) Option {
	return func(o *openOptions) {
		o.logger = logger
	}
}

// WithDiscardUnreadable drops stored data that cannot be decoded instead of
// failing to open.
func WithDiscardUnreadable() Option {
	return func(o *openOptions) {
		o.discardUnreadable = true
	}
}

// WithStoreOptions passes options through to the task store.
func WithStoreOptions(opts ...store.Option) Option {
	return func(o *openOptions) {
		o.storeOpts = append(o.storeOpts, opts...)
	}
}

// plannerImpl implements the Planner interface
type plannerImpl struct {
	store         *store.TaskStore
	taskValidator *validation.TaskValidator
	logger        *log.Logger
}

// Open loads the task store from storage and returns a planner over it
func Open(ctx context.Context, storage Storage, cfg *config.Config, opts ...Option) (Planner, error) {
	o := &openOptions{logger: logging.Discard()}
	for _, opt := range opts {
		opt(o)
	}
	storeOpts := append([]store.Option{store.WithLogger(o.logger)}, o.storeOpts...)

	taskStore, err := store.Open(ctx, storage, storeOpts...)
	if err != nil && o.discardUnreadable && errors.IsErrorType(err, errors.ErrorTypeCorruptData) {
		o.logger.Warn("discarding unreadable stored tasks", "err", err)
		if discardErr := storage.Discard(ctx); discardErr != nil {
			return nil, discardErr
		}
		taskStore, err = store.Open(ctx, storage, storeOpts...)
	}
	if err != nil {
		return nil, err
	}

	return New(taskStore, cfg, o.logger), nil
}

// New creates a planner over an already opened store
func New(taskStore *store.TaskStore, cfg *config.Config, logger *log.Logger) Planner {
	if logger == nil {
		logger = logging.Discard()
	}
	validator := validation.NewTaskValidator()
	if cfg != nil {
		validator = validation.NewTaskValidatorWithConfig(cfg)
	}
	return &plannerImpl{
		store:         taskStore,
		taskValidator: validator,
		logger:        logger,
	}
}

// ========== Task Management Workflows ==========

func (p *plannerImpl) AddTask(ctx context.Context, form validation.TaskForm) (domain.Task, error) {
	valid, err := p.taskValidator.ValidateTaskForm(form)
	if err != nil {
		return domain.Task{}, errors.NewValidationError("invalid task", err)
	}

	return p.store.Create(ctx, store.NewTaskInput{
		Name:      valid.Name,
		Category:  valid.Category,
		Time:      valid.Time,
		Important: valid.Important,
		Routine:   valid.Routine,
	})
}

func (p *plannerImpl) ToggleTask(ctx context.Context, id string) (domain.Task, error) {
	task, err := p.resolve(id)
	if err != nil {
		return domain.Task{}, err
	}

	if err := p.store.ToggleCompletion(ctx, task.ID); err != nil {
		return domain.Task{}, err
	}

	updated, _ := p.store.Get(task.ID)
	return updated, nil
}

func (p *plannerImpl) DeleteTask(ctx context.Context, id string) (domain.Task, error) {
	task, err := p.resolve(id)
	if err != nil {
		return domain.Task{}, err
	}

	if err := p.store.Delete(ctx, task.ID); err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

func (p *plannerImpl) ResetDay(ctx context.Context) error {
	return p.store.ClearAll(ctx)
}

// ========== Query Operations ==========

func (p *plannerImpl) GetTask(ctx context.Context, id string) (domain.Task, error) {
	return p.resolve(id)
}

func (p *plannerImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return p.store.GetAll(), nil
}

func (p *plannerImpl) TasksByTime(ctx context.Context) ([]view.TimeGroup, error) {
	return view.ProjectByTime(p.store.GetAll()), nil
}

func (p *plannerImpl) TasksByCategory(ctx context.Context) ([]view.CategoryGroup, error) {
	return view.ProjectByCategory(p.store.GetAll()), nil
}

func (p *plannerImpl) DaySummary(ctx context.Context) (*DayStatistics, error) {
	return summarize(p.store.GetAll()), nil
}

// resolve finds the task with the exact id, or else the single task whose id
// starts with it.
func (p *plannerImpl) resolve(id string) (domain.Task, error) {
	if err := p.taskValidator.ValidateTaskID(id); err != nil {
		return domain.Task{}, errors.NewValidationError("invalid task id", err)
	}
	id = strings.TrimSpace(id)

	if task, ok := p.store.Get(id); ok {
		return task, nil
	}

	var matches []domain.Task
	for _, task := range p.store.GetAll() {
		if strings.HasPrefix(task.ID, id) {
			matches = append(matches, task)
		}
	}

	switch len(matches) {
	case 0:
		return domain.Task{}, errors.NewNotFoundError("task", id)
	case 1:
		return matches[0], nil
	default:
		return domain.Task{}, errors.NewInvalidInputError("id", id, "matches more than one task, use more characters")
	}
}
