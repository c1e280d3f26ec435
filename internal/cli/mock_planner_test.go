package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"day-planner/internal/api"
	"day-planner/internal/config"
	"day-planner/internal/domain"
	"day-planner/internal/errors"
	"day-planner/internal/validation"
	"day-planner/internal/view"
)

// mockPlanner implements the Planner interface for testing
type mockPlanner struct {
	tasks  []domain.Task
	nextID int
	resets int
	err    error
}

func newMockPlanner(tasks ...domain.Task) *mockPlanner {
	return &mockPlanner{tasks: tasks}
}

func (m *mockPlanner) AddTask(ctx context.Context, form validation.TaskForm) (domain.Task, error) {
	if m.err != nil {
		return domain.Task{}, m.err
	}
	valid, err := validation.NewTaskValidator().ValidateTaskForm(form)
	if err != nil {
		return domain.Task{}, errors.NewValidationError("invalid task", err)
	}
	m.nextID++
	task := domain.Task{
		ID:        fmt.Sprintf("mock%04d", m.nextID),
		Name:      valid.Name,
		Category:  valid.Category,
		Time:      valid.Time,
		Important: valid.Important,
		Routine:   valid.Routine,
		CreatedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
	}
	m.tasks = append(m.tasks, task)
	return task, nil
}

func (m *mockPlanner) ToggleTask(ctx context.Context, id string) (domain.Task, error) {
	i, err := m.find(id)
	if err != nil {
		return domain.Task{}, err
	}
	m.tasks[i].Completed = !m.tasks[i].Completed
	return m.tasks[i], nil
}

func (m *mockPlanner) DeleteTask(ctx context.Context, id string) (domain.Task, error) {
	i, err := m.find(id)
	if err != nil {
		return domain.Task{}, err
	}
	task := m.tasks[i]
	m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
	return task, nil
}

func (m *mockPlanner) ResetDay(ctx context.Context) error {
	if m.err != nil {
		return m.err
	}
	m.resets++
	m.tasks = nil
	return nil
}

func (m *mockPlanner) GetTask(ctx context.Context, id string) (domain.Task, error) {
	i, err := m.find(id)
	if err != nil {
		return domain.Task{}, err
	}
	return m.tasks[i], nil
}

func (m *mockPlanner) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.Task(nil), m.tasks...), nil
}

func (m *mockPlanner) TasksByTime(ctx context.Context) ([]view.TimeGroup, error) {
	if m.err != nil {
		return nil, m.err
	}
	return view.ProjectByTime(m.tasks), nil
}

func (m *mockPlanner) TasksByCategory(ctx context.Context) ([]view.CategoryGroup, error) {
	if m.err != nil {
		return nil, m.err
	}
	return view.ProjectByCategory(m.tasks), nil
}

func (m *mockPlanner) DaySummary(ctx context.Context) (*api.DayStatistics, error) {
	if m.err != nil {
		return nil, m.err
	}
	stats := &api.DayStatistics{TotalCount: len(m.tasks)}
	for _, task := range m.tasks {
		if task.Completed {
			stats.CompletedCount++
		}
	}
	stats.PendingCount = stats.TotalCount - stats.CompletedCount
	return stats, nil
}

func (m *mockPlanner) find(id string) (int, error) {
	if m.err != nil {
		return -1, m.err
	}
	for i, task := range m.tasks {
		if strings.HasPrefix(task.ID, id) {
			return i, nil
		}
	}
	return -1, errors.NewNotFoundError("task", id)
}

// testApp bundles an App with its captured streams
type testApp struct {
	app     *App
	planner *mockPlanner
	out     *bytes.Buffer
	errOut  *bytes.Buffer
	opened  []int
	openErr error
}

// setupTestApp builds an uncolored App over a mock planner; stdin supplies
// prompt answers.
func setupTestApp(t *testing.T, stdin string, tasks ...domain.Task) *testApp {
	t.Helper()

	ta := &testApp{
		planner: newMockPlanner(tasks...),
		out:     &bytes.Buffer{},
		errOut:  &bytes.Buffer{},
	}

	opener := func(ctx context.Context, cfg *config.Config, logger *log.Logger, opts ...api.Option) (api.Planner, func() error, error) {
		ta.opened = append(ta.opened, len(opts))
		if ta.openErr != nil {
			return nil, nil, ta.openErr
		}
		return ta.planner, func() error { return nil }, nil
	}

	cfg := config.NewConfig()
	cfg.Display.Color = false
	ta.app = NewApp(opener, cfg,
		WithIO(strings.NewReader(stdin), ta.out, ta.errOut),
		WithAppLogger(log.New(&bytes.Buffer{})),
	)
	return ta
}

func sampleTask(id, name string, category domain.Category, at domain.ClockTime) domain.Task {
	return domain.Task{ID: id, Name: name, Category: category, Time: at}
}
