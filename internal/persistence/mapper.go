package persistence

import (
	"fmt"
	"time"

	"day-planner/internal/domain"
)

// createdAtLayout is ISO-8601 with millisecond precision, matching the
// stored records written by earlier versions of the planner.
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// TaskRecord is the wire shape of a single task inside the slot value.
type TaskRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Time      string `json:"time"`
	Important bool   `json:"important"`
	Routine   bool   `json:"routine"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

// TaskMapper converts between domain tasks and stored records
type TaskMapper struct{}

// NewTaskMapper creates a new task mapper
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain task to its stored form
func (m *TaskMapper) ToRecord(task domain.Task) TaskRecord {
	return TaskRecord{
		ID:        task.ID,
		Name:      task.Name,
		Category:  string(task.Category),
		Time:      string(task.Time),
		Important: task.Important,
		Routine:   task.Routine,
		Completed: task.Completed,
		CreatedAt: task.CreatedAt.UTC().Format(createdAtLayout),
	}
}

// ToDomain converts a stored record to a domain task
func (m *TaskMapper) ToDomain(record TaskRecord) (domain.Task, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, record.CreatedAt)
	if err != nil {
		return domain.Task{}, fmt.Errorf("task %q: invalid createdAt: %w", record.ID, err)
	}

	return domain.Task{
		ID:        record.ID,
		Name:      record.Name,
		Category:  domain.Category(record.Category),
		Time:      domain.ClockTime(record.Time),
		Important: record.Important,
		Routine:   record.Routine,
		Completed: record.Completed,
		CreatedAt: createdAt.UTC(),
	}, nil
}

// ToRecords converts a slice of domain tasks, preserving order
func (m *TaskMapper) ToRecords(tasks []domain.Task) []TaskRecord {
	records := make([]TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}

// ToDomainSlice converts stored records, preserving order
func (m *TaskMapper) ToDomainSlice(records []TaskRecord) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(records))
	for _, record := range records {
		task, err := m.ToDomain(record)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}
