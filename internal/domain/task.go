package domain

import (
	"time"
)

// Category is the area of the day a task belongs to.
type Category string

const (
	CategoryCooking    Category = "cooking"
	CategoryCleaning   Category = "cleaning"
	CategoryStudy      Category = "study"
	CategoryAssignment Category = "assignment"
	CategoryPersonal   Category = "personal"
	CategoryOther      Category = "other"
)

// categoryOrder is the fixed display order of the known categories.
var categoryOrder = []Category{
	CategoryCooking,
	CategoryCleaning,
	CategoryStudy,
	CategoryAssignment,
	CategoryPersonal,
	CategoryOther,
}

// Categories returns the known categories in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// IsKnown reports whether c is one of the six named categories.
func (c Category) IsKnown() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the category value.
func (c Category) String() string {
	return string(c)
}

// Task represents a single planned item for the day.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID        string
	Name      string
	Category  Category
	Time      ClockTime
	Important bool
	Routine   bool
	Completed bool
	CreatedAt time.Time
}

// IsValid checks if the task has the fields every stored task carries.
func (t Task) IsValid() bool {
	return t.ID != "" && t.Name != ""
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
