package sqlite

import (
	"day-planner/internal/repository"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// ScanSlot scans a single slot from a database row
func ScanSlot(scanner Scanner) (*repository.Slot, error) {
	slot := &repository.Slot{}
	var updatedAt string

	if err := scanner.Scan(&slot.Key, &slot.Value, &updatedAt); err != nil {
		return nil, err
	}

	parsed, err := ParseTimeFromDB(updatedAt)
	if err != nil {
		return nil, err
	}
	slot.UpdatedAt = parsed

	return slot, nil
}
