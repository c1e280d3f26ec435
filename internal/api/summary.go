package api

import (
	"day-planner/internal/domain"
	"day-planner/internal/view"
)

// CategoryCount is the per-category line of a day summary.
type CategoryCount struct {
	Category  domain.Category `json:"category"`
	Label     string          `json:"label"`
	Total     int             `json:"total"`
	Completed int             `json:"completed"`
}

// DayStatistics summarises the day's tasks.
type DayStatistics struct {
	TotalCount     int             `json:"total_count"`
	CompletedCount int             `json:"completed_count"`
	PendingCount   int             `json:"pending_count"`
	ImportantCount int             `json:"important_count"`
	RoutineCount   int             `json:"routine_count"`
	ByCategory     []CategoryCount `json:"by_category"`
	UnknownCount   int             `json:"unknown_category_count"`
}

// CompletionPercent returns completed tasks as a whole percentage of the total
func (s *DayStatistics) CompletionPercent() int {
	if s.TotalCount == 0 {
		return 0
	}
	return s.CompletedCount * 100 / s.TotalCount
}

// summarize counts tasks; categories appear in display order and only when used
func summarize(tasks []domain.Task) *DayStatistics {
	stats := &DayStatistics{ByCategory: []CategoryCount{}}
	perCategory := make(map[domain.Category]*CategoryCount)

	for _, task := range tasks {
		stats.TotalCount++
		if task.Completed {
			stats.CompletedCount++
		}
		if task.Important {
			stats.ImportantCount++
		}
		if task.Routine {
			stats.RoutineCount++
		}

		if !task.Category.IsKnown() {
			stats.UnknownCount++
			continue
		}
		count, ok := perCategory[task.Category]
		if !ok {
			count = &CategoryCount{Category: task.Category, Label: view.CategoryLabel(task.Category)}
			perCategory[task.Category] = count
		}
		count.Total++
		if task.Completed {
			count.Completed++
		}
	}
	stats.PendingCount = stats.TotalCount - stats.CompletedCount

	for _, category := range domain.Categories() {
		if count, ok := perCategory[category]; ok {
			stats.ByCategory = append(stats.ByCategory, *count)
		}
	}
	return stats
}
