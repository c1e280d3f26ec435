// Package view derives the grouped, ordered projections the planner displays.
// Every function here is pure.
package view

import (
	"sort"

	"day-planner/internal/domain"
)

// TimeGroup is one occupied hour of the by-time view.
type TimeGroup struct {
	HourKey string
	Label   string
	Tasks   []domain.Task
}

// CategoryGroup is one non-empty category of the by-category view.
type CategoryGroup struct {
	Category domain.Category
	Label    string
	Tasks    []domain.Task
}

// SortByTime returns a copy of tasks stably ordered by the raw "HH:MM" text.
func SortByTime(tasks []domain.Task) []domain.Task {
	sorted := make([]domain.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return sorted
}

// ProjectByTime groups tasks by hour, hours ascending and tasks ascending by
// time within each hour. Only occupied hours appear.
func ProjectByTime(tasks []domain.Task) []TimeGroup {
	sorted := SortByTime(tasks)

	byHour := make(map[string][]domain.Task)
	var keys []string
	for _, task := range sorted {
		key := task.Time.HourKey()
		if _, seen := byHour[key]; !seen {
			keys = append(keys, key)
		}
		byHour[key] = append(byHour[key], task)
	}
	sort.Strings(keys)

	groups := make([]TimeGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, TimeGroup{
			HourKey: key,
			Label:   HourLabel(key),
			Tasks:   byHour[key],
		})
	}
	return groups
}

// ProjectByCategory groups tasks in the fixed category order, tasks ascending
// by time within each group. Empty categories are skipped and tasks whose
// category is not one of the known six are left out.
func ProjectByCategory(tasks []domain.Task) []CategoryGroup {
	byCategory := make(map[domain.Category][]domain.Task)
	for _, task := range tasks {
		byCategory[task.Category] = append(byCategory[task.Category], task)
	}

	var groups []CategoryGroup
	for _, category := range domain.Categories() {
		members := byCategory[category]
		if len(members) == 0 {
			continue
		}
		groups = append(groups, CategoryGroup{
			Category: category,
			Label:    CategoryLabel(category),
			Tasks:    SortByTime(members),
		})
	}
	return groups
}
