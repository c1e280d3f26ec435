package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"day-planner/internal/api"
	"day-planner/internal/domain"
	"day-planner/internal/view"
)

func TestRenderer_TaskLine(t *testing.T) {
	tests := []struct {
		name     string
		task     domain.Task
		expected string
	}{
		{
			name:     "pending with flags",
			task:     domain.Task{ID: "0f9e8d7c-6b5a", Name: "Submit essay", Category: domain.CategoryAssignment, Time: "23:59", Important: true, Routine: true},
			expected: "  [ ] 11:59 PM  Submit essay  Assignment  important  routine  #0f9e8d7c",
		},
		{
			name:     "completed midnight task",
			task:     domain.Task{ID: "abc", Name: "Lock up", Category: domain.CategoryOther, Time: "00:30", Completed: true},
			expected: "  [x] 12:30 AM  Lock up  Other  #abc",
		},
		{
			name:     "unknown category is shown as stored",
			task:     domain.Task{ID: "abc", Name: "Odd", Category: "gardening", Time: "07:00"},
			expected: "  [ ]  7:00 AM  Odd  Gardening  #abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			NewRenderer(out, false).Task(tt.task)

			assert.Equal(t, tt.expected+"\n", out.String())
		})
	}
}

func TestRenderer_EmptyViews(t *testing.T) {
	out := &bytes.Buffer{}
	renderer := NewRenderer(out, false)

	renderer.TimeGroups(nil)
	renderer.CategoryGroups([]view.CategoryGroup{})
	renderer.Summary(&api.DayStatistics{})

	expected := strings.Repeat(emptyDayMessage+"\n", 3)
	assert.Equal(t, expected, out.String())
}

func TestRenderer_Summary(t *testing.T) {
	out := &bytes.Buffer{}
	stats := &api.DayStatistics{
		TotalCount:     4,
		CompletedCount: 1,
		PendingCount:   3,
		ImportantCount: 2,
		RoutineCount:   0,
		ByCategory: []api.CategoryCount{
			{Category: domain.CategoryCooking, Label: "Cooking", Total: 2, Completed: 1},
			{Category: domain.CategoryStudy, Label: "Study", Total: 1},
		},
		UnknownCount: 1,
	}

	NewRenderer(out, false).Summary(stats)

	expected := strings.Join([]string{
		"Today",
		"  Tasks:      4",
		"  Completed:  1 (25%)",
		"  Pending:    3",
		"  Important:  2",
		"  Routine:    0",
		"",
		"By category",
		"  Cooking     1/2 done",
		"  Study       0/1 done",
		"  Unlisted:   1",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestRenderer_StyledKeepsText(t *testing.T) {
	out := &bytes.Buffer{}
	groups := view.ProjectByTime([]domain.Task{{ID: "abc", Name: "Read", Category: domain.CategoryStudy, Time: "09:15"}})

	NewRenderer(out, true).TimeGroups(groups)

	assert.Contains(t, out.String(), "9 AM")
	assert.Contains(t, out.String(), "Read")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "12345678", shortID("123456789abc"))
	assert.Equal(t, "short", shortID("short"))
}
