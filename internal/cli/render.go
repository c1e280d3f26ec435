package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"day-planner/internal/api"
	"day-planner/internal/domain"
	"day-planner/internal/view"
)

const (
	emptyDayMessage = "No tasks added yet. Start planning your day!"
	shortIDLength   = 8
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	doneStyle      = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241"))
	importantStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	routineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	faintStyle     = lipgloss.NewStyle().Faint(true)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Renderer writes projections to the terminal
type Renderer struct {
	out    io.Writer
	styled bool
}

// NewRenderer creates a renderer; styled enables lipgloss colors
func NewRenderer(out io.Writer, styled bool) *Renderer {
	return &Renderer{out: out, styled: styled}
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.styled {
		return s
	}
	return style.Render(s)
}

// Empty prints the empty-day message
func (r *Renderer) Empty() {
	fmt.Fprintln(r.out, emptyDayMessage)
}

// TimeGroups prints the by-time view
func (r *Renderer) TimeGroups(groups []view.TimeGroup) {
	if len(groups) == 0 {
		r.Empty()
		return
	}
	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintln(r.out, r.paint(headerStyle, group.Label))
		for _, task := range group.Tasks {
			fmt.Fprintln(r.out, r.taskLine(task, true))
		}
	}
}

// CategoryGroups prints the by-category view
func (r *Renderer) CategoryGroups(groups []view.CategoryGroup) {
	if len(groups) == 0 {
		r.Empty()
		return
	}
	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintln(r.out, r.paint(headerStyle, fmt.Sprintf("%s (%d)", group.Label, len(group.Tasks))))
		for _, task := range group.Tasks {
			fmt.Fprintln(r.out, r.taskLine(task, false))
		}
	}
}

// Task prints a single task line
func (r *Renderer) Task(task domain.Task) {
	fmt.Fprintln(r.out, r.taskLine(task, true))
}

// taskLine renders "  [x] 2:05 PM  Name  Category important routine  #id".
func (r *Renderer) taskLine(task domain.Task, withCategory bool) string {
	box := "[ ]"
	name := task.Name
	if task.Completed {
		box = "[x]"
		name = r.paint(doneStyle, name)
	}

	parts := []string{fmt.Sprintf("  %s %8s  %s", box, view.FormatTime(task.Time), name)}
	if withCategory {
		parts = append(parts, r.paint(faintStyle, view.CategoryLabel(task.Category)))
	}
	if task.Important {
		parts = append(parts, r.paint(importantStyle, "important"))
	}
	if task.Routine {
		parts = append(parts, r.paint(routineStyle, "routine"))
	}
	parts = append(parts, r.paint(faintStyle, "#"+shortID(task.ID)))
	return strings.Join(parts, "  ")
}

// Summary prints day statistics
func (r *Renderer) Summary(stats *api.DayStatistics) {
	if stats.TotalCount == 0 {
		r.Empty()
		return
	}

	fmt.Fprintln(r.out, r.paint(headerStyle, "Today"))
	fmt.Fprintf(r.out, "  %-11s %d\n", "Tasks:", stats.TotalCount)
	fmt.Fprintf(r.out, "  %-11s %d (%d%%)\n", "Completed:", stats.CompletedCount, stats.CompletionPercent())
	fmt.Fprintf(r.out, "  %-11s %d\n", "Pending:", stats.PendingCount)
	fmt.Fprintf(r.out, "  %-11s %d\n", "Important:", stats.ImportantCount)
	fmt.Fprintf(r.out, "  %-11s %d\n", "Routine:", stats.RoutineCount)

	if len(stats.ByCategory) > 0 || stats.UnknownCount > 0 {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, r.paint(headerStyle, "By category"))
		for _, count := range stats.ByCategory {
			fmt.Fprintf(r.out, "  %-11s %d/%d done\n", count.Label, count.Completed, count.Total)
		}
		if stats.UnknownCount > 0 {
			fmt.Fprintf(r.out, "  %-11s %d\n", "Unlisted:", stats.UnknownCount)
		}
	}
}

func shortID(id string) string {
	if len(id) <= shortIDLength {
		return id
	}
	return id[:shortIDLength]
}
