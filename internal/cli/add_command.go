package cli

import (
	"context"
	"strings"

	"day-planner/internal/api"
	"day-planner/internal/validation"
)

// AddOptions holds the add command flags
type AddOptions struct {
	Category  string
	Time      string
	Important bool
	Routine   bool
}

// AddCommand handles the add command
type AddCommand struct {
	app  *App
	opts AddOptions
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App, opts AddOptions) *AddCommand {
	return &AddCommand{app: app, opts: opts}
}

// Execute runs the add command; args are joined into the task name
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	form := validation.TaskForm{
		Name:      strings.Join(args, " "),
		Category:  c.opts.Category,
		Time:      c.opts.Time,
		Important: c.opts.Important,
		Routine:   c.opts.Routine,
	}

	err := c.app.withPlanner(ctx, func(planner api.Planner) error {
		task, err := planner.AddTask(ctx, form)
		if err != nil {
			return err
		}
		c.app.renderer().Task(task)
		return nil
	})
	if err != nil {
		return c.app.fail("add task", err)
	}

	c.app.notifier().Notify("Task added successfully!")
	return nil
}
