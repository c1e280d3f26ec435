package cli

import (
	"context"
	"fmt"

	"day-planner/internal/api"
)

const deletePrompt = "Are you sure you want to delete this task?"

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app       *App
	assumeYes bool
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App, assumeYes bool) *DeleteCommand {
	return &DeleteCommand{app: app, assumeYes: assumeYes}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id := firstArg(args)
	deleted := false

	err := c.app.withPlanner(ctx, func(planner api.Planner) error {
		task, err := planner.GetTask(ctx, id)
		if err != nil {
			return err
		}

		c.app.renderer().Task(task)
		ok, err := c.app.confirmer(c.assumeYes).Confirm(deletePrompt)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(c.app.out, "Delete cancelled.")
			return nil
		}

		if _, err := planner.DeleteTask(ctx, task.ID); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return c.app.fail("delete task", err)
	}

	if deleted {
		c.app.notifier().Notify("Task deleted successfully!")
	}
	return nil
}
