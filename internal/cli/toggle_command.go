package cli

import (
	"context"

	"day-planner/internal/api"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app *App
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{app: app}
}

// Execute flips completion of the task named by args[0] (id or unique prefix)
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	id := firstArg(args)

	err := c.app.withPlanner(ctx, func(planner api.Planner) error {
		task, err := planner.ToggleTask(ctx, id)
		if err != nil {
			return err
		}
		c.app.renderer().Task(task)
		return nil
	})
	if err != nil {
		return c.app.fail("toggle task", err)
	}
	return nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
