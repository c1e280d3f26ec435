package cli

import (
	"context"
	"strings"

	"day-planner/internal/api"
	"day-planner/internal/config"
	"day-planner/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	app      *App
	viewName string
}

// NewListCommand creates a new list command handler. An empty view uses the
// configured default.
func NewListCommand(app *App, viewName string) *ListCommand {
	return &ListCommand{app: app, viewName: viewName}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	viewName := strings.ToLower(strings.TrimSpace(c.viewName))
	if viewName == "" {
		viewName = c.app.Config().Display.DefaultView
	}
	if viewName != config.ViewTime && viewName != config.ViewCategory {
		return c.app.fail("list tasks", errors.NewInvalidInputError("view", viewName, "must be time or category"))
	}

	err := c.app.withPlanner(ctx, func(planner api.Planner) error {
		renderer := c.app.renderer()
		if viewName == config.ViewCategory {
			groups, err := planner.TasksByCategory(ctx)
			if err != nil {
				return err
			}
			renderer.CategoryGroups(groups)
			return nil
		}

		groups, err := planner.TasksByTime(ctx)
		if err != nil {
			return err
		}
		renderer.TimeGroups(groups)
		return nil
	})
	if err != nil {
		return c.app.fail("list tasks", err)
	}
	return nil
}
