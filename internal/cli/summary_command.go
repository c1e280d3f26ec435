package cli

import (
	"context"

	"day-planner/internal/api"
)

// SummaryCommand handles the summary command
type SummaryCommand struct {
	app *App
}

// NewSummaryCommand creates a new summary command handler
func NewSummaryCommand(app *App) *SummaryCommand {
	return &SummaryCommand{app: app}
}

// Execute runs the summary command
func (c *SummaryCommand) Execute(ctx context.Context, args []string) error {
	err := c.app.withPlanner(ctx, func(planner api.Planner) error {
		stats, err := planner.DaySummary(ctx)
		if err != nil {
			return err
		}
		c.app.renderer().Summary(stats)
		return nil
	})
	if err != nil {
		return c.app.fail("summarize day", err)
	}
	return nil
}
