package cli

import (
	"context"
	"fmt"

	"day-planner/internal/api"
)

const resetPrompt = "Are you sure you want to clear all tasks for a new day?"

// ResetOptions holds the reset command flags
type ResetOptions struct {
	AssumeYes bool
	// Force discards stored data that cannot be read.
	Force bool
}

// ResetCommand handles the reset command
type ResetCommand struct {
	app  *App
	opts ResetOptions
}

// NewResetCommand creates a new reset command handler
func NewResetCommand(app *App, opts ResetOptions) *ResetCommand {
	return &ResetCommand{app: app, opts: opts}
}

// Execute runs the reset command
func (c *ResetCommand) Execute(ctx context.Context, args []string) error {
	ok, err := c.app.confirmer(c.opts.AssumeYes).Confirm(resetPrompt)
	if err != nil {
		return c.app.fail("reset day", err)
	}
	if !ok {
		fmt.Fprintln(c.app.out, "Reset cancelled.")
		return nil
	}

	var openOpts []api.Option
	if c.opts.Force {
		openOpts = append(openOpts, api.WithDiscardUnreadable())
	}

	err = c.app.withPlanner(ctx, func(planner api.Planner) error {
		return planner.ResetDay(ctx)
	}, openOpts...)
	if err != nil {
		return c.app.fail("reset day", err)
	}

	c.app.notifier().Notify("All tasks cleared for a new day!")
	return nil
}
