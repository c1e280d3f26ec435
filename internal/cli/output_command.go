package cli

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"day-planner/internal/api"
	"day-planner/internal/domain"
	"day-planner/internal/errors"
	"day-planner/internal/persistence"
	"day-planner/internal/view"
)

// OutputCommand handles the output command
type OutputCommand struct {
	app *App
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(app *App) *OutputCommand {
	return &OutputCommand{app: app}
}

// Execute runs the output command
func (c *OutputCommand) Execute(ctx context.Context, args []string) error {
	format := c.app.Config().Display.OutputFormat
	if len(args) > 0 {
		option := args[0]
		if !strings.HasPrefix(option, "format=") {
			return c.app.fail("export tasks", errors.NewInvalidInputError("format", option, "usage: myday output format=csv|json"))
		}
		format = strings.TrimPrefix(option, "format=")
	}

	var write func([]domain.Task) error
	switch format {
	case "csv":
		write = c.outputCSV
	case "json":
		write = c.outputJSON
	default:
		return c.app.fail("export tasks", errors.NewInvalidInputError("format", format, "unsupported format"))
	}

	err := c.app.withPlanner(ctx, func(planner api.Planner) error {
		tasks, err := planner.ListTasks(ctx)
		if err != nil {
			return err
		}
		return write(view.SortByTime(tasks))
	})
	if err != nil {
		return c.app.fail("export tasks", err)
	}
	return nil
}

// outputCSV writes tasks in time order with a header row
func (c *OutputCommand) outputCSV(tasks []domain.Task) error {
	writer := csv.NewWriter(c.app.out)

	header := []string{"ID", "Time", "Name", "Category", "Important", "Routine", "Completed", "Created At"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	mapper := persistence.NewTaskMapper()
	for _, task := range tasks {
		record := mapper.ToRecord(task)
		row := []string{
			record.ID,
			record.Time,
			record.Name,
			record.Category,
			strconv.FormatBool(record.Important),
			strconv.FormatBool(record.Routine),
			strconv.FormatBool(record.Completed),
			record.CreatedAt,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// outputJSON writes tasks in the stored record format
func (c *OutputCommand) outputJSON(tasks []domain.Task) error {
	encoder := json.NewEncoder(c.app.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(persistence.NewTaskMapper().ToRecords(tasks))
}
