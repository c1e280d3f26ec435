package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"day-planner/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	app     *App
	loader  *config.Loader
	opener  PlannerOpener
	appOpts []AppOption
}

// NewRootCommand creates the root cobra command with global flags. The config
// is loaded once flags are parsed so they can take the last word.
func NewRootCommand(loader *config.Loader, opener PlannerOpener, opts ...AppOption) *RootCommand {
	root := &RootCommand{
		loader:  loader,
		opener:  opener,
		appOpts: opts,
	}

	root.cmd = &cobra.Command{
		Use:   "myday",
		Short: "Plan your day from the terminal",
		Long: `MyDay is a daily task planner. Add tasks with a time and a category,
tick them off as you go, and clear the list when a new day starts.

EXAMPLES:
  myday add Make breakfast --category cooking --time 08:00
  myday add Revise chapter 3 -c study -t 14:30 --important
  myday list                               # Tasks grouped by hour
  myday list --view category               # Tasks grouped by category
  myday toggle 3f2a                        # Complete a task by id prefix
  myday delete 3f2a                        # Delete a task (asks first)
  myday reset                              # Clear all tasks for a new day
  myday summary                            # Counts for today
  myday output format=json > today.json    # Export tasks

CONFIGURATION:
  Priority order: command-line flags > MYDAY_* environment variables >
  config file (MYDAY_CONFIG or ~/.myday/config.toml) > .env > defaults

    MYDAY_STORAGE_BACKEND                  sqlite or memory (default: sqlite)
    MYDAY_STORAGE_DIR                      Storage directory (default: ~/.myday)
    MYDAY_STORAGE_FILENAME                 Database filename (default: myday.db)
    MYDAY_STORAGE_ON_CORRUPT               fail or reset (default: fail)
    MYDAY_DISPLAY_DEFAULT_VIEW             time or category (default: time)
    MYDAY_LOG_LEVEL                        debug, info, warn, error (default: warn)
    MYDAY_DEBUG                            Force debug logging
    MYDAY_ENV                              production, development or testing`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.initApp()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs overrides os.Args, mainly for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "Config file (overrides MYDAY_CONFIG)")

	// Storage configuration
	flags.String("storage-backend", "", "Storage backend: sqlite or memory (overrides MYDAY_STORAGE_BACKEND)")
	flags.String("storage-dir", "", "Storage directory (overrides MYDAY_STORAGE_DIR)")
	flags.String("storage-filename", "", "Database filename (overrides MYDAY_STORAGE_FILENAME)")
	flags.String("on-corrupt", "", "Unreadable stored tasks: fail or reset (overrides MYDAY_STORAGE_ON_CORRUPT)")
	flags.Duration("query-timeout", 0, "Storage query timeout (overrides MYDAY_STORAGE_QUERY_TIMEOUT)")

	// Display configuration
	flags.String("default-view", "", "Default list view: time or category (overrides MYDAY_DISPLAY_DEFAULT_VIEW)")
	flags.Bool("no-color", false, "Disable colored output")

	// Logging configuration
	flags.String("log-level", "", "Log level (overrides MYDAY_LOG_LEVEL)")
	flags.String("log-format", "", "Log format: text, json or logfmt (overrides MYDAY_LOG_FORMAT)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides MYDAY_APP_TIMEOUT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Add command
	var addOpts AddOptions
	addCmd := &cobra.Command{
		Use:   "add [task name]",
		Short: "Add a task to today's plan",
		Long: `Add a task with a time of day and a category.

Categories: cooking, cleaning, study, assignment, personal, other
Times use the 24-hour HH:MM form, e.g. 08:00 or 18:45.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewAddCommand(r.app, addOpts).Execute(ctx, args)
		},
	}
	addCmd.Flags().StringVarP(&addOpts.Category, "category", "c", "", "Task category")
	addCmd.Flags().StringVarP(&addOpts.Time, "time", "t", "", "Time of day (HH:MM)")
	addCmd.Flags().BoolVarP(&addOpts.Important, "important", "i", false, "Mark as important")
	addCmd.Flags().BoolVarP(&addOpts.Routine, "routine", "r", false, "Mark as routine")

	// List command
	var listView string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show today's tasks",
		Long: `Show today's tasks grouped by hour (time view) or by category.

Examples:
  myday list
  myday list --view category`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewListCommand(r.app, listView).Execute(ctx, args)
		},
	}
	listCmd.Flags().StringVarP(&listView, "view", "v", "", "View: time or category")

	// Toggle command
	toggleCmd := &cobra.Command{
		Use:   "toggle [task id]",
		Short: "Mark a task done or not done",
		Long:  "Flip the completion of a task. A unique prefix of the id is enough.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewToggleCommand(r.app).Execute(ctx, args)
		},
	}

	// Delete command
	var deleteYes bool
	deleteCmd := &cobra.Command{
		Use:   "delete [task id]",
		Short: "Delete a task",
		Long: `Delete a task. A unique prefix of the id is enough.

This operation cannot be undone. You will be asked to confirm unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Prompts may need longer timeout for user interaction
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			return NewDeleteCommand(r.app, deleteYes).Execute(ctx, args)
		},
	}
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Do not ask for confirmation")

	// Reset command
	var resetOpts ResetOptions
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all tasks for a new day",
		Long: `Remove every task so the next day starts empty.

Use --force when saved tasks can no longer be read; the unreadable data is discarded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout()*2)
			defer cancel()

			return NewResetCommand(r.app, resetOpts).Execute(ctx, args)
		},
	}
	resetCmd.Flags().BoolVarP(&resetOpts.AssumeYes, "yes", "y", false, "Do not ask for confirmation")
	resetCmd.Flags().BoolVar(&resetOpts.Force, "force", false, "Discard saved tasks that cannot be read")

	// Summary command
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show counts for today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewSummaryCommand(r.app).Execute(ctx, args)
		},
	}

	// Output command
	outputCmd := &cobra.Command{
		Use:   "output format=csv|json",
		Short: "Export tasks in the specified format",
		Long: `Export today's tasks in time order.

Supported formats:
  csv  - Comma-separated values with a header row
  json - The stored task records

Example:
  myday output format=csv > today.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewOutputCommand(r.app).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		toggleCmd,
		deleteCmd,
		resetCmd,
		summaryCmd,
		outputCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.app != nil && r.app.config != nil && r.app.config.Application.Timeout > 0 {
		return r.app.config.Application.Timeout
	}
	return 30 * time.Second
}

// initApp loads configuration with flag overrides and builds the App
func (r *RootCommand) initApp() error {
	if r.loader == nil {
		return fmt.Errorf("configuration loader not initialized")
	}

	if path, _ := r.cmd.PersistentFlags().GetString("config"); path != "" {
		r.loader.WithConfigFile(path)
	}

	cfg, err := r.loader.LoadWithOverrides(r.getOverridesFromFlags())
	if err != nil {
		return NewErrorHandler().Handle("load configuration", err)
	}

	r.app = NewApp(r.opener, cfg, r.appOpts...)
	return nil
}

// getOverridesFromFlags collects the flags that were set on the command line
func (r *RootCommand) getOverridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		value, _ := flags.GetString(name)
		return &value
	}
	durationFlag := func(name string) *time.Duration {
		if !flags.Changed(name) {
			return nil
		}
		value, _ := flags.GetDuration(name)
		return &value
	}

	// Storage configuration
	overrides.Backend = stringFlag("storage-backend")
	overrides.StorageDir = stringFlag("storage-dir")
	overrides.Filename = stringFlag("storage-filename")
	overrides.OnCorrupt = stringFlag("on-corrupt")
	overrides.QueryTimeout = durationFlag("query-timeout")

	// Display configuration
	overrides.DefaultView = stringFlag("default-view")
	if noColor, _ := flags.GetBool("no-color"); noColor {
		color := false
		overrides.Color = &color
	}

	// Logging configuration
	overrides.LogLevel = stringFlag("log-level")
	overrides.LogFormat = stringFlag("log-format")

	// Application configuration
	overrides.Timeout = durationFlag("app-timeout")

	return overrides
}
