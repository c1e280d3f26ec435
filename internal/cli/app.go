package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"day-planner/internal/api"
	"day-planner/internal/config"
	"day-planner/internal/errors"
	"day-planner/internal/logging"
)

// PlannerOpener opens a planner for one command run. The returned func
// releases its storage.
type PlannerOpener func(ctx context.Context, cfg *config.Config, logger *log.Logger, opts ...api.Option) (api.Planner, func() error, error)

// App represents the main CLI application
type App struct {
	opener       PlannerOpener
	config       *config.Config
	logger       *log.Logger
	in           io.Reader
	out          io.Writer
	errOut       io.Writer
	errorHandler *ErrorHandler
}

// AppOption configures an App.
type AppOption func(*App)

// WithIO replaces stdin, stdout and stderr.
func WithIO(in io.Reader, out, errOut io.Writer) AppOption {
	return func(a *App) {
		a.in = in
		a.out = out
		a.errOut = errOut
	}
}

// WithAppLogger sets the logger instead of building one from config.
func WithAppLogger(logger *log.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(opener PlannerOpener, cfg *config.Config, opts ...AppOption) *App {
	app := &App{
		opener:       opener,
		config:       cfg,
		in:           os.Stdin,
		out:          os.Stdout,
		errOut:       os.Stderr,
		errorHandler: NewErrorHandler(),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// OpenDefaultPlanner opens the repository chosen by MYDAY_ENV and the storage
// settings, and loads the planner from it.
func OpenDefaultPlanner(ctx context.Context, cfg *config.Config, logger *log.Logger, opts ...api.Option) (api.Planner, func() error, error) {
	repo, err := config.NewRepositoryFactory(config.GetEnvironment(), cfg).CreateRepository()
	if err != nil {
		return nil, nil, errors.NewStorageError("open storage", err)
	}

	gateway, err := config.CreateGateway(repo, cfg, logger)
	if err != nil {
		repo.Close()
		return nil, nil, err
	}

	planner, err := api.Open(ctx, gateway, cfg, append([]api.Option{api.WithLogger(logger)}, opts...)...)
	if err != nil {
		repo.Close()
		return nil, nil, err
	}
	return planner, repo.Close, nil
}

// Config returns the active configuration
func (a *App) Config() *config.Config {
	return a.config
}

// Logger returns the app logger, building it from config on first use
func (a *App) Logger() *log.Logger {
	if a.logger == nil {
		a.logger = logging.New(a.config.Logging, a.errOut)
	}
	return a.logger
}

// withPlanner opens the planner, runs fn and releases storage.
func (a *App) withPlanner(ctx context.Context, fn func(api.Planner) error, opts ...api.Option) error {
	planner, release, err := a.opener(ctx, a.config, a.Logger(), opts...)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := release(); closeErr != nil {
			a.Logger().Warn("failed to close storage", "err", closeErr)
		}
	}()
	return fn(planner)
}

// fail logs unexpected errors and converts err into a user-facing error
func (a *App) fail(operation string, err error) error {
	if errors.ShouldLogError(err) {
		a.Logger().Debug("command failed", "operation", operation, "code", a.errorHandler.GetErrorCode(err), "err", err)
	}
	return a.errorHandler.Handle(operation, err)
}

// renderer returns a renderer honouring the color setting
func (a *App) renderer() *Renderer {
	return NewRenderer(a.out, a.config.Display.Color)
}

// notifier returns the stderr notifier
func (a *App) notifier() *Notifier {
	return NewNotifier(a.errOut, a.config.Display.Color)
}

// confirmer returns the prompt used to gate destructive commands
func (a *App) confirmer(assumeYes bool) *Confirmer {
	return NewConfirmer(a.in, a.out, assumeYes || a.config.Application.AssumeYes)
}
