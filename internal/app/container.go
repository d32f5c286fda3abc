// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"log/slog"

	"github.com/leanwork/lean/internal/domain"
	"github.com/leanwork/lean/internal/infra/config"
	"github.com/leanwork/lean/internal/infra/editor"
	"github.com/leanwork/lean/internal/infra/logging"
	"github.com/leanwork/lean/internal/infra/prompt"
	"github.com/leanwork/lean/internal/infra/taskstore"
	"github.com/leanwork/lean/internal/infra/workspace"
	"github.com/leanwork/lean/internal/usecase"
)

// Streams are the standard streams handed to interactive components.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Locator      domain.WorkspaceLocator
	Initializer  domain.WorkspaceInitializer
	Tasks        domain.TaskRepository
	Clock        domain.Clock
	ConfigLoader domain.ConfigLoader
	Prompter     domain.Prompter
	Editor       domain.Editor // nil means resolve $EDITOR when a session starts

	// Pointer fields
	Logger *slog.Logger
	Config *domain.Config

	Streams    Streams
	ConfigPath string // Config file read by ConfigLoader
}

// New creates a new Container wired to the real filesystem, the global
// config file and the given streams.
func New(streams Streams) (*Container, error) {
	configLoader := config.NewLoader()
	cfg, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	locator := workspace.NewLocator()

	return &Container{
		Locator:      locator,
		Initializer:  workspace.NewInitializer(locator),
		Tasks:        taskstore.New(),
		Clock:        domain.RealClock{},
		ConfigLoader: configLoader,
		Prompter:     prompt.New(streams.In, streams.Out),
		Logger:       logging.New(streams.Err, logging.ParseLevel(cfg.Log.Level)),
		Config:       cfg,
		Streams:      streams,
		ConfigPath:   configLoader.Path(),
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg *domain.Config,
	locator domain.WorkspaceLocator,
	initializer domain.WorkspaceInitializer,
	tasks domain.TaskRepository,
	clock domain.Clock,
	logger *slog.Logger,
) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	return &Container{
		Locator:     locator,
		Initializer: initializer,
		Tasks:       tasks,
		Clock:       clock,
		Logger:      logger,
		Config:      cfg,
	}
}

// UseCase factory methods

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader, c.ConfigPath)
}

// InitWorkspaceUseCase returns a new InitWorkspace use case.
func (c *Container) InitWorkspaceUseCase() *usecase.InitWorkspace {
	return usecase.NewInitWorkspace(c.Initializer, c.Logger)
}

// AddTaskUseCase returns a new AddTask use case.
// Returns domain.ErrEditorNotSet if no editor is configured.
func (c *Container) AddTaskUseCase() (*usecase.AddTask, error) {
	ed := c.Editor
	if ed == nil {
		envEditor, err := editor.FromEnv()
		if err != nil {
			return nil, err
		}
		ed = envEditor.WithIO(c.Streams.In, c.Streams.Out, c.Streams.Err)
	}
	return usecase.NewAddTask(c.Locator, ed, c.Prompter, c.Clock, c.Config.ValidationPolicy(), c.Logger), nil
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Locator, c.Tasks)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Locator, c.Tasks)
}
