package domain

import (
	"context"
	"time"
)

// WorkspaceLocator finds the workspace enclosing a directory.
type WorkspaceLocator interface {
	// Locate walks from dir toward the filesystem root looking for the marker file.
	// dir must be absolute.
	Locate(dir string) (*Workspace, error)

	// Resolve makes dir absolute and canonical, then locates its workspace.
	Resolve(dir string) (*Workspace, error)
}

// WorkspaceInitializer creates new workspaces.
type WorkspaceInitializer interface {
	// Initialize creates a workspace rooted at target, refusing to nest workspaces.
	Initialize(target string) (*Workspace, error)
}

// StoredTask is a published task record together with its location.
// ID is the path below tasks/ without extension, e.g. "home/000U_paint_fence".
type StoredTask struct {
	Task *Task
	ID   string
	Path string
}

// TaskRepository reads published task records.
type TaskRepository interface {
	// List returns every task below the workspace's tasks directory, sorted by ID.
	List(ws *Workspace) ([]*StoredTask, error)
}

// Editor lets the user edit a file.
type Editor interface {
	// Edit blocks until the user has finished editing path.
	Edit(ctx context.Context, path string) error
}

// Prompter asks the user questions.
type Prompter interface {
	// Confirm asks a yes/no question. def is returned for an empty answer.
	Confirm(question string, def bool) (bool, error)

	// Printf writes a message to the user.
	Printf(format string, args ...any)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration merged over the defaults.
	Load() (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
