package usecase

import (
	"context"

	"github.com/leanwork/lean/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Dir   string // Directory to start workspace discovery from
	Limit int    // Maximum number of tasks (0 = all)
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Workspace *domain.Workspace
	Tasks     []*domain.StoredTask
	Total     int // Number of tasks before the limit was applied
}

// ListTasks is the use case for listing published tasks.
type ListTasks struct {
	locator domain.WorkspaceLocator
	tasks   domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(locator domain.WorkspaceLocator, tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{locator: locator, tasks: tasks}
}

// Execute returns the tasks of the workspace enclosing in.Dir, ordered by ID.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	ws, err := uc.locator.Resolve(in.Dir)
	if err != nil {
		return nil, err
	}

	tasks, err := uc.tasks.List(ws)
	if err != nil {
		return nil, err
	}

	total := len(tasks)
	if in.Limit > 0 && in.Limit < total {
		tasks = tasks[:in.Limit]
	}

	return &ListTasksOutput{Workspace: ws, Tasks: tasks, Total: total}, nil
}
