package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/leanwork/lean/internal/domain"
)

// ShowTaskInput contains the parameters for showing tasks.
type ShowTaskInput struct {
	Dir string   // Directory to start workspace discovery from
	IDs []string // Task IDs or slugs (at least one)
}

// ShowTaskOutput contains the tasks to show, in the order they were requested.
type ShowTaskOutput struct {
	Tasks []*domain.StoredTask
}

// ShowTask is the use case for looking up tasks by ID.
type ShowTask struct {
	locator domain.WorkspaceLocator
	tasks   domain.TaskRepository
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(locator domain.WorkspaceLocator, tasks domain.TaskRepository) *ShowTask {
	return &ShowTask{locator: locator, tasks: tasks}
}

// Execute finds the requested tasks.
// An ID matches a task when it equals the task ID (optionally with .yaml
// extension) or the slug part of its file name. A slug may match several tasks.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	ws, err := uc.locator.Resolve(in.Dir)
	if err != nil {
		return nil, err
	}

	all, err := uc.tasks.List(ws)
	if err != nil {
		return nil, err
	}

	var result []*domain.StoredTask
	seen := make(map[string]bool)
	for _, id := range in.IDs {
		matches := matchTasks(all, id)
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
		}
		for _, st := range matches {
			if !seen[st.ID] {
				seen[st.ID] = true
				result = append(result, st)
			}
		}
	}

	return &ShowTaskOutput{Tasks: result}, nil
}

func matchTasks(tasks []*domain.StoredTask, id string) []*domain.StoredTask {
	id = strings.TrimSuffix(id, domain.TaskFileExt)

	for _, st := range tasks {
		if st.ID == id {
			return []*domain.StoredTask{st}
		}
	}

	var matches []*domain.StoredTask
	for _, st := range tasks {
		info, ok := domain.ParseTaskFileName(path.Base(st.ID))
		if ok && info.Slug == id {
			matches = append(matches, st)
		}
	}
	return matches
}
