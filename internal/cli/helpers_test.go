package cli

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/leanwork/lean/internal/app"
	"github.com/leanwork/lean/internal/domain"
	"github.com/leanwork/lean/internal/infra/logging"
	"github.com/leanwork/lean/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer(locator *testutil.MockLocator, repo *testutil.MockTaskRepository) *app.Container {
	container := app.NewWithDeps(
		nil,
		locator,
		&testutil.MockInitializer{},
		repo,
		&testutil.MockClock{NowTime: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)},
		logging.Discard(),
	)
	container.Prompter = &testutil.MockPrompter{}
	container.Editor = &testutil.MockEditor{}
	container.ConfigLoader = &testutil.MockConfigLoader{}
	return container
}

// newTestWorkspace creates a workspace root with an empty tasks directory.
func newTestWorkspace(t *testing.T) *domain.Workspace {
	t.Helper()
	ws := &domain.Workspace{BaseDir: t.TempDir()}
	require.NoError(t, os.MkdirAll(ws.TasksDir(""), 0o755))
	return ws
}

// execute runs cmd with args and returns what it wrote to stdout.
func execute(cmd *cobra.Command, args ...string) (string, error) {
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func storedTask(id string, task *domain.Task) *domain.StoredTask {
	return &domain.StoredTask{Task: task, ID: id, Path: "/ws/tasks/" + id + domain.TaskFileExt}
}

func newTask(title string) *domain.Task {
	task := domain.NewDefaultTask(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	task.Title = title
	return task
}
