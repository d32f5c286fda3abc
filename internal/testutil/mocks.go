// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/leanwork/lean/internal/domain"
)

// Compile-time interface checks.
var (
	_ domain.Clock                = (*MockClock)(nil)
	_ domain.Editor               = (*MockEditor)(nil)
	_ domain.Prompter             = (*MockPrompter)(nil)
	_ domain.WorkspaceLocator     = (*MockLocator)(nil)
	_ domain.WorkspaceInitializer = (*MockInitializer)(nil)
	_ domain.TaskRepository       = (*MockTaskRepository)(nil)
	_ domain.ConfigLoader         = (*MockConfigLoader)(nil)
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockEditor is a test double for domain.Editor.
// Each call runs the next function of Edits against the file; once they are
// used up, the last one is repeated. A nil Edits leaves the file untouched.
type MockEditor struct {
	Edits []func(path string) error
	Paths []string // Files passed to Edit, one per call
}

// Edit records path and applies the scripted edit.
func (m *MockEditor) Edit(_ context.Context, path string) error {
	m.Paths = append(m.Paths, path)
	if len(m.Edits) == 0 {
		return nil
	}
	i := len(m.Paths) - 1
	if i >= len(m.Edits) {
		i = len(m.Edits) - 1
	}
	return m.Edits[i](path)
}

// Calls returns the number of editor runs.
func (m *MockEditor) Calls() int {
	return len(m.Paths)
}

// MockPrompter is a test double for domain.Prompter.
// Answers are consumed in order; when they run out Confirm returns io.EOF.
// Fields are ordered to minimize memory padding.
type MockPrompter struct {
	Answers   []bool
	Questions []string
	Messages  []string
	Err       error // Returned by Confirm instead of an answer when set
}

// Confirm records the question and returns the next scripted answer.
func (m *MockPrompter) Confirm(question string, _ bool) (bool, error) {
	m.Questions = append(m.Questions, question)
	if m.Err != nil {
		return false, m.Err
	}
	if len(m.Answers) == 0 {
		return false, io.EOF
	}
	answer := m.Answers[0]
	m.Answers = m.Answers[1:]
	return answer, nil
}

// Printf records the formatted message.
func (m *MockPrompter) Printf(format string, args ...any) {
	m.Messages = append(m.Messages, fmt.Sprintf(format, args...))
}

// MockLocator is a test double for domain.WorkspaceLocator.
// It returns Workspace for every directory unless Err is set.
type MockLocator struct {
	Workspace *domain.Workspace
	Err       error
	Dirs      []string // Directories passed to Locate or Resolve
}

// Locate returns the configured workspace.
func (m *MockLocator) Locate(dir string) (*domain.Workspace, error) {
	return m.Resolve(dir)
}

// Resolve returns the configured workspace.
func (m *MockLocator) Resolve(dir string) (*domain.Workspace, error) {
	m.Dirs = append(m.Dirs, dir)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Workspace, nil
}

// MockInitializer is a test double for domain.WorkspaceInitializer.
type MockInitializer struct {
	Err     error
	Targets []string
}

// Initialize records target and returns a workspace rooted at it.
func (m *MockInitializer) Initialize(target string) (*domain.Workspace, error) {
	m.Targets = append(m.Targets, target)
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.Workspace{BaseDir: target}, nil
}

// MockTaskRepository is a test double for domain.TaskRepository.
type MockTaskRepository struct {
	ListErr error
	Tasks   []*domain.StoredTask
}

// NewMockTaskRepository creates a MockTaskRepository holding tasks.
func NewMockTaskRepository(tasks ...*domain.StoredTask) *MockTaskRepository {
	return &MockTaskRepository{Tasks: tasks}
}

// List returns the configured tasks.
func (m *MockTaskRepository) List(_ *domain.Workspace) ([]*domain.StoredTask, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Tasks, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config, or the defaults when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}
