package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leanwork/lean/internal/domain"
)

// draftPattern is the name pattern of the temporary file handed to the editor.
// Drafts live in the workspace root so publishing is a same-filesystem rename.
const draftPattern = ".lean-draft-*.yaml"

// fixQuestion is asked after a validation error.
const fixQuestion = "Do you want to fix the error?"

// AddTaskInput contains the parameters for authoring a new task.
type AddTaskInput struct {
	Dir    string // Directory to start workspace discovery from
	Subdir string // Destination below tasks/ (optional, must exist)
}

// AddTaskOutput contains the result of an authoring session.
// Published is false when the user declined to fix an invalid draft;
// Task and Path are then empty.
type AddTaskOutput struct {
	Task      *domain.Task
	Path      string // Destination of the published record
	Published bool
}

// AddTask is the use case for authoring a task in the user's editor.
type AddTask struct {
	locator  domain.WorkspaceLocator
	editor   domain.Editor
	prompter domain.Prompter
	clock    domain.Clock
	logger   *slog.Logger
	policy   domain.ValidationPolicy
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(
	locator domain.WorkspaceLocator,
	editor domain.Editor,
	prompter domain.Prompter,
	clock domain.Clock,
	policy domain.ValidationPolicy,
	logger *slog.Logger,
) *AddTask {
	return &AddTask{
		locator:  locator,
		editor:   editor,
		prompter: prompter,
		clock:    clock,
		policy:   policy,
		logger:   logger,
	}
}

// Execute runs an editing session: the user edits a draft until it validates
// (then it is published below tasks/) or until they decline to fix it (then
// nothing happens and no error is returned).
func (uc *AddTask) Execute(ctx context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if in.Subdir != "" && !filepath.IsLocal(in.Subdir) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSubdir, in.Subdir)
	}

	ws, err := uc.locator.Resolve(in.Dir)
	if err != nil {
		return nil, err
	}

	dir := ws.TasksDir(in.Subdir)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrDirectoryMissing, dir)
	}

	s := &session{
		uc:     uc,
		ws:     ws,
		subdir: in.Subdir,
		logger: uc.logger.With("workspace", ws.BaseDir),
	}
	return s.run(ctx)
}

// sessionState is a state of the editing session.
type sessionState int

const (
	stateEditing sessionState = iota
	stateValidating
	stateAwaitingDecision
	statePublished
	stateAborted
)

// String returns the state name used in logs.
func (s sessionState) String() string {
	switch s {
	case stateEditing:
		return "editing"
	case stateValidating:
		return "validating"
	case stateAwaitingDecision:
		return "awaiting_decision"
	case statePublished:
		return "published"
	case stateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("sessionState(%d)", int(s))
	}
}

// session holds the state of one editing session.
// Fields are ordered to minimize memory padding.
type session struct {
	uc        *AddTask
	ws        *domain.Workspace
	task      *domain.Task // Last draft that passed validation
	logger    *slog.Logger
	lastErr   error // Last validation error
	subdir    string
	draftPath string
	edits     int // Completed editor runs
}

// run drives the state machine until the session is published or aborted.
func (s *session) run(ctx context.Context) (*AddTaskOutput, error) {
	state := stateEditing
	for {
		s.logger.Debug("editing session", "state", state.String())

		var next sessionState
		var err error
		switch state {
		case stateEditing:
			next, err = s.edit(ctx)
		case stateValidating:
			next, err = s.validate()
		case stateAwaitingDecision:
			next, err = s.awaitDecision()
		case statePublished:
			return s.publish()
		case stateAborted:
			return s.abort()
		}

		if err != nil {
			return nil, s.fail(err)
		}
		state = next
	}
}

// edit seeds the draft on first entry and runs the editor on it.
// Re-entering keeps the user's previous edits.
func (s *session) edit(ctx context.Context) (sessionState, error) {
	if s.draftPath == "" {
		if err := s.createDraft(); err != nil {
			return 0, err
		}
	}

	if err := s.uc.editor.Edit(ctx, s.draftPath); err != nil {
		return 0, err
	}
	s.edits++
	return stateValidating, nil
}

// createDraft creates the temporary file and writes the default task to it.
func (s *session) createDraft() error {
	f, err := os.CreateTemp(s.ws.BaseDir, draftPattern)
	if err != nil {
		return fmt.Errorf("create draft: %w", err)
	}
	s.draftPath = f.Name()

	data, err := domain.NewDefaultTask(s.uc.clock.Now()).MarshalYAMLDocument()
	if err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write draft: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close draft: %w", err)
	}
	return nil
}

// validate re-reads the draft. A record that does not parse or validate
// moves the session to the decision state; it is not an error of the session.
func (s *session) validate() (sessionState, error) {
	data, err := os.ReadFile(s.draftPath)
	if err != nil {
		return 0, fmt.Errorf("read draft: %w", err)
	}

	task, err := domain.ParseTask(data)
	if err == nil {
		err = task.Validate(s.uc.policy)
	}
	if err != nil {
		s.lastErr = err
		s.logger.Debug("draft rejected", "error", err)
		return stateAwaitingDecision, nil
	}

	s.task = task
	return statePublished, nil
}

// awaitDecision shows the validation error and asks whether to edit again.
// End of input counts as "no".
func (s *session) awaitDecision() (sessionState, error) {
	s.uc.prompter.Printf("Error: %v\n", s.lastErr)

	fix, err := s.uc.prompter.Confirm(fixQuestion, true)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return stateAborted, nil
		}
		return 0, fmt.Errorf("read answer: %w", err)
	}
	if fix {
		return stateEditing, nil
	}
	return stateAborted, nil
}

// publish moves the draft to its computed destination.
// An existing file with the same name is replaced.
func (s *session) publish() (*AddTaskOutput, error) {
	dest := s.ws.TaskPath(s.subdir, s.task)
	if err := os.Rename(s.draftPath, dest); err != nil {
		return nil, s.fail(fmt.Errorf("publish task: %w", err))
	}

	s.logger.Info("task published", "path", dest, "edits", s.edits)
	return &AddTaskOutput{Task: s.task, Path: dest, Published: true}, nil
}

// abort deletes the draft. The session still succeeds.
func (s *session) abort() (*AddTaskOutput, error) {
	if err := s.removeDraft(); err != nil {
		return nil, err
	}
	s.logger.Info("task authoring aborted", "edits", s.edits)
	return &AddTaskOutput{}, nil
}

// fail cleans up after a fatal error. A draft the user has already edited is
// kept so their work survives, and its path is added to the error.
func (s *session) fail(err error) error {
	if s.draftPath == "" {
		return err
	}
	if s.edits > 0 {
		return fmt.Errorf("%w (draft kept at %s)", err, s.draftPath)
	}
	if rmErr := s.removeDraft(); rmErr != nil {
		s.logger.Warn("remove draft", "path", s.draftPath, "error", rmErr)
	}
	return err
}

func (s *session) removeDraft() error {
	if err := os.Remove(s.draftPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove draft: %w", err)
	}
	return nil
}
