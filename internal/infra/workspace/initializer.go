package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leanwork/lean/internal/domain"
)

// Ensure Initializer implements domain.WorkspaceInitializer.
var _ domain.WorkspaceInitializer = (*Initializer)(nil)

// Initializer creates new workspaces.
//
// The existence and emptiness checks are not atomic with the directory
// creation that follows them. Two initializations racing on overlapping paths
// may make the loser fail with a plain filesystem error.
type Initializer struct {
	locator *Locator
}

// NewInitializer creates a new Initializer.
func NewInitializer(locator *Locator) *Initializer {
	return &Initializer{locator: locator}
}

// Initialize creates a workspace rooted at target.
// target may not exist yet. It fails when target lies inside an existing
// workspace, and with ErrNotEmpty when target already holds files (which
// includes being an ancestor of another workspace).
// Nothing is rolled back on failure.
func (i *Initializer) Initialize(target string) (*domain.Workspace, error) {
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", target, err)
	}

	_, statErr := os.Stat(absTarget)
	targetExists := statErr == nil

	// Find the deepest existing ancestor (the target itself if it exists)
	ancestor, err := canonicalize(deepestExisting(absTarget))
	if err != nil {
		return nil, err
	}

	ws, err := i.locator.Locate(ancestor)
	switch {
	case err == nil && targetExists:
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyWorkspace, ws.BaseDir)
	case err == nil:
		return nil, fmt.Errorf("%w: %s", domain.ErrWouldNestWorkspace, ws.BaseDir)
	case !errors.Is(err, domain.ErrWorkspaceNotFound):
		return nil, err
	}

	if err := os.MkdirAll(absTarget, 0o750); err != nil {
		return nil, fmt.Errorf("create workspace directory: %w", err)
	}

	baseDir, err := canonicalize(absTarget)
	if err != nil {
		return nil, err
	}

	// Another process may have populated the directory since the checks above
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil, fmt.Errorf("read workspace directory: %w", err)
	}
	if len(entries) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotEmpty, baseDir)
	}

	ws = &domain.Workspace{BaseDir: baseDir}
	if err := os.WriteFile(ws.MarkerPath(), nil, 0o600); err != nil {
		return nil, fmt.Errorf("create marker file: %w", err)
	}

	for _, dir := range domain.SkeletonDirs() {
		if err := os.MkdirAll(filepath.Join(baseDir, dir), 0o750); err != nil {
			return nil, fmt.Errorf("create %s directory: %w", dir, err)
		}
	}

	return ws, nil
}

// deepestExisting climbs from path toward the root until a path exists.
// The root always exists, so this terminates.
func deepestExisting(path string) string {
	current := path
	for {
		if _, err := os.Stat(current); err == nil {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return current
		}
		current = parent
	}
}
