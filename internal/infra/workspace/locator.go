// Package workspace finds and creates lean workspaces on the filesystem.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/leanwork/lean/internal/domain"
)

// Ensure Locator implements domain.WorkspaceLocator.
var _ domain.WorkspaceLocator = (*Locator)(nil)

// Locator finds the workspace root enclosing a directory.
// It holds no state; the filesystem is the only source of truth.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate walks dir and its parents toward the filesystem root and returns the
// first directory that directly contains the marker file.
// dir must be absolute; it is not resolved against the working directory.
func (l *Locator) Locate(dir string) (*domain.Workspace, error) {
	if !filepath.IsAbs(dir) {
		return nil, fmt.Errorf("%w: %q", domain.ErrRelativePath, dir)
	}

	current := filepath.Clean(dir)
	for {
		if hasMarker(current) {
			return &domain.Workspace{BaseDir: current}, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			return nil, domain.ErrWorkspaceNotFound
		}
		current = parent
	}
}

// Resolve makes dir absolute, resolves symlinks and locates its workspace.
func (l *Locator) Resolve(dir string) (*domain.Workspace, error) {
	canonical, err := canonicalize(dir)
	if err != nil {
		return nil, err
	}
	return l.Locate(canonical)
}

// hasMarker reports whether dir directly contains a regular marker file.
// Unreadable entries count as absent.
func hasMarker(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, domain.MarkerFileName))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// canonicalize returns the absolute, symlink-free form of an existing path.
func canonicalize(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return resolved, nil
}
