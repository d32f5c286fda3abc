// Package taskstore reads published task records from a workspace.
package taskstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/leanwork/lean/internal/domain"
)

// Ensure Store implements domain.TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

// Store implements domain.TaskRepository on the files below tasks/.
type Store struct{}

// New creates a new Store.
func New() *Store {
	return &Store{}
}

// List returns every *.yaml record below tasks/, sorted by ID.
// A file that does not parse fails the whole listing with ErrInvalidTaskFile.
func (s *Store) List(ws *domain.Workspace) ([]*domain.StoredTask, error) {
	root := ws.TasksDir("")
	var tasks []*domain.StoredTask

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Skip hidden directories (except the root itself)
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".") || filepath.Ext(d.Name()) != domain.TaskFileExt {
			return nil
		}

		task, err := readTask(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		tasks = append(tasks, &domain.StoredTask{
			Task: task,
			ID:   filepath.ToSlash(strings.TrimSuffix(rel, domain.TaskFileExt)),
			Path: path,
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrDirectoryMissing, root)
		}
		return nil, err
	}

	slices.SortFunc(tasks, func(a, b *domain.StoredTask) int {
		return strings.Compare(a.ID, b.ID)
	})
	return tasks, nil
}

func readTask(path string) (*domain.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task: %w", err)
	}
	task, err := domain.ParseTask(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidTaskFile, path, err)
	}
	return task, nil
}
