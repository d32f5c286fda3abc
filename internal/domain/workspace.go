package domain

import "path/filepath"

// MarkerFileName is the empty sentinel file identifying a workspace root.
const MarkerFileName = ".lean.yaml"

// TasksDirName is the directory holding published task records.
const TasksDirName = "tasks"

// SkeletonDirs lists the directories created below a new workspace root.
func SkeletonDirs() []string {
	return []string{
		"people",
		TasksDirName,
		"load",
		"record",
		filepath.Join("views", "month"),
		filepath.Join("views", "quarter"),
		filepath.Join("views", "half_year"),
		filepath.Join("views", "year"),
	}
}

// Workspace is a directory tree rooted at a marker-bearing directory.
// BaseDir is absolute and canonical (symlinks resolved).
type Workspace struct {
	BaseDir string
}

// MarkerPath returns the path of the marker file.
func (w Workspace) MarkerPath() string {
	return filepath.Join(w.BaseDir, MarkerFileName)
}

// TasksDir returns base_dir/tasks[/subdir].
func (w Workspace) TasksDir(subdir string) string {
	if subdir == "" {
		return filepath.Join(w.BaseDir, TasksDirName)
	}
	return filepath.Join(w.BaseDir, TasksDirName, subdir)
}

// TaskPath returns the destination of a published task: base_dir/tasks/[subdir/]<file name>.
func (w Workspace) TaskPath(subdir string, t *Task) string {
	return filepath.Join(w.TasksDir(subdir), TaskFileName(t))
}
