package domain

import "errors"

// Domain errors.
var (
	// Workspace topology.
	ErrWorkspaceNotFound  = errors.New("no lean workspace found (or any of the parent directories)")
	ErrRelativePath       = errors.New("path must be absolute")
	ErrAlreadyWorkspace   = errors.New("target is already inside a lean workspace")
	ErrWouldNestWorkspace = errors.New("target would be nested inside an existing lean workspace")
	ErrNotEmpty           = errors.New("target directory is not empty")

	// Task authoring.
	ErrDirectoryMissing  = errors.New("task directory does not exist")
	ErrInvalidSubdir     = errors.New("task subdirectory must be a relative path inside tasks/")
	ErrEditorNotSet      = errors.New("EDITOR environment variable is not set")
	ErrEditorFailed      = errors.New("editor failed")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrEmptyDescription  = errors.New("description cannot be empty")
	ErrInvalidOccurrence = errors.New("invalid occurrence")
	ErrInvalidRecurrence = errors.New("invalid recurrence")
	ErrInvalidWeekday    = errors.New("invalid weekday")
	ErrInvalidTask       = errors.New("invalid task record")

	// Task lookup.
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidTaskFile = errors.New("invalid task file")
)
