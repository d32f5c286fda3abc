// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leanwork/lean/internal/domain"
)

// InitWorkspaceInput contains the input parameters for InitWorkspace.
type InitWorkspaceInput struct {
	Dir string // Target directory (may not exist yet)
}

// InitWorkspaceOutput contains the output from InitWorkspace.
type InitWorkspaceOutput struct {
	BaseDir string // Canonical path of the created workspace
}

// InitWorkspace creates a new workspace.
type InitWorkspace struct {
	initializer domain.WorkspaceInitializer
	logger      *slog.Logger
}

// NewInitWorkspace creates a new InitWorkspace use case.
func NewInitWorkspace(initializer domain.WorkspaceInitializer, logger *slog.Logger) *InitWorkspace {
	return &InitWorkspace{initializer: initializer, logger: logger}
}

// Execute creates the workspace root, its marker file and directory skeleton.
func (uc *InitWorkspace) Execute(_ context.Context, in InitWorkspaceInput) (*InitWorkspaceOutput, error) {
	dir := in.Dir
	if dir == "" {
		dir = "."
	}

	ws, err := uc.initializer.Initialize(dir)
	if err != nil {
		return nil, fmt.Errorf("initialize workspace: %w", err)
	}

	uc.logger.Info("workspace initialized", "base_dir", ws.BaseDir)
	return &InitWorkspaceOutput{BaseDir: ws.BaseDir}, nil
}
