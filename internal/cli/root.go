// Package cli provides the command-line interface for lean.
package cli

import (
	"github.com/leanwork/lean/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
)

// NewRootCommand creates the root command for lean.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "lean",
		Short: "Personal file-based task tracker",
		Long: `lean keeps tasks as plain YAML files inside a workspace directory.

A workspace is any directory containing a .lean.yaml marker file. Tasks live
below its tasks/ directory, one file per task, named after their status and
title so that a directory listing doubles as a status report.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
	)

	// Setup commands
	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	// Task management commands
	tasksCmd := newTasksCommand(c)
	tasksCmd.GroupID = groupTask

	root.AddCommand(initCmd, configCmd, tasksCmd)

	return root
}
