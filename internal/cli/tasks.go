package cli

import (
	"fmt"
	"strconv"

	"github.com/leanwork/lean/internal/app"
	"github.com/leanwork/lean/internal/usecase"
	"github.com/spf13/cobra"
)

// newTasksCommand creates the tasks command and its subcommands.
func newTasksCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
		Long:  `Author, list and show the tasks of a workspace.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newTasksAddCommand(c))
	cmd.AddCommand(newTasksListCommand(c))
	cmd.AddCommand(newTasksShowCommand(c))

	return cmd
}

// addDirFlag registers the -d/--dir flag shared by the tasks subcommands.
func addDirFlag(cmd *cobra.Command, dir *string) {
	cmd.Flags().StringVarP(dir, "dir", "d", ".", "Directory to look for the workspace from")
}

// newTasksAddCommand creates the tasks add subcommand.
func newTasksAddCommand(c *app.Container) *cobra.Command {
	var dir, subdir string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Author a new task in $EDITOR",
		Long: `Author a new task in your editor.

A draft with default values is opened in $EDITOR. When the editor exits the
draft is validated. A valid task is saved below tasks/ (or tasks/SUBDIR/)
under a name derived from its status and title. For an invalid task you are
asked whether to fix it; answering no discards the draft.

Preconditions:
- EDITOR must be set
- tasks/SUBDIR must exist`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := c.AddTaskUseCase()
			if err != nil {
				return err
			}

			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{
				Dir:    dir,
				Subdir: subdir,
			})
			if err != nil {
				return err
			}

			if !out.Published {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No task created")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s\n", out.Path)
			return nil
		},
	}

	addDirFlag(cmd, &dir)
	cmd.Flags().StringVarP(&subdir, "subdir", "s", "", "Subdirectory of tasks/ to save the task in")

	return cmd
}

// newTasksListCommand creates the tasks list subcommand.
func newTasksListCommand(c *app.Container) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list [LIMIT]",
		Short: "List tasks",
		Long: `List the tasks of the workspace, ordered by ID.

LIMIT caps the number of tasks shown (0 shows all). Without LIMIT the
[list] limit setting of the config file applies.`,
		Args: validateLimitArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := c.Config.List.Limit
			if len(args) == 1 {
				// Already validated by validateLimitArg
				limit, _ = strconv.Atoi(args[0])
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{
				Dir:   dir,
				Limit: limit,
			})
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks found")
				return nil
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks)
			if len(out.Tasks) < out.Total {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "(%d of %d tasks)\n", len(out.Tasks), out.Total)
			}
			return nil
		},
	}

	addDirFlag(cmd, &dir)

	return cmd
}

// validateLimitArg accepts at most one argument, a non-negative integer.
func validateLimitArg(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("invalid LIMIT %q: must be a non-negative integer", args[0])
	}
	return nil
}

// newTasksShowCommand creates the tasks show subcommand.
func newTasksShowCommand(c *app.Container) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "show ID...",
		Short: "Show tasks",
		Long: `Show one or more task records.

ID is the path of the task file below tasks/, with or without the .yaml
extension (e.g. home/000U_paint_fence), or just its slug (paint_fence).
A slug shared by several tasks shows all of them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{
				Dir: dir,
				IDs: args,
			})
			if err != nil {
				return err
			}

			return printTasks(cmd.OutOrStdout(), out.Tasks)
		},
	}

	addDirFlag(cmd, &dir)

	return cmd
}
