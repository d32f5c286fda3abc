package cli

import (
	"fmt"

	"github.com/leanwork/lean/internal/app"
	"github.com/leanwork/lean/internal/usecase"
	"github.com/spf13/cobra"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init [DIR]",
		Short: "Create a new workspace",
		Long: `Create a new workspace in DIR (default: the current directory).

DIR and any missing parents are created. The workspace root receives an
empty .lean.yaml marker and the directories:
  people/ tasks/ load/ record/ views/{month,quarter,half_year,year}/

Error conditions:
- DIR is already inside a workspace
- DIR would be created inside a workspace
- DIR exists and is not empty`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			uc := c.InitWorkspaceUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitWorkspaceInput{Dir: dir})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized workspace in %s\n", out.BaseDir)
			return nil
		},
	}
}
