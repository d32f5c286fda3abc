package cli

import (
	"fmt"
	"io"

	"github.com/leanwork/lean/internal/app"
	"github.com/leanwork/lean/internal/domain"
	"github.com/leanwork/lean/internal/usecase"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Display effective configuration",
		Long: `Display the config file location and the effective configuration.

The config file is $XDG_CONFIG_HOME/lean/config.toml (~/.config/lean/config.toml
when XDG_CONFIG_HOME is unset). Settings missing from it keep their defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			switch {
			case out.File.Path == "":
				_, _ = fmt.Fprintln(w, "- (no config directory)")
			case out.File.Exists:
				_, _ = fmt.Fprintf(w, "- %s\n", out.File.Path)
			default:
				_, _ = fmt.Fprintf(w, "- %s (not found)\n", out.File.Path)
			}

			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.Effective)
		},
	}
}

// formatEffectiveConfig formats the effective config in TOML format.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
