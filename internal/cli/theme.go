package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/folio/internal/logging"
	"github.com/yaklabco/folio/pkg/theme"
)

func newThemeCommand() *cobra.Command {
	var statePath string

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the saved theme",
		Long: `Show or change the dark/light preference used by local previews.

The choice is kept in $XDG_STATE_HOME/folio/state.yaml. Nothing saved, or
an unreadable value, means dark.

Examples:
  folio theme
  folio theme toggle
  folio theme set light`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runThemeShow(cmd, statePath)
		},
	}

	cmd.PersistentFlags().StringVar(&statePath, "state", "", "theme state file (default $XDG_STATE_HOME/folio/state.yaml)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the current theme",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runThemeShow(cmd, statePath)
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between dark and light",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				themes, err := openTheme(cmd, statePath)
				if err != nil {
					return err
				}
				next, err := themes.Toggle()
				if err != nil {
					return withExitCode(ExitIOError, err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), next)
				return err
			},
		},
		&cobra.Command{
			Use:       "set <dark|light>",
			Short:     "Choose a theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(theme.Dark), string(theme.Light)},
			RunE: func(cmd *cobra.Command, args []string) error {
				chosen, err := theme.Parse(args[0])
				if err != nil {
					return withExitCode(ExitInvalidUsage, err)
				}
				themes, err := openTheme(cmd, statePath)
				if err != nil {
					return err
				}
				if err := themes.Set(chosen); err != nil {
					return withExitCode(ExitIOError, err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), chosen)
				return err
			},
		},
	)

	return cmd
}

func runThemeShow(cmd *cobra.Command, statePath string) error {
	themes, err := openTheme(cmd, statePath)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), themes.Theme())
	return err
}

// openTheme restores the theme context from statePath or the default
// state file. A state file that cannot be read is logged and ignored.
func openTheme(cmd *cobra.Command, statePath string) (*theme.Context, error) {
	logger := logging.FromContext(cmd.Context())

	if statePath == "" {
		path, err := theme.DefaultStatePath()
		if err != nil {
			return nil, withExitCode(ExitIOError, err)
		}
		statePath = path
	}

	themes, err := theme.NewContext(theme.FileStore{Path: statePath})
	if err != nil {
		logger.Warn("ignoring saved theme", logging.FieldPath, statePath, logging.FieldError, err)
	}
	logger.Debug("theme state", logging.FieldPath, statePath, logging.FieldTheme, themes.Theme())
	return themes, nil
}
