// Package cli provides the Cobra command structure for folio.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/folio/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root folio command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var (
		debug      bool
		configPath string
		color      string
	)

	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "Render cybersecurity writeups from constrained Markdown",
		Long: `folio renders writeups and project pages written in a small Markdown
dialect: headings, fenced code, images, single-line components and
paragraphs with bold, code and links.

It builds a static site with a table of contents per page, syntax
highlighted terminal blocks and copy buttons, and can inspect single
documents: their blocks, outline, active section and the places where the
dialect reads differently from CommonMark.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := "info"
			if debug {
				level = "debug"
				logging.SetLevel(level)
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupDocument, Title: "Document Commands:"},
		&cobra.Group{ID: groupSite, Title: "Site Commands:"},
	)

	for _, sub := range []*cobra.Command{
		newRenderCommand(),
		newBlocksCommand(),
		newTOCCommand(),
		newCheckCommand(info),
		newCopyCommand(),
	} {
		sub.GroupID = groupDocument
		rootCmd.AddCommand(sub)
	}
	for _, sub := range []*cobra.Command{
		newBuildCommand(),
		newListCommand(),
		newTagsCommand(),
		newThemeCommand(),
	} {
		sub.GroupID = groupSite
		rootCmd.AddCommand(sub)
	}
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter().ApplyToCommand(rootCmd)

	return rootCmd
}
