package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/folio/internal/logging"
	"github.com/yaklabco/folio/pkg/config"
	"github.com/yaklabco/folio/pkg/htmlrender"
	"github.com/yaklabco/folio/pkg/markup"
)

type renderFlags struct {
	outline     bool
	css         bool
	italic      bool
	noHighlight bool
	style       string
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document to HTML",
		Long: `Render one Markdown document to an HTML fragment on standard output.

Front matter is stripped. With no file, or "-", the document is read from
standard input.

Examples:
  folio render writeups/aria.md
  folio render --outline writeups/aria.md > aria.html
  cat notes.md | folio render --style monokai`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.outline, "outline", false, "prepend the table of contents")
	cmd.Flags().BoolVar(&flags.css, "css", false, "prepend a <style> element with the highlight stylesheet")
	cmd.Flags().BoolVar(&flags.italic, "italic", false, "render *text* as emphasis")
	cmd.Flags().BoolVar(&flags.noHighlight, "no-highlight", false, "disable syntax highlighting")
	cmd.Flags().StringVar(&flags.style, "style", "", "chroma style for highlighting")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	logger := logging.FromContext(cmd.Context())

	cliCfg := &config.Config{Highlight: config.HighlightConfig{Style: flags.style}}
	if cmd.Flags().Changed("italic") {
		cliCfg.Markup.Italic = config.Bool(flags.italic)
	}
	if flags.noHighlight {
		cliCfg.Highlight.Enabled = config.Bool(false)
	}

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	src, err := readSource(cmd, firstArg(args))
	if err != nil {
		return err
	}

	renderer, err := htmlrender.New(htmlOptions(cfg))
	if err != nil {
		return withExitCode(ExitConfigError, err)
	}

	result := markup.Render(src.doc, markupOptions(cfg))
	logger.Debug("rendered document",
		logging.FieldPath, src.path,
		logging.FieldBlocks, len(result.Blocks),
		logging.FieldHeadings, len(result.Outline),
	)

	out := cmd.OutOrStdout()
	if flags.css {
		if _, err := fmt.Fprintln(out, "<style>"); err != nil {
			return err
		}
		if err := renderer.WriteCSS(out); err != nil {
			return fmt.Errorf("write css: %w", err)
		}
		if _, err := fmt.Fprintln(out, "</style>"); err != nil {
			return err
		}
	}
	if flags.outline {
		if err := htmlrender.RenderOutline(out, result.Outline, ""); err != nil {
			return fmt.Errorf("render outline: %w", err)
		}
	}
	if err := renderer.Render(out, result.Nodes); err != nil {
		return fmt.Errorf("render %s: %w", src.path, err)
	}

	return nil
}
