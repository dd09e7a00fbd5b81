package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/folio/internal/logging"
	"github.com/yaklabco/folio/pkg/config"
	"github.com/yaklabco/folio/pkg/markup"
	"github.com/yaklabco/folio/pkg/toc"
)

type tocFlags struct {
	format     string
	scroll     int
	lineHeight float64
	offset     float64
}

// tocOutput is the JSON shape of the toc command.
type tocOutput struct {
	Entries []toc.HeadingEntry `json:"entries"`
	Active  string             `json:"active,omitempty"`
}

func newTOCCommand() *cobra.Command {
	flags := &tocFlags{}

	cmd := &cobra.Command{
		Use:   "toc [file]",
		Short: "Print the table of contents",
		Long: `Print the outline of a document and the section that would be active.

The page is laid out as fixed-height lines and scrolled so that line
--scroll is at the top of the viewport. The active section is the last
heading whose box straddles --offset.

Examples:
  folio toc writeups/aria.md
  folio toc --scroll 120 writeups/aria.md
  folio toc --format json --line-height 24 --offset 96 writeups/aria.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTOC(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, json")
	cmd.Flags().IntVar(&flags.scroll, "scroll", 0, "line at the top of the viewport")
	cmd.Flags().Float64Var(&flags.lineHeight, "line-height", 1, "height of one source line in layout units")
	cmd.Flags().Float64Var(&flags.offset, "offset", 0, "distance of the reference line from the viewport top (default from config)")

	return cmd
}

func runTOC(cmd *cobra.Command, args []string, flags *tocFlags) error {
	format, err := parseFormat(flags.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	src, err := readSource(cmd, firstArg(args))
	if err != nil {
		return err
	}

	offset := float64(config.IntValue(cfg.TOC.Offset, config.DefaultTOCOffset))
	if cmd.Flags().Changed("offset") {
		if flags.offset < 0 {
			return withExitCode(ExitInvalidUsage, fmt.Errorf("invalid offset %v: must not be negative", flags.offset))
		}
		offset = flags.offset
	}

	entries := markup.Render(src.doc, markupOptions(cfg)).Outline
	tracker := toc.NewTracker(entries, offset)
	layout := toc.LineLayout{LineHeight: flags.lineHeight, LineCount: src.doc.LineCount()}
	active, _ := tracker.Update(layout.Rects(entries, flags.scroll))

	logging.FromContext(cmd.Context()).Debug("extracted outline",
		logging.FieldPath, src.path,
		logging.FieldHeadings, len(entries),
	)

	out := cmd.OutOrStdout()
	if format == config.FormatJSON {
		if entries == nil {
			entries = []toc.HeadingEntry{}
		}
		return writeJSON(out, tocOutput{Entries: entries, Active: active})
	}

	_, err = io.WriteString(out, outputStyles(cmd).FormatOutline(entries, active))
	return err
}
