package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/folio/internal/logging"
	"github.com/yaklabco/folio/internal/ui/pretty"
	"github.com/yaklabco/folio/pkg/config"
	"github.com/yaklabco/folio/pkg/markup"
)

func newBlocksCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "blocks [file]",
		Short: "Show how a document is split into blocks",
		Long: `Scan a document and print every block with its line range.

Line numbers are 1-based and count from the top of the file, including
any front matter.

Examples:
  folio blocks writeups/aria.md
  folio blocks --format json writeups/aria.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlocks(cmd, args, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: text, table, json")

	return cmd
}

func runBlocks(cmd *cobra.Command, args []string, formatFlag string) error {
	format, err := parseFormat(formatFlag)
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

	blocks := markup.NewScanner(markupOptions(cfg).Registry).Scan(src.doc)
	logging.FromContext(cmd.Context()).Debug("scanned document",
		logging.FieldPath, src.path,
		logging.FieldBlocks, len(blocks),
	)

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		return writeJSON(out, shiftBlocks(blocks, src.offset))
	case config.FormatTable:
		return writeBlocksTable(cmd, out, blocks, src.offset)
	default:
		return writeBlocksText(out, blocks, src.offset)
	}
}

// shiftBlocks moves blocks from body lines to file lines.
func shiftBlocks(blocks []markup.Block, offset int) []markup.Block {
	shifted := make([]markup.Block, len(blocks))
	for idx, block := range blocks {
		block.StartLine += offset
		block.EndLine += offset
		shifted[idx] = block
	}
	return shifted
}

// blockDetail summarises the kind-specific fields of block.
func blockDetail(block markup.Block) string {
	switch block.Kind {
	case markup.BlockHeading:
		return fmt.Sprintf("h%d %s", block.Level, block.Text)
	case markup.BlockCode:
		detail := block.Language
		if detail == "" {
			detail = "(no language)"
		}
		if !block.Closed {
			detail += " unterminated"
		}
		return detail
	case markup.BlockImage:
		return block.Src
	case markup.BlockComponent:
		return block.Tag
	default:
		return ""
	}
}

func lineRange(block markup.Block, offset int) string {
	start := block.StartLine + offset + 1
	end := block.EndLine + offset
	if end <= start {
		return strconv.Itoa(start)
	}
	return fmt.Sprintf("%d-%d", start, end)
}

func writeBlocksText(w io.Writer, blocks []markup.Block, offset int) error {
	for _, block := range blocks {
		line := fmt.Sprintf("%s\t%s", lineRange(block, offset), block.Kind)
		if detail := blockDetail(block); detail != "" {
			line += "\t" + detail
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeBlocksTable(cmd *cobra.Command, w io.Writer, blocks []markup.Block, offset int) error {
	styles := outputStyles(cmd)

	columns := []pretty.Column{
		{Title: "Lines", Min: 5},
		{Title: "Kind", Min: 4},
		{Title: "Detail", Min: 10, Flex: true},
	}
	rows := make([]pretty.TableRow, 0, len(blocks))
	for _, block := range blocks {
		row := pretty.TableRow{
			Cells: []string{lineRange(block, offset), block.Kind.String(), blockDetail(block)},
			Group: block.Kind == markup.BlockHeading,
		}
		if block.Kind == markup.BlockDiscarded {
			row.Style = &styles.Dim
		}
		rows = append(rows, row)
	}

	_, err := io.WriteString(w, pretty.NewTableFormatter(styles, terminalWidth(cmd)).Format(columns, rows))
	return err
}
