package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yaklabco/folio/internal/ui/pretty"
	"github.com/yaklabco/folio/pkg/config"
	"github.com/yaklabco/folio/pkg/content"
)

func newTagsCommand() *cobra.Command {
	var (
		format string
		drafts bool
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Show the tag index",
		Long: `Print every tag in the content directory with the number of items
carrying it. Tags that differ only in case are counted together.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := parseFormat(format)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cmd, &config.Config{Drafts: drafts})
			if err != nil {
				return err
			}
			return writeTags(cmd, cmd.OutOrStdout(), catalog.Tags(), parsed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format: text, table, json")
	cmd.Flags().BoolVar(&drafts, "drafts", false, "include draft items")

	return cmd
}

func writeTags(cmd *cobra.Command, w io.Writer, tags []content.TagCount, format config.OutputFormat) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, tags)
	case config.FormatText:
		for _, tag := range tags {
			if _, err := fmt.Fprintf(w, "%s\t%d\n", tag.Name, tag.Count); err != nil {
				return err
			}
		}
		return nil
	}

	styles := outputStyles(cmd)
	if len(tags) == 0 {
		_, err := fmt.Fprintln(w, styles.Dim.Render("no tags"))
		return err
	}

	columns := []pretty.Column{
		{Title: "Tag", Min: 6, Flex: true},
		{Title: "Items", Min: 5},
		{Title: "Page", Min: 10, Flex: true},
	}
	rows := make([]pretty.TableRow, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, pretty.TableRow{
			Cells: []string{tag.Name, strconv.Itoa(tag.Count), "/tags/" + tag.Slug + "/"},
		})
	}

	_, err := io.WriteString(w, pretty.NewTableFormatter(styles, terminalWidth(cmd)).Format(columns, rows))
	return err
}
