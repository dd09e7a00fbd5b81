package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/folio/internal/logging"
	"github.com/yaklabco/folio/internal/ui/pretty"
	"github.com/yaklabco/folio/pkg/config"
	"github.com/yaklabco/folio/pkg/content"
)

// dateLayout is how item dates are printed.
const dateLayout = "2006-01-02"

type listFlags struct {
	kind   string
	tag    string
	search string
	drafts bool
	format string
}

func newListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List writeups and projects",
		Long: `List the items in the content directory, newest first.

Examples:
  folio list
  folio list --kind writeup --tag web
  folio list -q kerberos --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.kind, "kind", "", "only items of kind: writeup, project")
	cmd.Flags().StringVarP(&flags.tag, "tag", "t", "", "only items carrying tag")
	cmd.Flags().StringVarP(&flags.search, "search", "q", "", "only items whose title or excerpt contains text")
	cmd.Flags().BoolVar(&flags.drafts, "drafts", false, "include draft items")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "table", "output format: text, table, json")

	return cmd
}

func runList(cmd *cobra.Command, flags *listFlags) error {
	format, err := parseFormat(flags.format)
	if err != nil {
		return err
	}

	kind := content.Kind(strings.ToLower(flags.kind))
	if kind != "" && kind != content.KindWriteup && kind != content.KindProject {
		return withExitCode(ExitInvalidUsage, fmt.Errorf("invalid kind %q: must be writeup or project", flags.kind))
	}

	catalog, err := loadCatalog(cmd, &config.Config{Drafts: flags.drafts})
	if err != nil {
		return err
	}

	items := catalog.Search(content.Query{Text: flags.search, Tag: flags.tag, Kind: kind})

	out := cmd.OutOrStdout()
	switch format {
	case config.FormatJSON:
		if items == nil {
			items = []*content.Item{}
		}
		return writeJSON(out, items)
	case config.FormatTable:
		return writeItemsTable(cmd, out, items)
	default:
		for _, item := range items {
			if _, err := fmt.Fprintf(out, "%s\t%s\t%s\t%s\n",
				item.Date.Format(dateLayout), item.Kind, item.Slug, item.Title); err != nil {
				return err
			}
		}
		return nil
	}
}

// loadCatalog loads the configured content directory. Files that fail to
// parse are logged and skipped.
func loadCatalog(cmd *cobra.Command, cliCfg *config.Config) (*content.Catalog, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(cfg.ContentDir)
	if err != nil {
		return nil, withExitCode(ExitIOError, fmt.Errorf("content directory: %w", err))
	}
	if !info.IsDir() {
		return nil, withExitCode(ExitIOError, fmt.Errorf("content directory %s is not a directory", cfg.ContentDir))
	}

	items, err := content.LoadFS(ctx, os.DirFS(cfg.ContentDir), content.LoadOptions{IncludeDrafts: cfg.Drafts})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Warn("some content failed to load", logging.FieldContent, cfg.ContentDir, logging.FieldError, err)
	}

	catalog := content.NewCatalog(items...)
	logger.Debug("loaded catalog", logging.FieldContent, cfg.ContentDir, logging.FieldItems, catalog.Len())
	return catalog, nil
}

func writeItemsTable(cmd *cobra.Command, w io.Writer, items []*content.Item) error {
	styles := outputStyles(cmd)

	columns := []pretty.Column{
		{Title: "Date", Min: len(dateLayout)},
		{Title: "Kind", Min: 7},
		{Title: "Slug", Min: 8},
		{Title: "Title", Min: 12, Flex: true},
		{Title: "Tags", Min: 8, Flex: true},
	}

	rows := make([]pretty.TableRow, 0, len(items))
	for _, item := range items {
		row := pretty.TableRow{
			Cells: []string{
				item.Date.Format(dateLayout),
				string(item.Kind),
				item.Slug,
				item.Title,
				strings.Join(item.Tags, ", "),
			},
		}
		if item.Draft {
			row.Style = &styles.Draft
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, styles.Dim.Render("no items"))
		return err
	}
	_, err := io.WriteString(w, pretty.NewTableFormatter(styles, terminalWidth(cmd)).Format(columns, rows))
	return err
}
