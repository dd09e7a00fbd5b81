package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/folio/internal/logging"
	"github.com/yaklabco/folio/internal/ui/pretty"
	"github.com/yaklabco/folio/pkg/compat"
	"github.com/yaklabco/folio/pkg/config"
	"github.com/yaklabco/folio/pkg/content"
	"github.com/yaklabco/folio/pkg/reporter"
)

// formatSARIF selects SARIF 2.1.0 output; only check supports it.
const formatSARIF = "sarif"

// errNoFiles is reported when the paths hold no content files.
var errNoFiles = errors.New("no content files found")

type checkFlags struct {
	strict      bool
	noReference bool
	flavor      string
	format      string
	summary     bool
}

// checkedFile is the outcome of checking one path.
type checkedFile struct {
	Path     string           `json:"path"`
	Findings []compat.Finding `json:"findings"`

	src *source
}

func newCheckCommand(info BuildInfo) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Check documents for rendering drift",
		Long: `Check Markdown documents for places where the rendered output, the
table of contents and a CommonMark reader disagree.

Directories are searched for .md and .markdown files; files whose name
starts with "_" are skipped. With no paths the content directory is checked.

Warnings fail the run with exit code 1. With --strict, info findings fail it
with exit code 2.

Examples:
  folio check
  folio check writeups/aria.md
  folio check --flavor gfm --strict content/`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags, info)
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on info findings too")
	cmd.Flags().BoolVar(&flags.noReference, "no-reference", false, "skip the CommonMark comparison")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "reference flavor: commonmark, gfm")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "output format: text, table, json, sarif")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a summary block instead of a single line")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags, info BuildInfo) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	sarif := strings.EqualFold(flags.format, formatSARIF)
	var format config.OutputFormat
	if !sarif {
		parsed, err := parseFormat(flags.format)
		if err != nil {
			return err
		}
		format = parsed
	}

	cfg, err := loadConfig(cmd, &config.Config{Check: config.CheckConfig{Flavor: config.Flavor(flags.flavor)}})
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{cfg.ContentDir}
	}
	files, err := collectFiles(paths)
	if err != nil {
		return withExitCode(ExitIOError, err)
	}
	if len(files) == 0 {
		return withExitCode(ExitInvalidUsage, fmt.Errorf("%w in %s", errNoFiles, strings.Join(paths, ", ")))
	}

	opts := compat.CheckOptions{Markup: markupOptions(cfg)}
	if !flags.noReference {
		opts.Reference = compat.NewReference(string(cfg.Check.Flavor))
	}
	logger.Debug("checking documents",
		logging.FieldItems, len(files),
		logging.FieldFlavor, cfg.Check.Flavor,
	)

	results := make([]checkedFile, len(files))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.EffectiveJobs())
	for idx, path := range files {
		group.Go(func() error {
			src, err := readSource(cmd, path)
			if err != nil {
				return err
			}
			fileCtx := logging.WithDocument(groupCtx, path)
			report, err := compat.Check(fileCtx, src.doc, opts)
			if err != nil {
				return fmt.Errorf("check %s: %w", path, err)
			}
			logging.FromContext(fileCtx).Debug("checked document", logging.FieldFindings, len(report.Findings))
			results[idx] = checkedFile{Path: path, Findings: shiftFindings(report.Findings, src.offset), src: src}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	var stats pretty.CheckStats
	for _, result := range results {
		stats.Add(&compat.Report{Findings: result.Findings})
	}

	out := cmd.OutOrStdout()
	switch {
	case sarif:
		sarifFiles := make([]reporter.File, len(results))
		for idx, result := range results {
			sarifFiles[idx] = reporter.File{Path: result.Path, Findings: result.Findings}
		}
		_, err = reporter.WriteSARIF(out, sarifFiles, info.Version)
	case format == config.FormatJSON:
		err = writeJSON(out, results)
	case format == config.FormatTable:
		err = writeCheckTable(cmd, out, results)
	default:
		err = writeCheckText(cmd, out, results)
	}
	if err != nil {
		return err
	}

	if !sarif && format != config.FormatJSON {
		styles := outputStyles(cmd)
		summary := styles.FormatCheckOneLine(stats)
		if flags.summary {
			summary = styles.FormatCheckSummary(stats)
		}
		if _, err := io.WriteString(out, summary); err != nil {
			return err
		}
	}

	if code := ExitCodeFromStats(stats, flags.strict); code != ExitSuccess {
		return withExitCode(code, ErrFindingsReported)
	}
	return nil
}

// collectFiles expands paths into content files. Explicit file arguments
// are kept whatever their extension; hidden directories are skipped.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		if root == stdinArg {
			files = append(files, root)
			continue
		}

		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				if path != root && strings.HasPrefix(entry.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if content.IsContentFile(filepath.ToSlash(path)) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}
	return files, nil
}

// shiftFindings moves findings from body lines to file lines.
func shiftFindings(findings []compat.Finding, offset int) []compat.Finding {
	shifted := make([]compat.Finding, len(findings))
	for idx, finding := range findings {
		finding.Line += offset
		shifted[idx] = finding
	}
	return shifted
}

// sourceLine returns the body line behind a shifted finding.
func (f checkedFile) sourceLine(finding compat.Finding) string {
	if f.src == nil {
		return ""
	}
	return strings.TrimRight(f.src.doc.Line(finding.Line-f.src.offset), " \t")
}

func writeCheckText(cmd *cobra.Command, w io.Writer, results []checkedFile) error {
	styles := outputStyles(cmd)

	for _, result := range results {
		if len(result.Findings) == 0 {
			continue
		}
		if _, err := fmt.Fprintln(w, styles.FormatFileHeader(result.Path, len(result.Findings))); err != nil {
			return err
		}
		for _, finding := range result.Findings {
			if _, err := io.WriteString(w, styles.FormatFinding(result.Path, finding, result.sourceLine(finding))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func writeCheckTable(cmd *cobra.Command, w io.Writer, results []checkedFile) error {
	styles := outputStyles(cmd)

	columns := []pretty.Column{
		{Title: "File", Min: 10, Flex: true, Path: true},
		{Title: "Line", Min: 4},
		{Title: "Severity", Min: 7},
		{Title: "Kind", Min: 8},
		{Title: "Message", Min: 20, Flex: true},
	}

	var rows []pretty.TableRow
	for _, result := range results {
		for idx, finding := range result.Findings {
			rows = append(rows, pretty.TableRow{
				Cells: []string{
					result.Path,
					fmt.Sprint(finding.Line + 1),
					string(finding.Kind.Severity()),
					string(finding.Kind),
					finding.Message,
				},
				Group: idx == 0,
			})
		}
	}

	_, err := io.WriteString(w, pretty.NewTableFormatter(styles, terminalWidth(cmd)).Format(columns, rows))
	return err
}
