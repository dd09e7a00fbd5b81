package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/folio/internal/configloader"
	"github.com/yaklabco/folio/internal/logging"
	"github.com/yaklabco/folio/internal/ui/pretty"
	"github.com/yaklabco/folio/pkg/config"
	"github.com/yaklabco/folio/pkg/content"
	"github.com/yaklabco/folio/pkg/document"
	"github.com/yaklabco/folio/pkg/htmlrender"
	"github.com/yaklabco/folio/pkg/markup"
)

// stdinArg names standard input as a document argument.
const stdinArg = "-"

// loadConfig resolves the configuration for cmd, with cliCfg taking
// precedence over every file and the environment.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, withExitCode(ExitConfigError, errors.Join(errors.New("failed to load configuration"), err))
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldPaths, loadResult.LoadedFrom)
	}

	cfg := loadResult.Config
	logger.Debug("configuration loaded",
		logging.FieldContent, cfg.ContentDir,
		logging.FieldOutput, cfg.OutputDir,
		logging.FieldTheme, cfg.Theme,
		logging.FieldJobs, cfg.Jobs,
	)

	return cfg, nil
}

// markupOptions maps the markup section onto render options.
func markupOptions(cfg *config.Config) markup.Options {
	return markup.Options{
		Registry: componentRegistry(cfg.Markup.Components),
		Inline:   markup.InlineOptions{Italic: config.BoolValue(cfg.Markup.Italic, false)},
	}
}

// componentRegistry returns the built-in registry narrowed to allowed.
// An empty allow list keeps every built-in component.
func componentRegistry(allowed []string) *markup.Registry {
	defaults := markup.DefaultRegistry()
	if len(allowed) == 0 {
		return defaults
	}

	registry := markup.NewRegistry()
	for _, tag := range allowed {
		if handler, ok := defaults.Lookup(tag); ok {
			registry.Register(handler)
		}
	}
	return registry
}

// htmlOptions maps the highlight section onto renderer options.
func htmlOptions(cfg *config.Config) htmlrender.Options {
	return htmlrender.Options{
		Highlight:      config.BoolValue(cfg.Highlight.Enabled, true),
		Style:          cfg.Highlight.Style,
		DetectLanguage: config.BoolValue(cfg.Highlight.DetectLanguage, true),
	}
}

// source is a document read from the command line.
type source struct {
	path string
	doc  *document.Document

	// offset is the number of front matter lines stripped before doc.
	offset int
}

// readSource reads path, or standard input for "-" or "", and strips any
// front matter.
func readSource(cmd *cobra.Command, path string) (*source, error) {
	var (
		raw []byte
		err error
	)
	if path == "" || path == stdinArg {
		path = "<stdin>"
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, withExitCode(ExitIOError, fmt.Errorf("read %s: %w", path, err))
	}

	body, offset, err := content.Body(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &source{path: path, doc: document.New(body), offset: offset}, nil
}

// firstArg returns args[0], or "" when there are none.
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// outputStyles builds pretty styles for cmd's output stream honoring --color.
func outputStyles(cmd *cobra.Command) *pretty.Styles {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}
	return pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
}

// terminalWidth returns the width of cmd's output, or 0 when it is not a terminal.
func terminalWidth(cmd *cobra.Command) int {
	file, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// parseFormat validates a --format flag value.
func parseFormat(value string) (config.OutputFormat, error) {
	format, err := config.ParseOutputFormat(value)
	if err != nil {
		return "", withExitCode(ExitInvalidUsage, err)
	}
	return format, nil
}

// writeJSON writes v to w as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
