package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/folio/internal/logging"
	"github.com/yaklabco/folio/pkg/config"
	"github.com/yaklabco/folio/pkg/site"
	"github.com/yaklabco/folio/pkg/theme"
)

type buildFlags struct {
	watch    bool
	prune    bool
	drafts   bool
	jobs     int
	content  string
	output   string
	theme    string
	debounce time.Duration
}

func newBuildCommand() *cobra.Command {
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the site",
		Long: `Render every writeup and project in the content directory into a static
site in the output directory.

Only pages whose bytes changed are rewritten. With --prune, files in the
output directory that the build did not produce are removed. With --watch,
the site is rebuilt whenever the content directory changes.

Examples:
  folio build
  folio build --content notes --output dist --prune
  folio build --watch --drafts`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "rebuild on changes")
	cmd.Flags().BoolVar(&flags.prune, "prune", false, "remove stale files from the output directory")
	cmd.Flags().BoolVar(&flags.drafts, "drafts", false, "include draft items")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "concurrent page renders (0 = number of CPUs)")
	cmd.Flags().StringVar(&flags.content, "content", "", "content directory")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output directory")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "initial theme: dark, light")
	cmd.Flags().DurationVar(&flags.debounce, "debounce", site.DefaultDebounce, "quiet period before a watch rebuild")

	return cmd
}

func runBuild(cmd *cobra.Command, flags *buildFlags) error {
	logger := logging.FromContext(cmd.Context())

	cfg, err := loadConfig(cmd, &config.Config{
		ContentDir: flags.content,
		OutputDir:  flags.output,
		Theme:      flags.theme,
		Jobs:       flags.jobs,
		Drafts:     flags.drafts,
		Prune:      flags.prune,
		Watch:      flags.watch,
	})
	if err != nil {
		return err
	}

	initial, err := theme.Parse(cfg.Theme)
	if err != nil {
		return withExitCode(ExitConfigError, err)
	}

	builder, err := site.New(site.Options{
		ContentDir:    cfg.ContentDir,
		OutputDir:     cfg.OutputDir,
		BaseURL:       cfg.BaseURL,
		SiteTitle:     cfg.SiteTitle,
		Theme:         initial,
		Jobs:          cfg.EffectiveJobs(),
		IncludeDrafts: cfg.Drafts,
		Prune:         cfg.Prune,
		Markup:        markupOptions(cfg),
		HTML:          htmlOptions(cfg),
		Logger:        logger,
	})
	if err != nil {
		return withExitCode(ExitConfigError, err)
	}

	out := cmd.OutOrStdout()
	styles := outputStyles(cmd)

	if !cfg.Watch {
		result, err := builder.Build(cmd.Context())
		if result != nil {
			if _, werr := io.WriteString(out, styles.FormatBuildSummary(result)); werr != nil {
				return werr
			}
		}
		if err != nil {
			return fmt.Errorf("build: %w", err)
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching for changes", logging.FieldContent, cfg.ContentDir, logging.FieldOutput, cfg.OutputDir)
	err = builder.Watch(ctx, site.WatchOptions{
		Debounce: flags.debounce,
		OnBuild: func(result *site.Result, err error) {
			if result != nil {
				_, _ = io.WriteString(out, styles.FormatBuildSummary(result))
			}
			if err != nil {
				logger.Error("build failed", logging.FieldError, err)
			}
		},
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch: %w", err)
	}
	return nil
}
