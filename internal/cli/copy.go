package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/folio/internal/logging"
	"github.com/yaklabco/folio/pkg/clipboard"
	"github.com/yaklabco/folio/pkg/markup"
)

// errNoCode is returned when a document has no fenced code to copy.
var errNoCode = errors.New("document has no code blocks")

type copyFlags struct {
	block int
	print bool
}

func newCopyCommand() *cobra.Command {
	flags := &copyFlags{}

	cmd := &cobra.Command{
		Use:   "copy [file]",
		Short: "Copy code blocks to the clipboard",
		Long: `Copy the fenced code of a document to the clipboard.

By default every block is copied, separated by blank lines. The system
clipboard is tried first; when it is unavailable an OSC 52 sequence is
written to standard error so the terminal can set its clipboard.

Examples:
  folio copy writeups/aria.md
  folio copy --block 2 writeups/aria.md
  folio copy --print writeups/aria.md | less`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopy(cmd, args, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.block, "block", "b", 0, "copy only the Nth block (1-based)")
	cmd.Flags().BoolVarP(&flags.print, "print", "p", false, "print instead of copying")

	return cmd
}

func runCopy(cmd *cobra.Command, args []string, flags *copyFlags) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	cfg, err := loadConfig(cmd, nil)
	if err != nil {
		return err
	}

	src, err := readSource(cmd, firstArg(args))
	if err != nil {
		return err
	}

	blocks := markup.ExtractCodeBlocks(src.doc, markupOptions(cfg))
	if len(blocks) == 0 {
		return fmt.Errorf("%s: %w", src.path, errNoCode)
	}

	text := markup.CopyAllText(blocks)
	if flags.block != 0 {
		if flags.block < 1 || flags.block > len(blocks) {
			return withExitCode(ExitInvalidUsage,
				fmt.Errorf("--block %d out of range: %s has %d code blocks", flags.block, src.path, len(blocks)))
		}
		text = blocks[flags.block-1].Code
	}

	if flags.print {
		_, err := io.WriteString(cmd.OutOrStdout(), text+"\n")
		return err
	}

	copiers := []clipboard.Copier{clipboard.System{}, clipboard.OSC52{Out: cmd.ErrOrStderr()}}
	name, err := clipboard.Copy(ctx, logger, text, copiers...)
	if err != nil {
		return withExitCode(ExitIOError, err)
	}

	logger.Info("copied code", logging.FieldCopier, name, logging.FieldBlocks, len(blocks))
	return nil
}
