// Package clipboard copies text to the user's clipboard, falling back to a
// terminal escape sequence when no system clipboard is reachable.
package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/log"
)

// ErrNoCopier is returned when Copy is given nothing to try.
var ErrNoCopier = errors.New("no clipboard available")

// ErrUnsupported is returned by System on platforms without a clipboard tool.
var ErrUnsupported = errors.New("system clipboard unsupported")

// Copier places text on a clipboard.
type Copier interface {
	Name() string
	Copy(ctx context.Context, text string) error
}

// System uses the platform clipboard (pbcopy, xclip, wl-copy, ...).
type System struct{}

// Name implements Copier.
func (System) Name() string { return "system" }

// Copy implements Copier.
func (System) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

// OSC52 writes an OSC 52 sequence so the terminal sets its clipboard. It
// works over SSH but the terminal must allow it.
type OSC52 struct {
	// Out defaults to os.Stderr.
	Out io.Writer
	// Env looks up environment variables; defaults to os.Getenv.
	Env func(string) string
}

// Name implements Copier.
func (OSC52) Name() string { return "osc52" }

// Copy implements Copier.
func (o OSC52) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := o.Out
	if out == nil {
		out = os.Stderr
	}
	getenv := o.Env
	if getenv == nil {
		getenv = os.Getenv
	}

	seq := osc52.New(text)
	switch {
	case getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(getenv("TERM"), "screen"):
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(out); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}
	return nil
}

// Default returns the system clipboard followed by the OSC 52 fallback.
func Default() []Copier {
	return []Copier{System{}, OSC52{}}
}

// Copy tries copiers in order and returns the name of the first that
// succeeded. Each failure before that is logged at warn level. When every
// copier fails the errors are joined.
func Copy(ctx context.Context, logger *log.Logger, text string, copiers ...Copier) (string, error) {
	if len(copiers) == 0 {
		return "", ErrNoCopier
	}

	var errs []error
	for _, copier := range copiers {
		err := copier.Copy(ctx, text)
		if err == nil {
			return copier.Name(), nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if logger != nil {
			logger.Warn("clipboard copy failed", "copier", copier.Name(), "error", err)
		}
		errs = append(errs, fmt.Errorf("%s: %w", copier.Name(), err))
	}
	return "", errors.Join(errs...)
}
