package cli

import (
	"errors"

	"github.com/yaklabco/folio/internal/configloader"
	"github.com/yaklabco/folio/internal/ui/pretty"
	"github.com/yaklabco/folio/pkg/compat"
)

// Exit codes for folio.
const (
	// ExitSuccess indicates successful execution with no findings.
	ExitSuccess = 0

	// ExitFindings indicates check completed but reported warnings, or
	// that a command failed.
	ExitFindings = 1

	// ExitInfoFindings indicates check reported only info findings (strict mode).
	ExitInfoFindings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrFindingsReported is returned when check reports findings that fail
// the run. It only signals the exit code.
var ErrFindingsReported = errors.New("check findings reported")

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// ExitCodeFromStats determines the check exit code based on stats and strict mode.
func ExitCodeFromStats(stats pretty.CheckStats, strict bool) int {
	if stats.FindingsBySeverity[compat.SeverityWarning] > 0 {
		return ExitFindings
	}
	if strict && stats.FindingsBySeverity[compat.SeverityInfo] > 0 {
		return ExitInfoFindings
	}
	return ExitSuccess
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var coded *exitError
	if errors.As(err, &coded) {
		return coded.code
	}

	var invalid *configloader.ValidationError
	if errors.As(err, &invalid) {
		return ExitConfigError
	}

	return ExitFindings
}
