package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/folio/pkg/compat"
)

// FormatFinding formats a single check finding for terminal output.
// Lines are shown 1-based.
func (s *Styles) FormatFinding(path string, finding compat.Finding, sourceLine string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d", s.FilePath.Render(path), finding.Line+1)

	// Main line: location  severity  message  (kind)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(finding.Kind.Severity()),
		s.Message.Render(finding.Message),
		s.Kind.Render("("+string(finding.Kind)+")"),
	))

	if sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, 1))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev compat.Severity) string {
	switch sev {
	case compat.SeverityWarning:
		return s.Warning.Render("warning")
	case compat.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with finding output
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, findingCount int) string {
	header := s.FilePath.Render(path)
	if findingCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", findingCount, plural(findingCount, "finding", "findings")))
	}
	return header
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
