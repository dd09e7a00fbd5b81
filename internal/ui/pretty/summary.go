package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/folio/pkg/compat"
	"github.com/yaklabco/folio/pkg/site"
)

const summaryDividerWidth = 40

// CheckStats aggregates check reports across documents.
type CheckStats struct {
	FilesChecked       int
	FilesWithFindings  int
	FindingsTotal      int
	FindingsBySeverity map[compat.Severity]int
}

// Add folds one document's report into the stats.
func (c *CheckStats) Add(report *compat.Report) {
	if c.FindingsBySeverity == nil {
		c.FindingsBySeverity = make(map[compat.Severity]int)
	}
	c.FilesChecked++
	if report == nil || report.Clean() {
		return
	}
	c.FilesWithFindings++
	c.FindingsTotal += len(report.Findings)
	for _, finding := range report.Findings {
		c.FindingsBySeverity[finding.Kind.Severity()]++
	}
}

// FormatCheckOneLine formats check statistics as a single line.
// Example: "3 findings (2 warnings, 1 info) in 2 files".
func (s *Styles) FormatCheckOneLine(stats CheckStats) string {
	if stats.FindingsTotal == 0 {
		return s.Success.Render("No findings") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesChecked, plural(stats.FilesChecked, "file", "files"))) + "\n"
	}

	var severityParts []string
	if warnings := stats.FindingsBySeverity[compat.SeverityWarning]; warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d %s", warnings, plural(warnings, "warning", "warnings"))))
	}
	if infos := stats.FindingsBySeverity[compat.SeverityInfo]; infos > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
	}

	return fmt.Sprintf("%d %s (%s) in %d %s\n",
		stats.FindingsTotal, plural(stats.FindingsTotal, "finding", "findings"),
		strings.Join(severityParts, ", "),
		stats.FilesWithFindings, plural(stats.FilesWithFindings, "file", "files"),
	)
}

// FormatCheckSummary formats check statistics as a summary block.
func (s *Styles) FormatCheckSummary(stats CheckStats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:       " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesChecked)) + "\n")
	if stats.FilesWithFindings > 0 {
		builder.WriteString("  Files with findings: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithFindings)) + "\n")
	}

	builder.WriteString("  Total findings:      " +
		s.SummaryValue.Render(strconv.Itoa(stats.FindingsTotal)) + "\n")
	if warnings := stats.FindingsBySeverity[compat.SeverityWarning]; warnings > 0 {
		builder.WriteString("    Warnings:          " + s.Warning.Render(strconv.Itoa(warnings)) + "\n")
	}
	if infos := stats.FindingsBySeverity[compat.SeverityInfo]; infos > 0 {
		builder.WriteString("    Info:              " + s.Info.Render(strconv.Itoa(infos)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.FindingsBySeverity[compat.SeverityWarning] > 0:
		builder.WriteString(s.Warning.Render("Check completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatBuildSummary formats a site build result as a single line.
// Example: "Built 12 items into 31 pages (4 written, 1 pruned) in 42ms".
func (s *Styles) FormatBuildSummary(result *site.Result) string {
	if result == nil {
		return ""
	}

	details := []string{fmt.Sprintf("%d written", result.Written)}
	if len(result.Pruned) > 0 {
		details = append(details, fmt.Sprintf("%d pruned", len(result.Pruned)))
	}

	return fmt.Sprintf("%s %d %s into %d %s %s %s\n",
		s.Success.Render("Built"),
		result.Items, plural(result.Items, "item", "items"),
		result.Pages, plural(result.Pages, "page", "pages"),
		s.Dim.Render("("+strings.Join(details, ", ")+")"),
		s.Dim.Render("in "+result.Duration.Round(time.Millisecond).String()),
	)
}
