package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table formatting constants.
const (
	tablePadding     = 2
	heavySeparator   = "="
	lightSeparator   = "-"
	defaultTermWidth = 100
	ellipsis         = "..."
)

// Column describes one table column.
type Column struct {
	Title string

	// Min is the narrowest the column may shrink to.
	Min int

	// Flex marks the column that gives up width first when the table is
	// wider than the terminal.
	Flex bool

	// Path truncates from the left so the file name stays visible.
	Path bool
}

// TableRow is one row of cells. Style, when set, is applied to the whole
// rendered row.
type TableRow struct {
	Cells []string
	Style *lipgloss.Style

	// Group starts a new group; a light separator is drawn before it.
	Group bool
}

// TableFormatter formats rows as a styled plain-text table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// Format renders columns and rows. It returns "" when there are no rows.
func (t *TableFormatter) Format(columns []Column, rows []TableRow) string {
	if len(rows) == 0 || len(columns) == 0 {
		return ""
	}

	widths := t.calculateColumnWidths(columns, rows)

	var builder strings.Builder

	// Write header
	builder.WriteString(t.formatHeader(columns, widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	for idx, row := range rows {
		if row.Group && idx > 0 {
			builder.WriteString(t.formatSeparator(widths, lightSeparator))
			builder.WriteString("\n")
		}
		builder.WriteString(t.formatRow(columns, row, widths))
		builder.WriteString("\n")
	}

	// Write footer separator
	builder.WriteString(t.formatSeparator(widths, heavySeparator))
	builder.WriteString("\n")

	return builder.String()
}

// calculateColumnWidths determines column widths from content, then
// shrinks flex columns to fit the terminal.
func (t *TableFormatter) calculateColumnWidths(columns []Column, rows []TableRow) []int {
	widths := make([]int, len(columns))
	for idx, column := range columns {
		widths[idx] = max(column.Min, len(column.Title))
	}

	for _, row := range rows {
		for idx := range columns {
			if idx < len(row.Cells) && len(row.Cells[idx]) > widths[idx] {
				widths[idx] = len(row.Cells[idx])
			}
		}
	}

	// Constrain to terminal width
	for idx, column := range columns {
		excess := totalWidth(widths) - t.termWidth
		if excess <= 0 {
			break
		}
		if column.Flex {
			widths[idx] = max(max(column.Min, len(column.Title)), widths[idx]-excess)
		}
	}

	return widths
}

// totalWidth calculates the total table width from column widths.
func totalWidth(widths []int) int {
	total := 1
	for _, width := range widths {
		total += width + tablePadding
	}
	return total
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(columns []Column, widths []int) string {
	cells := make([]string, len(columns))
	for idx, column := range columns {
		cells[idx] = fmt.Sprintf("%-*s", widths[idx], strings.ToUpper(column.Title))
	}
	return t.styles.TableHeader.Render(" " + strings.Join(cells, "  "))
}

// formatSeparator formats a separator line.
func (t *TableFormatter) formatSeparator(widths []int, char string) string {
	return t.styles.TableSeparator.Render(strings.Repeat(char, totalWidth(widths)))
}

// formatRow formats a single table row.
func (t *TableFormatter) formatRow(columns []Column, row TableRow, widths []int) string {
	cells := make([]string, len(columns))
	for idx, column := range columns {
		var cell string
		if idx < len(row.Cells) {
			cell = row.Cells[idx]
		}
		if column.Path {
			cell = truncateFilePath(cell, widths[idx])
		} else {
			cell = truncateString(cell, widths[idx])
		}
		cells[idx] = fmt.Sprintf("%-*s", widths[idx], cell)
	}

	content := strings.TrimRight(" "+strings.Join(cells, "  "), " ")
	if row.Style != nil {
		return row.Style.Render(content)
	}
	return content
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= len(ellipsis) {
		return str[:maxLen]
	}
	return str[:maxLen-len(ellipsis)] + ellipsis
}

// truncateFilePath truncates a file path, preserving the end (filename) rather than beginning.
func truncateFilePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= len(ellipsis) {
		return path[len(path)-maxLen:]
	}
	return ellipsis + path[len(path)-maxLen+len(ellipsis):]
}
