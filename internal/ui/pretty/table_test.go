package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/folio/internal/ui/pretty"
)

func TestTableFormatter_Format(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 80)

	columns := []pretty.Column{
		{Title: "Kind", Min: 4},
		{Title: "Lines", Min: 5},
	}
	rows := []pretty.TableRow{
		{Cells: []string{"heading", "0-1"}},
		{Cells: []string{"code", "2-7"}, Group: true},
	}

	result := formatter.Format(columns, rows)
	lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
	require.Len(t, lines, 6)

	assert.Equal(t, " KIND     LINES", lines[0])
	assert.Equal(t, strings.Repeat("=", 17), lines[1])
	assert.Equal(t, " heading  0-1", lines[2])
	assert.Equal(t, strings.Repeat("-", 17), lines[3])
	assert.Equal(t, " code     2-7", lines[4])
	assert.Equal(t, lines[1], lines[5])
}

func TestTableFormatter_Empty(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 0)
	assert.Empty(t, formatter.Format([]pretty.Column{{Title: "x"}}, nil))
}

func TestTableFormatter_ShrinksFlexColumn(t *testing.T) {
	formatter := pretty.NewTableFormatter(pretty.NewStyles(false), 30)

	columns := []pretty.Column{
		{Title: "Path", Min: 8, Path: true},
		{Title: "Title", Min: 10, Flex: true},
	}
	rows := []pretty.TableRow{
		{Cells: []string{"writeups/a.md", strings.Repeat("t", 40)}},
	}

	result := formatter.Format(columns, rows)
	for _, line := range strings.Split(strings.TrimSuffix(result, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 30, line)
	}
	assert.Contains(t, result, "...")
	assert.Contains(t, result, "writeups/a.md")
}
