package pretty_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/folio/internal/ui/pretty"
	"github.com/yaklabco/folio/pkg/compat"
	"github.com/yaklabco/folio/pkg/site"
)

func reportOf(kinds ...compat.Kind) *compat.Report {
	report := &compat.Report{}
	for idx, kind := range kinds {
		report.Findings = append(report.Findings, compat.Finding{Line: idx, Kind: kind, Message: string(kind)})
	}
	return report
}

func TestCheckStats_Add(t *testing.T) {
	var stats pretty.CheckStats
	stats.Add(reportOf())
	stats.Add(reportOf(compat.KindOutlineDrift, compat.KindDialectOnly))
	stats.Add(nil)

	assert.Equal(t, 3, stats.FilesChecked)
	assert.Equal(t, 1, stats.FilesWithFindings)
	assert.Equal(t, 2, stats.FindingsTotal)
	assert.Equal(t, 1, stats.FindingsBySeverity[compat.SeverityWarning])
	assert.Equal(t, 1, stats.FindingsBySeverity[compat.SeverityInfo])
}

func TestFormatCheckSummary_WithWarnings(t *testing.T) {
	styles := pretty.NewStyles(false)

	var stats pretty.CheckStats
	stats.Add(reportOf(compat.KindUnterminatedFence, compat.KindCommonMarkOnly))

	result := styles.FormatCheckSummary(stats)

	assert.Contains(t, result, "Summary")
	assert.Contains(t, result, "Files with findings: 1")
	assert.Contains(t, result, "Total findings:      2")
	assert.Contains(t, result, "Warnings:")
	assert.Contains(t, result, "Info:")
	assert.Contains(t, result, "Check completed with warnings")
}

func TestFormatCheckSummary_Clean(t *testing.T) {
	styles := pretty.NewStyles(false)

	var stats pretty.CheckStats
	stats.Add(reportOf())

	result := styles.FormatCheckSummary(stats)

	assert.Contains(t, result, "Check passed")
	assert.NotContains(t, result, "Files with findings:")
}

func TestFormatCheckOneLine(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		name    string
		reports []*compat.Report
		want    string
	}{
		{
			name:    "clean",
			reports: []*compat.Report{reportOf()},
			want:    "No findings (1 file checked)\n",
		},
		{
			name:    "single finding",
			reports: []*compat.Report{reportOf(compat.KindDiscarded)},
			want:    "1 finding (1 warning) in 1 file\n",
		},
		{
			name: "mixed",
			reports: []*compat.Report{
				reportOf(compat.KindDiscarded, compat.KindOutlineDrift),
				reportOf(compat.KindDialectOnly),
			},
			want: "3 findings (2 warnings, 1 info) in 2 files\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stats pretty.CheckStats
			for _, report := range tt.reports {
				stats.Add(report)
			}
			assert.Equal(t, tt.want, styles.FormatCheckOneLine(stats))
		})
	}
}

func TestFormatBuildSummary(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatBuildSummary(&site.Result{
		Items:    1,
		Pages:    9,
		Written:  2,
		Pruned:   []string{"old/index.html"},
		Duration: 42 * time.Millisecond,
	})

	assert.Equal(t, "Built 1 item into 9 pages (2 written, 1 pruned) in 42ms\n", result)
	assert.Empty(t, styles.FormatBuildSummary(nil))
}
