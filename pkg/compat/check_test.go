package compat_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/folio/pkg/compat"
	"github.com/yaklabco/folio/pkg/document"
	"github.com/yaklabco/folio/pkg/toc"
)

func doc(lines ...string) *document.Document {
	return document.New(strings.Join(lines, "\n"))
}

func TestReferenceHeadings(t *testing.T) {
	t.Parallel()

	ref := compat.NewReference(compat.FlavorCommonMark)
	headings, err := ref.Headings(context.Background(), doc(
		"# Aria",
		"text",
		"",
		"#### Deep *dive*",
		"Setext",
		"===",
		"```",
		"# not a heading",
		"```",
	))
	require.NoError(t, err)

	assert.Equal(t, []toc.Target{
		{LineIndex: 0, Level: 1, Text: "Aria"},
		{LineIndex: 3, Level: 4, Text: "Deep dive"},
		{LineIndex: 4, Level: 1, Text: "Setext"},
	}, headings)
}

func TestReferenceEmptyHeading(t *testing.T) {
	t.Parallel()

	ref := compat.NewReference(compat.FlavorCommonMark)
	headings, err := ref.Headings(context.Background(), doc("para", "", "# ", "after", "", "", "##"))
	require.NoError(t, err)

	assert.Equal(t, []toc.Target{
		{LineIndex: 2, Level: 1},
		{LineIndex: 6, Level: 2},
	}, headings)

	report, err := compat.Check(context.Background(), doc("para", "", "# ", "after"),
		compat.CheckOptions{Reference: ref})
	require.NoError(t, err)
	assert.True(t, report.Clean(), "%+v", report.Findings)
}

func TestReferenceFlavor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, compat.FlavorGFM, compat.NewReference("gfm").Flavor())
	assert.Equal(t, compat.FlavorCommonMark, compat.NewReference("bogus").Flavor())
}

func TestReferenceCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := compat.NewReference("").Headings(ctx, doc("# x"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestCheckClean(t *testing.T) {
	t.Parallel()

	report, err := compat.Check(context.Background(), doc(
		"# Aria",
		"",
		"## Enumeration",
		"```bash",
		"nmap 10.0.0.1",
		"```",
	), compat.CheckOptions{Reference: compat.NewReference("")})
	require.NoError(t, err)
	assert.True(t, report.Clean(), "%+v", report.Findings)
}

func TestCheckOutlineDrift(t *testing.T) {
	t.Parallel()

	report, err := compat.Check(context.Background(), doc(
		"# A",
		"```bash",
		"# comment",
		"```",
		"## B",
	), compat.CheckOptions{})
	require.NoError(t, err)

	require.Equal(t, 2, report.Count(compat.KindOutlineDrift))
	assert.Equal(t, 2, report.Findings[0].Line)
	assert.Contains(t, report.Findings[0].Message, `"comment"`)
	assert.Equal(t, 4, report.Findings[1].Line)
}

func TestCheckBlocks(t *testing.T) {
	t.Parallel()

	report, err := compat.Check(context.Background(), doc(
		"![broken",
		`<InfoStatus title="only" />`,
		`<InfoStatus title="x"`,
		"```",
		"open",
	), compat.CheckOptions{})
	require.NoError(t, err)

	assert.Equal(t, []compat.Kind{
		compat.KindDiscarded,
		compat.KindRejectedComponent,
		compat.KindDiscarded,
		compat.KindUnterminatedFence,
	}, kindsOf(report))
	assert.Equal(t, []int{0, 1, 2, 3}, linesOf(report))
}

func TestCheckReferenceDifferences(t *testing.T) {
	t.Parallel()

	report, err := compat.Check(context.Background(), doc(
		"#### Deep",
		"",
		`<InfoStatus title="t" message="m" />`,
		"# Swallowed",
	), compat.CheckOptions{Reference: compat.NewReference(compat.FlavorCommonMark)})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Count(compat.KindCommonMarkOnly))
	assert.Equal(t, 1, report.Count(compat.KindDialectOnly))
	assert.Equal(t, []int{0, 3}, linesOf(report))
	assert.Equal(t, 2, report.CountSeverity(compat.SeverityInfo))
	assert.Zero(t, report.CountSeverity(compat.SeverityWarning))
}

func TestKindSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind compat.Kind
		want compat.Severity
	}{
		{compat.KindOutlineDrift, compat.SeverityWarning},
		{compat.KindUnterminatedFence, compat.SeverityWarning},
		{compat.KindDiscarded, compat.SeverityWarning},
		{compat.KindRejectedComponent, compat.SeverityWarning},
		{compat.KindCommonMarkOnly, compat.SeverityInfo},
		{compat.KindDialectOnly, compat.SeverityInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.kind.Severity())
		})
	}
}

func kindsOf(report *compat.Report) []compat.Kind {
	out := make([]compat.Kind, len(report.Findings))
	for idx, finding := range report.Findings {
		out[idx] = finding.Kind
	}
	return out
}

func linesOf(report *compat.Report) []int {
	out := make([]int, len(report.Findings))
	for idx, finding := range report.Findings {
		out[idx] = finding.Line
	}
	return out
}
