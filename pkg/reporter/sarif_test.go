package reporter_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/folio/pkg/compat"
	"github.com/yaklabco/folio/pkg/reporter"
)

func TestBuildSARIF(t *testing.T) {
	t.Parallel()

	files := []reporter.File{
		{Path: "writeups/aria.md", Findings: []compat.Finding{
			{Line: 4, Kind: compat.KindUnterminatedFence, Message: "code fence is never closed"},
			{Line: 9, Kind: compat.KindDialectOnly, Message: "heading is text in CommonMark"},
		}},
		{Path: "writeups/clean.md"},
		{Path: "projects/folio.md", Findings: []compat.Finding{
			{Line: 0, Kind: compat.KindUnterminatedFence, Message: "code fence is never closed"},
		}},
	}

	output := reporter.BuildSARIF(files, "1.2.3")

	assert.Equal(t, "2.1.0", output.Version)
	require.Len(t, output.Runs, 1)
	run := output.Runs[0]

	assert.Equal(t, "folio", run.Tool.Driver.Name)
	assert.Equal(t, "1.2.3", run.Tool.Driver.Version)

	require.Len(t, run.Tool.Driver.Rules, 2, "one rule per kind")
	assert.Equal(t, string(compat.KindUnterminatedFence), run.Tool.Driver.Rules[0].ID)
	assert.Equal(t, "warning", run.Tool.Driver.Rules[0].DefaultConfig.Level)
	assert.Equal(t, string(compat.KindDialectOnly), run.Tool.Driver.Rules[1].ID)
	assert.Equal(t, "note", run.Tool.Driver.Rules[1].DefaultConfig.Level)
	assert.NotEmpty(t, run.Tool.Driver.Rules[1].ShortDescription.Text)

	require.Len(t, run.Results, 3)
	first := run.Results[0]
	assert.Equal(t, "warning", first.Level)
	assert.Equal(t, "writeups/aria.md", first.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 5, first.Locations[0].PhysicalLocation.Region.StartLine, "lines are 1-based")
	assert.Equal(t, 1, run.Results[2].Locations[0].PhysicalLocation.Region.StartLine)
}

func TestWriteSARIFEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	count, err := reporter.WriteSARIF(&buf, nil, "dev")
	require.NoError(t, err)
	assert.Zero(t, count)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "2.1.0", decoded["version"])

	runs, ok := decoded["runs"].([]any)
	require.True(t, ok)
	require.Len(t, runs, 1)
	run, ok := runs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{}, run["results"], "results are an empty array, not null")
}
