package toc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/folio/pkg/toc"
)

func TestBindAligned(t *testing.T) {
	t.Parallel()

	entries := []toc.HeadingEntry{toc.NewEntry(0, 1, "A"), toc.NewEntry(4, 2, "B")}
	targets := []toc.Target{{LineIndex: 0, Level: 1, Text: "A"}, {LineIndex: 4, Level: 2, Text: "B"}}

	binding := toc.Bind(entries, targets)
	assert.True(t, binding.Aligned())
	assert.Equal(t, []string{"heading-0", "heading-4"}, binding.IDs)
}

func TestBindDrift(t *testing.T) {
	t.Parallel()

	// The extractor saw a comment inside a code fence at line 2.
	entries := []toc.HeadingEntry{
		toc.NewEntry(0, 1, "Title"),
		toc.NewEntry(2, 1, "list files"),
		toc.NewEntry(6, 2, "Next"),
	}
	targets := []toc.Target{{LineIndex: 0, Level: 1}, {LineIndex: 6, Level: 2}}

	binding := toc.Bind(entries, targets)
	require.False(t, binding.Aligned())

	assert.Equal(t, []string{"heading-0", "heading-2"}, binding.IDs)
	require.Len(t, binding.Mismatches, 2)

	assert.Equal(t, 1, binding.Mismatches[0].Position)
	require.NotNil(t, binding.Mismatches[0].Target)
	assert.Equal(t, 6, binding.Mismatches[0].Target.LineIndex)

	assert.Equal(t, 2, binding.Mismatches[1].Position)
	assert.Nil(t, binding.Mismatches[1].Target)
	require.NotNil(t, binding.Mismatches[1].Entry)
	assert.Equal(t, "heading-6", binding.Mismatches[1].Entry.ID)
}

func TestBindMoreTargets(t *testing.T) {
	t.Parallel()

	binding := toc.Bind(nil, []toc.Target{{LineIndex: 3, Level: 1}})
	require.Len(t, binding.Mismatches, 1)
	assert.Nil(t, binding.Mismatches[0].Entry)
	assert.Equal(t, []string{""}, binding.IDs)
}
