package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/folio/pkg/fsutil"
)

func TestOutputWriteAndPrune(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	stale := filepath.Join(root, "writeups", "old", "index.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("same"), 0o644))

	out := fsutil.NewOutput(root)
	ctx := context.Background()

	changed, err := out.Write(ctx, "index.html", []byte("same"))
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = out.Write(ctx, "/writeups/aria/index.html", []byte("aria"))
	require.NoError(t, err)
	assert.True(t, changed)

	touched, written := out.Stats()
	assert.Equal(t, 2, touched)
	assert.Equal(t, 1, written)

	removed, err := out.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"writeups/old/index.html"}, removed)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(root, "writeups", "aria", "index.html"))
}

func TestOutputRejectsEscapes(t *testing.T) {
	t.Parallel()

	out := fsutil.NewOutput(t.TempDir())
	for _, rel := range []string{"../x.html", "a/../../x.html", "", "."} {
		_, err := out.Write(context.Background(), rel, []byte("x"))
		require.ErrorIs(t, err, fsutil.ErrOutsideRoot, rel)
	}
}

func TestOutputPruneMissingRoot(t *testing.T) {
	t.Parallel()

	out := fsutil.NewOutput(filepath.Join(t.TempDir(), "missing"))
	removed, err := out.Prune(context.Background())
	require.NoError(t, err)
	assert.Empty(t, removed)
}
