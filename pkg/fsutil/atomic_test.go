package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/folio/pkg/fsutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates parents", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "writeups", "aria", "index.html")
		if err := fsutil.WriteAtomic(context.Background(), path, []byte("<h1>Aria</h1>"), 0); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read back: %v", err)
		}
		if string(got) != "<h1>Aria</h1>" {
			t.Errorf("content = %q", got)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm() != fsutil.DefaultFileMode {
			t.Errorf("mode = %v, want %v", info.Mode().Perm(), fsutil.DefaultFileMode)
		}
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "a.html")
		for _, body := range []string{"one", "two"} {
			if err := fsutil.WriteAtomic(context.Background(), path, []byte(body), 0); err != nil {
				t.Fatalf("WriteAtomic() error = %v", err)
			}
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read dir: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("dir has %d entries, want 1", len(entries))
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "a.html")
		err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("error = %v, want context.Canceled", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("file should not exist")
		}
	})
}

func TestWriteAtomicIfChanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.html")
	ctx := context.Background()

	for _, step := range []struct {
		body string
		want bool
	}{
		{"first", true},
		{"first", false},
		{"second", true},
	} {
		changed, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte(step.body), 0)
		if err != nil {
			t.Fatalf("WriteAtomicIfChanged(%q) error = %v", step.body, err)
		}
		if changed != step.want {
			t.Errorf("WriteAtomicIfChanged(%q) = %v, want %v", step.body, changed, step.want)
		}
	}
}
