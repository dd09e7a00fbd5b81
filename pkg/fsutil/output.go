package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ErrOutsideRoot is returned for output paths that escape the output directory.
var ErrOutsideRoot = errors.New("path escapes output directory")

// Output is a build output directory. It remembers every path written
// during a build so stale files can be pruned afterwards. Safe for
// concurrent use.
type Output struct {
	root string

	mu      sync.Mutex
	touched map[string]bool
	written int
}

// NewOutput returns an Output rooted at dir.
func NewOutput(dir string) *Output {
	return &Output{root: filepath.Clean(dir), touched: map[string]bool{}}
}

// Root returns the output directory.
func (o *Output) Root() string {
	return o.root
}

// Write stores content at rel, a slash separated path below the root.
// It reports whether the file changed on disk.
func (o *Output) Write(ctx context.Context, rel string, content []byte) (bool, error) {
	path, err := o.resolve(rel)
	if err != nil {
		return false, err
	}

	changed, err := WriteAtomicIfChanged(ctx, path, content, DefaultFileMode)
	if err != nil {
		return false, err
	}

	o.mu.Lock()
	o.touched[path] = true
	if changed {
		o.written++
	}
	o.mu.Unlock()

	return changed, nil
}

// Stats returns how many files were touched and how many of them changed.
func (o *Output) Stats() (touched, written int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.touched), o.written
}

// Prune deletes regular files under the root that were not written through
// o, and returns their slash separated paths, sorted.
func (o *Output) Prune(ctx context.Context) ([]string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var removed []string
	err := filepath.WalkDir(o.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && path == o.root {
				return fs.SkipAll
			}
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if entry.IsDir() || !entry.Type().IsRegular() || o.touched[path] {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove stale %s: %w", path, err)
		}
		rel, _ := filepath.Rel(o.root, path)
		removed = append(removed, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return removed, fmt.Errorf("prune %s: %w", o.root, err)
	}

	sort.Strings(removed)
	return removed, nil
}

func (o *Output) resolve(rel string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(rel, "/")))
	if cleaned == "." || filepath.IsAbs(cleaned) || cleaned == ".." ||
		strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, rel)
	}
	return filepath.Join(o.root, cleaned), nil
}
