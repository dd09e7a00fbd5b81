package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// LoadOptions configures LoadFS.
type LoadOptions struct {
	// IncludeDrafts keeps items marked draft.
	IncludeDrafts bool
}

// LoadFS parses every .md file under fsys. Files that fail to parse are
// skipped and their errors joined into the returned error; the items that
// did load are still returned, sorted by path.
func LoadFS(ctx context.Context, fsys fs.FS, opts LoadOptions) ([]*Item, error) {
	var (
		items []*Item
		errs  []error
	)

	walkErr := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if entry.IsDir() {
			if p != "." && strings.HasPrefix(entry.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !IsContentFile(p) {
			return nil
		}

		source, err := fs.ReadFile(fsys, p)
		if err != nil {
			errs = append(errs, fmt.Errorf("read %s: %w", p, err))
			return nil
		}
		item, err := Parse(p, source)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if item.Draft && !opts.IncludeDrafts {
			return nil
		}
		items = append(items, item)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk content: %w", walkErr)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Path < items[j].Path })
	return items, errors.Join(errs...)
}

// IsContentFile reports whether p names a Markdown content file.
func IsContentFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".md", ".markdown":
		return !strings.HasPrefix(path.Base(p), "_")
	default:
		return false
	}
}
