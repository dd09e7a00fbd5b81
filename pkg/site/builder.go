// Package site builds the static portfolio: one page per writeup and
// project, section listings and the tag index.
package site

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/folio/pkg/content"
	"github.com/yaklabco/folio/pkg/fsutil"
	"github.com/yaklabco/folio/pkg/htmlrender"
	"github.com/yaklabco/folio/pkg/markup"
	"github.com/yaklabco/folio/pkg/theme"
)

// relatedTagLimit caps the related tags shown on a tag page.
const relatedTagLimit = 6

// Options configures a Builder.
type Options struct {
	ContentDir string
	OutputDir  string
	BaseURL    string
	SiteTitle  string
	Theme      theme.Theme

	// Jobs bounds concurrent page renders; 0 or less means runtime.NumCPU().
	Jobs int

	IncludeDrafts bool

	// Prune removes files in OutputDir that the build did not produce.
	Prune bool

	Markup markup.Options
	HTML   htmlrender.Options

	Logger *log.Logger
}

// Result summarises a build.
type Result struct {
	Items    int
	Pages    int
	Written  int
	Pruned   []string
	Duration time.Duration
}

// Builder renders a content directory into an output directory.
type Builder struct {
	opts     Options
	renderer *htmlrender.Renderer
	tmpl     *templates
	logger   *log.Logger
}

// New validates opts and prepares the renderer and templates.
func New(opts Options) (*Builder, error) {
	if opts.ContentDir == "" || opts.OutputDir == "" {
		return nil, errors.New("content and output directories are required")
	}
	if opts.Theme == "" {
		opts.Theme = theme.Default
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}

	renderer, err := htmlrender.New(opts.HTML)
	if err != nil {
		return nil, err
	}
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	return &Builder{opts: opts, renderer: renderer, tmpl: tmpl, logger: logger}, nil
}

// page is one output file and the function producing it.
type page struct {
	rel    string
	render func() ([]byte, error)
}

// Build loads content, renders every page and writes the changed ones.
// Content files that fail to load are reported in the returned error but
// do not stop the rest of the site from building.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	start := time.Now()

	if info, err := os.Stat(b.opts.ContentDir); err != nil {
		return nil, fmt.Errorf("content directory: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("content directory %s is not a directory", b.opts.ContentDir)
	}

	items, loadErr := content.LoadFS(ctx, os.DirFS(b.opts.ContentDir), content.LoadOptions{
		IncludeDrafts: b.opts.IncludeDrafts,
	})
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("build cancelled: %w", err)
	}
	if loadErr != nil {
		b.logger.Warn("some content was skipped", "error", loadErr)
	}

	catalog := content.NewCatalog(items...)
	pages := b.plan(catalog)

	out := fsutil.NewOutput(b.opts.OutputDir)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(b.opts.Jobs)

	for _, p := range pages {
		group.Go(func() error {
			data, err := p.render()
			if err != nil {
				return fmt.Errorf("render %s: %w", p.rel, err)
			}
			changed, err := out.Write(groupCtx, p.rel, data)
			if err != nil {
				return err
			}
			if changed {
				b.logger.Debug("wrote page", "path", p.rel)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.Join(err, loadErr)
	}

	result := &Result{Items: catalog.Len(), Pages: len(pages)}
	_, result.Written = out.Stats()

	if b.opts.Prune {
		pruned, err := out.Prune(ctx)
		if err != nil {
			return nil, errors.Join(err, loadErr)
		}
		result.Pruned = pruned
	}

	result.Duration = time.Since(start)
	return result, loadErr
}

func (b *Builder) plan(catalog *content.Catalog) []page {
	writeups := catalog.OfKind(content.KindWriteup)
	projects := catalog.OfKind(content.KindProject)

	pages := []page{
		{"index.html", func() ([]byte, error) { return b.renderList("Recent", catalog.Items(), nil) }},
		{"writeups/index.html", func() ([]byte, error) { return b.renderList("Writeups", writeups, nil) }},
		{"projects/index.html", func() ([]byte, error) { return b.renderList("Projects", projects, nil) }},
		{"tags/index.html", func() ([]byte, error) { return b.renderTags(catalog.Tags()) }},
		{"assets/highlight.css", b.renderCSS},
		{"search.json", func() ([]byte, error) { return searchIndex(catalog) }},
	}

	for _, item := range catalog.Items() {
		pages = append(pages, page{
			rel:    string(item.Kind) + "s/" + item.Slug + "/index.html",
			render: func() ([]byte, error) { return b.renderItem(item, catalog) },
		})
	}

	for _, tag := range catalog.Tags() {
		pages = append(pages, page{
			rel: "tags/" + tag.Slug + "/index.html",
			render: func() ([]byte, error) {
				return b.renderList("Tag: "+tag.Name, catalog.Search(content.Query{Tag: tag.Name}),
					catalog.RelatedTags(tag.Name, relatedTagLimit))
			},
		})
	}

	return pages
}

func (b *Builder) renderCSS() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.renderer.WriteCSS(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type searchEntry struct {
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Tags    []string `json:"tags"`
	Kind    string   `json:"kind"`
	URL     string   `json:"url"`
}

// searchIndex lets the listing pages filter client side.
func searchIndex(catalog *content.Catalog) ([]byte, error) {
	entries := make([]searchEntry, 0, catalog.Len())
	for _, item := range catalog.Items() {
		entries = append(entries, searchEntry{
			Title:   item.Title,
			Excerpt: item.Excerpt,
			Tags:    item.Tags,
			Kind:    string(item.Kind),
			URL:     item.URL(),
		})
	}
	return json.MarshalIndent(entries, "", "  ")
}
