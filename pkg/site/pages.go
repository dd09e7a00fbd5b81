package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/yaklabco/folio/pkg/content"
	"github.com/yaklabco/folio/pkg/htmlrender"
	"github.com/yaklabco/folio/pkg/markup"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type templates struct {
	item *template.Template
	list *template.Template
	tags *template.Template
}

func parseTemplates() (*templates, error) {
	parse := func(name string) (*template.Template, error) {
		tmpl, err := template.New(name).ParseFS(templateFS, "templates/base.tmpl", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		return tmpl, nil
	}

	var (
		set templates
		err error
	)
	if set.item, err = parse("item.tmpl"); err != nil {
		return nil, err
	}
	if set.list, err = parse("list.tmpl"); err != nil {
		return nil, err
	}
	if set.tags, err = parse("tags.tmpl"); err != nil {
		return nil, err
	}
	return &set, nil
}

// shell holds the fields every page template reads.
type shell struct {
	Title     string
	SiteTitle string
	BaseURL   string
	Theme     string
}

// tagLink is one tag of an item page.
type tagLink struct {
	Name string
	Slug string
}

type itemPage struct {
	shell
	Item    *content.Item
	Tags    []tagLink
	Outline template.HTML
	Body    template.HTML
	HasCode bool
	CopyAll string
}

type listPage struct {
	shell
	Heading string
	Items   []*content.Item
	Related []content.TagCount
}

type tagsPage struct {
	shell
	Tags []content.TagCount
}

func execute(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *Builder) shell(title string) shell {
	return shell{
		Title:     title,
		SiteTitle: b.opts.SiteTitle,
		BaseURL:   strings.TrimSuffix(b.opts.BaseURL, "/"),
		Theme:     b.opts.Theme.String(),
	}
}

func (b *Builder) renderItem(item *content.Item, catalog *content.Catalog) ([]byte, error) {
	result := markup.Render(item.Document(), b.opts.Markup)

	body, err := b.renderer.RenderString(result.Nodes)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", item.Path, err)
	}

	var outline strings.Builder
	if err := htmlrender.RenderOutline(&outline, result.Outline, ""); err != nil {
		return nil, fmt.Errorf("render outline of %s: %w", item.Path, err)
	}

	tags := make([]tagLink, len(item.Tags))
	for idx, tag := range item.Tags {
		tags[idx] = tagLink{Name: tag, Slug: catalog.TagSlug(tag)}
	}

	blocks := result.CodeBlocks()
	page := itemPage{
		shell:   b.shell(item.Title),
		Item:    item,
		Tags:    tags,
		Outline: template.HTML(outline.String()), //nolint:gosec // Escaped by htmlrender.
		Body:    template.HTML(body),             //nolint:gosec // Escaped by htmlrender.
		HasCode: len(blocks) > 0,
		CopyAll: markup.CopyAllText(blocks),
	}
	return execute(b.tmpl.item, page)
}

func (b *Builder) renderList(title string, items []*content.Item, related []content.TagCount) ([]byte, error) {
	return execute(b.tmpl.list, listPage{
		shell:   b.shell(title),
		Heading: title,
		Items:   items,
		Related: related,
	})
}

func (b *Builder) renderTags(tags []content.TagCount) ([]byte, error) {
	return execute(b.tmpl.tags, tagsPage{shell: b.shell("Tags"), Tags: tags})
}
