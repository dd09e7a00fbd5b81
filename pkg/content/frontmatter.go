package content

import (
	"bytes"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// ErrNoTitle is returned for files whose front matter has no title.
var ErrNoTitle = errors.New("front matter has no title")

// dateLayouts are tried in order; the second matches dates like "Oct 04, 2025".
//
//nolint:gochecknoglobals // Read-only layout list.
var dateLayouts = []string{time.DateOnly, "Jan 02, 2006", "January 2, 2006", time.RFC3339}

type frontMatter struct {
	Type       string   `yaml:"type"`
	Title      string   `yaml:"title"`
	Slug       string   `yaml:"slug"`
	Excerpt    string   `yaml:"excerpt"`
	Date       string   `yaml:"date"`
	Tags       []string `yaml:"tags"`
	Image      string   `yaml:"image"`
	Draft      bool     `yaml:"draft"`
	Difficulty string   `yaml:"difficulty"`
	OS         string   `yaml:"os"`
	IP         string   `yaml:"ip"`
	GitHub     string   `yaml:"github"`
	Demo       string   `yaml:"demo"`
}

// Parse reads one content file. relPath is slash separated and relative to
// the content root; its first directory ("writeups" or "projects") picks
// the kind when the front matter has no type. The returned item has been
// validated.
func Parse(relPath string, source []byte) (*Item, error) {
	var meta frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse front matter of %s: %w", relPath, err)
	}
	if strings.TrimSpace(meta.Title) == "" {
		return nil, fmt.Errorf("%s: %w", relPath, ErrNoTitle)
	}

	item := &Item{
		Kind:    kindFor(meta.Type, relPath),
		Title:   strings.TrimSpace(meta.Title),
		Excerpt: strings.TrimSpace(meta.Excerpt),
		Tags:    trimTags(meta.Tags),
		Image:   meta.Image,
		Draft:   meta.Draft,
		Path:    relPath,
		Body:    string(body),
	}

	item.Slug = strings.ToLower(strings.TrimSpace(meta.Slug))
	if item.Slug == "" {
		base := strings.TrimSuffix(path.Base(relPath), path.Ext(relPath))
		if item.Slug, err = NormalizeSlug(base); err != nil {
			return nil, fmt.Errorf("derive slug for %s: %w", relPath, err)
		}
	}

	if meta.Date != "" {
		if item.Date, err = parseDate(meta.Date); err != nil {
			return nil, fmt.Errorf("%s: %w", relPath, err)
		}
	}

	switch item.Kind {
	case KindWriteup:
		item.Writeup = &WriteupMeta{Difficulty: meta.Difficulty, OS: meta.OS, IP: meta.IP}
	case KindProject:
		item.Project = &ProjectMeta{GitHub: meta.GitHub, Demo: meta.Demo}
	}

	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s %s: %w", item.Kind, relPath, err)
	}
	return item, nil
}

func kindFor(declared, relPath string) Kind {
	switch strings.ToLower(strings.TrimSpace(declared)) {
	case string(KindWriteup):
		return KindWriteup
	case string(KindProject):
		return KindProject
	}
	if dir, _, ok := strings.Cut(relPath, "/"); ok && dir == "projects" {
		return KindProject
	}
	return KindWriteup
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", value)
}

func trimTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// Body strips the front matter from source, if any. offset is the number
// of source lines before the body, so body line N is source line N+offset.
func Body(source []byte) (body string, offset int, err error) {
	var discard map[string]any
	rest, err := frontmatter.Parse(bytes.NewReader(source), &discard)
	if err != nil {
		return "", 0, fmt.Errorf("parse front matter: %w", err)
	}
	if bytes.HasSuffix(source, rest) {
		offset = bytes.Count(source[:len(source)-len(rest)], []byte("\n"))
	}
	return string(rest), offset, nil
}
