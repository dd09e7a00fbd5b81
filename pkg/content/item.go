// Package content models the writeups and projects published on the site.
package content

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-slug"

	"github.com/yaklabco/folio/pkg/document"
)

// Kind separates the two sections of the site.
type Kind string

// Content kinds.
const (
	KindWriteup Kind = "writeup"
	KindProject Kind = "project"
)

// Difficulty ratings used by writeups.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
	DifficultyInsane = "Insane"
)

// WriteupMeta is the machine information shown on a writeup.
type WriteupMeta struct {
	Difficulty string `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	OS         string `json:"os,omitempty"         yaml:"os,omitempty"`
	IP         string `json:"ip,omitempty"         yaml:"ip,omitempty"`
}

// Validate implements validation.Validatable.
func (m WriteupMeta) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Difficulty, validation.In(
			DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyInsane,
		).Error("must be one of Easy, Medium, Hard, Insane")),
		validation.Field(&m.IP, is.IPv4),
	)
}

// ProjectMeta links a project to its source and demo.
type ProjectMeta struct {
	GitHub string `json:"github,omitempty" yaml:"github,omitempty"`
	Demo   string `json:"demo,omitempty"   yaml:"demo,omitempty"`
}

// Validate implements validation.Validatable.
func (m ProjectMeta) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.GitHub, is.URL),
		validation.Field(&m.Demo, is.URL),
	)
}

// Item is one writeup or project.
type Item struct {
	Kind    Kind      `json:"kind"`
	Slug    string    `json:"slug"`
	Title   string    `json:"title"`
	Excerpt string    `json:"excerpt,omitempty"`
	Date    time.Time `json:"date"`
	Tags    []string  `json:"tags,omitempty"`
	Image   string    `json:"image,omitempty"`
	Draft   bool      `json:"draft,omitempty"`

	// Exactly one is set, matching Kind.
	Writeup *WriteupMeta `json:"writeup,omitempty"`
	Project *ProjectMeta `json:"project,omitempty"`

	// Path is the source file, relative to the content root.
	Path string `json:"path,omitempty"`
	Body string `json:"-"`
}

//nolint:gochecknoglobals // Shared validation error.
var errSlugFormat = validation.NewError("validation_slug_format", "must be lowercase words separated by hyphens")

// Validate checks the item's fields.
func (i *Item) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Kind, validation.Required, validation.In(KindWriteup, KindProject)),
		validation.Field(&i.Slug, validation.Required, validation.By(func(value any) error {
			if s, _ := value.(string); s != "" && !slug.IsValid(s) {
				return errSlugFormat
			}
			return nil
		})),
		validation.Field(&i.Title, validation.Required),
		validation.Field(&i.Date, validation.Required),
		validation.Field(&i.Tags, validation.Each(validation.Required)),
		validation.Field(&i.Writeup, validation.When(i.Kind == KindWriteup, validation.Required).Else(validation.Nil)),
		validation.Field(&i.Project, validation.When(i.Kind == KindProject, validation.Required).Else(validation.Nil)),
	)
}

// Document returns the body as a renderable document.
func (i *Item) Document() *document.Document {
	return document.New(i.Body)
}

// HasTag reports whether the item carries tag, ignoring case.
func (i *Item) HasTag(tag string) bool {
	key := foldKey(tag)
	for _, t := range i.Tags {
		if foldKey(t) == key {
			return true
		}
	}
	return false
}

// URL returns the site path of the item.
func (i *Item) URL() string {
	return "/" + string(i.Kind) + "s/" + i.Slug + "/"
}

// NormalizeSlug derives a slug from free text.
func NormalizeSlug(value string) (string, error) {
	normalized, err := slug.Normalize(strings.TrimSpace(value))
	if err != nil {
		return "", err
	}
	return normalized, nil
}
