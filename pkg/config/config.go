// Package config defines the configuration types for folio.
// These types are pure data structures; discovery and merging live in
// internal/configloader.
package config

import "runtime"

// OutputFormat selects how inspection commands print their results.
type OutputFormat string

const (
	FormatText  OutputFormat = "text"
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
)

// Flavor names the reference dialect used by the check command.
type Flavor string

const (
	FlavorCommonMark Flavor = "commonmark"
	FlavorGFM        Flavor = "gfm"
)

// Default values applied by NewConfig.
const (
	DefaultContentDir     = "content"
	DefaultOutputDir      = "public"
	DefaultSiteTitle      = "folio"
	DefaultTheme          = "dark"
	DefaultHighlightStyle = "dracula"
	DefaultTOCOffset      = 100
)

// MarkupConfig controls the block scanner and inline formatter.
type MarkupConfig struct {
	// Italic enables *emphasis* in paragraphs. Off by default.
	Italic *bool `yaml:"italic,omitempty"`

	// Components limits the recognised component tags. Empty means every
	// built-in component is recognised.
	Components []string `yaml:"components,omitempty"`
}

// HighlightConfig controls syntax highlighting of fenced code.
type HighlightConfig struct {
	Enabled        *bool  `yaml:"enabled,omitempty"`
	Style          string `yaml:"style,omitempty"`
	DetectLanguage *bool  `yaml:"detect_language,omitempty"`
}

// TOCConfig controls active-section tracking.
type TOCConfig struct {
	// Offset is the distance from the top of the viewport at which a
	// heading becomes active. Nil means DefaultTOCOffset; zero reads at the
	// viewport top.
	Offset *int `yaml:"offset,omitempty"`
}

// CheckConfig controls the compatibility check.
type CheckConfig struct {
	Flavor Flavor `yaml:"flavor,omitempty"`
}

// Config is the root configuration structure for folio.
type Config struct {
	// ContentDir holds the Markdown sources.
	ContentDir string `yaml:"content_dir,omitempty"`

	// OutputDir receives the generated site.
	OutputDir string `yaml:"output_dir,omitempty"`

	BaseURL   string `yaml:"base_url,omitempty"`
	SiteTitle string `yaml:"site_title,omitempty"`

	// Theme is the initial theme written into generated pages.
	Theme string `yaml:"theme,omitempty"`

	// Jobs bounds concurrent page renders (0 = auto).
	Jobs int `yaml:"jobs,omitempty"`

	// Drafts includes items marked draft in builds and listings.
	Drafts bool `yaml:"drafts,omitempty"`

	Markup    MarkupConfig    `yaml:"markup,omitempty"`
	Highlight HighlightConfig `yaml:"highlight,omitempty"`
	TOC       TOCConfig       `yaml:"toc,omitempty"`
	Check     CheckConfig     `yaml:"check,omitempty"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format of inspection commands.
	Format OutputFormat `yaml:"-"`

	// Prune removes stale files from OutputDir after a build.
	Prune bool `yaml:"-"`

	// Watch rebuilds when the content directory changes.
	Watch bool `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		ContentDir: DefaultContentDir,
		OutputDir:  DefaultOutputDir,
		BaseURL:    "/",
		SiteTitle:  DefaultSiteTitle,
		Theme:      DefaultTheme,
		Markup: MarkupConfig{
			Italic: Bool(false),
		},
		Highlight: HighlightConfig{
			Enabled:        Bool(true),
			Style:          DefaultHighlightStyle,
			DetectLanguage: Bool(true),
		},
		TOC:    TOCConfig{Offset: Int(DefaultTOCOffset)},
		Check:  CheckConfig{Flavor: FlavorCommonMark},
		Format: FormatText,
	}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// BoolValue dereferences p, returning fallback when p is nil.
func BoolValue(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// Int returns a pointer to n.
func Int(n int) *int {
	return &n
}

// IntValue dereferences p, or returns fallback when p is nil.
func IntValue(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

// EffectiveJobs returns the configured job count, resolving 0 to the
// number of CPUs.
func (c *Config) EffectiveJobs() int {
	if c.Jobs > 0 {
		return c.Jobs
	}
	return runtime.NumCPU()
}
