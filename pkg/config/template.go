package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every key with its default. If false, generates a
	// minimal template with most keys commented out.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string

	// Components lists the component tags to document in the template.
	Components []string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}
	if opts.Full {
		return generateFullTemplate(opts), nil
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# Directory holding the Markdown writeups and projects
content_dir: content

# Directory the generated site is written to
output_dir: public

# Title shown in the navigation bar
# site_title: folio

# Initial theme: dark or light
# theme: dark

# Syntax highlighting of fenced code
# highlight:
#   enabled: true
#   style: dracula
`)

	return buf.Bytes()
}

// generateFullTemplate creates a full template with every key documented.
func generateFullTemplate(opts TemplateOptions) []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(` - Full Template
#
# This template includes every setting with its default value.

# Directory holding the Markdown writeups and projects
content_dir: content

# Directory the generated site is written to
output_dir: public

# Prefix for absolute links in generated pages
base_url: /

# Title shown in the navigation bar and page titles
site_title: folio

# Initial theme: dark or light
theme: dark

# Number of parallel page renders (0 = auto based on CPU cores)
jobs: 0

# Include items whose front matter sets draft: true
drafts: false

markup:
  # Render *text* as emphasis in paragraphs
  italic: false
`)

	if len(opts.Components) > 0 {
		buf.WriteString("  # " + wrapComment(
			"Component tags recognised on their own line. Remove a tag to treat it as plain text. Available: "+
				strings.Join(opts.Components, ", "), commentWrapWidth) + "\n")
		buf.WriteString("  components:\n")
		for _, tag := range opts.Components {
			fmt.Fprintf(&buf, "    - %s\n", tag)
		}
	}

	buf.WriteString(`
highlight:
  enabled: true
  # Any chroma style name
  style: dracula
  # Guess a language for fences without a tag
  detect_language: true

toc:
  # Distance from the top of the viewport at which a heading becomes active
  offset: 100

check:
  # Reference dialect for folio check: commonmark or gfm
  flavor: commonmark
`)

	return buf.Bytes()
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// templateToJSON renders the default configuration as indented JSON.
func templateToJSON() ([]byte, error) {
	yamlBytes, err := NewConfig().ToYAML()
	if err != nil {
		return nil, err
	}

	var generic map[string]any
	if err := yaml.Unmarshal(yamlBytes, &generic); err != nil {
		return nil, fmt.Errorf("decode defaults: %w", err)
	}

	jsonBytes, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# folio configuration`
}
