// Package htmlrender turns renderable nodes into the HTML fragments used by
// the writeup pages.
package htmlrender

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/yaklabco/folio/pkg/langdetect"
	"github.com/yaklabco/folio/pkg/markup"
)

// ClassPrefix is prepended to every highlight class chroma emits.
const ClassPrefix = "highlight-"

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "dracula"

// ErrUnknownStyle is returned when a configured chroma style does not exist.
var ErrUnknownStyle = errors.New("unknown highlight style")

// Options configures a Renderer.
type Options struct {
	// Highlight enables chroma syntax highlighting of fenced code.
	Highlight bool

	// Style names the chroma style used by WriteCSS.
	Style string

	// DetectLanguage guesses a lexer for fences without a language tag.
	DetectLanguage bool
}

// ComponentFunc writes the HTML for one component node.
type ComponentFunc func(w io.Writer, component markup.Component) error

// Renderer writes nodes as HTML. It is safe for concurrent use once
// configured.
type Renderer struct {
	opts       Options
	style      *chroma.Style
	formatter  *chromahtml.Formatter
	components map[string]ComponentFunc
}

// New creates a Renderer.
func New(opts Options) (*Renderer, error) {
	if opts.Style == "" {
		opts.Style = DefaultStyle
	}
	style, ok := styles.Registry[strings.ToLower(opts.Style)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, opts.Style)
	}

	renderer := &Renderer{
		opts:  opts,
		style: style,
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.ClassPrefix(ClassPrefix),
			chromahtml.PreventSurroundingPre(true),
		),
		components: map[string]ComponentFunc{},
	}
	renderer.RegisterComponent(markup.InfoStatusTag, writeInfoStatus)

	return renderer, nil
}

// RegisterComponent sets the writer used for component nodes with tag.
func (r *Renderer) RegisterComponent(tag string, fn ComponentFunc) {
	r.components[tag] = fn
}

// Render writes nodes to w in order.
func (r *Renderer) Render(w io.Writer, nodes []markup.Node) error {
	hw := &htmlWriter{w: w}
	for _, node := range nodes {
		if err := r.renderNode(hw, node); err != nil {
			return err
		}
		if hw.err != nil {
			return hw.err
		}
	}
	return nil
}

// RenderString is Render into a string.
func (r *Renderer) RenderString(nodes []markup.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, nodes); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteCSS writes the stylesheet for the configured highlight style.
func (r *Renderer) WriteCSS(w io.Writer) error {
	if err := r.formatter.WriteCSS(w, r.style); err != nil {
		return fmt.Errorf("write highlight css: %w", err)
	}
	return nil
}

func (r *Renderer) renderNode(hw *htmlWriter, node markup.Node) error {
	switch node.Kind {
	case markup.NodeHeading:
		tag := "h" + strconv.Itoa(node.Level)
		hw.raw("<" + tag)
		hw.attr("id", node.ID)
		hw.raw(">")
		hw.text(node.Text)
		hw.raw("</" + tag + ">\n")
	case markup.NodeParagraph:
		hw.raw("<p>")
		writeSpans(hw, node.Spans)
		hw.raw("</p>\n")
	case markup.NodeImage:
		hw.raw(`<div class="image-container"><img`)
		hw.attr("src", node.Src)
		hw.attr("alt", node.Alt)
		hw.raw(` class="content-image"></div>` + "\n")
	case markup.NodeBreak:
		hw.raw("<br>\n")
	case markup.NodeCode:
		return r.renderCode(hw, node)
	case markup.NodeComponent:
		fn, ok := r.components[node.Tag]
		if !ok {
			return nil
		}
		if hw.err != nil {
			return hw.err
		}
		if err := fn(hw.w, node.Component); err != nil {
			return fmt.Errorf("render %s: %w", node.Tag, err)
		}
	}
	return nil
}

func (r *Renderer) renderCode(hw *htmlWriter, node markup.Node) error {
	hw.raw(`<div class="code-block-container"><div class="code-block-header"><span class="code-block-language">`)
	hw.text(langdetect.Label(node.Language))
	hw.raw(`</span><button class="copy-button" type="button" title="Copy to clipboard"></button></div>`)

	hw.raw(`<pre><code class="terminal-code`)
	if node.Language != "" {
		hw.raw(" language-")
		hw.text(node.Language)
	}
	hw.raw(`">`)
	if langdetect.Prompted(node.Language) {
		hw.raw(`<span class="terminal-prompt">$ </span>`)
	}

	if err := r.writeCode(hw, node); err != nil {
		return err
	}

	hw.raw("</code></pre></div>\n")
	return nil
}

func (r *Renderer) writeCode(hw *htmlWriter, node markup.Node) error {
	lexer := r.lexerFor(node)
	if lexer == nil {
		hw.text(node.Code)
		return nil
	}

	iterator, err := lexer.Tokenise(nil, node.Code)
	if err != nil {
		hw.text(node.Code)
		return nil //nolint:nilerr // Unlexable code is shown plain.
	}
	if hw.err != nil {
		return hw.err
	}
	if err := r.formatter.Format(hw.w, r.style, iterator); err != nil {
		return fmt.Errorf("highlight %s block: %w", node.Language, err)
	}
	return nil
}

// lexerFor returns nil when the block should be written without highlighting.
func (r *Renderer) lexerFor(node markup.Node) chroma.Lexer {
	if !r.opts.Highlight {
		return nil
	}

	lang := node.Language
	if lang == "" && r.opts.DetectLanguage {
		lang = langdetect.Detect([]byte(node.Code))
	}
	if lang == "" || lang == langdetect.Text {
		return nil
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		return nil
	}
	return chroma.Coalesce(lexer)
}

func writeSpans(hw *htmlWriter, spans []markup.Span) {
	for _, span := range spans {
		switch span.Kind {
		case markup.SpanBold:
			hw.raw("<strong>")
			hw.text(span.Text)
			hw.raw("</strong>")
		case markup.SpanItalic:
			hw.raw("<em>")
			hw.text(span.Text)
			hw.raw("</em>")
		case markup.SpanCode:
			hw.raw(`<code class="inline-code">`)
			hw.text(span.Text)
			hw.raw("</code>")
		case markup.SpanLink:
			hw.raw("<a")
			hw.attr("href", span.Href)
			hw.attr("target", span.Target)
			hw.attr("rel", span.Rel)
			hw.raw(">")
			hw.text(span.Text)
			hw.raw("</a>")
		default:
			hw.text(span.Text)
		}
	}
}
