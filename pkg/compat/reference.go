// Package compat compares the writeup dialect with a CommonMark reading of
// the same source and reports where the two disagree.
package compat

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/folio/pkg/document"
	"github.com/yaklabco/folio/pkg/toc"
)

// Flavors accepted by NewReference.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Reference parses documents with goldmark.
type Reference struct {
	flavor string
	md     goldmark.Markdown
}

// NewReference creates a goldmark reader. Unknown flavors fall back to
// CommonMark.
func NewReference(flavor string) *Reference {
	if flavor != FlavorGFM {
		flavor = FlavorCommonMark
	}

	var opts []goldmark.Option
	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}

	return &Reference{flavor: flavor, md: goldmark.New(opts...)}
}

// Flavor returns the configured flavor.
func (r *Reference) Flavor() string {
	return r.flavor
}

// Headings returns every heading goldmark finds, in document order.
func (r *Reference) Headings(ctx context.Context, doc *document.Document) ([]toc.Target, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("reference parse cancelled: %w", err)
	}

	source := []byte(strings.Join(doc.Lines(), "\n"))
	root := r.md.Parser().Parse(text.NewReader(source), parser.WithContext(parser.NewContext()))

	var (
		headings []toc.Target
		next     int // first line after the last block content seen
	)
	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || node.Type() != ast.TypeBlock {
			return ast.WalkContinue, nil
		}
		heading, ok := node.(*ast.Heading)
		if !ok {
			if lines := node.Lines(); lines.Len() > 0 {
				next = lineAfter(source, lines.At(lines.Len()-1))
			}
			return ast.WalkContinue, nil
		}
		line := headingLine(heading, source, next)
		headings = append(headings, toc.Target{
			LineIndex: line,
			Level:     heading.Level,
			Text:      inlineText(heading, source),
		})
		next = max(next, line+1)
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk reference tree: %w", err)
	}

	return headings, nil
}

// headingLine returns the 0-based line holding the heading's content. Setext
// headings report their text line, not the underline. Empty ATX headings
// carry no segment, so the first "#" line at or after from is used.
func headingLine(heading *ast.Heading, source []byte, from int) int {
	lines := heading.Lines()
	if lines.Len() > 0 {
		return bytes.Count(source[:lines.At(0).Start], []byte("\n"))
	}
	for idx, line := range bytes.Split(source, []byte("\n")) {
		if idx >= from && bytes.HasPrefix(bytes.TrimLeft(line, " "), []byte("#")) {
			return idx
		}
	}
	return from
}

// lineAfter returns the index of the line following the one segment ends on.
func lineAfter(source []byte, segment text.Segment) int {
	end := segment.Stop
	if end > segment.Start && source[end-1] == '\n' {
		end--
	}
	return bytes.Count(source[:end], []byte("\n")) + 1
}

func inlineText(node ast.Node, source []byte) string {
	var buf strings.Builder
	_ = ast.Walk(node, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := child.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(source))
			if n.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(n.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
