package markup

import (
	"github.com/yaklabco/folio/pkg/document"
	"github.com/yaklabco/folio/pkg/toc"
)

// Options configures a render.
type Options struct {
	// Registry resolves component tags. Nil means DefaultRegistry.
	Registry *Registry

	Inline InlineOptions
}

// Result is everything derived from one document.
type Result struct {
	Blocks  []Block            `json:"blocks"`
	Nodes   []Node             `json:"nodes"`
	Outline []toc.HeadingEntry `json:"outline"`
}

// Render scans doc and builds its nodes and outline together. The outline
// is taken from the heading nodes themselves, so the Nth outline entry is
// always the Nth heading node.
func Render(doc *document.Document, opts Options) *Result {
	registry := opts.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	blocks := NewScanner(registry).Scan(doc)
	builder := NewBuilder(registry, opts.Inline)

	result := &Result{
		Blocks: blocks,
		Nodes:  make([]Node, 0, len(blocks)),
	}
	for _, block := range blocks {
		node, ok := builder.BuildBlock(block)
		if !ok {
			continue
		}
		if node.Kind == NodeHeading {
			result.Outline = append(result.Outline, toc.NewEntry(node.Key, node.Level, node.Text))
		}
		result.Nodes = append(result.Nodes, node)
	}

	return result
}

// Headings returns the heading nodes of result as bind targets.
func (r *Result) Headings() []toc.Target {
	var targets []toc.Target
	for _, node := range r.Nodes {
		if node.Kind == NodeHeading {
			targets = append(targets, toc.Target{LineIndex: node.Key, Level: node.Level, Text: node.Text})
		}
	}
	return targets
}

// CodeBlocks returns the fenced code of result in document order.
func (r *Result) CodeBlocks() []CodeBlock {
	var blocks []CodeBlock
	for _, node := range r.Nodes {
		if node.Kind == NodeCode {
			blocks = append(blocks, CodeBlock{Language: node.Language, Code: node.Code})
		}
	}
	return blocks
}
