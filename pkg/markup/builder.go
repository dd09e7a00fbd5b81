package markup

import (
	"strings"

	"github.com/yaklabco/folio/pkg/toc"
)

// Builder maps blocks to nodes.
type Builder struct {
	registry *Registry
	inline   InlineOptions
}

// NewBuilder returns a builder that resolves components through registry.
func NewBuilder(registry *Registry, inline InlineOptions) *Builder {
	return &Builder{registry: registry, inline: inline}
}

// Build returns one node per block, in block order. Discarded blocks and
// components whose handler rejects their attributes produce no node.
func (b *Builder) Build(blocks []Block) []Node {
	nodes := make([]Node, 0, len(blocks))
	for _, block := range blocks {
		if node, ok := b.BuildBlock(block); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// BuildBlock maps a single block.
func (b *Builder) BuildBlock(block Block) (Node, bool) {
	node := Node{Key: block.StartLine}

	switch block.Kind {
	case BlockHeading:
		node.Kind = NodeHeading
		node.ID = toc.HeadingID(block.StartLine)
		node.Level = block.Level
		node.Text = block.Text
	case BlockCode:
		node.Kind = NodeCode
		node.Language = block.Language
		node.Code = strings.Join(block.Content, "\n")
	case BlockImage:
		node.Kind = NodeImage
		node.Alt = block.Alt
		node.Src = block.Src
	case BlockComponent:
		handler, ok := b.registry.Lookup(block.Tag)
		if !ok {
			return Node{}, false
		}
		component, ok := handler.Build(block.Attrs)
		if !ok {
			return Node{}, false
		}
		node.Kind = NodeComponent
		node.Tag = block.Tag
		node.Component = component
	case BlockParagraph:
		node.Kind = NodeParagraph
		node.Spans = FormatInline(block.Text, b.inline)
	case BlockBlank:
		node.Kind = NodeBreak
	default:
		return Node{}, false
	}

	return node, true
}
