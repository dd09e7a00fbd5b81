package markup

import (
	"strings"

	"github.com/yaklabco/folio/pkg/document"
)

// CodeBlock is the copyable content of one fenced block.
type CodeBlock struct {
	Language string `json:"language"`
	Code     string `json:"code"`
}

// ExtractCodeBlocks returns the fenced code blocks of doc as Render with
// opts would see them. A fence inside a multi-line component is not a block.
func ExtractCodeBlocks(doc *document.Document, opts Options) []CodeBlock {
	registry := opts.Registry
	if registry == nil {
		registry = DefaultRegistry()
	}

	var blocks []CodeBlock
	for _, block := range NewScanner(registry).Scan(doc) {
		if block.Kind != BlockCode {
			continue
		}
		blocks = append(blocks, CodeBlock{
			Language: block.Language,
			Code:     strings.Join(block.Content, "\n"),
		})
	}
	return blocks
}

// CopyAllText joins blocks for a single "copy all code" action. Blocks with
// a language are prefixed with a "# <language>" line; blocks are separated
// by a blank line.
func CopyAllText(blocks []CodeBlock) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block.Language != "" {
			parts = append(parts, "# "+block.Language+"\n"+block.Code)
			continue
		}
		parts = append(parts, block.Code)
	}
	return strings.Join(parts, "\n\n")
}
