package markup

import (
	"regexp"
	"strings"

	"github.com/yaklabco/folio/pkg/document"
	"github.com/yaklabco/folio/pkg/toc"
)

const fenceMarker = "```"

//nolint:gochecknoglobals // Compiled once, read-only.
var imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)

// Scanner groups document lines into blocks.
type Scanner struct {
	registry *Registry
}

// NewScanner returns a scanner that recognises the components in registry.
// A nil registry recognises no components.
func NewScanner(registry *Registry) *Scanner {
	return &Scanner{registry: registry}
}

// Scan walks the document once and returns its blocks in order.
// The blocks partition the document's lines exactly.
func (s *Scanner) Scan(doc *document.Document) []Block {
	lines := doc.Lines()
	blocks := make([]Block, 0, len(lines))

	cursor := 0
	for cursor < len(lines) {
		block := s.scanBlock(lines, cursor)
		blocks = append(blocks, block)
		cursor = block.EndLine
	}

	return blocks
}

func (s *Scanner) scanBlock(lines []string, start int) Block {
	line := lines[start]

	if level, text, ok := toc.ParseHeading(line); ok {
		return Block{Kind: BlockHeading, StartLine: start, EndLine: start + 1, Level: level, Text: text}
	}

	if strings.HasPrefix(line, fenceMarker) {
		return scanFence(lines, start)
	}

	if strings.HasPrefix(line, "![") {
		return scanImage(line, start)
	}

	if tag, ok := s.registry.match(line); ok {
		return scanComponent(lines, start, tag)
	}

	if strings.TrimSpace(line) == "" {
		return Block{Kind: BlockBlank, StartLine: start, EndLine: start + 1}
	}

	return Block{Kind: BlockParagraph, StartLine: start, EndLine: start + 1, Text: line}
}

// scanFence consumes an opening fence, its content and the closing fence.
// Without a closing fence the block runs to the end of the document.
func scanFence(lines []string, start int) Block {
	block := Block{
		Kind:      BlockCode,
		StartLine: start,
		Language:  strings.TrimSpace(lines[start][len(fenceMarker):]),
		Content:   []string{},
	}

	cursor := start + 1
	for cursor < len(lines) {
		if lines[cursor] == fenceMarker {
			block.Closed = true
			cursor++
			break
		}
		block.Content = append(block.Content, lines[cursor])
		cursor++
	}

	block.EndLine = cursor
	return block
}

func scanImage(line string, start int) Block {
	match := imagePattern.FindStringSubmatch(line)
	if match == nil {
		return Block{Kind: BlockDiscarded, StartLine: start, EndLine: start + 1}
	}
	return Block{
		Kind:      BlockImage,
		StartLine: start,
		EndLine:   start + 1,
		Alt:       match[1],
		Src:       match[2],
	}
}

// scanComponent consumes lines up to and including the first one that
// contains the self-closing marker. If no line closes the tag only the
// opening line is discarded.
func scanComponent(lines []string, start int, tag string) Block {
	for end := start; end < len(lines); end++ {
		if !strings.Contains(lines[end], selfClosingMarker) {
			continue
		}
		source := strings.Join(lines[start:end+1], "\n")
		return Block{
			Kind:      BlockComponent,
			StartLine: start,
			EndLine:   end + 1,
			Tag:       tag,
			Attrs:     ParseAttributes(source),
		}
	}

	return Block{Kind: BlockDiscarded, StartLine: start, EndLine: start + 1, Tag: tag}
}
