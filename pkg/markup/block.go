// Package markup implements the writeup Markdown dialect: a flat, line
// oriented block scanner, an inline formatter and the builder that turns
// blocks into renderable nodes.
package markup

// BlockKind classifies a span of source lines.
type BlockKind uint8

// Block kinds recognised by the scanner.
const (
	BlockHeading BlockKind = iota
	BlockCode
	BlockImage
	BlockComponent
	BlockParagraph
	BlockBlank

	// BlockDiscarded covers lines that matched an opening pattern but could
	// not be parsed. It produces no node.
	BlockDiscarded
)

// String returns the kind name used in JSON and CLI output.
func (k BlockKind) String() string {
	switch k {
	case BlockHeading:
		return "heading"
	case BlockCode:
		return "code"
	case BlockImage:
		return "image"
	case BlockComponent:
		return "component"
	case BlockParagraph:
		return "paragraph"
	case BlockBlank:
		return "blank"
	case BlockDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k BlockKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Block is a classified, contiguous run of lines [StartLine, EndLine).
type Block struct {
	Kind      BlockKind `json:"kind"`
	StartLine int       `json:"start_line"`
	EndLine   int       `json:"end_line"`

	// Heading.
	Level int    `json:"level,omitempty"`
	Text  string `json:"text,omitempty"`

	// Fenced code. Content excludes both fence lines.
	Language string   `json:"language,omitempty"`
	Content  []string `json:"content,omitempty"`
	Closed   bool     `json:"closed,omitempty"`

	// Image.
	Alt string `json:"alt,omitempty"`
	Src string `json:"src,omitempty"`

	// Component.
	Tag   string     `json:"tag,omitempty"`
	Attrs Attributes `json:"attrs,omitempty"`
}

// LineCount returns the number of source lines the block covers.
func (b Block) LineCount() int {
	return b.EndLine - b.StartLine
}
