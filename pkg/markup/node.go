package markup

// NodeKind identifies what a renderable node displays.
type NodeKind uint8

// Node kinds.
const (
	NodeHeading NodeKind = iota
	NodeCode
	NodeImage
	NodeComponent
	NodeParagraph
	NodeBreak
)

// String returns the kind name.
func (k NodeKind) String() string {
	switch k {
	case NodeHeading:
		return "heading"
	case NodeCode:
		return "code"
	case NodeImage:
		return "image"
	case NodeComponent:
		return "component"
	case NodeParagraph:
		return "paragraph"
	case NodeBreak:
		return "break"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Node is the unit handed to a renderer. Only the fields for its Kind are set.
type Node struct {
	Kind NodeKind `json:"kind"`

	// Key is the start line of the block the node came from. Keys are
	// unique within a document and stable across renders.
	Key int `json:"key"`

	// Heading.
	ID    string `json:"id,omitempty"`
	Level int    `json:"level,omitempty"`
	Text  string `json:"text,omitempty"`

	// Code.
	Language string `json:"language,omitempty"`
	Code     string `json:"code,omitempty"`

	// Image.
	Alt string `json:"alt,omitempty"`
	Src string `json:"src,omitempty"`

	// Component.
	Tag       string    `json:"tag,omitempty"`
	Component Component `json:"component,omitempty"`

	// Paragraph.
	Spans []Span `json:"spans,omitempty"`
}
