package markup

import (
	"regexp"
	"sort"
	"strings"
)

const selfClosingMarker = "/>"

//nolint:gochecknoglobals // Compiled once, read-only.
var attributePattern = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_-]*)="([^"]*)"`)

// Attributes are the name="value" pairs of a component tag.
type Attributes map[string]string

// Get returns a non-empty attribute value.
func (a Attributes) Get(name string) (string, bool) {
	value, ok := a[name]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// ParseAttributes extracts quoted attributes from a component's source.
// The first occurrence of a name wins. Values may span lines.
func ParseAttributes(source string) Attributes {
	attrs := Attributes{}
	for _, match := range attributePattern.FindAllStringSubmatch(source, -1) {
		if _, seen := attrs[match[1]]; seen {
			continue
		}
		attrs[match[1]] = match[2]
	}
	return attrs
}

// Component is the typed payload of a component node.
type Component interface {
	ComponentTag() string
}

// ComponentHandler turns the attributes of one tag into a Component.
type ComponentHandler interface {
	// Tag is the element name without the angle bracket, e.g. "InfoStatus".
	Tag() string

	// Build returns false when required attributes are missing; the
	// component's lines are then consumed without producing a node.
	Build(attrs Attributes) (Component, bool)
}

// Registry dispatches component tags to their handlers.
// The zero value and nil registry recognise no components.
type Registry struct {
	handlers map[string]ComponentHandler
}

// NewRegistry creates a registry holding handlers.
func NewRegistry(handlers ...ComponentHandler) *Registry {
	registry := &Registry{handlers: make(map[string]ComponentHandler, len(handlers))}
	for _, handler := range handlers {
		registry.Register(handler)
	}
	return registry
}

// DefaultRegistry returns a registry with the built-in components.
func DefaultRegistry() *Registry {
	return NewRegistry(InfoStatusHandler{})
}

// Register adds or replaces the handler for its tag.
func (r *Registry) Register(handler ComponentHandler) {
	if r.handlers == nil {
		r.handlers = make(map[string]ComponentHandler)
	}
	r.handlers[handler.Tag()] = handler
}

// Lookup returns the handler registered for tag.
func (r *Registry) Lookup(tag string) (ComponentHandler, bool) {
	if r == nil {
		return nil, false
	}
	handler, ok := r.handlers[tag]
	return handler, ok
}

// Tags returns the registered tag names, sorted.
func (r *Registry) Tags() []string {
	if r == nil {
		return nil
	}
	tags := make([]string, 0, len(r.handlers))
	for tag := range r.handlers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// match reports the registered tag a line opens, if any. The tag name must
// be followed by whitespace, "/", ">" or the end of the line.
func (r *Registry) match(line string) (string, bool) {
	if r == nil || !strings.HasPrefix(line, "<") {
		return "", false
	}
	for tag := range r.handlers {
		rest, ok := strings.CutPrefix(line[1:], tag)
		if !ok {
			continue
		}
		if rest == "" || strings.ContainsAny(rest[:1], " \t/>") {
			return tag, true
		}
	}
	return "", false
}

// InfoStatus kinds understood by the site stylesheet.
const (
	InfoStatusInfo    = "info"
	InfoStatusSuccess = "success"
	InfoStatusWarning = "warning"
	InfoStatusError   = "error"
)

// InfoStatus is the callout box used in writeups.
type InfoStatus struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ComponentTag implements Component.
func (InfoStatus) ComponentTag() string { return InfoStatusTag }

// InfoStatusTag is the element name of the InfoStatus component.
const InfoStatusTag = "InfoStatus"

// InfoStatusHandler builds InfoStatus callouts. title and message are
// required; type defaults to "info". A literal backslash-n in the message
// becomes a line break.
type InfoStatusHandler struct{}

// Tag implements ComponentHandler.
func (InfoStatusHandler) Tag() string { return InfoStatusTag }

// Build implements ComponentHandler.
func (InfoStatusHandler) Build(attrs Attributes) (Component, bool) {
	title, ok := attrs.Get("title")
	if !ok {
		return nil, false
	}
	message, ok := attrs.Get("message")
	if !ok {
		return nil, false
	}
	kind, ok := attrs.Get("type")
	if !ok {
		kind = InfoStatusInfo
	}

	return InfoStatus{
		Title:   title,
		Message: strings.ReplaceAll(message, `\n`, "\n"),
		Type:    kind,
	}, true
}
