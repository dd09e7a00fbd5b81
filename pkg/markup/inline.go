package markup

import "regexp"

// SpanKind is the formatting of an inline fragment.
type SpanKind uint8

// Inline span kinds.
const (
	SpanText SpanKind = iota
	SpanBold
	SpanItalic
	SpanCode
	SpanLink
)

// String returns the kind name.
func (k SpanKind) String() string {
	switch k {
	case SpanText:
		return "text"
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanCode:
		return "code"
	case SpanLink:
		return "link"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k SpanKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Link attributes applied to every hyperlink span. Links always open in a
// new tab without leaking the opener or referrer.
const (
	LinkTarget = "_blank"
	LinkRel    = "noopener noreferrer"
)

// Span is one formatted fragment of a paragraph line.
type Span struct {
	Kind SpanKind `json:"kind"`
	Text string   `json:"text"`

	// Link only.
	Href   string `json:"href,omitempty"`
	Target string `json:"target,omitempty"`
	Rel    string `json:"rel,omitempty"`
}

// InlineOptions selects optional inline rules.
type InlineOptions struct {
	// Italic enables *emphasis* after bold has been matched.
	Italic bool
}

type inlineRule struct {
	kind    SpanKind
	pattern *regexp.Regexp
}

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	// Paragraph bold may contain single stars; InfoStatus bold may not.
	boldRule       = inlineRule{SpanBold, regexp.MustCompile(`\*\*(.+?)\*\*`)}
	strictBoldRule = inlineRule{SpanBold, regexp.MustCompile(`\*\*([^*]+)\*\*`)}
	italicRule     = inlineRule{SpanItalic, regexp.MustCompile(`\*([^*]+)\*`)}
	codeRule       = inlineRule{SpanCode, regexp.MustCompile("`([^`]+)`")}
	linkRule       = inlineRule{SpanLink, regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)}
)

// FormatInline splits a paragraph line into spans. Rules run in fixed
// order (bold, italic when enabled, code, link); each later rule only sees
// text the earlier ones left plain. Unmatched delimiters stay literal.
func FormatInline(line string, opts InlineOptions) []Span {
	rules := []inlineRule{boldRule}
	if opts.Italic {
		rules = append(rules, italicRule)
	}
	rules = append(rules, codeRule, linkRule)

	spans := []Span{{Kind: SpanText, Text: line}}
	for _, rule := range rules {
		spans = applyRule(spans, rule)
	}
	return spans
}

// FormatBold applies only the bold rule, as InfoStatus messages do.
func FormatBold(text string) []Span {
	return applyRule([]Span{{Kind: SpanText, Text: text}}, strictBoldRule)
}

func applyRule(spans []Span, rule inlineRule) []Span {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != SpanText {
			out = append(out, span)
			continue
		}
		out = append(out, splitText(span.Text, rule)...)
	}
	return out
}

func splitText(text string, rule inlineRule) []Span {
	matches := rule.pattern.FindAllStringSubmatchIndex(text, -1)
	if matches == nil {
		if text == "" {
			return nil
		}
		return []Span{{Kind: SpanText, Text: text}}
	}

	spans := make([]Span, 0, 2*len(matches)+1)
	last := 0
	for _, loc := range matches {
		if loc[0] > last {
			spans = append(spans, Span{Kind: SpanText, Text: text[last:loc[0]]})
		}
		span := Span{Kind: rule.kind, Text: text[loc[2]:loc[3]]}
		if rule.kind == SpanLink {
			span.Href = text[loc[4]:loc[5]]
			span.Target = LinkTarget
			span.Rel = LinkRel
		}
		spans = append(spans, span)
		last = loc[1]
	}
	if last < len(text) {
		spans = append(spans, Span{Kind: SpanText, Text: text[last:]})
	}
	return spans
}

// PlainText concatenates the visible text of spans.
func PlainText(spans []Span) string {
	size := 0
	for _, span := range spans {
		size += len(span.Text)
	}
	buf := make([]byte, 0, size)
	for _, span := range spans {
		buf = append(buf, span.Text...)
	}
	return string(buf)
}
