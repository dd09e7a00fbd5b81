package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/folio/pkg/markup"
)

func text(s string) markup.Span { return markup.Span{Kind: markup.SpanText, Text: s} }

func link(label, href string) markup.Span {
	return markup.Span{
		Kind:   markup.SpanLink,
		Text:   label,
		Href:   href,
		Target: markup.LinkTarget,
		Rel:    markup.LinkRel,
	}
}

func TestFormatInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		opts markup.InlineOptions
		want []markup.Span
	}{
		{
			name: "plain",
			line: "just text",
			want: []markup.Span{text("just text")},
		},
		{
			name: "bold then code",
			line: "**bold** and `code`",
			want: []markup.Span{
				{Kind: markup.SpanBold, Text: "bold"},
				text(" and "),
				{Kind: markup.SpanCode, Text: "code"},
			},
		},
		{
			name: "link",
			line: "see [docs](https://example.com/x) now",
			want: []markup.Span{text("see "), link("docs", "https://example.com/x"), text(" now")},
		},
		{
			name: "code hides link syntax",
			line: "`[a](b)`",
			want: []markup.Span{{Kind: markup.SpanCode, Text: "[a](b)"}},
		},
		{
			name: "bold hides code syntax",
			line: "**`x`**",
			want: []markup.Span{{Kind: markup.SpanBold, Text: "`x`"}},
		},
		{
			name: "bold may contain a single star",
			line: "**a*b** and **c**",
			want: []markup.Span{
				{Kind: markup.SpanBold, Text: "a*b"},
				text(" and "),
				{Kind: markup.SpanBold, Text: "c"},
			},
		},
		{
			name: "empty bold stays literal",
			line: "****",
			want: []markup.Span{text("****")},
		},
		{
			name: "unmatched delimiters stay literal",
			line: "**open and `tick",
			want: []markup.Span{text("**open and `tick")},
		},
		{
			name: "italic disabled",
			line: "an *aside*",
			want: []markup.Span{text("an *aside*")},
		},
		{
			name: "italic enabled",
			line: "an *aside* and **bold**",
			opts: markup.InlineOptions{Italic: true},
			want: []markup.Span{
				text("an "),
				{Kind: markup.SpanItalic, Text: "aside"},
				text(" and "),
				{Kind: markup.SpanBold, Text: "bold"},
			},
		},
		{
			name: "several matches",
			line: "`a` `b`",
			want: []markup.Span{
				{Kind: markup.SpanCode, Text: "a"},
				text(" "),
				{Kind: markup.SpanCode, Text: "b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, markup.FormatInline(tt.line, tt.opts))
		})
	}
}

func TestFormatInlineEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, markup.FormatInline("", markup.InlineOptions{}))
}

func TestFormatBold(t *testing.T) {
	t.Parallel()

	spans := markup.FormatBold("**U+200B** → `bit` 0")
	assert.Equal(t, []markup.Span{
		{Kind: markup.SpanBold, Text: "U+200B"},
		text(" → `bit` 0"),
	}, spans)

	assert.Equal(t, []markup.Span{text("**a*b**")}, markup.FormatBold("**a*b**"))
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	spans := markup.FormatInline("**a** `b` [c](d)", markup.InlineOptions{})
	assert.Equal(t, "a b c", markup.PlainText(spans))
}
