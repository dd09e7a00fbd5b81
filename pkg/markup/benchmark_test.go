package markup_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/folio/pkg/document"
	"github.com/yaklabco/folio/pkg/markup"
)

func BenchmarkRender(b *testing.B) {
	doc := document.New(strings.Repeat(walkthrough+"\n", 200))

	b.ResetTimer()
	for range b.N {
		_ = markup.Render(doc, markup.Options{})
	}
}

func BenchmarkFormatInline(b *testing.B) {
	text := strings.Repeat("Run **nmap** then `curl` the [panel](https://example.com) ", 50)

	b.ResetTimer()
	for range b.N {
		_ = markup.FormatInline(text, markup.InlineOptions{Italic: true})
	}
}
