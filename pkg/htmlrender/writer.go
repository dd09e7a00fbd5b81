package htmlrender

import (
	"io"

	"golang.org/x/net/html"
)

// htmlWriter keeps the first write error so callers can emit a whole
// fragment and check once.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(html.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" " + name + `="` + html.EscapeString(value) + `"`)
}
