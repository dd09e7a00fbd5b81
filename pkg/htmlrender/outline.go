package htmlrender

import (
	"io"
	"strconv"

	"github.com/yaklabco/folio/pkg/toc"
)

// RenderOutline writes the table of contents as a nav list. The entry with
// id active is marked; an empty outline writes nothing.
func RenderOutline(w io.Writer, entries []toc.HeadingEntry, active string) error {
	if len(entries) == 0 {
		return nil
	}

	hw := &htmlWriter{w: w}
	hw.raw(`<nav class="table-of-contents"><ul>` + "\n")
	for _, entry := range entries {
		class := "toc-item toc-level-" + strconv.Itoa(entry.Level)
		if entry.ID == active {
			class += " active"
		}
		hw.raw("<li")
		hw.attr("class", class)
		hw.raw("><a")
		hw.attr("href", "#"+entry.ID)
		hw.raw(">")
		hw.text(entry.Text)
		hw.raw("</a></li>\n")
	}
	hw.raw("</ul></nav>\n")

	return hw.err
}
