package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/folio/pkg/toc"
)

// activeMarker prefixes the entry currently in view.
const activeMarker = ">"

// FormatOutline renders entries as an indented list, two spaces per level
// below the first, marking the entry whose id is active.
func (s *Styles) FormatOutline(entries []toc.HeadingEntry, active string) string {
	if len(entries) == 0 {
		return s.Dim.Render("no headings") + "\n"
	}

	var builder strings.Builder
	for _, entry := range entries {
		marker := " "
		text := s.HeadingText.Render(entry.Text)
		if entry.ID == active {
			marker = s.Active.Render(activeMarker)
			text = s.Active.Render(entry.Text)
		}

		builder.WriteString(fmt.Sprintf("%s %s%s %s  %s\n",
			marker,
			strings.Repeat("  ", entry.Level-1),
			s.HeadingLevel.Render(strings.Repeat("#", entry.Level)),
			text,
			s.Dim.Render("#"+entry.ID),
		))
	}

	return builder.String()
}
