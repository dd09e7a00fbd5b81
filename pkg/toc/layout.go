package toc

// LineLayout models a rendered page where every source line occupies
// LineHeight units, so heading boxes can be derived without a browser.
type LineLayout struct {
	LineHeight float64
	LineCount  int
}

// Rects returns the box of each entry when the page is scrolled so that
// scrollLine is at the top of the viewport. A heading's box runs from its
// own line to the line before the next heading (or the end of the page).
func (l LineLayout) Rects(entries []HeadingEntry, scrollLine int) []HeadingRect {
	height := l.LineHeight
	if height <= 0 {
		height = 1
	}

	rects := make([]HeadingRect, 0, len(entries))
	for idx, entry := range entries {
		end := l.LineCount
		if idx+1 < len(entries) {
			end = entries[idx+1].LineIndex
		}
		top := float64(entry.LineIndex-scrollLine) * height
		bottom := float64(end-scrollLine)*height - 1
		rects = append(rects, HeadingRect{ID: entry.ID, Rect: Rect{Top: top, Bottom: bottom}})
	}
	return rects
}
