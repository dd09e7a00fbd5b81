package toc

import "sync"

// DefaultOffset is the distance from the top of the viewport, in layout
// units, at which a heading is considered the active section.
const DefaultOffset = 100

// Rect is the vertical extent of a mounted heading relative to the viewport.
type Rect struct {
	Top    float64
	Bottom float64
}

// HeadingRect pairs a heading id with its current box.
type HeadingRect struct {
	ID   string
	Rect Rect
}

// Tracker holds the ActiveSection for one page view.
// It is safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	entries []HeadingEntry
	index   map[string]int
	offset  float64
	active  string
}

// NewTracker creates a tracker over entries using offset as the reference line.
// Zero reads the viewport top; a negative offset selects DefaultOffset.
func NewTracker(entries []HeadingEntry, offset float64) *Tracker {
	if offset < 0 {
		offset = DefaultOffset
	}
	tracker := &Tracker{offset: offset}
	tracker.Reset(entries)
	return tracker
}

// Reset discards the active section and replaces the outline, as happens
// when the reader navigates to another document.
func (t *Tracker) Reset(entries []HeadingEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append([]HeadingEntry(nil), entries...)
	t.index = make(map[string]int, len(entries))
	for idx, entry := range entries {
		t.index[entry.ID] = idx
	}
	t.active = ""
}

// Update recomputes the active section from the current heading boxes.
// The last heading whose box spans the reference line wins; when none does the
// active section is cleared. It returns the new active id and whether it
// changed.
func (t *Tracker) Update(rects []HeadingRect) (string, bool) {
	current := ""
	for _, heading := range rects {
		if heading.Rect.Top <= t.offset && heading.Rect.Bottom >= t.offset {
			current = heading.ID
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, known := t.index[current]; !known {
		current = ""
	}
	changed := current != t.active
	t.active = current
	return current, changed
}

// Active returns the entry currently in view.
func (t *Tracker) Active() (HeadingEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx, ok := t.index[t.active]
	if !ok {
		return HeadingEntry{}, false
	}
	return t.entries[idx], true
}

// Select returns the entry an outline click on id scrolls to.
func (t *Tracker) Select(id string) (HeadingEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx, ok := t.index[id]
	if !ok {
		return HeadingEntry{}, false
	}
	return t.entries[idx], true
}

// Entries returns the outline the tracker was reset with.
func (t *Tracker) Entries() []HeadingEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]HeadingEntry(nil), t.entries...)
}
