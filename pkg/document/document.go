// Package document holds the immutable source text of a single writeup and
// its line-addressable view.
package document

import "strings"

// Document is the raw text of one content item split into lines.
// A Document is never mutated after construction.
type Document struct {
	text  string
	lines []string
}

// New builds a Document from raw text.
// Lines are split on LF; a trailing CR on each line is dropped so that
// CRLF sources scan the same as LF sources.
func New(text string) *Document {
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for idx, line := range raw {
		lines[idx] = strings.TrimSuffix(line, "\r")
	}
	return &Document{text: text, lines: lines}
}

// Text returns the original source.
func (d *Document) Text() string {
	return d.text
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the 0-based line, or "" if idx is out of range.
func (d *Document) Line(idx int) string {
	if idx < 0 || idx >= len(d.lines) {
		return ""
	}
	return d.lines[idx]
}

// Lines returns a copy of all lines.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Slice returns lines [start, end) clamped to the document bounds.
func (d *Document) Slice(start, end int) []string {
	if start < 0 {
		start = 0
	}
	if end > len(d.lines) {
		end = len(d.lines)
	}
	if start >= end {
		return nil
	}
	out := make([]string, end-start)
	copy(out, d.lines[start:end])
	return out
}
