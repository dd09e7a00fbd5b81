// Package toc extracts a table of contents from a document and tracks which
// section is currently in view.
package toc

import (
	"strconv"
	"strings"
)

// headingPrefixes maps each recognised marker to its level.
// Only one space after the hashes is accepted; "####" and deeper are not headings.
//
//nolint:gochecknoglobals // Read-only lookup table.
var headingPrefixes = [...]struct {
	marker string
	level  int
}{
	{"# ", 1},
	{"## ", 2},
	{"### ", 3},
}

// ParseHeading reports whether line is a heading and returns its level and
// display text. It is the single heading detector shared by the block
// scanner and Extract.
func ParseHeading(line string) (int, string, bool) {
	for _, prefix := range headingPrefixes {
		if strings.HasPrefix(line, prefix.marker) {
			return prefix.level, line[len(prefix.marker):], true
		}
	}
	return 0, "", false
}

// HeadingID returns the anchor id for a heading on the given 0-based line.
func HeadingID(lineIndex int) string {
	return "heading-" + strconv.Itoa(lineIndex)
}

// HeadingEntry is one outline item.
type HeadingEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Level     int    `json:"level"`
	LineIndex int    `json:"line_index"`
}

// NewEntry builds the entry for a heading on lineIndex.
func NewEntry(lineIndex, level int, text string) HeadingEntry {
	return HeadingEntry{
		ID:        HeadingID(lineIndex),
		Text:      text,
		Level:     level,
		LineIndex: lineIndex,
	}
}

// Extract scans every line of lines and returns one entry per heading line.
//
// Extract does not know about fenced code or components, so a "# comment"
// inside a shell block is reported as a heading. Callers that need entries
// aligned with rendered headings should use the outline produced by the
// renderer instead; Bind reports where the two disagree.
func Extract(lines []string) []HeadingEntry {
	var entries []HeadingEntry
	for idx, line := range lines {
		level, text, ok := ParseHeading(line)
		if !ok {
			continue
		}
		entries = append(entries, NewEntry(idx, level, text))
	}
	return entries
}
