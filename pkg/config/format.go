package config

import (
	"fmt"
	"strings"
)

// ParseOutputFormat resolves a format name, case-insensitively.
// An empty name selects FormatText.
func ParseOutputFormat(name string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(name)))
	if format == "" {
		return FormatText, nil
	}
	if !format.IsValid() {
		return "", fmt.Errorf("unknown output format %q; must be one of: text, table, json", name)
	}
	return format, nil
}

// IsValid returns true if the format is one folio can print.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatTable, FormatJSON:
		return true
	default:
		return false
	}
}

// IsValid returns true if the flavor is a known reference dialect.
func (f Flavor) IsValid() bool {
	switch f {
	case FlavorCommonMark, FlavorGFM:
		return true
	default:
		return false
	}
}
