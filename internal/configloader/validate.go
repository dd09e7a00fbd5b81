package configloader

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/styles"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/yaklabco/folio/pkg/config"
	"github.com/yaklabco/folio/pkg/markup"
	"github.com/yaklabco/folio/pkg/theme"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "highlight.style").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown fields).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings. Empty fields
// are treated as unset so partial file configs validate cleanly.
func Validate(cfg *config.Config) *ValidationResult {
	if cfg == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if cfg.Theme != "" {
		if _, err := theme.Parse(cfg.Theme); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "theme",
				Value:   cfg.Theme,
				Message: fmt.Sprintf("invalid theme %q; must be one of: dark, light", cfg.Theme),
			})
		}
	}

	if cfg.BaseURL != "" {
		if err := validation.Validate(cfg.BaseURL, is.RequestURI); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "base_url",
				Value:   cfg.BaseURL,
				Message: fmt.Sprintf("invalid base URL %q; use a path like / or an absolute URL", cfg.BaseURL),
			})
		}
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: text, table, json", cfg.Format),
		})
	}

	if cfg.Jobs < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "jobs",
			Value:   cfg.Jobs,
			Message: "jobs must be >= 0 (0 means auto)",
		})
	}

	if offset := config.IntValue(cfg.TOC.Offset, 0); offset < 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "toc.offset",
			Value:   offset,
			Message: "offset must be >= 0",
		})
	}

	if cfg.Check.Flavor != "" && !cfg.Check.Flavor.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "check.flavor",
			Value:   cfg.Check.Flavor,
			Message: fmt.Sprintf("invalid flavor %q; must be one of: commonmark, gfm", cfg.Check.Flavor),
		})
	}

	if cfg.Highlight.Style != "" && !IsValidStyle(cfg.Highlight.Style) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "highlight.style",
			Value:   cfg.Highlight.Style,
			Message: fmt.Sprintf("unknown highlight style %q", cfg.Highlight.Style),
		})
	}

	validateComponents(cfg, result)

	return result
}

// validateComponents warns about component tags no handler recognises.
func validateComponents(cfg *config.Config, result *ValidationResult) {
	known := make(map[string]bool)
	for _, tag := range markup.DefaultRegistry().Tags() {
		known[tag] = true
	}

	for i, tag := range cfg.Markup.Components {
		if !known[tag] {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   fmt.Sprintf("markup.components[%d]", i),
				Value:   tag,
				Message: fmt.Sprintf("unknown component %q; it will be ignored", tag),
			})
		}
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	// Add file path to all errors and warnings
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// IsValidStyle returns true if name is a registered chroma style.
func IsValidStyle(name string) bool {
	_, ok := styles.Registry[strings.ToLower(name)]
	return ok
}
