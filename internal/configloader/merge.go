package configloader

import "github.com/yaklabco/folio/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointer booleans: override overwrites base if non-nil
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Scalars: override overwrites base if set (non-zero value)
	if override.ContentDir != "" {
		result.ContentDir = override.ContentDir
	}
	if override.OutputDir != "" {
		result.OutputDir = override.OutputDir
	}
	if override.BaseURL != "" {
		result.BaseURL = override.BaseURL
	}
	if override.SiteTitle != "" {
		result.SiteTitle = override.SiteTitle
	}
	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Format != "" {
		result.Format = override.Format
	}

	// Plain booleans can only be switched on by a later source.
	if override.Drafts {
		result.Drafts = true
	}
	if override.Prune {
		result.Prune = true
	}
	if override.Watch {
		result.Watch = true
	}

	result.Markup = mergeMarkup(base.Markup, override.Markup)
	result.Highlight = mergeHighlight(base.Highlight, override.Highlight)

	if override.TOC.Offset != nil {
		result.TOC.Offset = override.TOC.Offset
	}
	if override.Check.Flavor != "" {
		result.Check.Flavor = override.Check.Flavor
	}

	return &result
}

func mergeMarkup(base, override config.MarkupConfig) config.MarkupConfig {
	result := base
	if override.Italic != nil {
		result.Italic = override.Italic
	}
	if override.Components != nil {
		result.Components = override.Components
	}
	return result
}

func mergeHighlight(base, override config.HighlightConfig) config.HighlightConfig {
	result := base
	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}
	if override.Style != "" {
		result.Style = override.Style
	}
	if override.DetectLanguage != nil {
		result.DetectLanguage = override.DetectLanguage
	}
	return result
}
