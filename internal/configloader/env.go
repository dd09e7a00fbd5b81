package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/folio/pkg/config"
)

// envVarPrefix is the prefix for all folio environment variables.
const envVarPrefix = "FOLIO_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
	help  string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"CONTENT_DIR":     {"content_dir", envTypeString, "Directory holding the Markdown sources"},
	"OUTPUT_DIR":      {"output_dir", envTypeString, "Directory the site is written to"},
	"BASE_URL":        {"base_url", envTypeString, "Prefix for absolute links"},
	"SITE_TITLE":      {"site_title", envTypeString, "Title shown in the navigation bar"},
	"THEME":           {"theme", envTypeString, "Initial theme: dark or light"},
	"JOBS":            {"jobs", envTypeInt, "Number of parallel page renders (0 = auto)"},
	"DRAFTS":          {"drafts", envTypeBool, "Include draft items: true or false"},
	"ITALIC":          {"markup.italic", envTypeBool, "Render *text* as emphasis: true or false"},
	"COMPONENTS":      {"markup.components", envTypeSlice, "Comma-separated component tags to recognise"},
	"HIGHLIGHT":       {"highlight.enabled", envTypeBool, "Syntax highlight fenced code: true or false"},
	"HIGHLIGHT_STYLE": {"highlight.style", envTypeString, "Chroma style name"},
	"DETECT_LANGUAGE": {"highlight.detect_language", envTypeBool, "Guess languages for untagged fences"},
	"TOC_OFFSET":      {"toc.offset", envTypeInt, "Active heading offset from the viewport top"},
	"CHECK_FLAVOR":    {"check.flavor", envTypeString, "Reference dialect for check: commonmark or gfm"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with FOLIO_ (e.g., FOLIO_THEME).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "content_dir":
		cfg.ContentDir = value
	case "output_dir":
		cfg.OutputDir = value
	case "base_url":
		cfg.BaseURL = value
	case "site_title":
		cfg.SiteTitle = value
	case "theme":
		cfg.Theme = value
	case "highlight.style":
		cfg.Highlight.Style = value
	case "check.flavor":
		cfg.Check.Flavor = config.Flavor(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "drafts":
		cfg.Drafts = value
	case "markup.italic":
		cfg.Markup.Italic = config.Bool(value)
	case "highlight.enabled":
		cfg.Highlight.Enabled = config.Bool(value)
	case "highlight.detect_language":
		cfg.Highlight.DetectLanguage = config.Bool(value)
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	case "toc.offset":
		cfg.TOC.Offset = config.Int(value)
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "markup.components":
		cfg.Markup.Components = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.help
	}
	return vars
}
