// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfig  = "config"
	FieldTheme   = "theme"
	FieldFlavor  = "flavor"
	FieldStyle   = "style"
	FieldJobs    = "jobs"
	FieldDrafts  = "drafts"
	FieldContent = "content_dir"

	// Build statistics fields.
	FieldItems    = "items"
	FieldPages    = "pages"
	FieldWritten  = "written"
	FieldPruned   = "pruned"
	FieldDuration = "duration"

	// Document fields.
	FieldBlocks   = "blocks"
	FieldHeadings = "headings"
	FieldFindings = "findings"
	FieldCopier   = "copier"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
