package cli

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/folio/internal/ui/pretty"
)

// Command groups shown in root help.
const (
	groupDocument = "document"
	groupSite     = "site"
)

// HelpStyles contains Lipgloss styles for command help formatting.
type HelpStyles struct {
	Command     lipgloss.Style
	Heading     lipgloss.Style
	Subcommand  lipgloss.Style
	Flag        lipgloss.Style
	Description lipgloss.Style
	Example     lipgloss.Style
	Dim         lipgloss.Style
}

// NewHelpStyles derives help styles from the output styles so help and
// command output share one palette.
func NewHelpStyles(colorEnabled bool) *HelpStyles {
	styles := pretty.NewStyles(colorEnabled)
	return &HelpStyles{
		Command:     styles.Bold,
		Heading:     styles.SummaryTitle,
		Subcommand:  styles.HeadingText,
		Flag:        styles.Tag,
		Description: lipgloss.NewStyle(),
		Example:     styles.Dim,
		Dim:         styles.Dim,
	}
}

// HelpFormatter renders styled help for Cobra commands. Colour is decided
// per invocation from the --color flag and the command's output.
type HelpFormatter struct{}

// NewHelpFormatter creates a help formatter.
func NewHelpFormatter() *HelpFormatter {
	return &HelpFormatter{}
}

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable}}
  {{ command .UseLine }}{{end}}
{{- if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ heading "Examples:" }}
{{ example .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}
{{- $cmds := .Commands}}
{{- if eq (len .Groups) 0}}

{{ heading "Available Commands:" }}
{{- range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- else}}
{{- range $group := .Groups}}

{{ heading $group.Title }}
{{- range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}
{{- if not .AllChildCommandsHaveGroup}}

{{ heading "Additional Commands:" }}
{{- range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}
{{- end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ trimTrailing . }}

{{end}}` + usageTemplate

// flagName matches the -f and --flag tokens of a pflag usage line.
var flagName = regexp.MustCompile(`--?[A-Za-z0-9][A-Za-z0-9-]*`)

func (h *HelpFormatter) funcs(styles *HelpStyles) template.FuncMap {
	return template.FuncMap{
		"command":      styles.Command.Render,
		"heading":      styles.Heading.Render,
		"subcommand":   styles.Subcommand.Render,
		"example":      styles.Example.Render,
		"rpad":         rpad,
		"trimTrailing": trimTrailingWhitespaces,
		"flags": func(usages string) string {
			return styleFlagUsages(styles, usages)
		},
	}
}

// styleFlagUsages colours flag names in pflag's usage block. Only the part
// before the description is touched and column alignment is kept.
func styleFlagUsages(styles *HelpStyles, usages string) string {
	styleName := func(name string) string { return styles.Flag.Render(name) }

	lines := strings.Split(strings.TrimSuffix(usages, "\n"), "\n")
	for idx, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" {
			continue
		}
		indent := line[:len(line)-len(trimmed)]

		names, rest, found := strings.Cut(trimmed, "  ")
		if !found {
			lines[idx] = indent + flagName.ReplaceAllStringFunc(trimmed, styleName)
			continue
		}
		desc := strings.TrimLeft(rest, " ")
		gap := "  " + rest[:len(rest)-len(desc)]
		lines[idx] = indent + flagName.ReplaceAllStringFunc(names, styleName) +
			gap + styles.Description.Render(desc)
	}
	return strings.Join(lines, "\n")
}

// ApplyToCommand installs the styled help and usage functions on cmd. The
// functions are inherited by every subcommand.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	render := func(command *cobra.Command, name, text string) error {
		colorMode, err := command.Flags().GetString("color")
		if err != nil {
			colorMode = "auto"
		}
		styles := NewHelpStyles(pretty.IsColorEnabled(colorMode, command.OutOrStdout()))

		tmpl, err := template.New(name).Funcs(h.funcs(styles)).Parse(text)
		if err != nil {
			return fmt.Errorf("parse %s template: %w", name, err)
		}
		return tmpl.Execute(command.OutOrStdout(), command)
	}

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		return render(command, "usage", usageTemplate)
	})
	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := render(command, "help", helpTemplate); err != nil {
			command.PrintErrln(err)
		}
	})
}

// rpad adds padding to the right of a string.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

// trimTrailingWhitespaces removes trailing whitespace from lines.
func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
