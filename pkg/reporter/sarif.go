// Package reporter writes check results in machine-readable formats.
package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/yaklabco/folio/pkg/compat"
)

// SARIF version used by this reporter.
const sarifVersion = "2.1.0"

// SARIF schema URI.
const sarifSchemaURI = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"

// informationURI is reported as the tool's home page.
const informationURI = "https://github.com/yaklabco/folio"

// File is the check result for one document. Finding lines are 0-based
// file lines.
type File struct {
	Path     string
	Findings []compat.Finding
}

// SARIFOutput represents the root SARIF document.
type SARIFOutput struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []SARIFRun `json:"runs"`
}

// SARIFRun represents a single analysis run.
type SARIFRun struct {
	Tool    SARIFTool     `json:"tool"`
	Results []SARIFResult `json:"results"`
}

// SARIFTool describes the analysis tool.
type SARIFTool struct {
	Driver SARIFDriver `json:"driver"`
}

// SARIFDriver contains tool metadata and rules.
type SARIFDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri"`
	Rules          []SARIFRule `json:"rules"`
}

// SARIFRule describes one finding kind.
type SARIFRule struct {
	ID               string               `json:"id"`
	ShortDescription SARIFMultiformatText `json:"shortDescription"`
	DefaultConfig    *SARIFRuleConfig     `json:"defaultConfiguration,omitempty"`
}

// SARIFMultiformatText contains text in multiple formats.
type SARIFMultiformatText struct {
	Text string `json:"text"`
}

// SARIFRuleConfig contains rule configuration.
type SARIFRuleConfig struct {
	Level string `json:"level"`
}

// SARIFResult represents a single finding.
type SARIFResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   SARIFMessage    `json:"message"`
	Locations []SARIFLocation `json:"locations"`
}

// SARIFMessage contains the result message.
type SARIFMessage struct {
	Text string `json:"text"`
}

// SARIFLocation describes a code location.
type SARIFLocation struct {
	PhysicalLocation SARIFPhysicalLocation `json:"physicalLocation"`
}

// SARIFPhysicalLocation contains file path and region.
type SARIFPhysicalLocation struct {
	ArtifactLocation SARIFArtifactLocation `json:"artifactLocation"`
	Region           SARIFRegion           `json:"region"`
}

// SARIFArtifactLocation contains the file URI.
type SARIFArtifactLocation struct {
	URI string `json:"uri"`
}

// SARIFRegion describes the affected lines. Lines are 1-based.
type SARIFRegion struct {
	StartLine int `json:"startLine"`
}

// BuildSARIF converts check results into a single-run SARIF document.
// Rules are listed once per finding kind, in order of first appearance.
func BuildSARIF(files []File, toolVersion string) *SARIFOutput {
	run := SARIFRun{
		Tool: SARIFTool{
			Driver: SARIFDriver{
				Name:           "folio",
				Version:        toolVersion,
				InformationURI: informationURI,
				Rules:          make([]SARIFRule, 0),
			},
		},
		Results: make([]SARIFResult, 0),
	}

	rulesSeen := make(map[compat.Kind]bool)
	for _, file := range files {
		for _, finding := range file.Findings {
			level := severityToSARIFLevel(finding.Kind.Severity())

			if !rulesSeen[finding.Kind] {
				rulesSeen[finding.Kind] = true
				run.Tool.Driver.Rules = append(run.Tool.Driver.Rules, SARIFRule{
					ID:               string(finding.Kind),
					ShortDescription: SARIFMultiformatText{Text: finding.Kind.Description()},
					DefaultConfig:    &SARIFRuleConfig{Level: level},
				})
			}

			run.Results = append(run.Results, SARIFResult{
				RuleID:  string(finding.Kind),
				Level:   level,
				Message: SARIFMessage{Text: finding.Message},
				Locations: []SARIFLocation{{
					PhysicalLocation: SARIFPhysicalLocation{
						ArtifactLocation: SARIFArtifactLocation{URI: filepath.ToSlash(file.Path)},
						Region:           SARIFRegion{StartLine: finding.Line + 1},
					},
				}},
			})
		}
	}

	return &SARIFOutput{
		Schema:  sarifSchemaURI,
		Version: sarifVersion,
		Runs:    []SARIFRun{run},
	}
}

// WriteSARIF encodes files as indented SARIF and returns the number of
// results written.
func WriteSARIF(w io.Writer, files []File, toolVersion string) (int, error) {
	output := BuildSARIF(files, toolVersion)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode SARIF: %w", err)
	}

	return len(output.Runs[0].Results), nil
}

// severityToSARIFLevel converts a finding severity to a SARIF level.
func severityToSARIFLevel(severity compat.Severity) string {
	switch severity {
	case compat.SeverityWarning:
		return "warning"
	case compat.SeverityInfo:
		return "note"
	default:
		return "warning"
	}
}
