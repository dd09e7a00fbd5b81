package compat

import (
	"context"
	"fmt"
	"sort"

	"github.com/yaklabco/folio/pkg/document"
	"github.com/yaklabco/folio/pkg/markup"
	"github.com/yaklabco/folio/pkg/toc"
)

// Kind classifies a finding.
type Kind string

// Finding kinds.
const (
	// KindOutlineDrift: a literal outline scan pairs an entry with a
	// rendered heading from another line.
	KindOutlineDrift Kind = "outline-drift"

	// KindCommonMarkOnly: CommonMark sees a heading the dialect does not.
	KindCommonMarkOnly Kind = "commonmark-heading"

	// KindDialectOnly: the dialect renders a heading CommonMark does not.
	KindDialectOnly Kind = "dialect-heading"

	// KindUnterminatedFence: a code fence runs to the end of the document.
	KindUnterminatedFence Kind = "unterminated-fence"

	// KindDiscarded: lines that opened an image or component but were dropped.
	KindDiscarded Kind = "discarded"

	// KindRejectedComponent: a component whose handler rejected its attributes.
	KindRejectedComponent Kind = "rejected-component"
)

// Severity ranks a finding.
type Severity string

const (
	// SeverityWarning marks content that renders differently than it reads.
	SeverityWarning Severity = "warning"

	// SeverityInfo marks a dialect difference that is usually intended.
	SeverityInfo Severity = "info"
)

// Severity returns how serious findings of kind k are.
func (k Kind) Severity() Severity {
	switch k {
	case KindCommonMarkOnly, KindDialectOnly:
		return SeverityInfo
	default:
		return SeverityWarning
	}
}

// Description is a one-line explanation of kind k.
func (k Kind) Description() string {
	switch k {
	case KindOutlineDrift:
		return "table of contents entry points at a different heading than the page renders"
	case KindCommonMarkOnly:
		return "CommonMark reads a heading that the dialect renders as text"
	case KindDialectOnly:
		return "the dialect renders a heading that CommonMark reads as text"
	case KindUnterminatedFence:
		return "code fence is never closed and runs to the end of the document"
	case KindDiscarded:
		return "lines opened an image or component but could not be parsed and were dropped"
	case KindRejectedComponent:
		return "component attributes were rejected and the component was dropped"
	default:
		return string(k)
	}
}

// Finding is one reported difference, anchored to a 0-based line.
type Finding struct {
	Line    int    `json:"line"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Report is the result of Check.
type Report struct {
	Findings []Finding `json:"findings"`
}

// Clean reports whether nothing was found.
func (r *Report) Clean() bool {
	return len(r.Findings) == 0
}

// CountSeverity returns the number of findings at severity.
func (r *Report) CountSeverity(severity Severity) int {
	count := 0
	for _, finding := range r.Findings {
		if finding.Kind.Severity() == severity {
			count++
		}
	}
	return count
}

// Count returns the number of findings of kind.
func (r *Report) Count(kind Kind) int {
	count := 0
	for _, finding := range r.Findings {
		if finding.Kind == kind {
			count++
		}
	}
	return count
}

// CheckOptions configures Check.
type CheckOptions struct {
	Markup markup.Options

	// Reference enables the CommonMark comparison when set.
	Reference *Reference
}

// Check renders doc and reports drift between the rendered headings, a
// literal outline scan and, optionally, a CommonMark reading.
func Check(ctx context.Context, doc *document.Document, opts CheckOptions) (*Report, error) {
	result := markup.Render(doc, opts.Markup)
	rendered := result.Headings()

	report := &Report{}
	report.addDrift(toc.Bind(toc.Extract(doc.Lines()), rendered))
	report.addBlocks(result)

	if opts.Reference != nil {
		reference, err := opts.Reference.Headings(ctx, doc)
		if err != nil {
			return nil, err
		}
		report.addReference(rendered, reference)
	}

	sort.SliceStable(report.Findings, func(i, j int) bool {
		return report.Findings[i].Line < report.Findings[j].Line
	})
	return report, nil
}

func (r *Report) add(line int, kind Kind, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{Line: line, Kind: kind, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) addDrift(binding toc.Binding) {
	for _, mismatch := range binding.Mismatches {
		switch {
		case mismatch.Target == nil:
			r.add(mismatch.Entry.LineIndex, KindOutlineDrift,
				"outline entry %q has no rendered heading", mismatch.Entry.Text)
		case mismatch.Entry == nil:
			r.add(mismatch.Target.LineIndex, KindOutlineDrift,
				"rendered heading %q has no outline entry", mismatch.Target.Text)
		default:
			r.add(mismatch.Entry.LineIndex, KindOutlineDrift,
				"outline entry %q links to rendered heading %q on line %d",
				mismatch.Entry.Text, mismatch.Target.Text, mismatch.Target.LineIndex+1)
		}
	}
}

func (r *Report) addBlocks(result *markup.Result) {
	built := make(map[int]bool, len(result.Nodes))
	for _, node := range result.Nodes {
		built[node.Key] = true
	}

	for _, block := range result.Blocks {
		switch {
		case block.Kind == markup.BlockCode && !block.Closed:
			r.add(block.StartLine, KindUnterminatedFence, "code fence is never closed")
		case block.Kind == markup.BlockDiscarded && block.Tag != "":
			r.add(block.StartLine, KindDiscarded, "<%s> has no closing %q", block.Tag, "/>")
		case block.Kind == markup.BlockDiscarded:
			r.add(block.StartLine, KindDiscarded, "image line does not match ![alt](src)")
		case block.Kind == markup.BlockComponent && !built[block.StartLine]:
			r.add(block.StartLine, KindRejectedComponent, "<%s> is missing required attributes", block.Tag)
		}
	}
}

func (r *Report) addReference(rendered, reference []toc.Target) {
	dialect := make(map[int]toc.Target, len(rendered))
	for _, target := range rendered {
		dialect[target.LineIndex] = target
	}
	common := make(map[int]toc.Target, len(reference))
	for _, target := range reference {
		common[target.LineIndex] = target
	}

	for _, target := range reference {
		if _, ok := dialect[target.LineIndex]; !ok {
			r.add(target.LineIndex, KindCommonMarkOnly,
				"CommonMark reads a level %d heading %q here", target.Level, target.Text)
		}
	}
	for _, target := range rendered {
		if _, ok := common[target.LineIndex]; !ok {
			r.add(target.LineIndex, KindDialectOnly,
				"heading %q is not a heading in CommonMark", target.Text)
		}
	}
}
