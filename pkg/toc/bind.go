package toc

// Target is a rendered heading an entry can be bound to.
type Target struct {
	LineIndex int
	Level     int
	Text      string
}

// Mismatch describes a position where the Nth entry and the Nth target
// do not refer to the same source heading.
type Mismatch struct {
	// Position is the 0-based emission index.
	Position int
	// Entry is nil when there are more targets than entries.
	Entry *HeadingEntry
	// Target is nil when there are more entries than targets.
	Target *Target
}

// Binding is the result of assigning entry ids to rendered headings.
type Binding struct {
	// IDs holds the id assigned to each target, in target order.
	// Targets without a matching entry get an empty id.
	IDs []string

	Mismatches []Mismatch
}

// Aligned reports whether every target was bound to the entry for its own line.
func (b Binding) Aligned() bool {
	return len(b.Mismatches) == 0
}

// Bind assigns entries to targets in emission order: the Nth target
// receives the Nth entry's id. When the lists were produced by scans with
// different rules the pairing drifts; each drifted position is recorded.
func Bind(entries []HeadingEntry, targets []Target) Binding {
	binding := Binding{IDs: make([]string, len(targets))}

	total := max(len(entries), len(targets))
	for pos := range total {
		switch {
		case pos >= len(entries):
			target := targets[pos]
			binding.Mismatches = append(binding.Mismatches, Mismatch{Position: pos, Target: &target})
		case pos >= len(targets):
			entry := entries[pos]
			binding.Mismatches = append(binding.Mismatches, Mismatch{Position: pos, Entry: &entry})
		default:
			entry := entries[pos]
			target := targets[pos]
			binding.IDs[pos] = entry.ID
			if entry.LineIndex != target.LineIndex || entry.Level != target.Level {
				binding.Mismatches = append(binding.Mismatches, Mismatch{
					Position: pos,
					Entry:    &entry,
					Target:   &target,
				})
			}
		}
	}

	return binding
}
