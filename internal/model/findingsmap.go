package model

import (
	"slices"
	"strings"
)

// Processor normalizes and deduplicates a set of raw copyright statements.
// Implementations must be deterministic for a given input set, regardless of
// its order, and must never grow the set.
type Processor func(statements []string) []string

// FindingsMap is a denormalized view mapping each license to the raw
// copyright statements attributed to it. Keys are unique and kept in
// ascending order, which every transformation preserves by rebuilding the
// map sorted. It exists only for bulk text processing; the LicenseFinding
// entity remains the source of truth.
type FindingsMap struct {
	entries []findingsEntry
}

type findingsEntry struct {
	license    string
	statements []string // sorted, unique
}

// NewFindingsMap builds a map from license to copyright statements. Values
// are copied, deduplicated and sorted; keys are sorted ascending.
func NewFindingsMap(m map[string][]string) FindingsMap {
	entries := make([]findingsEntry, 0, len(m))
	for license, statements := range m {
		entries = append(entries, findingsEntry{
			license:    license,
			statements: sortedSet(statements, strings.Compare),
		})
	}
	return sortEntries(entries)
}

// FindingsMapFrom collapses findings into the license -> statements view.
// Statements for the same license are merged across findings.
func FindingsMapFrom(findings []LicenseFinding) FindingsMap {
	m := make(map[string][]string)
	for _, f := range findings {
		statements := m[f.License()]
		for _, c := range f.copyrights {
			statements = append(statements, c.Statement)
		}
		m[f.License()] = statements
	}
	return NewFindingsMap(m)
}

// Licenses returns the keys in ascending order.
func (fm FindingsMap) Licenses() []string {
	out := make([]string, len(fm.entries))
	for i, e := range fm.entries {
		out[i] = e.license
	}
	return out
}

// Statements returns the sorted statement set for a license, or nil when the
// license is not a key.
func (fm FindingsMap) Statements(license string) []string {
	for _, e := range fm.entries {
		if e.license == license {
			return slices.Clone(e.statements)
		}
	}
	return nil
}

// Len returns the number of license keys.
func (fm FindingsMap) Len() int { return len(fm.entries) }

// Process returns a new map with each statement set replaced by the
// processor's output, re-sorted by license key. The receiver is unchanged.
func (fm FindingsMap) Process(p Processor) FindingsMap {
	entries := make([]findingsEntry, 0, len(fm.entries))
	for _, e := range fm.entries {
		entries = append(entries, findingsEntry{
			license:    e.license,
			statements: sortedSet(p(slices.Clone(e.statements)), strings.Compare),
		})
	}
	return sortEntries(entries)
}

// RemoveGarbage returns a new map with every statement that exact-matches an
// entry in the garbage list removed, re-sorted by license key. Matching is
// exact string equality, never fuzzy. The receiver is unchanged.
func (fm FindingsMap) RemoveGarbage(garbage []string) FindingsMap {
	drop := make(map[string]struct{}, len(garbage))
	for _, g := range garbage {
		drop[g] = struct{}{}
	}
	entries := make([]findingsEntry, 0, len(fm.entries))
	for _, e := range fm.entries {
		kept := make([]string, 0, len(e.statements))
		for _, s := range e.statements {
			if _, ok := drop[s]; !ok {
				kept = append(kept, s)
			}
		}
		entries = append(entries, findingsEntry{license: e.license, statements: kept})
	}
	return sortEntries(entries)
}

func sortEntries(entries []findingsEntry) FindingsMap {
	slices.SortFunc(entries, func(a, b findingsEntry) int {
		return strings.Compare(a.license, b.license)
	})
	return FindingsMap{entries: entries}
}
