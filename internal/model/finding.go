package model

import (
	"slices"
	"strings"
)

// LicenseFinding attributes one discovered license to the source locations
// it was detected at and the copyright statements found alongside it.
//
// It is an immutable value: construct it with NewLicenseFinding and treat
// every accessor result as a fresh copy. Two findings with the same license,
// locations and copyrights are interchangeable, and Compare defines a strict
// total order over them so that serialized output diffs cleanly across runs.
type LicenseFinding struct {
	license    string
	locations  []TextLocation
	copyrights []CopyrightFinding
}

// NewLicenseFinding builds a finding from a license identifier and two sets.
// The license may be empty ("unknown") but is always present; locations and
// copyrights are copied, deduplicated and kept sorted internally. The license
// string is opaque here; expression well-formedness is the caller's concern.
func NewLicenseFinding(license string, locations []TextLocation, copyrights []CopyrightFinding) LicenseFinding {
	return LicenseFinding{
		license:    license,
		locations:  sortedSet(locations, TextLocation.Compare),
		copyrights: sortedSet(copyrights, CopyrightFinding.Compare),
	}
}

// License returns the license identifier.
func (f LicenseFinding) License() string { return f.license }

// Locations returns the sorted set of source locations.
func (f LicenseFinding) Locations() []TextLocation {
	return slices.Clone(f.locations)
}

// Copyrights returns the sorted set of copyright findings.
func (f LicenseFinding) Copyrights() []CopyrightFinding {
	return slices.Clone(f.copyrights)
}

// Compare orders findings by license, then by the location set, then by the
// copyright set. Sets are compared elementwise in sorted order; a set that is
// a prefix of the other sorts first. Each step returns on the first non-zero
// result.
func (f LicenseFinding) Compare(other LicenseFinding) int {
	if c := strings.Compare(f.license, other.license); c != 0 {
		return c
	}
	if c := compareLocationSets(f.locations, other.locations); c != 0 {
		return c
	}
	return compareCopyrightSets(f.copyrights, other.copyrights)
}

// Equal reports structural equality, consistent with Compare == 0.
func (f LicenseFinding) Equal(other LicenseFinding) bool {
	return f.Compare(other) == 0
}

// sortedSet clones, sorts and deduplicates a slice treated as a set.
func sortedSet[T any](in []T, cmp func(T, T) int) []T {
	if len(in) == 0 {
		return nil
	}
	out := slices.Clone(in)
	slices.SortFunc(out, cmp)
	return slices.CompactFunc(out, func(a, b T) bool { return cmp(a, b) == 0 })
}
