// Package aggregate turns raw decoded findings into the deduplicated,
// deterministically ordered sequence every report is built from.
package aggregate

import (
	"slices"

	"attriscan/internal/model"
)

// Findings deduplicates structurally equal findings and sorts the rest by
// the entity's total order, so repeated runs over the same input serialize
// identically. The input slice is not modified.
func Findings(findings []model.LicenseFinding) []model.LicenseFinding {
	out := slices.Clone(findings)
	slices.SortFunc(out, model.LicenseFinding.Compare)
	return slices.CompactFunc(out, model.LicenseFinding.Equal)
}
