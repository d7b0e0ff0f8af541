package copyrights

// Garbage is a set of strings flagged as non-attributive noise (template
// placeholders, boilerplate phrases mistakenly captured as copyright
// statements). Membership is exact string equality.
type Garbage map[string]struct{}

// NewGarbage builds a garbage set from a configured list.
func NewGarbage(entries []string) Garbage {
	g := make(Garbage, len(entries))
	for _, e := range entries {
		g[e] = struct{}{}
	}
	return g
}

// Contains reports whether the statement is flagged as garbage.
func (g Garbage) Contains(statement string) bool {
	_, ok := g[statement]
	return ok
}

// Filter returns the statements that are not in the garbage set, preserving
// their order. The input slice is never modified.
func Filter(statements []string, g Garbage) []string {
	out := make([]string, 0, len(statements))
	for _, s := range statements {
		if !g.Contains(s) {
			out = append(out, s)
		}
	}
	return out
}
