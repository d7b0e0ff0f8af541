package model

import "strings"

// CopyrightFinding is a copyright statement paired with the location it was
// found at.
type CopyrightFinding struct {
	Statement string       `json:"statement" yaml:"statement"`
	Location  TextLocation `json:"location" yaml:"location"`
}

// Compare orders copyright findings by statement, then by location.
func (c CopyrightFinding) Compare(other CopyrightFinding) int {
	if r := strings.Compare(c.Statement, other.Statement); r != 0 {
		return r
	}
	return c.Location.Compare(other.Location)
}

func compareCopyrightSets(a, b []CopyrightFinding) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
