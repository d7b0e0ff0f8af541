package model

import "strings"

// TextLocation points at a line range inside a scanned file.
type TextLocation struct {
	Path      string `json:"path" yaml:"path"`
	StartLine int    `json:"start_line" yaml:"start_line"`
	EndLine   int    `json:"end_line" yaml:"end_line"`
}

// Compare orders locations by path, then start line, then end line.
func (l TextLocation) Compare(other TextLocation) int {
	if c := strings.Compare(l.Path, other.Path); c != 0 {
		return c
	}
	if l.StartLine != other.StartLine {
		if l.StartLine < other.StartLine {
			return -1
		}
		return 1
	}
	if l.EndLine != other.EndLine {
		if l.EndLine < other.EndLine {
			return -1
		}
		return 1
	}
	return 0
}

// validateLocation checks the decoded fields shared by the JSON and YAML
// paths. Pointers distinguish "absent" from zero values.
func validateLocation(path *string, startLine, endLine *int) (TextLocation, error) {
	if path == nil || *path == "" {
		return TextLocation{}, &DecodeError{Msg: "location path missing or empty"}
	}
	if startLine == nil || endLine == nil {
		return TextLocation{}, &DecodeError{Msg: "location line range missing"}
	}
	if *startLine < 1 || *endLine < *startLine {
		return TextLocation{}, &DecodeError{Msg: "location line range invalid"}
	}
	return TextLocation{Path: *path, StartLine: *startLine, EndLine: *endLine}, nil
}

// compareLocationSets compares two sorted location sequences elementwise;
// a set that is a prefix of the other sorts first.
func compareLocationSets(a, b []TextLocation) int {
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
