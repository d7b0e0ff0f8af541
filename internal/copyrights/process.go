// Package copyrights normalizes raw copyright statements and filters known
// noise out of attribution sets.
package copyrights

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	markerRe = regexp.MustCompile(`(?i)^(copyright\s*)?(\(c\)\s*)?(copyright\s*)?`)
	yearRe   = regexp.MustCompile(`(\d{4})(?:\s*[-–—]\s*(\d{4}))?`)
)

// Process merges near-duplicate copyright statements into one canonical
// representative per holder. Statements are unicode-normalized, whitespace
// collapsed and "©" unified to "(c)"; statements naming the same holder are
// merged, with their years collapsed into ranges. The result is sorted,
// never larger than the input, and identical for any permutation of the
// input set.
func Process(statements []string) []string {
	type group struct {
		holder string // smallest original-cased holder text seen
		plain  string // smallest normalized statement, fallback representative
		years  map[int]struct{}
		marked bool // at least one member carried a copyright marker
	}
	groups := make(map[string]*group)

	for _, raw := range statements {
		n := normalize(raw)
		if n == "" {
			continue
		}
		holder, years, marked := dissect(n)

		key := strings.ToLower(holder)
		g := groups[key]
		if g == nil {
			g = &group{holder: holder, plain: n, years: make(map[int]struct{})}
			groups[key] = g
		}
		if holder < g.holder {
			g.holder = holder
		}
		if n < g.plain {
			g.plain = n
		}
		for _, y := range years {
			g.years[y] = struct{}{}
		}
		g.marked = g.marked || marked
	}

	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if !g.marked || len(g.years) == 0 || g.holder == "" {
			out = append(out, g.plain)
			continue
		}
		out = append(out, fmt.Sprintf("Copyright (c) %s %s", yearSpec(g.years), g.holder))
	}
	sort.Strings(out)
	return out
}

// normalize applies unicode NFC, unifies the copyright sign, collapses
// whitespace and trims stray punctuation.
func normalize(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "©", "(c)")
	s = strings.ReplaceAll(s, "(C)", "(c)")
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " .,;")
}

// dissect splits a normalized statement into the holder text and the years
// it mentions. marked reports whether the statement carried a recognizable
// copyright marker ("copyright", "(c)" or both).
func dissect(s string) (holder string, years []int, marked bool) {
	if m := markerRe.FindString(s); m != "" {
		marked = true
		s = s[len(m):]
	}
	for _, m := range yearRe.FindAllStringSubmatch(s, -1) {
		if y, ok := plausibleYear(m[1]); ok {
			years = append(years, y)
		}
		if m[2] != "" {
			if y, ok := plausibleYear(m[2]); ok {
				years = append(years, y)
			}
		}
	}
	holder = yearRe.ReplaceAllString(s, "")
	holder = strings.Join(strings.Fields(holder), " ")
	holder = strings.Trim(holder, " .,;-")
	return holder, years, marked
}

func plausibleYear(s string) (int, bool) {
	y, err := strconv.Atoi(s)
	if err != nil || y < 1900 || y > 2100 {
		return 0, false
	}
	return y, true
}

// yearSpec renders a year set compactly, merging consecutive years into
// ranges: {2001, 2002, 2003, 2005} -> "2001-2003, 2005".
func yearSpec(set map[int]struct{}) string {
	years := make([]int, 0, len(set))
	for y := range set {
		years = append(years, y)
	}
	sort.Ints(years)

	var parts []string
	for i := 0; i < len(years); {
		j := i
		for j+1 < len(years) && years[j+1] == years[j]+1 {
			j++
		}
		if j > i {
			parts = append(parts, fmt.Sprintf("%d-%d", years[i], years[j]))
		} else {
			parts = append(parts, strconv.Itoa(years[i]))
		}
		i = j + 1
	}
	return strings.Join(parts, ", ")
}
