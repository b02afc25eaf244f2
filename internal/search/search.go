package search

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

// Result represents a match against one candidate line.
type Result struct {
	Line           string
	Index          int   // position in the candidate list
	MatchedIndexes []int // byte offsets of matched runes, ascending
}

// Rank filters candidates the way fzf does with --exact --no-sort.
//
// The query is split on whitespace and every term must match. A plain term
// matches as a contiguous substring; a term starting with ' is matched
// fuzzily instead. Matching is smart-case: case-insensitive unless the term
// contains an upper-case letter. Results keep the candidates' input order.
// An empty query matches every candidate.
func Rank(candidates []string, query string) []Result {
	terms := strings.Fields(query)

	results := make([]Result, 0, len(candidates))
	for i, c := range candidates {
		matched, ok := matchAll(c, terms)
		if !ok {
			continue
		}
		results = append(results, Result{Line: c, Index: i, MatchedIndexes: matched})
	}
	return results
}

func matchAll(line string, terms []string) ([]int, bool) {
	var matched []int
	for _, term := range terms {
		var offsets []int
		if fuzzyTerm, ok := strings.CutPrefix(term, "'"); ok && fuzzyTerm != "" {
			offsets = matchFuzzy(line, fuzzyTerm)
		} else {
			offsets = matchExact(line, term, !hasUpper(term))
		}
		if offsets == nil {
			return nil, false
		}
		matched = append(matched, offsets...)
	}
	return dedupSorted(matched), true
}

// matchFuzzy returns the offsets of a non-contiguous match, or nil.
func matchFuzzy(line, term string) []int {
	matches := fuzzy.Find(term, []string{line})
	if len(matches) == 0 {
		return nil
	}
	return matches[0].MatchedIndexes
}

// matchExact returns the offsets of the first contiguous occurrence of term
// in line, or nil.
func matchExact(line, term string, ignoreCase bool) []int {
	pattern := []rune(term)
	for start := 0; start < len(line); {
		if offsets := matchAt(line, start, pattern, ignoreCase); offsets != nil {
			return offsets
		}
		_, size := utf8.DecodeRuneInString(line[start:])
		start += size
	}
	return nil
}

func matchAt(line string, start int, pattern []rune, ignoreCase bool) []int {
	offsets := make([]int, 0, len(pattern))
	i := start
	for _, want := range pattern {
		if i >= len(line) {
			return nil
		}
		got, size := utf8.DecodeRuneInString(line[i:])
		if got != want && !(ignoreCase && unicode.ToLower(got) == unicode.ToLower(want)) {
			return nil
		}
		offsets = append(offsets, i)
		i += size
	}
	return offsets
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func dedupSorted(offsets []int) []int {
	if len(offsets) == 0 {
		return nil
	}
	sort.Ints(offsets)
	out := offsets[:1]
	for _, o := range offsets[1:] {
		if o != out[len(out)-1] {
			out = append(out, o)
		}
	}
	return out
}
