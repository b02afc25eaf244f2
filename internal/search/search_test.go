package search

import (
	"reflect"
	"testing"
)

func indexes(results []Result) []int {
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.Index
	}
	return out
}

func TestRank_EmptyQueryKeepsOrder(t *testing.T) {
	candidates := []string{"/srv/www  [d]", "/etc/hosts  [f]"}

	for _, query := range []string{"", "   "} {
		results := Rank(candidates, query)

		if len(results) != 2 {
			t.Fatalf("expected 2 results for %q, got %d", query, len(results))
		}
		for i, r := range results {
			if r.Line != candidates[i] || r.Index != i {
				t.Errorf("expected %q at %d, got %q (index %d)", candidates[i], i, r.Line, r.Index)
			}
		}
	}
}

func TestRank_ExactMatch(t *testing.T) {
	candidates := []string{"/home/me/github", "/home/me/gitlab"}

	results := Rank(candidates, "github")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Line != "/home/me/github" {
		t.Errorf("expected /home/me/github, got %s", results[0].Line)
	}
	if !reflect.DeepEqual(results[0].MatchedIndexes, []int{9, 10, 11, 12, 13, 14}) {
		t.Errorf("expected substring offsets, got %v", results[0].MatchedIndexes)
	}
}

func TestRank_ContiguousOnlyInInputOrder(t *testing.T) {
	candidates := []string{
		"/home/me/longer-proj-name  [d]",
		"/p/r/o/j/x                 [d]",
		"/proj                      [d]",
	}

	results := Rank(candidates, "proj")

	if got := indexes(results); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Errorf("expected indexes [0 2], got %v", got)
	}
}

func TestRank_SmartCase(t *testing.T) {
	candidates := []string{"/srv/Docs", "/srv/docs"}

	if got := indexes(Rank(candidates, "docs")); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("expected lower-case query to ignore case, got %v", got)
	}
	if got := indexes(Rank(candidates, "Docs")); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("expected upper-case query to respect case, got %v", got)
	}
}

func TestRank_AllTermsMustMatch(t *testing.T) {
	candidates := []string{"/srv/www/site", "/srv/api", "/home/www"}

	results := Rank(candidates, "srv www")

	if got := indexes(results); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("expected indexes [0], got %v", got)
	}
	// offsets of both terms, merged
	want := []int{1, 2, 3, 5, 6, 7}
	if !reflect.DeepEqual(results[0].MatchedIndexes, want) {
		t.Errorf("expected %v, got %v", want, results[0].MatchedIndexes)
	}
}

func TestRank_QuotedTermIsFuzzy(t *testing.T) {
	candidates := []string{"/srv/tanstack-router", "/srv/react"}

	if got := Rank(candidates, "tsr"); len(got) != 0 {
		t.Errorf("expected no exact match for tsr, got %v", indexes(got))
	}

	results := Rank(candidates, "'tsr")
	if got := indexes(results); !reflect.DeepEqual(got, []int{0}) {
		t.Fatalf("expected indexes [0], got %v", got)
	}
	if len(results[0].MatchedIndexes) != 3 {
		t.Errorf("expected 3 matched indexes, got %d", len(results[0].MatchedIndexes))
	}
}

func TestRank_MultiByteOffsets(t *testing.T) {
	results := Rank([]string{"/文档/笔记"}, "笔记")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if !reflect.DeepEqual(results[0].MatchedIndexes, []int{8, 11}) {
		t.Errorf("expected byte offsets [8 11], got %v", results[0].MatchedIndexes)
	}
}

func TestRank_NoMatch(t *testing.T) {
	results := Rank([]string{"/srv/www"}, "zzz")

	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}
