package culler

import (
	"os"
)

// Status represents why a stored bookmark would be kept or dropped.
type Status int

const (
	OK        Status = iota // exists, first occurrence
	Duplicate               // repeats an earlier entry
	Missing                 // stat failed: gone or unreadable
)

// String returns a short label for the status.
func (s Status) String() string {
	switch s {
	case Duplicate:
		return "duplicate"
	case Missing:
		return "missing"
	default:
		return "ok"
	}
}

// Result holds the check result for a single bookmark.
type Result struct {
	Path   string
	Status Status
}

// Check classifies every bookmark in order. The number of non-OK results
// matches what storage.Cleanup would remove.
func Check(bookmarks []string) []Result {
	if len(bookmarks) == 0 {
		return nil
	}

	results := make([]Result, len(bookmarks))
	seen := make(map[string]bool, len(bookmarks))
	for i, p := range bookmarks {
		results[i] = Result{Path: p}
		if seen[p] {
			results[i].Status = Duplicate
			continue
		}
		seen[p] = true
		if _, err := os.Stat(p); err != nil {
			results[i].Status = Missing
		}
	}
	return results
}

// Stale returns the results that are not OK.
func Stale(results []Result) []Result {
	var stale []Result
	for _, r := range results {
		if r.Status != OK {
			stale = append(stale, r)
		}
	}
	return stale
}
