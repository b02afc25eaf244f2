package selector

import (
	"os"
	"strings"

	"github.com/nikbrunner/bzfm/internal/model"
)

// columnGap is the minimum padding between the longest path and its tag.
const columnGap = 2

// Decorate stats each path and tags it as file, directory or unknown.
// Paths that vanished since loading are tagged unknown rather than dropped.
func Decorate(paths []string) []model.Entry {
	entries := make([]model.Entry, 0, len(paths))
	for _, p := range paths {
		kind := model.KindUnknown
		if info, err := os.Stat(p); err == nil {
			switch {
			case info.IsDir():
				kind = model.KindDir
			case info.Mode().IsRegular():
				kind = model.KindFile
			}
		}
		entries = append(entries, model.Entry{Path: p, Kind: kind})
	}
	return entries
}

// Lines renders entries in a single aligned column: every path is padded to
// the longest path plus columnGap, then tagged.
func Lines(entries []model.Entry) []string {
	if len(entries) == 0 {
		return []string{}
	}

	maxWidth := 0
	for _, e := range entries {
		maxWidth = max(maxWidth, e.Width())
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line(maxWidth + columnGap)
	}
	return lines
}

// ParsePath recovers the bookmark path from a decorated line by stripping
// the trailing kind tag and its padding. Paths containing spaces survive.
// A line without a tag is returned trimmed.
func ParsePath(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, k := range model.Kinds {
		suffix := " " + k.Tag()
		if strings.HasSuffix(trimmed, suffix) {
			return strings.TrimRight(strings.TrimSuffix(trimmed, suffix), " ")
		}
	}
	return trimmed
}
