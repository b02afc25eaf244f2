package model

// FilterKind selects which bookmarks are considered when listing or selecting.
// It is a read-time projection and is never persisted.
type FilterKind int

const (
	FilterAll   FilterKind = iota // files and directories
	FilterFiles                   // regular files only
	FilterDirs                    // directories only
)

// String returns the flag-style name of the filter.
func (k FilterKind) String() string {
	switch k {
	case FilterFiles:
		return "files"
	case FilterDirs:
		return "dirs"
	default:
		return "all"
	}
}

// ParseFilterKind maps the --files/--dirs flag pair onto a FilterKind.
// --files wins when both are set.
func ParseFilterKind(files, dirs bool) FilterKind {
	switch {
	case files:
		return FilterFiles
	case dirs:
		return FilterDirs
	default:
		return FilterAll
	}
}
