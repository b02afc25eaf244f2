// Package selector drives an interactive fuzzy finder over decorated
// bookmark lines and maps the chosen lines back to paths.
package selector

import (
	"fmt"

	"github.com/nikbrunner/bzfm/internal/model"
	"github.com/nikbrunner/bzfm/internal/storage"
)

// Options tune a single selection.
type Options struct {
	Multi bool   // allow picking more than one line
	Query string // initial filter text
}

// Selector presents lines to the user and returns the chosen ones.
// A cancelled selection returns an empty slice and a nil error.
type Selector interface {
	Select(lines []string, opts Options) ([]string, error)
}

// Error reports a selector that could not be launched or exited abnormally.
type Error struct {
	Code int   // exit code, -1 if the process never ran to completion
	Err  error // underlying launch or I/O failure, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("run selector: %v", e.Err)
	}
	return fmt.Sprintf("selector exited with code %d", e.Code)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// SelectFromBookmarks filters bookmarks by kind, lets sel pick among them and
// returns the chosen paths in the order sel returned them. When nothing
// survives the filter sel is not invoked.
func SelectFromBookmarks(sel Selector, bookmarks []string, kind model.FilterKind, opts Options) ([]string, error) {
	lines := Lines(Decorate(storage.Filter(bookmarks, kind)))
	if len(lines) == 0 {
		return []string{}, nil
	}

	selected, err := sel.Select(lines, opts)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(selected))
	for _, line := range selected {
		paths = append(paths, ParsePath(line))
	}
	return paths, nil
}
