package model

import (
	"strings"
	"unicode/utf8"
)

// Kind is the filesystem type of a bookmark at decoration time.
type Kind int

const (
	KindUnknown Kind = iota // vanished or unreadable
	KindFile
	KindDir
)

// Tag returns the column marker shown after a decorated path.
func (k Kind) Tag() string {
	switch k {
	case KindFile:
		return "[f]"
	case KindDir:
		return "[d]"
	default:
		return "[?]"
	}
}

// Kinds lists every Kind, in tag lookup order.
var Kinds = []Kind{KindFile, KindDir, KindUnknown}

// Entry is a bookmark prepared for display. It is derived per render and
// never stored.
type Entry struct {
	Path string
	Kind Kind
}

// Width returns the display width of the path in runes.
func (e Entry) Width() int {
	return utf8.RuneCountInString(e.Path)
}

// Line renders the entry with the path left-aligned in a column of the given
// width, followed by its kind tag.
func (e Entry) Line(width int) string {
	pad := width - e.Width()
	if pad < 0 {
		pad = 0
	}
	return e.Path + strings.Repeat(" ", pad) + e.Kind.Tag()
}
