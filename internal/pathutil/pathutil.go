// Package pathutil normalizes user-supplied paths before they are stored.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces a leading "~" or "~/" with the current user's home
// directory. Other "~" forms such as "~user/dir" are returned unchanged, as
// is p when the home directory cannot be determined.
func ExpandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}

// Resolve expands the home shorthand and makes p absolute against the
// working directory. Symlinks are left as they are.
func Resolve(p string) (string, error) {
	return filepath.Abs(ExpandHome(p))
}
