package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/nikbrunner/bzfm/internal/model"
	"github.com/nikbrunner/bzfm/internal/pathutil"
)

// FileError reports a store file that could not be created.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("create bookmark file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// lineEnding returns the platform's native line terminator.
func lineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// EnsureFileExists creates the store file, and any missing parent
// directories, when it does not exist yet.
func EnsureFileExists(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return &FileError{Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &FileError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return &FileError{Path: path, Err: err}
	}
	return nil
}

// Read returns the bookmarks stored at path in file order.
// A missing file reads as an empty list.
func Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read bookmarks: %w", err)
	}

	bookmarks := []string{}
	for _, line := range strings.Split(string(data), "\n") {
		// TrimSpace also drops the \r of CRLF endings
		if line = strings.TrimSpace(line); line != "" {
			bookmarks = append(bookmarks, line)
		}
	}
	return bookmarks, nil
}

// Write replaces the store file with one bookmark per line.
// Every line is terminated; an empty list produces an empty file.
func Write(path string, bookmarks []string) error {
	var b strings.Builder
	eol := lineEnding()
	for _, p := range bookmarks {
		b.WriteString(p)
		b.WriteString(eol)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("write bookmarks: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write bookmarks: %w", err)
	}
	return nil
}

// Dedup returns a new list keeping the first occurrence of each bookmark.
func Dedup(bookmarks []string) []string {
	seen := make(map[string]bool, len(bookmarks))
	result := make([]string, 0, len(bookmarks))
	for _, p := range bookmarks {
		if seen[p] {
			continue
		}
		seen[p] = true
		result = append(result, p)
	}
	return result
}

// exists reports whether path can be stat'ed. Permission errors count as
// missing.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// FilterExisting keeps bookmarks that currently exist, without duplicates.
func FilterExisting(bookmarks []string) []string {
	result := make([]string, 0, len(bookmarks))
	for _, p := range bookmarks {
		if exists(p) {
			result = append(result, p)
		}
	}
	return Dedup(result)
}

// FilterFiles keeps bookmarks that exist and are regular files.
func FilterFiles(bookmarks []string) []string {
	return filterMode(bookmarks, func(info os.FileInfo) bool {
		return info.Mode().IsRegular()
	})
}

// FilterDirs keeps bookmarks that exist and are directories.
func FilterDirs(bookmarks []string) []string {
	return filterMode(bookmarks, func(info os.FileInfo) bool {
		return info.IsDir()
	})
}

func filterMode(bookmarks []string, keep func(os.FileInfo) bool) []string {
	result := make([]string, 0, len(bookmarks))
	for _, p := range bookmarks {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if keep(info) {
			result = append(result, p)
		}
	}
	return result
}

// Filter applies a FilterKind. FilterAll returns bookmarks unchanged.
func Filter(bookmarks []string, kind model.FilterKind) []string {
	switch kind {
	case model.FilterFiles:
		return FilterFiles(bookmarks)
	case model.FilterDirs:
		return FilterDirs(bookmarks)
	case model.FilterAll:
		return bookmarks
	default:
		panic(fmt.Sprintf("storage: unknown filter kind %d", kind))
	}
}

// normalize resolves candidates to absolute paths, skipping any that fail
// to resolve.
func normalize(candidates []string) []string {
	result := make([]string, 0, len(candidates))
	for _, c := range candidates {
		abs, err := pathutil.Resolve(c)
		if err != nil {
			continue
		}
		result = append(result, abs)
	}
	return result
}

// Add resolves candidates, drops those that do not exist and appends the
// rest to the stored list. Bookmarks already present keep their position.
// Returns the merged list.
func Add(path string, candidates []string) ([]string, error) {
	existing, err := Read(path)
	if err != nil {
		return nil, err
	}

	var added []string
	for _, p := range normalize(candidates) {
		if exists(p) {
			added = append(added, p)
		}
	}

	merged := Dedup(append(existing, added...))
	if err := Write(path, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// Remove drops the resolved targets from the store, whether or not they
// still exist. Returns the remaining list and how many entries went away.
func Remove(path string, targets []string) ([]string, int, error) {
	existing, err := Read(path)
	if err != nil {
		return nil, 0, err
	}

	drop := make(map[string]bool, len(targets))
	for _, p := range normalize(targets) {
		drop[p] = true
	}

	remaining := make([]string, 0, len(existing))
	for _, p := range existing {
		if !drop[p] {
			remaining = append(remaining, p)
		}
	}

	if err := Write(path, remaining); err != nil {
		return nil, 0, err
	}
	return remaining, len(existing) - len(remaining), nil
}

// Cleanup rewrites the store without duplicates and missing paths.
// removed counts both kinds together.
func Cleanup(path string) (cleaned []string, removed int, err error) {
	original, err := Read(path)
	if err != nil {
		return nil, 0, err
	}

	cleaned = FilterExisting(Dedup(original))
	if err := Write(path, cleaned); err != nil {
		return nil, 0, err
	}
	return cleaned, len(original) - len(cleaned), nil
}

// Clear empties the store.
func Clear(path string) error {
	return Write(path, []string{})
}
