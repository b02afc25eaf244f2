package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikbrunner/bzfm/internal/pathutil"
)

// BookmarkEnvVar overrides the store file location.
const BookmarkEnvVar = "BZFM_BOOKMARKS_FILE"

const defaultBookmarkFile = ".bzfm.txt"

// Storage defines the operations the CLI performs on the bookmark list.
type Storage interface {
	Path() string
	Load() ([]string, error)
	Save(bookmarks []string) error
	Add(candidates []string) ([]string, error)
	Remove(targets []string) ([]string, int, error)
	Cleanup() ([]string, int, error)
	Clear() error
}

// TextStorage implements Storage on a plain-text file, one path per line.
type TextStorage struct {
	path string
}

// NewTextStorage creates a TextStorage for the given file path.
func NewTextStorage(path string) *TextStorage {
	return &TextStorage{path: path}
}

// Path returns the store file path.
func (s *TextStorage) Path() string {
	return s.path
}

// Load reads all bookmarks.
func (s *TextStorage) Load() ([]string, error) {
	return Read(s.path)
}

// Save overwrites the store with bookmarks.
func (s *TextStorage) Save(bookmarks []string) error {
	return Write(s.path, bookmarks)
}

// Add merges existing candidates into the store.
func (s *TextStorage) Add(candidates []string) ([]string, error) {
	return Add(s.path, candidates)
}

// Remove drops targets from the store.
func (s *TextStorage) Remove(targets []string) ([]string, int, error) {
	return Remove(s.path, targets)
}

// Cleanup drops duplicates and missing paths.
func (s *TextStorage) Cleanup() ([]string, int, error) {
	return Cleanup(s.path)
}

// Clear empties the store.
func (s *TextStorage) Clear() error {
	return Clear(s.path)
}

// BookmarkFilePath returns the store file location: $BZFM_BOOKMARKS_FILE if
// set, otherwise ~/.bzfm.txt.
func BookmarkFilePath() (string, error) {
	if env := os.Getenv(BookmarkEnvVar); env != "" {
		return pathutil.ExpandHome(env), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, defaultBookmarkFile), nil
}

// ResolveBookmarkFile returns the store file location, creating an empty
// file there if none exists.
func ResolveBookmarkFile() (string, error) {
	path, err := BookmarkFilePath()
	if err != nil {
		return "", err
	}
	if err := EnsureFileExists(path); err != nil {
		return "", err
	}
	return path, nil
}

// OpenStorage resolves the store file and opens it.
func OpenStorage() (*TextStorage, error) {
	path, err := ResolveBookmarkFile()
	if err != nil {
		return nil, err
	}
	return NewTextStorage(path), nil
}
