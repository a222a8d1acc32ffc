// Package storage persists uploaded files (payment proofs, project
// archives, certificate templates) on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store saves uploaded files and opens them back for download. Save returns
// a relative path usable as a stable file reference in the database.
type Store interface {
	Save(category, filename string, r io.Reader) (string, error)
	Open(relPath string) (io.ReadCloser, error)
}

// LocalStore keeps files under a base directory, one subdirectory per
// category. Stored names are prefixed with a fresh UUID so client-supplied
// filenames never collide.
type LocalStore struct {
	base string
}

// NewLocalStore creates the base directory if needed
func NewLocalStore(base string) (*LocalStore, error) {
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &LocalStore{base: base}, nil
}

// Save writes the reader to <base>/<category>/<uuid>_<filename> and returns
// the path relative to the base directory
func (s *LocalStore) Save(category, filename string, r io.Reader) (string, error) {
	dir := filepath.Join(s.base, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating category dir: %w", err)
	}

	name := uuid.NewString() + "_" + sanitize(filename)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(category, name)), nil
}

// Open returns the stored file for reading. Paths that escape the base
// directory are rejected.
func (s *LocalStore) Open(relPath string) (io.ReadCloser, error) {
	clean := filepath.Clean(filepath.FromSlash(relPath))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		return nil, os.ErrNotExist
	}
	return os.Open(filepath.Join(s.base, clean))
}

// sanitize strips path components and characters that do not belong in a
// stored filename
func sanitize(filename string) string {
	name := filepath.Base(filepath.FromSlash(filename))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." || name == ".." {
		name = "upload"
	}
	return name
}

var _ Store = (*LocalStore)(nil)
