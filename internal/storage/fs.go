package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrNotFound = errors.New("asset not found")

// Asset is an open file from the asset directory. Callers must Close it.
type Asset struct {
	*os.File
	Filename string
	ModTime  time.Time
}

// FSStore serves files from a single flat directory (the exam documents).
type FSStore struct{ base string }

// NewFSStore uses base as the asset directory, creating it if missing.
func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "static"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, fmt.Errorf("storage: mkdir %s: %w", base, err)
	}
	return &FSStore{base: base}, nil
}

// Open returns the named file. Names that leave the directory, and
// directories, are reported as ErrNotFound.
func (s *FSStore) Open(name string) (*Asset, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, ErrNotFound
	}
	f, err := os.Open(filepath.Join(s.base, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: open %s: %w", name, err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("storage: stat %s: %w", name, err)
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, ErrNotFound
	}
	return &Asset{File: f, Filename: name, ModTime: st.ModTime()}, nil
}

// Exists reports whether name can be served.
func (s *FSStore) Exists(name string) bool {
	a, err := s.Open(name)
	if err != nil {
		return false
	}
	_ = a.Close()
	return true
}
