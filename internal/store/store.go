// Package store maps the data file path to raw text and back. It knows nothing about the schema.
package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// File is the data file on disk.
type File struct {
	Path string
	// Atomic writes to a sibling temp file and renames it over Path.
	// When false, Save truncates and rewrites Path in place.
	Atomic bool
}

// New returns a File store for path.
func New(path string, atomic bool) *File {
	return &File{Path: path, Atomic: atomic}
}

// Load returns the whole content of the file, creating it empty if it does not exist.
// A missing file and an empty file both yield "".
func (f *File) Load() (string, error) {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	fh, err := os.OpenFile(f.Path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return "", fmt.Errorf("open data file: %w", err)
	}
	defer fh.Close()

	data, err := io.ReadAll(fh)
	if err != nil {
		return "", fmt.Errorf("read data file: %w", err)
	}
	log.Debug("data file loaded", "path", f.Path, "bytes", len(data))
	return string(data), nil
}

// Save replaces the file content with text.
func (f *File) Save(text string) error {
	if !f.Atomic {
		if err := os.WriteFile(f.Path, []byte(text), 0o644); err != nil {
			return fmt.Errorf("write data file: %w", err)
		}
		log.Debug("data file written", "path", f.Path, "bytes", len(text))
		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.Path), filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(f.Path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, f.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace data file: %w", err)
	}
	log.Debug("data file replaced", "path", f.Path, "bytes", len(text))
	return nil
}
