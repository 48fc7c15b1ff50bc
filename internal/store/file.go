package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is a Store keeping each key in its own JSON file under a data
// directory.
type File struct {
	dataDir string
}

// NewFile creates a file-backed store rooted at dataDir, creating the
// directory if needed. A leading "~/" is expanded to the user's home.
func NewFile(dataDir string) (*File, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &File{dataDir: dataDir}, nil
}

// keyPath maps a store key to a file path. Keys may carry characters that
// are awkward in filenames (the planner keys start with '@'), so anything
// outside [a-zA-Z0-9._-] becomes '_'.
func (f *File) keyPath(key string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		}
		return '_'
	}, strings.TrimPrefix(key, "@"))
	return filepath.Join(f.dataDir, sanitized+".json")
}

// Read loads the blob for key, reporting ok=false if the file does not
// exist.
func (f *File) Read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, true, nil
}

// Write replaces the blob for key.
func (f *File) Write(key string, data []byte) error {
	if err := os.WriteFile(f.keyPath(key), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
