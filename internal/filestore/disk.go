package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore stores image files under a single base directory. File names are
// generated, never caller-supplied paths, so everything stays inside baseDir.
type DiskStore struct {
	baseDir string
}

// NewDiskStore creates the base directory if needed
func NewDiskStore(baseDir string) (*DiskStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create base dir %s: %w", baseDir, err)
	}
	return &DiskStore{baseDir: baseDir}, nil
}

// Store writes the file under the given name
func (s *DiskStore) Store(r io.Reader, name string) error {
	f, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("filestore: create %s: %w", name, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("filestore: write %s: %w", name, err)
	}
	return nil
}

// Exists reports whether a regular file with the given name is present
func (s *DiskStore) Exists(name string) bool {
	info, err := os.Stat(s.path(name))
	return err == nil && info.Mode().IsRegular()
}

// Remove deletes the file with the given name
func (s *DiskStore) Remove(name string) error {
	if err := os.Remove(s.path(name)); err != nil {
		return fmt.Errorf("filestore: remove %s: %w", name, err)
	}
	return nil
}

func (s *DiskStore) path(name string) string {
	return filepath.Join(s.baseDir, filepath.Base(name))
}
