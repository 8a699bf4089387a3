package fs

import (
	"os"
	"path/filepath"
)

// ArchiveFile writes an archive with atomic update semantics.
// Content is written to a temporary file next to the target, which is
// renamed over the target on Commit.
type ArchiveFile struct {
	path string
	f    *os.File
}

// CreateArchive opens a temporary file for the archive at path, creating
// parent directories as needed.
func CreateArchive(path string) (*ArchiveFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.Create(path + ".tmp")
	if err != nil {
		return nil, err
	}
	return &ArchiveFile{path: path, f: f}, nil
}

// Path returns the final location of the archive.
func (a *ArchiveFile) Path() string {
	return a.path
}

func (a *ArchiveFile) Write(p []byte) (int, error) {
	return a.f.Write(p)
}

// Commit flushes the temporary file and moves it to the final location,
// replacing any existing file.
func (a *ArchiveFile) Commit() error {
	if err := a.f.Sync(); err != nil {
		_ = a.Abort()
		return err
	}
	if err := a.f.Close(); err != nil {
		_ = os.Remove(a.f.Name())
		return err
	}
	return os.Rename(a.f.Name(), a.path)
}

// Abort discards the temporary file. The final location is left untouched.
func (a *ArchiveFile) Abort() error {
	_ = a.f.Close()
	if err := os.Remove(a.f.Name()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
