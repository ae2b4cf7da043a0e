// Package fileutil provides file system utilities.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrClosed is returned when writing to a committed or aborted file.
var ErrClosed = errors.New("fileutil: file already closed")

// AtomicFile collects writes in a temporary file next to the target and
// renames it into place on Commit. Readers see either the previous file or
// the complete new one, never a partial write.
type AtomicFile struct {
	tmp    *os.File
	target string
	perm   os.FileMode
}

// CreateAtomic starts a new atomic write of filename.
func CreateAtomic(filename string, perm os.FileMode) (*AtomicFile, error) {
	// Same directory keeps the rename on one filesystem
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	return &AtomicFile{tmp: tmp, target: filename, perm: perm}, nil
}

func (f *AtomicFile) Write(p []byte) (int, error) {
	if f.tmp == nil {
		return 0, ErrClosed
	}
	return f.tmp.Write(p)
}

// Commit syncs the temporary file and renames it over the target.
func (f *AtomicFile) Commit() error {
	if f.tmp == nil {
		return ErrClosed
	}
	tmp := f.tmp
	f.tmp = nil
	tmpPath := tmp.Name()

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, f.perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, f.target); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Abort discards the temporary file. It is a no-op after Commit.
func (f *AtomicFile) Abort() error {
	if f.tmp == nil {
		return nil
	}
	tmp := f.tmp
	f.tmp = nil
	tmp.Close()
	return os.Remove(tmp.Name())
}
