// Package storage persists the site document to a single JSON file slot.
// The whole value is replaced on every save; a file lock keeps a second
// process instance from clobbering it.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/sitemasterhq/sitemaster/types"
)

const lockTimeout = 3 * time.Second

// ParseError reports a slot whose contents exist but cannot be decoded.
// Callers treat it as "fall back to defaults" rather than a hard failure.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse document at %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// File is a JSON file slot holding one serialized document.
type File struct {
	path     string
	fileLock *flock.Flock
	mu       sync.Mutex
}

// NewFile creates a file slot at path. The parent directory is created on
// first save.
func NewFile(path string) *File {
	return &File{
		path:     path,
		fileLock: flock.New(path + ".lock"),
	}
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Load reads the stored document. A missing or empty slot yields (nil, nil)
// so the caller can default-initialize. Unparseable content yields a
// *ParseError.
func (f *File) Load() (*types.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	unlock, err := f.acquireLock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: f.path, Err: err}
	}
	return &doc, nil
}

// Save serializes the document and replaces the slot atomically (write to a
// temp file, then rename). Write failures propagate to the caller.
func (f *File) Save(doc *types.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	unlock, err := f.acquireLock()
	if err != nil {
		return err
	}
	defer unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	tmpFile := f.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpFile, f.path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}

// Close removes the lock file.
func (f *File) Close() error {
	_ = os.Remove(f.path + ".lock")
	return nil
}

func (f *File) acquireLock() (func(), error) {
	// The lock file lives next to the slot, so the directory must exist
	// before the first lock attempt.
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	locked, err := f.fileLock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("could not acquire file lock for %s", f.path)
	}
	return func() { _ = f.fileLock.Unlock() }, nil
}
