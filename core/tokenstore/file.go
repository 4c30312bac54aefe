package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// File is a Store backed by a JSON file on disk, the SDK's analogue of
// browser local storage. Reads are served from memory; every mutation is
// flushed to disk via an atomic rename so a crash never leaves a torn file.
//
// An unreadable or corrupted file degrades to an empty store rather than
// failing construction: a lost credential is equivalent to being logged out.
type File struct {
	mu    sync.RWMutex
	path  string
	slots map[Key]string
}

// NewFile creates a file-backed store at path, loading any previously
// persisted slots. The parent directory is created if missing.
func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Join(ErrPersist, err)
	}

	f := &File{
		path:  path,
		slots: make(map[Key]string),
	}

	data, err := os.ReadFile(path)
	if err == nil {
		// Decode errors are ignored: a corrupted state file means logged out.
		_ = json.Unmarshal(data, &f.slots)
	}

	return f, nil
}

// Get returns the stored value for key, or "" and false when absent.
func (f *File) Get(_ context.Context, key Key) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	value, ok := f.slots[key]
	return value, ok
}

// Set stores value under key and flushes the state file.
// The in-memory slot is updated even when the flush fails, so subsequent
// reads within the process stay consistent with the write.
func (f *File) Set(_ context.Context, key Key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.slots[key] = value
	return f.flush()
}

// Remove deletes the slot and flushes the state file.
func (f *File) Remove(_ context.Context, key Key) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.slots, key)
	return f.flush()
}

// flush writes the current slots atomically. Caller must hold the write lock.
func (f *File) flush() error {
	data, err := json.Marshal(f.slots)
	if err != nil {
		return errors.Join(ErrPersist, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Join(ErrPersist, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return errors.Join(ErrPersist, err)
	}
	return nil
}
