// Package store provides key-value backends for persisting saved sheets.
//
// Every backend satisfies sheet.Store: string keys, string values, and an
// ok flag distinguishing "never written" from an empty value.
package store

import (
	"fmt"
	"io"
	"path/filepath"
)

// KV is a closable string key-value store.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	io.Closer
}

// Backend names a store implementation.
type Backend string

const (
	SQLiteBackend Backend = "sqlite"
	FileBackend   Backend = "file"
	MemoryBackend Backend = "memory"
)

// Backends lists every supported backend.
var Backends = []Backend{SQLiteBackend, FileBackend, MemoryBackend}

// IsValid reports whether b is a known backend.
func (b Backend) IsValid() bool {
	for _, known := range Backends {
		if b == known {
			return true
		}
	}
	return false
}

// DefaultFilename returns the file name used for b inside the data dir.
func (b Backend) DefaultFilename() string {
	switch b {
	case SQLiteBackend:
		return "goalsheet.db"
	case FileBackend:
		return "goalsheet.json"
	default:
		return ""
	}
}

// Open opens the backend at path. If path is empty the backend's default
// file inside dataDir is used. The memory backend ignores both.
func Open(b Backend, dataDir, path string) (KV, error) {
	if !b.IsValid() {
		return nil, fmt.Errorf("invalid store backend: %q", b)
	}
	if path == "" && b != MemoryBackend {
		path = filepath.Join(dataDir, b.DefaultFilename())
	}

	var (
		kv  KV
		err error
	)
	switch b {
	case SQLiteBackend:
		kv, err = OpenSQLite(path)
	case FileBackend:
		kv, err = OpenFile(path)
	default:
		kv = NewMemory()
	}
	if err != nil {
		return nil, err
	}
	return kv, nil
}
