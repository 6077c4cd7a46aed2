// Package storage provides the persistent key-value slots palettes and
// preferences are written to.
package storage

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Store is a string key-value store. Set overwrites any prior value.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend string
	// Path is the JSON file for the file backend or the database file
	// (or ":memory:") for the sqlite backend. Ignored by the memory backend.
	Path string
}

// Backends returns the supported backend names, sorted.
func Backends() []string {
	names := []string{BackendFile, BackendSQLite, BackendMemory}
	sort.Strings(names)
	return names
}

// Open returns the Store described by opts.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case BackendFile, "":
		if opts.Path == "" {
			return nil, fmt.Errorf("file backend requires a path")
		}
		return NewFileStore(opts.Path), nil
	case BackendSQLite:
		if opts.Path == "" {
			return nil, fmt.Errorf("sqlite backend requires a path")
		}
		return NewSQLStore(opts.Path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %s (available: %s)", ErrUnknownBackend, opts.Backend, strings.Join(Backends(), ", "))
	}
}
