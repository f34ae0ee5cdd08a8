// Package blob provides the backing byte-stream store for memory
// buckets: one named blob per bucket with whole-blob read and
// overwrite semantics. Two backends are provided, a JSON-file-per-name
// directory store and a single-file SQLite store.
package blob

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read for a name that was never written.
var ErrNotFound = errors.New("blob not found")

// Store is a named blob store. Implementations must be safe for
// concurrent use; callers serialize writes to the same name themselves.
type Store interface {
	// Read returns the full content stored under name.
	// Returns ErrNotFound if the name was never written.
	Read(ctx context.Context, name string) ([]byte, error)

	// Write replaces the full content stored under name.
	Write(ctx context.Context, name string, data []byte) error

	// List returns all names that currently hold content.
	List(ctx context.Context) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}
