package blob

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteReadWrite(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	if err := s.Write(ctx, "notes", []byte("payload")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := s.Read(ctx, "notes")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("unexpected data: %s", data)
	}

	// Overwrite replaces the whole blob.
	s.Write(ctx, "notes", []byte("replaced"))
	data, _ = s.Read(ctx, "notes")
	if string(data) != "replaced" {
		t.Errorf("expected replacement, got %s", data)
	}
}

func TestSQLiteNotFound(t *testing.T) {
	s := newTestSQLiteStore(t)
	_, err := s.Read(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteList(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteStore(t)

	s.Write(ctx, "b", []byte("2"))
	s.Write(ctx, "a", []byte("1"))

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected sorted [a b], got %v", names)
	}
}
