package blob

import (
	"context"
	"errors"
	"testing"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestFileReadWrite(t *testing.T) {
	ctx := context.Background()
	s := newTestFileStore(t)

	if err := s.Write(ctx, "notes", []byte(`[{"content":"x"}]`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := s.Read(ctx, "notes")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != `[{"content":"x"}]` {
		t.Errorf("unexpected data: %s", data)
	}
}

func TestFileOverwrite(t *testing.T) {
	ctx := context.Background()
	s := newTestFileStore(t)

	s.Write(ctx, "notes", []byte("old"))
	if err := s.Write(ctx, "notes", []byte("new")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, _ := s.Read(ctx, "notes")
	if string(data) != "new" {
		t.Errorf("expected full replacement, got %s", data)
	}
}

func TestFileNotFound(t *testing.T) {
	s := newTestFileStore(t)
	_, err := s.Read(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileList(t *testing.T) {
	ctx := context.Background()
	s := newTestFileStore(t)

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected empty list, got %v", names)
	}

	s.Write(ctx, "a", []byte("1"))
	s.Write(ctx, "b", []byte("2"))
	names, _ = s.List(ctx)
	if len(names) != 2 {
		t.Errorf("expected 2 names, got %v", names)
	}
}
