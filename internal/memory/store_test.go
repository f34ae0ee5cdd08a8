package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/hobbesian/leviathan/internal/blob"
)

// genFunc adapts a function to the Generator interface for tests.
type genFunc func(ctx context.Context, prompt string, temperature float32) (string, error)

func (f genFunc) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	return f(ctx, prompt, temperature)
}

func staticGen(text string) Generator {
	return genFunc(func(context.Context, string, float32) (string, error) {
		return text, nil
	})
}

func failingGen(err error) Generator {
	return genFunc(func(context.Context, string, float32) (string, error) {
		return "", err
	})
}

func newTestStore(t *testing.T, gen Generator, opts ...Option) *Store {
	t.Helper()
	blobs, err := blob.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("create blob store: %v", err)
	}
	s, err := New(context.Background(), blobs, gen, opts...)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, staticGen("summary"))

	for _, c := range []string{"a", "b", "c", "d"} {
		if _, err := s.Append(ctx, "notes", c, nil); err != nil {
			t.Fatalf("append %q: %v", c, err)
		}
	}

	got := s.Recent("notes", 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	// Last n appended, oldest first.
	for i, want := range []string{"b", "c", "d"} {
		if got[i].Content != want {
			t.Errorf("entry %d: expected %q, got %q", i, want, got[i].Content)
		}
	}

	// Limit above the bucket size returns everything.
	if got := s.Recent("notes", 10); len(got) != 4 {
		t.Errorf("expected 4 entries, got %d", len(got))
	}
}

func TestLazyBucketCreation(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, staticGen("summary"))

	entry, err := s.Append(ctx, "new_bucket", "x", map[string]any{})
	if err != nil {
		t.Fatalf("append to unseen bucket: %v", err)
	}
	if entry.ID == "" {
		t.Error("expected non-empty ID")
	}

	got := s.Recent("new_bucket", 1)
	if len(got) != 1 || got[0].Content != "x" {
		t.Errorf("expected one entry with content \"x\", got %v", got)
	}
}

func TestRecentUnknownBucket(t *testing.T) {
	s := newTestStore(t, staticGen("summary"))
	if got := s.Recent("never_seen", 5); len(got) != 0 {
		t.Errorf("expected empty sequence, got %v", got)
	}
}

func TestRecentDefaultLimit(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, staticGen("summary"))
	s.Register("notes", Policy{Retention: 2})

	for _, c := range []string{"a", "b", "c"} {
		s.Append(ctx, "notes", c, nil)
	}

	// Zero limit falls back to the bucket's retention count.
	got := s.Recent("notes", 0)
	if len(got) != 2 || got[0].Content != "b" || got[1].Content != "c" {
		t.Errorf("expected [b c], got %v", got)
	}
}

func TestHydration(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	blobs, _ := blob.NewFileStore(dir)
	s, err := New(ctx, blobs, staticGen("summary"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s.Register("notes", Policy{Retention: 2})
	for _, c := range []string{"a", "b", "c", "d", "e"} {
		s.Append(ctx, "notes", c, nil)
	}
	s.Close()

	// A fresh store over the same directory sees entries and summaries.
	blobs2, _ := blob.NewFileStore(dir)
	s2, err := New(ctx, blobs2, staticGen("summary"))
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s2.Close()

	got := s2.Recent("notes", 10)
	if len(got) != 2 || got[0].Content != "d" || got[1].Content != "e" {
		t.Errorf("expected hydrated [d e], got %v", got)
	}
	if sums := s2.Summaries("notes"); len(sums) != 1 {
		t.Errorf("expected 1 hydrated summary, got %d", len(sums))
	}
}

func TestAppendReservedName(t *testing.T) {
	s := newTestStore(t, staticGen("summary"))
	if _, err := s.Append(context.Background(), "notes_summaries", "x", nil); err == nil {
		t.Error("expected error appending to a summary bucket")
	}
}

func TestStorageErrorPropagates(t *testing.T) {
	ctx := context.Background()
	blobs := &failingBlobStore{}
	s, err := New(ctx, blobs, staticGen("summary"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}

	_, err = s.Append(ctx, "notes", "a", nil)
	if !errors.Is(err, ErrStorage) {
		t.Errorf("expected ErrStorage, got %v", err)
	}
	// The failed append must not leave the entry in memory.
	if n := s.Len("notes"); n != 0 {
		t.Errorf("expected empty bucket after failed write, got %d entries", n)
	}
}

// failingBlobStore rejects all writes.
type failingBlobStore struct{}

func (f *failingBlobStore) Read(context.Context, string) ([]byte, error) {
	return nil, blob.ErrNotFound
}
func (f *failingBlobStore) Write(context.Context, string, []byte) error {
	return fmt.Errorf("disk full")
}
func (f *failingBlobStore) List(context.Context) ([]string, error) {
	return nil, nil
}

func (f *failingBlobStore) Close() error {
	return nil
}

func TestConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, staticGen("summary"))
	s.Register("same", Policy{Retention: 100})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Half hammer one bucket, half fan out across buckets.
			if i%2 == 0 {
				s.Append(ctx, "same", fmt.Sprintf("entry-%d", i), nil)
			} else {
				s.Append(ctx, fmt.Sprintf("bucket-%d", i), "x", nil)
			}
		}(i)
	}
	wg.Wait()

	if n := s.Len("same"); n != 10 {
		t.Errorf("expected 10 entries in shared bucket, got %d", n)
	}
	for i := 1; i < 20; i += 2 {
		if n := s.Len(fmt.Sprintf("bucket-%d", i)); n != 1 {
			t.Errorf("bucket-%d: expected 1 entry, got %d", i, n)
		}
	}
}
