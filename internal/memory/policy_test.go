package memory

import (
	"context"
	"testing"
)

func TestTemplateSubstitution(t *testing.T) {
	f := Template("before {entries} after")
	if got := f("BLOCK"); got != "before BLOCK after" {
		t.Errorf("unexpected render: %q", got)
	}
}

func TestTemplateWithoutPlaceholder(t *testing.T) {
	f := Template("summarize this")
	if got := f("BLOCK"); got != "summarize this\n\nBLOCK" {
		t.Errorf("expected block appended, got %q", got)
	}
}

func TestRegisterUpsert(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, staticGen("summary"))

	s.Register("notes", Policy{Retention: 4})
	s.Register("notes", Policy{Retention: 2}) // replaces, not merges

	for _, c := range []string{"a", "b", "c"} {
		s.Append(ctx, "notes", c, nil)
	}
	if got := s.Recent("notes", 0); len(got) != 2 {
		t.Errorf("expected replaced retention of 2, got %d entries", len(got))
	}
}

func TestRegisterNormalizesInvalidPolicy(t *testing.T) {
	s := newTestStore(t, staticGen("summary"))
	s.Register("notes", Policy{Retention: 0})

	p := s.policyFor("notes")
	if p.Retention != DefaultRetention {
		t.Errorf("expected default retention, got %d", p.Retention)
	}
	if p.Prompt == nil {
		t.Error("expected default prompt template")
	}
}

func TestUnregisteredBucketUsesDefaultPolicy(t *testing.T) {
	s := newTestStore(t, staticGen("summary"))
	if p := s.policyFor("anything"); p.Retention != DefaultRetention {
		t.Errorf("expected default retention %d, got %d", DefaultRetention, p.Retention)
	}
}

func TestWithDefaultPolicyOption(t *testing.T) {
	s := newTestStore(t, staticGen("summary"), WithDefaultPolicy(Policy{Retention: 9}))
	if p := s.policyFor("anything"); p.Retention != 9 {
		t.Errorf("expected retention 9, got %d", p.Retention)
	}
}
