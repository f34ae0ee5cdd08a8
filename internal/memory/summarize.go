package memory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hobbesian/leviathan/internal/model"
)

// summaryTemperature favors fidelity over creativity when compacting.
const summaryTemperature = 0.3

// renderLimit caps how much of each entry is shown to the summarizer.
const renderLimit = 200

// Summarize compacts a bucket on explicit request, summarizing
// everything older than the bucket's retention count. Unlike the
// compaction triggered by Append, errors here propagate to the caller
// unwrapped by any append result. Buckets at or below their retention
// count are left alone.
func (s *Store) Summarize(ctx context.Context, bucket string) error {
	lk := s.lockFor(bucket)
	lk.Lock()
	defer lk.Unlock()
	return s.compactLocked(ctx, bucket, s.policyFor(bucket))
}

// maybeCompact evaluates the lazy trigger: compaction runs only after
// an append pushes the bucket strictly above twice its retention count.
// Callers hold the bucket lock.
func (s *Store) maybeCompact(ctx context.Context, bucket string) error {
	policy := s.policyFor(bucket)
	if s.Len(bucket) <= 2*policy.Retention {
		return nil
	}
	return s.compactLocked(ctx, bucket, policy)
}

// compactLocked folds everything but the last Retention entries into a
// generated summary, appends the summary — durably — to the bucket's
// summary bucket, and only then truncates the source in memory and on
// disk. A failed generation or a cancelled context leaves the source
// bucket untouched.
func (s *Store) compactLocked(ctx context.Context, bucket string, policy Policy) error {
	s.mu.Lock()
	entries := s.buckets[bucket]
	s.mu.Unlock()

	if len(entries) <= policy.Retention {
		return nil // nothing old enough to summarize
	}
	toKeep := entries[len(entries)-policy.Retention:]
	toSummarize := entries[:len(entries)-policy.Retention]

	if s.gen == nil {
		return fmt.Errorf("no generator configured")
	}

	prompt := policy.Prompt(renderBlock(toSummarize))
	text, err := s.gen.Generate(ctx, prompt, summaryTemperature)
	if err != nil {
		return err
	}

	summary := model.SummaryEntry{
		ID:                s.newID(),
		Content:           text,
		Timestamp:         time.Now().UTC(),
		SourceBucket:      bucket,
		EntriesSummarized: len(toSummarize),
		FirstTimestamp:    toSummarize[0].Timestamp,
		LastTimestamp:     toSummarize[len(toSummarize)-1].Timestamp,
	}

	name := SummaryBucket(bucket)
	s.mu.Lock()
	s.summaries[name] = append(s.summaries[name], summary)
	s.mu.Unlock()

	if err := s.persistSummaries(ctx, name); err != nil {
		s.mu.Lock()
		sums := s.summaries[name]
		s.summaries[name] = sums[:len(sums)-1]
		s.mu.Unlock()
		return err
	}

	// The summary is durable; the source may now shrink.
	kept := make([]model.MemoryEntry, len(toKeep))
	copy(kept, toKeep)
	s.mu.Lock()
	s.buckets[bucket] = kept
	s.mu.Unlock()

	if err := s.persistBucket(ctx, bucket); err != nil {
		s.mu.Lock()
		s.buckets[bucket] = entries
		s.mu.Unlock()
		return err
	}

	s.log.Info("compacted bucket",
		zap.String("bucket", bucket),
		zap.Int("summarized", summary.EntriesSummarized),
		zap.Int("kept", len(kept)))
	return nil
}

// renderBlock flattens entries into one line each for the summarizer:
// an upper-cased role label when the entry carries one, a generic
// marker otherwise, and content truncated to a fixed display length.
func renderBlock(entries []model.MemoryEntry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		label := "ENTRY"
		if role := e.Role(); role != "" {
			label = strings.ToUpper(role)
		}
		lines = append(lines, label+": "+truncate(e.Content, renderLimit))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
