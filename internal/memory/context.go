package memory

import (
	"github.com/hobbesian/leviathan/internal/model"
)

// SummaryPrefix marks a synthesized summary entry's content.
const SummaryPrefix = "SUMMARY OF EARLIER ENTRIES: "

// MetaIsSummary flags a synthesized summary entry in metadata.
const MetaIsSummary = "is_summary"

// MetaEntriesSummarized carries the number of entries a synthesized
// summary entry stands in for.
const MetaEntriesSummarized = "entries_summarized"

// WithContext returns the bucket's compacted history and recent detail
// as one homogeneous sequence: the latest summary, if any, synthesized
// as an entry-shaped value, followed by the most recent entries up to
// the bucket's retention count. The bucket lock is held for the whole
// read, so a concurrent compaction is observed either entirely or not
// at all.
func (s *Store) WithContext(bucket string) []model.MemoryEntry {
	lk := s.lockFor(bucket)
	lk.Lock()
	defer lk.Unlock()

	policy := s.policyFor(bucket)
	var out []model.MemoryEntry

	s.mu.Lock()
	latest := s.latestSummaryLocked(bucket)
	s.mu.Unlock()
	if latest != nil {
		out = append(out, summaryAsEntry(*latest))
	}
	return append(out, s.recentLocked(bucket, policy.Retention)...)
}

// WithContextMulti concatenates WithContext results for several buckets
// in the caller's order, with no deduplication across buckets.
func (s *Store) WithContextMulti(buckets ...string) []model.MemoryEntry {
	var out []model.MemoryEntry
	for _, bucket := range buckets {
		out = append(out, s.WithContext(bucket)...)
	}
	return out
}

func summaryAsEntry(sum model.SummaryEntry) model.MemoryEntry {
	return model.MemoryEntry{
		ID:        sum.ID,
		Content:   SummaryPrefix + sum.Content,
		Timestamp: sum.Timestamp,
		Metadata: map[string]any{
			MetaIsSummary:         true,
			MetaEntriesSummarized: sum.EntriesSummarized,
			model.MetaRole:        "system",
		},
	}
}
