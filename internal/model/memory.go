// Package model defines the core memory data types.
package model

import "time"

// MetaRole is the metadata key carrying an entry's speaker role.
// Entries in conversation buckets set it to "user" or "assistant".
const MetaRole = "role"

// MemoryEntry is a single immutable record in a bucket. Entries are
// created by pipeline stages and destroyed only by compaction, which
// folds them into a SummaryEntry.
type MemoryEntry struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Role returns the entry's speaker role from metadata, or "" if none.
func (e MemoryEntry) Role() string {
	if r, ok := e.Metadata[MetaRole].(string); ok {
		return r
	}
	return ""
}

// SummaryEntry is the compacted residue of a contiguous prefix of a
// bucket's entries, in original temporal order. A bucket may accumulate
// several of these over its lifetime; only the most recent one is
// surfaced by context assembly.
type SummaryEntry struct {
	ID                string    `json:"id"`
	Content           string    `json:"content"`
	Timestamp         time.Time `json:"timestamp"`
	SourceBucket      string    `json:"source_bucket"`
	EntriesSummarized int       `json:"entries_summarized"`
	FirstTimestamp    time.Time `json:"first_timestamp"`
	LastTimestamp     time.Time `json:"last_timestamp"`
}
