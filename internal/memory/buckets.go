package memory

import "sort"

// BucketInfo describes one bucket for inspection commands.
type BucketInfo struct {
	Name    string `json:"name"`
	Entries int    `json:"entries"`
	Summary bool   `json:"summary_bucket,omitempty"`
}

// Buckets lists every known bucket, summary buckets included, sorted
// by name.
func (s *Store) Buckets() []BucketInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]BucketInfo, 0, len(s.buckets)+len(s.summaries))
	for name, entries := range s.buckets {
		out = append(out, BucketInfo{Name: name, Entries: len(entries)})
	}
	for name, entries := range s.summaries {
		out = append(out, BucketInfo{Name: name, Entries: len(entries), Summary: true})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
