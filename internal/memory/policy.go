package memory

import "strings"

// DefaultRetention is the process-wide retention count used for
// buckets with no registered policy.
const DefaultRetention = 5

const entriesPlaceholder = "{entries}"

const defaultSummaryTemplate = `Summarize the following entries while preserving the key points:

{entries}

Create a concise summary that captures the essential information.
Focus on the main topics, requests, and responses while reducing the length significantly.`

// PromptFunc renders the flattened block of entries to summarize into
// the final summarization prompt. Policies treat it as opaque; the only
// contract is one substitution point.
type PromptFunc func(block string) string

// Template builds a PromptFunc from a template string containing a
// single {entries} placeholder. A template without the placeholder has
// the block appended after a blank line.
func Template(tmpl string) PromptFunc {
	return func(block string) string {
		if strings.Contains(tmpl, entriesPlaceholder) {
			return strings.Replace(tmpl, entriesPlaceholder, block, 1)
		}
		return tmpl + "\n\n" + block
	}
}

// Policy is the per-bucket compaction policy: how many recent entries
// survive a compaction, and how the discarded prefix is summarized.
// Buckets compact lazily, only once an append pushes them strictly
// above twice the retention count.
type Policy struct {
	Retention int
	Prompt    PromptFunc
}

// DefaultPolicy returns the policy applied to unregistered buckets.
func DefaultPolicy() Policy {
	return Policy{Retention: DefaultRetention, Prompt: Template(defaultSummaryTemplate)}
}

func (p Policy) normalize() Policy {
	if p.Retention < 1 {
		p.Retention = DefaultRetention
	}
	if p.Prompt == nil {
		p.Prompt = Template(defaultSummaryTemplate)
	}
	return p
}

// Register installs or replaces the policy for a bucket. Registration
// is an upsert: the previous policy, if any, is discarded wholesale.
func (s *Store) Register(bucket string, p Policy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies[bucket] = p.normalize()
}

func (s *Store) policyFor(bucket string) Policy {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.policies[bucket]; ok {
		return p
	}
	return s.defaultPolicy
}
