// Package memory implements the bounded, self-summarizing bucket store
// at the heart of the cognitive pipeline: independently configured
// append-only logs that survive unbounded growth by compacting old
// entries into generated summaries, safe under concurrent writers and
// persisted whole before any mutating call returns.
package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/hobbesian/leviathan/internal/blob"
	"github.com/hobbesian/leviathan/internal/model"
)

// ErrStorage is the kind of every backing-store failure. It always
// propagates; a bucket is never left half-written behind it.
var ErrStorage = errors.New("backing store unavailable")

// ConversationBucket holds the user/assistant exchange history.
const ConversationBucket = "conversation"

// SummarySuffix derives a bucket's summary-bucket name.
const SummarySuffix = "_summaries"

// Generator is the text-generation capability consumed by compaction.
// llm.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

// Store maps bucket names to ordered entry logs, each persisted as one
// blob. Writers to the same bucket serialize on a per-bucket lock;
// writers to different buckets proceed independently.
type Store struct {
	blobs blob.Store
	gen   Generator
	log   *zap.Logger

	idMu    sync.Mutex
	entropy *rand.Rand

	mu            sync.Mutex // guards the four maps below
	buckets       map[string][]model.MemoryEntry
	summaries     map[string][]model.SummaryEntry
	locks         map[string]*sync.Mutex
	policies      map[string]Policy
	defaultPolicy Policy
}

// Option configures a Store at construction.
type Option func(*Store)

// WithLogger sets the store's logger. Default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithPolicy registers a bucket policy at construction.
func WithPolicy(bucket string, p Policy) Option {
	return func(s *Store) { s.policies[bucket] = p.normalize() }
}

// WithDefaultPolicy replaces the process-wide default policy.
func WithDefaultPolicy(p Policy) Option {
	return func(s *Store) { s.defaultPolicy = p.normalize() }
}

// New builds a store over the given backing blobs and generation
// capability, hydrating every bucket already present in the backing
// store. gen may be nil for read-only use; compaction then fails.
func New(ctx context.Context, blobs blob.Store, gen Generator, opts ...Option) (*Store, error) {
	s := &Store{
		blobs:         blobs,
		gen:           gen,
		log:           zap.NewNop(),
		entropy:       rand.New(rand.NewSource(time.Now().UnixNano())),
		buckets:       make(map[string][]model.MemoryEntry),
		summaries:     make(map[string][]model.SummaryEntry),
		locks:         make(map[string]*sync.Mutex),
		policies:      make(map[string]Policy),
		defaultPolicy: DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) hydrate(ctx context.Context) error {
	names, err := s.blobs.List(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	for _, name := range names {
		data, err := s.blobs.Read(ctx, name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrStorage, err)
		}
		if isSummaryBucket(name) {
			var entries []model.SummaryEntry
			if err := json.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("%w: decode %s: %w", ErrStorage, name, err)
			}
			s.summaries[name] = entries
			continue
		}
		var entries []model.MemoryEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("%w: decode %s: %w", ErrStorage, name, err)
		}
		s.buckets[name] = entries
	}
	s.log.Debug("hydrated buckets", zap.Int("count", len(names)))
	return nil
}

func isSummaryBucket(name string) bool {
	return strings.HasSuffix(name, SummarySuffix)
}

// SummaryBucket returns the name of the bucket holding a bucket's
// accumulated summaries.
func SummaryBucket(bucket string) string {
	return bucket + SummarySuffix
}

func (s *Store) newID() string {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// lockFor returns the serialization lock for a bucket, creating it on
// first touch; the bucket itself materializes on first append. Creation
// runs under the store lock so two first-time appends cannot race.
func (s *Store) lockFor(bucket string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lk, ok := s.locks[bucket]
	if !ok {
		lk = &sync.Mutex{}
		s.locks[bucket] = lk
	}
	return lk
}

// Append creates an entry from the current instant, appends it to the
// named bucket (created lazily if unseen), durably persists the bucket,
// and then evaluates the compaction trigger. The returned entry is
// valid whenever the append itself succeeded, even if the follow-up
// compaction failed; such failures are reported in the error, which is
// distinguishable from a storage failure via errors.Is(err, ErrStorage).
func (s *Store) Append(ctx context.Context, bucket, content string, metadata map[string]any) (model.MemoryEntry, error) {
	if isSummaryBucket(bucket) {
		return model.MemoryEntry{}, fmt.Errorf("bucket %q: the %s namespace is reserved", bucket, SummarySuffix)
	}

	lk := s.lockFor(bucket)
	lk.Lock()
	defer lk.Unlock()

	entry := model.MemoryEntry{
		ID:        s.newID(),
		Content:   content,
		Timestamp: time.Now().UTC(),
		Metadata:  metadata,
	}

	s.mu.Lock()
	s.buckets[bucket] = append(s.buckets[bucket], entry)
	s.mu.Unlock()

	if err := s.persistBucket(ctx, bucket); err != nil {
		s.mu.Lock()
		b := s.buckets[bucket]
		s.buckets[bucket] = b[:len(b)-1]
		s.mu.Unlock()
		return model.MemoryEntry{}, err
	}

	if err := s.maybeCompact(ctx, bucket); err != nil {
		s.log.Warn("compaction failed, bucket left intact",
			zap.String("bucket", bucket), zap.Error(err))
		return entry, fmt.Errorf("compact %q: %w", bucket, err)
	}
	return entry, nil
}

// AppendConversation appends one exchange turn to the conversation
// bucket, stamping the speaker role into the entry metadata.
func (s *Store) AppendConversation(ctx context.Context, role, content string, metadata map[string]any) (model.MemoryEntry, error) {
	md := make(map[string]any, len(metadata)+1)
	for k, v := range metadata {
		md[k] = v
	}
	md[model.MetaRole] = role
	return s.Append(ctx, ConversationBucket, content, md)
}

// Close releases the backing store.
func (s *Store) Close() error {
	return s.blobs.Close()
}

// Recent returns up to limit most-recently-appended entries, oldest
// first. A limit of zero or less falls back to the bucket's retention
// count. Unknown or empty buckets yield an empty slice; Recent never
// fails.
func (s *Store) Recent(bucket string, limit int) []model.MemoryEntry {
	lk := s.lockFor(bucket)
	lk.Lock()
	defer lk.Unlock()
	if limit <= 0 {
		limit = s.policyFor(bucket).Retention
	}
	return s.recentLocked(bucket, limit)
}

func (s *Store) recentLocked(bucket string, limit int) []model.MemoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.buckets[bucket]
	if limit > len(entries) {
		limit = len(entries)
	}
	out := make([]model.MemoryEntry, limit)
	copy(out, entries[len(entries)-limit:])
	return out
}

// Len returns the current number of entries in a bucket.
func (s *Store) Len(bucket string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if isSummaryBucket(bucket) {
		return len(s.summaries[bucket])
	}
	return len(s.buckets[bucket])
}

// Summaries returns all accumulated summaries for a bucket, oldest
// first.
func (s *Store) Summaries(bucket string) []model.SummaryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.summaries[SummaryBucket(bucket)]
	out := make([]model.SummaryEntry, len(entries))
	copy(out, entries)
	return out
}

// LatestSummary returns the most recent summary for a bucket, or nil
// if the bucket has never been compacted.
func (s *Store) LatestSummary(bucket string) *model.SummaryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latestSummaryLocked(bucket)
}

func (s *Store) latestSummaryLocked(bucket string) *model.SummaryEntry {
	entries := s.summaries[SummaryBucket(bucket)]
	if len(entries) == 0 {
		return nil
	}
	sum := entries[len(entries)-1]
	return &sum
}

// persistBucket durably writes a bucket's full content. Callers hold
// the bucket lock.
func (s *Store) persistBucket(ctx context.Context, bucket string) error {
	s.mu.Lock()
	entries := s.buckets[bucket]
	s.mu.Unlock()
	return s.persist(ctx, bucket, entries)
}

func (s *Store) persistSummaries(ctx context.Context, name string) error {
	s.mu.Lock()
	entries := s.summaries[name]
	s.mu.Unlock()
	return s.persist(ctx, name, entries)
}

func (s *Store) persist(ctx context.Context, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrStorage, name, err)
	}
	if err := s.blobs.Write(ctx, name, data); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}
