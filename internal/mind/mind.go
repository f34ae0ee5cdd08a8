// Package mind chains the Hobbesian thought-process stages over the
// bucket store: each stage builds a prompt from its input and recent
// memory, generates text, and appends the product to its own bucket.
package mind

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hobbesian/leviathan/internal/llm"
	"github.com/hobbesian/leviathan/internal/memory"
	"github.com/hobbesian/leviathan/internal/model"
)

// Bucket names, one per thought process.
const (
	BucketSense               = "sense_impressions"
	BucketSimpleImagination   = "simple_imagination"
	BucketCompoundImagination = "compound_imagination"
	BucketUnguidedThoughts    = "unguided_thoughts"
	BucketRegulatedThoughts   = "regulated_thoughts"
	BucketCauseSeeking        = "cause_seeking_thoughts"
	BucketEffectSeeking       = "effect_seeking_thoughts"
)

// Result carries every intermediate product of one query.
type Result struct {
	Input               string `json:"input"`
	SenseData           string `json:"sense_data"`
	SimpleImagination   string `json:"simple_imagination"`
	CompoundImagination string `json:"compound_imagination"`
	UnguidedThought     string `json:"unguided_thought"`
	Goal                string `json:"goal"`
	RegulatedThought    string `json:"regulated_thought"`
	CausalAnalysis      string `json:"causal_analysis,omitempty"`
	EffectAnalysis      string `json:"effect_analysis,omitempty"`
	FinalResponse       string `json:"final_response"`
}

// Mind orchestrates the thought-process stages.
type Mind struct {
	llm   llm.Client
	store *memory.Store
	log   *zap.Logger
}

// Option configures a Mind.
type Option func(*Mind)

// WithLogger sets the orchestrator's logger.
func WithLogger(log *zap.Logger) Option {
	return func(m *Mind) { m.log = log }
}

// New wires a Mind over a generation client and a bucket store, and
// registers the stage-specific bucket policies: imagination buckets
// carry Hobbes-flavored summary templates, and compound imaginations
// (being "more durable" combinations) retain more entries.
func New(client llm.Client, store *memory.Store, conversationRetention int, opts ...Option) *Mind {
	m := &Mind{llm: client, store: store, log: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}

	store.Register(BucketSimpleImagination, memory.Policy{
		Retention: 5,
		Prompt:    memory.Template(simpleImaginationSummaryTemplate),
	})
	store.Register(BucketCompoundImagination, memory.Policy{
		Retention: 7,
		Prompt:    memory.Template(compoundImaginationSummaryTemplate),
	})
	store.Register(memory.ConversationBucket, memory.Policy{
		Retention: conversationRetention,
		Prompt:    memory.Template(conversationSummaryTemplate),
	})
	return m
}

// ProcessQuery runs one query through the full chain: sense, simple
// and compound imagination, unguided thought, goal extraction and
// regulated thought, cause- or effect-seeking analysis, and a final
// synthesis. The exchange is recorded in the conversation bucket.
func (m *Mind) ProcessQuery(ctx context.Context, input string) (*Result, error) {
	r := &Result{Input: input}

	if _, err := m.store.AppendConversation(ctx, "user", input, nil); err != nil {
		if e := m.tolerate(err); e != nil {
			return nil, e
		}
	}

	var err error
	m.log.Debug("processing sense perception")
	if r.SenseData, err = m.sense(ctx, input); err != nil {
		return nil, fmt.Errorf("thought process failed: %w", err)
	}

	m.log.Debug("processing simple imagination")
	if r.SimpleImagination, err = m.simpleImagination(ctx, r.SenseData, input); err != nil {
		return nil, fmt.Errorf("thought process failed: %w", err)
	}

	m.log.Debug("processing compound imagination")
	if r.CompoundImagination, err = m.compoundImagination(ctx, r.SimpleImagination, input); err != nil {
		return nil, fmt.Errorf("thought process failed: %w", err)
	}

	m.log.Debug("processing unguided train of thought")
	if r.UnguidedThought, err = m.unguidedThought(ctx, r.CompoundImagination); err != nil {
		return nil, fmt.Errorf("thought process failed: %w", err)
	}

	m.log.Debug("extracting goal")
	if r.Goal, err = m.extractGoal(ctx, input); err != nil {
		return nil, fmt.Errorf("thought process failed: %w", err)
	}

	m.log.Debug("processing regulated train of thought")
	if r.RegulatedThought, err = m.regulatedThought(ctx, r.CompoundImagination, r.Goal); err != nil {
		return nil, fmt.Errorf("thought process failed: %w", err)
	}

	seeksCauses, err := m.seeksCauses(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("thought process failed: %w", err)
	}
	if seeksCauses {
		m.log.Debug("processing causal analysis")
		if r.CausalAnalysis, err = m.causeSeeking(ctx, input); err != nil {
			return nil, fmt.Errorf("thought process failed: %w", err)
		}
	} else {
		m.log.Debug("processing effect analysis")
		if r.EffectAnalysis, err = m.effectSeeking(ctx, input); err != nil {
			return nil, fmt.Errorf("thought process failed: %w", err)
		}
	}

	m.log.Debug("synthesizing final response")
	if r.FinalResponse, err = m.synthesize(ctx, input, r); err != nil {
		return nil, fmt.Errorf("thought process failed: %w", err)
	}

	if _, err := m.store.AppendConversation(ctx, "assistant", r.FinalResponse, nil); err != nil {
		if e := m.tolerate(err); e != nil {
			return nil, e
		}
	}
	return r, nil
}

// tolerate decides what to do with an append error: storage failures
// abort the pipeline, a failed best-effort compaction is only logged.
func (m *Mind) tolerate(err error) error {
	if errors.Is(err, memory.ErrStorage) {
		return err
	}
	m.log.Warn("memory compaction deferred", zap.Error(err))
	return nil
}

// appendStage stores a stage's product, tolerating compaction failures.
func (m *Mind) appendStage(ctx context.Context, bucket, content string, metadata map[string]any) error {
	if _, err := m.store.Append(ctx, bucket, content, metadata); err != nil {
		return m.tolerate(err)
	}
	return nil
}

// extractGoal derives the desire that directs regulated thought.
func (m *Mind) extractGoal(ctx context.Context, input string) (string, error) {
	goal, err := m.llm.Generate(ctx, fmt.Sprintf(extractGoalPrompt, input), 0.5)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(goal), nil
}

// seeksCauses routes a query to cause-seeking or effect-seeking
// analysis.
func (m *Mind) seeksCauses(ctx context.Context, input string) (bool, error) {
	answer, err := m.llm.Generate(ctx, fmt.Sprintf(routeQueryPrompt, input), 0.3)
	if err != nil {
		return false, err
	}
	return strings.Contains(strings.ToUpper(answer), "CAUSE"), nil
}

// synthesize folds the intermediate products into the final response,
// with the running conversation (summary included) as chat context.
func (m *Mind) synthesize(ctx context.Context, input string, r *Result) (string, error) {
	var processes []string
	add := func(name, content string) {
		if content != "" {
			processes = append(processes, name+": "+preview(content, 200))
		}
	}
	add("sense_data", r.SenseData)
	add("simple_imagination", r.SimpleImagination)
	add("compound_imagination", r.CompoundImagination)
	add("unguided_thought", r.UnguidedThought)
	add("goal", r.Goal)
	add("regulated_thought", r.RegulatedThought)
	add("causal_analysis", r.CausalAnalysis)
	add("effect_analysis", r.EffectAnalysis)

	prompt := fmt.Sprintf(synthesizePrompt, strings.Join(processes, "\n"), input)
	return m.llm.Chat(ctx, synthesizeSystemMessage, m.ConversationContext(), prompt, 0.7)
}

// ConversationContext converts the conversation bucket's assembled view
// (latest summary first, then recent turns) into chat messages.
func (m *Mind) ConversationContext() []llm.Message {
	entries := m.store.WithContext(memory.ConversationBucket)
	messages := make([]llm.Message, 0, len(entries))
	for _, e := range entries {
		role := e.Role()
		if role == "" {
			role = "user"
		}
		messages = append(messages, llm.Message{Role: role, Content: e.Content})
	}
	return messages
}

// formatEntries renders memory entries as a bulleted block for stage
// prompts, previewing long content.
func formatEntries(entries []model.MemoryEntry) string {
	if len(entries) == 0 {
		return "None"
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, "- "+preview(e.Content, 150))
	}
	return strings.Join(lines, "\n")
}

func preview(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
