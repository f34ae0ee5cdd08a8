package mind

import (
	"context"
	"fmt"
)

// simpleImagination turns a sense impression into "decaying sense"
// (Leviathan, chapter II), reading earlier impressions — compacted
// history included — to simulate memory.
func (m *Mind) simpleImagination(ctx context.Context, senseData, input string) (string, error) {
	recentSenses := m.store.WithContext(BucketSense)

	prompt := fmt.Sprintf(simpleImaginationPrompt, senseData, formatEntries(recentSenses))
	imagination, err := m.llm.Generate(ctx, prompt, 0.7)
	if err != nil {
		return "", err
	}
	if err := m.appendStage(ctx, BucketSimpleImagination, imagination, map[string]any{"original_input": input}); err != nil {
		return "", err
	}
	return imagination, nil
}

// compoundImagination recombines the current imagination with prior
// impressions into a "fiction of the mind", drawing on two buckets at
// once.
func (m *Mind) compoundImagination(ctx context.Context, simpleImagination, input string) (string, error) {
	recent := m.store.WithContextMulti(BucketSense, BucketSimpleImagination)

	prompt := fmt.Sprintf(compoundImaginationPrompt, simpleImagination, formatEntries(recent))
	compound, err := m.llm.Generate(ctx, prompt, 0.8)
	if err != nil {
		return "", err
	}
	if err := m.appendStage(ctx, BucketCompoundImagination, compound, map[string]any{"original_input": input}); err != nil {
		return "", err
	}
	return compound, nil
}
