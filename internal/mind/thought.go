package mind

import (
	"context"
	"fmt"
)

// unguidedThought generates the wandering, associative train of
// thought (Leviathan, chapter III).
func (m *Mind) unguidedThought(ctx context.Context, topic string) (string, error) {
	recent := m.store.Recent(BucketUnguidedThoughts, 3)

	prompt := fmt.Sprintf(unguidedThoughtPrompt, topic, formatEntries(recent))
	thought, err := m.llm.Generate(ctx, prompt, 0.8)
	if err != nil {
		return "", err
	}
	if err := m.appendStage(ctx, BucketUnguidedThoughts, thought, map[string]any{"input": topic}); err != nil {
		return "", err
	}
	return thought, nil
}

// regulatedThought generates the goal-directed train of thought.
func (m *Mind) regulatedThought(ctx context.Context, topic, goal string) (string, error) {
	recent := m.store.Recent(BucketRegulatedThoughts, 3)

	prompt := fmt.Sprintf(regulatedThoughtPrompt, topic, goal, formatEntries(recent))
	thought, err := m.llm.Generate(ctx, prompt, 0.7)
	if err != nil {
		return "", err
	}
	if err := m.appendStage(ctx, BucketRegulatedThoughts, thought, map[string]any{"input": topic, "goal": goal}); err != nil {
		return "", err
	}
	return thought, nil
}

// causeSeeking reasons backward from an imagined effect to its causes.
func (m *Mind) causeSeeking(ctx context.Context, effect string) (string, error) {
	thought, err := m.llm.Generate(ctx, fmt.Sprintf(causeSeekingPrompt, effect), 0.7)
	if err != nil {
		return "", err
	}
	if err := m.appendStage(ctx, BucketCauseSeeking, thought, map[string]any{"effect": effect}); err != nil {
		return "", err
	}
	return thought, nil
}

// effectSeeking reasons forward from a cause to its possible effects.
func (m *Mind) effectSeeking(ctx context.Context, cause string) (string, error) {
	thought, err := m.llm.Generate(ctx, fmt.Sprintf(effectSeekingPrompt, cause), 0.7)
	if err != nil {
		return "", err
	}
	if err := m.appendStage(ctx, BucketEffectSeeking, thought, map[string]any{"cause": cause}); err != nil {
		return "", err
	}
	return thought, nil
}
