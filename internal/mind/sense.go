package mind

import (
	"context"
	"fmt"
)

// sense processes raw input into a sensory impression, "the original
// of all thoughts" (Leviathan, chapter I).
func (m *Mind) sense(ctx context.Context, input string) (string, error) {
	senseData, err := m.llm.Generate(ctx, fmt.Sprintf(sensePrompt, input), 0.7)
	if err != nil {
		return "", err
	}
	if err := m.appendStage(ctx, BucketSense, senseData, map[string]any{"input": input}); err != nil {
		return "", err
	}
	return senseData, nil
}
