// Package llm wraps the text-generation capability behind a small
// interface so the rest of the system never sees a concrete provider.
package llm

import (
	"context"
	"errors"
)

// ErrGeneration is the kind of every upstream generation failure.
// Callers test for it with errors.Is.
var ErrGeneration = errors.New("generation failed")

// Message is one turn of conversation context.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client generates text from prompts. Temperature is in [0,1]; low
// values favor fidelity over creativity.
type Client interface {
	// Generate produces a completion for a single prompt.
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)

	// Chat produces a completion for a prompt preceded by a system
	// message and prior conversation turns. Either may be empty.
	Chat(ctx context.Context, system string, history []Message, prompt string, temperature float32) (string, error)
}

// Func adapts a plain function to the Client interface. Chat flattens
// its arguments into a single Generate call; tests use this to script
// responses and inject faults.
type Func func(ctx context.Context, prompt string, temperature float32) (string, error)

func (f Func) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	return f(ctx, prompt, temperature)
}

func (f Func) Chat(ctx context.Context, system string, history []Message, prompt string, temperature float32) (string, error) {
	return f(ctx, prompt, temperature)
}
