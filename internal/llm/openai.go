package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const deepseekBaseURL = "https://api.deepseek.com"

// Options configure the OpenAI-compatible client. Zero values fall
// back to environment variables and model-based endpoint routing.
type Options struct {
	Model   string
	APIKey  string
	BaseURL string
}

// OpenAIClient talks to any OpenAI-compatible chat completion endpoint.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAI builds a client for the configured model. OpenAI-family
// model names use the default endpoint with OPENAI_API_KEY; anything
// else is assumed to be a DeepSeek-compatible model served from the
// DeepSeek endpoint with DEEPSEEK_API_KEY. Explicit Options win.
func NewOpenAI(opts Options) (*OpenAIClient, error) {
	key, base, err := resolveEndpoint(opts)
	if err != nil {
		return nil, err
	}

	cfg := openai.DefaultConfig(key)
	if base != "" {
		cfg.BaseURL = base
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), model: opts.Model}, nil
}

// resolveEndpoint picks the API key and base URL for a model.
func resolveEndpoint(opts Options) (key, base string, err error) {
	key = opts.APIKey
	base = opts.BaseURL

	if openAIFamily(opts.Model) {
		if key == "" {
			key = os.Getenv("OPENAI_API_KEY")
		}
		if key == "" {
			return "", "", fmt.Errorf("OpenAI API key not found: set OPENAI_API_KEY or configure api_key")
		}
		return key, base, nil
	}

	if key == "" {
		key = os.Getenv("DEEPSEEK_API_KEY")
	}
	if key == "" {
		return "", "", fmt.Errorf("DeepSeek API key not found: set DEEPSEEK_API_KEY or configure api_key")
	}
	if base == "" {
		base = deepseekBaseURL
	}
	return key, base, nil
}

func openAIFamily(model string) bool {
	for _, prefix := range []string{"gpt-", "o1-", "o3-", "text-davinci-", "claude-"} {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	return c.Chat(ctx, "", nil, prompt, temperature)
}

func (c *OpenAIClient) Chat(ctx context.Context, system string, history []Message, prompt string, temperature float32) (string, error) {
	var messages []openai.ChatCompletionMessage
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleSystem, Content: system,
		})
	}
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser, Content: prompt,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrGeneration)
	}
	return resp.Choices[0].Message.Content, nil
}
