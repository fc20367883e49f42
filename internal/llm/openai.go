package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const defaultOpenAIModel = "gpt-4o-mini"

func init() {
	Register("openai", NewOpenAIClient)
}

// OpenAIClient is the alternate completion provider, selected with
// LLM_PROVIDER=openai. It carries the same single-prompt contract as the
// Gemini client.
type OpenAIClient struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewOpenAIClient builds an OpenAI-backed completion client.
func NewOpenAIClient(cfg Config, logger *zap.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key is required", ErrInvalidConfig)
	}
	model := cfg.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIClient{
		client: openai.NewClient(cfg.APIKey),
		model:  model,
		logger: logger,
	}, nil
}

// Name implements Client.
func (c *OpenAIClient) Name() string { return "openai" }

// Complete implements Client.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyCompletion
	}

	c.logger.Debug("completion succeeded",
		zap.String("model", c.model),
		zap.Int("prompt_chars", len(prompt)),
	)
	return resp.Choices[0].Message.Content, nil
}
