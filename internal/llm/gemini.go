package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel    = "gemini-1.5-flash"
)

func init() {
	Register("gemini", NewGeminiClient)
}

// GeminiClient calls the generativelanguage generateContent endpoint. The API
// key is passed as a URL query parameter, which is how this API authenticates.
type GeminiClient struct {
	http   *resty.Client
	apiKey string
	model  string
	logger *zap.Logger
}

// NewGeminiClient builds a Gemini-backed completion client.
func NewGeminiClient(cfg Config, logger *zap.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key is required", ErrInvalidConfig)
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultGeminiEndpoint
	}
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30
	}

	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(time.Duration(timeout) * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &GeminiClient{
		http:   client,
		apiKey: cfg.APIKey,
		model:  model,
		logger: logger,
	}, nil
}

// Name implements Client.
func (c *GeminiClient) Name() string { return "gemini" }

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Complete implements Client. The prompt is the sole content part of the
// request body; the answer is the first candidate's first part.
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	var out geminiResponse
	var apiErr geminiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(body).
		SetResult(&out).
		SetError(&apiErr).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}

	if resp.IsError() {
		detail := apiErr.Error.Message
		if detail == "" {
			detail = "failed to fetch"
		}
		return "", fmt.Errorf("%w: %s (status: %d)", ErrCompletionFailed, detail, resp.StatusCode())
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyCompletion
	}

	c.logger.Debug("completion succeeded",
		zap.String("model", c.model),
		zap.Int("prompt_chars", len(prompt)),
	)
	return out.Candidates[0].Content.Parts[0].Text, nil
}
