package llm

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for completion providers. Callers of the assist pipeline
// never see these; the service layer maps them to display strings.
var (
	// ErrInvalidConfig is returned when a provider cannot be constructed
	// from the supplied configuration.
	ErrInvalidConfig = errors.New("invalid completion client configuration")

	// ErrCompletionFailed is returned when the remote call fails, either at
	// the transport level or with a non-success status.
	ErrCompletionFailed = errors.New("completion request failed")

	// ErrEmptyCompletion is returned when the remote call succeeds but the
	// response carries no answer text.
	ErrEmptyCompletion = errors.New("empty completion response")
)

// Client is a text completion provider. Complete issues one stateless request
// per call: no retries, no caching, no coordination between calls.
type Client interface {
	// Name returns the provider identifier, e.g. "gemini".
	Name() string

	// Complete sends the prompt and returns the model's answer text.
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config carries provider-agnostic construction parameters.
type Config struct {
	Provider string
	APIKey   string
	Model    string
	Endpoint string
	Timeout  int // seconds
}

// Factory constructs a provider from its configuration.
type Factory func(cfg Config, logger *zap.Logger) (Client, error)

var factories = make(map[string]Factory)

// Register makes a provider constructible by name. Called from provider
// init functions.
func Register(name string, f Factory) {
	factories[name] = f
}

// New builds the provider selected by cfg.Provider.
func New(cfg Config, logger *zap.Logger) (Client, error) {
	f, ok := factories[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
	return f(cfg, logger)
}
