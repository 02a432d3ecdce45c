package suggest

import (
	"context"
	"fmt"
	"log/slog"
)

// LLMSuggester asks an LLM backend for a price.
type LLMSuggester struct {
	backend     LLMBackend
	temperature float64
	maxTokens   int
	log         *slog.Logger
}

// LLMSuggesterOption configures the LLMSuggester.
type LLMSuggesterOption func(*LLMSuggester)

// WithTemperature sets the LLM temperature.
func WithTemperature(t float64) LLMSuggesterOption {
	return func(s *LLMSuggester) {
		s.temperature = t
	}
}

// WithMaxTokens sets the max tokens for LLM responses.
func WithMaxTokens(n int) LLMSuggesterOption {
	return func(s *LLMSuggester) {
		s.maxTokens = n
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) LLMSuggesterOption {
	return func(s *LLMSuggester) {
		s.log = l
	}
}

// NewLLMSuggester creates a new LLMSuggester.
func NewLLMSuggester(backend LLMBackend, opts ...LLMSuggesterOption) *LLMSuggester {
	s := &LLMSuggester{
		backend:     backend,
		temperature: 0.2,
		maxTokens:   64,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the backend name.
func (s *LLMSuggester) Name() string {
	return s.backend.Name()
}

// Suggest returns {"content": <model text>, "model": <model name>}.
func (s *LLMSuggester) Suggest(ctx context.Context, req Request) (any, error) {
	prompt, err := RenderPricePrompt(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.backend.Generate(ctx, GenerateRequest{
		Prompt:      prompt,
		SystemMsg:   systemMsg,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("calling LLM for price suggestion: %w", err)
	}

	s.log.Debug("price suggestion generated",
		"backend", s.backend.Name(),
		"model", resp.Model,
		"tokens", resp.Usage.TotalTokens,
	)

	return map[string]any{
		"content": resp.Content,
		"model":   resp.Model,
	}, nil
}
