// Package suggest requests price suggestions for batteries and vehicles,
// either from an LLM backend or from the local heuristic. Suggesters return
// the raw response body; pricing.Parse turns it into a number.
package suggest

import (
	"context"

	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// FormatJSON is the format string for requesting JSON mode from LLM backends.
const FormatJSON = "json"

// GenerateRequest defines the input for an LLM generation call.
type GenerateRequest struct {
	Prompt      string
	SystemMsg   string
	Format      string // FormatJSON for JSON mode
	Temperature float64
	MaxTokens   int
}

// TokenUsage tracks LLM token consumption.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Content string
	Model   string
	Usage   TokenUsage
}

// LLMBackend defines the interface for LLM text generation.
type LLMBackend interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
}

// Request describes the item a price is wanted for.
type Request struct {
	Kind      domain.Kind   `json:"kind"`
	Title     string        `json:"title"`
	Specs     []domain.Spec `json:"specs,omitempty"`
	Mileage   float64       `json:"mileage,omitempty"`
	Condition string        `json:"condition,omitempty"`
}

// Suggester returns a free-form price suggestion body for an item.
type Suggester interface {
	Suggest(ctx context.Context, req Request) (any, error)
	Name() string
}
