package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/voltmarket/internal/metrics"
	"github.com/donaldgifford/voltmarket/pkg/pricing"
	"github.com/donaldgifford/voltmarket/pkg/suggest"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// SuggestHandler asks the configured suggester for a price.
type SuggestHandler struct {
	suggester suggest.Suggester
	log       *slog.Logger
}

// NewSuggestHandler creates a new SuggestHandler.
func NewSuggestHandler(s suggest.Suggester, log *slog.Logger) *SuggestHandler {
	if log == nil {
		log = slog.Default()
	}
	return &SuggestHandler{suggester: s, log: log}
}

// SuggestInput describes the item to price.
type SuggestInput struct {
	Body struct {
		Kind      string        `json:"kind"                doc:"Entity kind"                         enum:"battery,vehicle"`
		Title     string        `json:"title"               doc:"Item title, e.g. brand and model"    minLength:"1"`
		Specs     []domain.Spec `json:"specs,omitempty"     doc:"Known specs of the item"`
		Mileage   float64       `json:"mileage,omitempty"   doc:"Odometer reading for vehicles"       minimum:"0"`
		Condition string        `json:"condition,omitempty" doc:"Condition grade: Excellent, Good or Fair"`
	}
}

// SuggestOutput is the parsed suggestion. SuggestedPrice is null when the
// suggester answered with no recognizable price.
type SuggestOutput struct {
	Body struct {
		SuggestedPrice *int64 `json:"suggested_price" doc:"Suggested price in whole currency units, or null" nullable:"true"`
		Backend        string `json:"backend"         doc:"Suggester that produced the answer"`
	}
}

// Suggest requests a price suggestion and parses the number out of it.
func (h *SuggestHandler) Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error) {
	kind, ok := domain.ParseKind(input.Body.Kind)
	if !ok {
		return nil, huma.Error422UnprocessableEntity("unknown kind " + input.Body.Kind)
	}

	backend := h.suggester.Name()
	start := time.Now()
	body, err := h.suggester.Suggest(ctx, suggest.Request{
		Kind:      kind,
		Title:     input.Body.Title,
		Specs:     input.Body.Specs,
		Mileage:   input.Body.Mileage,
		Condition: input.Body.Condition,
	})
	metrics.SuggestionDuration.WithLabelValues(backend).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SuggestionFailuresTotal.WithLabelValues(backend, "error").Inc()
		h.log.Warn("price suggestion failed", "backend", backend, "error", err)
		return nil, huma.Error502BadGateway("price suggestion failed: " + err.Error())
	}

	resp := &SuggestOutput{}
	resp.Body.Backend = backend
	if price, ok := pricing.Parse(body); ok {
		resp.Body.SuggestedPrice = &price
	} else {
		metrics.SuggestionFailuresTotal.WithLabelValues(backend, "unparseable").Inc()
		h.log.Debug("price suggestion had no price", "backend", backend)
	}
	return resp, nil
}

// RegisterSuggestRoutes registers the price suggestion endpoint with the Huma API.
func RegisterSuggestRoutes(api huma.API, h *SuggestHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "suggest-price",
		Method:      http.MethodPost,
		Path:        "/api/v1/price-suggestion",
		Summary:     "Suggest a price",
		Description: "Asks the configured backend for a price and returns the number parsed from its answer.",
		Tags:        []string{"pricing"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Suggest)
}
