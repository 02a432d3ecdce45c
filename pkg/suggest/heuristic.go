package suggest

import (
	"context"

	"github.com/donaldgifford/voltmarket/pkg/pricing"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// HeuristicName is the backend name of the HeuristicSuggester.
const HeuristicName = "heuristic"

// HeuristicSuggester estimates a price locally without a model. For
// batteries without an explicit condition the grade is derived from the
// health spec.
type HeuristicSuggester struct{}

// NewHeuristicSuggester creates a new HeuristicSuggester.
func NewHeuristicSuggester() *HeuristicSuggester {
	return &HeuristicSuggester{}
}

// Name returns the backend name.
func (*HeuristicSuggester) Name() string {
	return HeuristicName
}

// Suggest returns {"suggestedPrice": <estimate>, "model": "heuristic"}.
func (*HeuristicSuggester) Suggest(_ context.Context, req Request) (any, error) {
	condition := req.Condition
	if condition == "" {
		condition = pricing.ConditionGood
		if req.Kind == domain.KindBattery {
			for _, s := range req.Specs {
				if h, ok := s.Value.(float64); ok && s.Field == domain.SpecHealth {
					condition = pricing.ConditionFromHealth(h)
					break
				}
			}
		}
	}

	est := pricing.Estimate(pricing.EstimateInput{
		Model:     req.Title,
		Mileage:   req.Mileage,
		Condition: condition,
	})
	return map[string]any{
		"suggestedPrice": est,
		"model":          HeuristicName,
	}, nil
}
