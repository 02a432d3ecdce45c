package pricing

import (
	"math"
	"strings"
)

// Condition grades accepted by Estimate.
const (
	ConditionExcellent = "Excellent"
	ConditionGood      = "Good"
	ConditionFair      = "Fair"
	ConditionPoor      = "Poor"
)

const (
	baseTesla   = 40000
	baseNamed   = 25000
	baseUnknown = 20000

	mileageHorizon = 200000
)

var conditionMultiplier = map[string]float64{
	ConditionExcellent: 1.08,
	ConditionGood:      1.0,
	ConditionFair:      0.86,
}

const fallbackMultiplier = 0.7

// EstimateInput is the input of the heuristic estimator.
type EstimateInput struct {
	Model     string
	Mileage   float64
	Condition string
}

// Estimate returns a rough price: a model-dependent base scaled down
// linearly with mileage and by condition grade, rounded to hundreds.
func Estimate(in EstimateInput) int64 {
	model := strings.TrimSpace(in.Model)
	base := float64(baseUnknown)
	switch {
	case strings.Contains(strings.ToLower(model), "tesla"):
		base = baseTesla
	case model != "":
		base = baseNamed
	}

	mileageFactor := max(0, 1-max(in.Mileage, 0)/mileageHorizon)

	mult, ok := conditionMultiplier[NormalizeCondition(in.Condition)]
	if !ok {
		mult = fallbackMultiplier
	}

	return int64(math.Round(base*mileageFactor*mult/100) * 100)
}

// NormalizeCondition maps a case-insensitive grade to its canonical
// spelling. Unknown grades are returned trimmed.
func NormalizeCondition(c string) string {
	c = strings.TrimSpace(c)
	for _, known := range []string{ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor} {
		if strings.EqualFold(c, known) {
			return known
		}
	}
	return c
}

// ConditionFromHealth grades a battery state-of-health percentage.
func ConditionFromHealth(health float64) string {
	switch {
	case health >= 90:
		return ConditionExcellent
	case health >= 75:
		return ConditionGood
	case health >= 60:
		return ConditionFair
	default:
		return ConditionPoor
	}
}
