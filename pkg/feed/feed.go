// Package feed builds the unified entity list behind the search, compare
// and home views: merge, filter, sort and side-by-side comparison.
package feed

import (
	"cmp"
	"slices"
	"strings"

	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// SortMode selects the ordering applied by Sort.
type SortMode string

// Sort modes.
const (
	SortRelevance SortMode = "relevance"
	SortPriceAsc  SortMode = "price_asc"
	SortPriceDesc SortMode = "price_desc"
	SortRating    SortMode = "rating"
)

// ParseSortMode maps a query value to a SortMode. The empty string is
// relevance.
func ParseSortMode(s string) (SortMode, bool) {
	switch m := SortMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return SortRelevance, true
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortRating:
		return m, true
	default:
		return "", false
	}
}

// Build merges batteries and vehicles into one list. Callers must not rely
// on the relative order of the two kinds unless a sort is applied.
func Build(batteries, vehicles []domain.Entity) []domain.Entity {
	out := make([]domain.Entity, 0, len(batteries)+len(vehicles))
	out = append(out, batteries...)
	return append(out, vehicles...)
}

// Filter restricts a feed. Zero values match everything.
type Filter struct {
	Kind  domain.Kind
	Query string
}

// Apply returns the items matching f, in their original order. Query is a
// case-insensitive substring match against the title and rendered specs.
func (f Filter) Apply(items []domain.Entity) []domain.Entity {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := make([]domain.Entity, 0, len(items))
	for i := range items {
		if f.Kind != "" && items[i].Kind != f.Kind {
			continue
		}
		if q != "" && !matches(&items[i], q) {
			continue
		}
		out = append(out, items[i])
	}
	return out
}

func matches(e *domain.Entity, q string) bool {
	if strings.Contains(strings.ToLower(e.Title), q) {
		return true
	}
	for _, s := range e.Specs {
		if strings.Contains(strings.ToLower(specText(s)), q) {
			return true
		}
	}
	return false
}

// Sort returns a sorted copy of items. Sorting is stable; relevance and
// unknown modes preserve the input order. A nil price sorts as the lowest
// price and a nil rating as the lowest rating.
func Sort(items []domain.Entity, mode SortMode) []domain.Entity {
	out := slices.Clone(items)
	if out == nil {
		out = []domain.Entity{}
	}
	switch mode {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b domain.Entity) int {
			return compareNullable(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b domain.Entity) int {
			return compareNullable(b.Price, a.Price)
		})
	case SortRating:
		slices.SortStableFunc(out, func(a, b domain.Entity) int {
			return compareNullable(b.Rating, a.Rating)
		})
	}
	return out
}

// compareNullable orders nil before every value.
func compareNullable(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return cmp.Compare(*a, *b)
	}
}
