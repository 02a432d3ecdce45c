package feed

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// FilterListings returns the listings matching query, in their original
// order. The match is a case-insensitive substring search over the title,
// description, address, tag and item counts ("2 batteries", "1 vehicle").
func FilterListings(items []domain.ListingSummary, query string) []domain.ListingSummary {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.ListingSummary, 0, len(items))
	for i := range items {
		if q == "" || strings.Contains(listingText(&items[i]), q) {
			out = append(out, items[i])
		}
	}
	return out
}

func listingText(l *domain.ListingSummary) string {
	return strings.ToLower(strings.Join([]string{
		l.Title,
		l.Description,
		l.Address,
		l.Tag,
		count(l.BatteryCount, "battery", "batteries"),
		count(l.VehicleCount, "vehicle", "vehicles"),
	}, "\n"))
}

func count(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// SortListings returns a sorted copy of items. Only the price modes reorder;
// relevance and rating keep the input order since listings carry no rating.
func SortListings(items []domain.ListingSummary, mode SortMode) []domain.ListingSummary {
	out := slices.Clone(items)
	if out == nil {
		out = []domain.ListingSummary{}
	}
	switch mode {
	case SortPriceAsc:
		slices.SortStableFunc(out, func(a, b domain.ListingSummary) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(out, func(a, b domain.ListingSummary) int {
			return cmp.Compare(b.Price, a.Price)
		})
	}
	return out
}
