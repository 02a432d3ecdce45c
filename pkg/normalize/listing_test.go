package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/voltmarket/pkg/normalize"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

func TestListing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  domain.RawRecord
		want domain.ListingSummary
	}{
		{
			name: "full set with battery image and price",
			raw: domain.RawRecord{
				"id":          12.0,
				"title":       "  VF8 with spare pack ",
				"description": "one owner",
				"address":     "Hanoi",
				"itemType":    "FullSet",
				"user":        map[string]any{"username": "linh"},
				"listingBatteries": []any{
					map[string]any{"batteryId": "b1", "price": 900.0, "imgs": "pack.jpg,pack2.jpg"},
				},
				"listingVehicles": []any{
					map[string]any{"vehicleId": "v1", "price": 30000.0, "imgs": "car.jpg"},
				},
			},
			want: domain.ListingSummary{
				ID:           "12",
				Title:        "VF8 with spare pack",
				ItemType:     domain.ItemFullSet,
				Tag:          normalize.TagFullSetListing,
				Description:  "one owner",
				Address:      "Hanoi",
				ImageURL:     "pack.jpg",
				Price:        900,
				BatteryCount: 1,
				VehicleCount: 1,
				SellerName:   "linh",
			},
		},
		{
			name: "vehicle fallback when battery has no image or price",
			raw: domain.RawRecord{
				"listingId": "L-7",
				"itemType":  "vehicle",
				"listingBatteries": []any{
					map[string]any{"batteryId": "b1", "price": "", "imgs": ""},
				},
				"listingVehicles": []any{
					map[string]any{"vehicleId": "v1", "price": "12500", "imgs": []any{"", "car.jpg"}},
				},
			},
			want: domain.ListingSummary{
				ID:           "L-7",
				Title:        normalize.UntitledListing,
				ItemType:     domain.ItemVehicle,
				Tag:          normalize.TagVehicleListing,
				ImageURL:     "car.jpg",
				Price:        12500,
				BatteryCount: 1,
				VehicleCount: 1,
				SellerName:   normalize.UnknownSeller,
			},
		},
		{
			name: "empty record",
			raw:  domain.RawRecord{},
			want: domain.ListingSummary{
				ID:         "listing-3",
				Title:      normalize.UntitledListing,
				Tag:        normalize.TagListing,
				SellerName: normalize.UnknownSeller,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalize.Listing(tt.raw, 3))
		})
	}
}

func TestListings(t *testing.T) {
	t.Parallel()

	got := normalize.Listings([]domain.RawRecord{{"title": "a"}, {"title": "b"}})
	require.Len(t, got, 2)
	assert.Equal(t, "listing-1", got[1].ID)
}

func TestLineItemIDs(t *testing.T) {
	t.Parallel()

	bIDs, vIDs := normalize.LineItemIDs(domain.RawRecord{
		"listingBatteries": []any{
			map[string]any{"batteryId": "b1"},
			map[string]any{"batteryID": 7.0},
			map[string]any{"health": 80.0},
			"junk",
		},
		"listingVehicles": []any{
			map[string]any{"vehicleId": "v1"},
		},
	})

	assert.Equal(t, []string{"b1", "7"}, bIDs)
	assert.Equal(t, []string{"v1"}, vIDs)
}
