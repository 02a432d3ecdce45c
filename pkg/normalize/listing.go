package normalize

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/voltmarket/pkg/record"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// Listing field names as sent and returned by the backend.
const (
	KeyListingBatteries = "listingBatteries"
	KeyListingVehicles  = "listingVehicles"
)

var (
	listingIDKeys = []string{"id", "listingId", "listingID", "_id"}
	sellerKeys    = []string{"username", "userName", "name", "email"}
)

// Listing tags shown in search results.
const (
	TagBatteryListing = "Battery Listing"
	TagVehicleListing = "Vehicle Listing"
	TagFullSetListing = "Full Set Listing"
	TagListing        = "Listing"

	UntitledListing = "Untitled Listing"
	UnknownSeller   = "Unknown User"
)

// Listings normalizes a listing collection.
func Listings(recs []domain.RawRecord) []domain.ListingSummary {
	out := make([]domain.ListingSummary, 0, len(recs))
	for i, rec := range recs {
		out = append(out, Listing(rec, i))
	}
	return out
}

// Listing maps the raw listing record at position i to a search summary.
// The summary shows the first line item's image and price.
func Listing(rec domain.RawRecord, i int) domain.ListingSummary {
	id := strings.TrimSpace(record.String(rec, listingIDKeys...))
	if id == "" {
		id = fmt.Sprintf("listing-%d", i)
	}

	title := strings.TrimSpace(record.String(rec, "title"))
	if title == "" {
		title = UntitledListing
	}

	batteries := LineItems(rec, KeyListingBatteries)
	vehicles := LineItems(rec, KeyListingVehicles)

	sum := domain.ListingSummary{
		ID:           id,
		Title:        title,
		Tag:          TagListing,
		Description:  strings.TrimSpace(record.String(rec, "description")),
		Address:      strings.TrimSpace(record.String(rec, "address")),
		BatteryCount: len(batteries),
		VehicleCount: len(vehicles),
		SellerName:   seller(rec),
	}

	if t, ok := domain.ParseItemType(record.String(rec, "itemType")); ok {
		sum.ItemType = t
		sum.Tag = listingTag(t)
	}

	var heads []domain.RawRecord
	if len(batteries) > 0 {
		heads = append(heads, batteries[0])
	}
	if len(vehicles) > 0 {
		heads = append(heads, vehicles[0])
	}
	for _, li := range heads {
		if imgs := Images(li, imageKeys...); len(imgs) > 0 {
			sum.ImageURL = imgs[0]
			break
		}
	}
	for _, li := range heads {
		if p := record.Number(record.Coalesce(li, "price")); p > 0 {
			sum.Price = p
			break
		}
	}

	return sum
}

// LineItems returns the line-item records stored under key.
func LineItems(rec domain.RawRecord, key string) []domain.RawRecord {
	items, _ := record.Slice(rec, key)
	out := make([]domain.RawRecord, 0, len(items))
	for _, it := range items {
		if li, ok := it.(map[string]any); ok {
			out = append(out, li)
		}
	}
	return out
}

// LineItemIDs returns the battery and vehicle ids referenced by a listing's
// line items, in order. Items without an id are skipped.
func LineItemIDs(rec domain.RawRecord) (batteryIDs, vehicleIDs []string) {
	for _, li := range LineItems(rec, KeyListingBatteries) {
		if id := strings.TrimSpace(record.String(li, "batteryId", "batteryID")); id != "" {
			batteryIDs = append(batteryIDs, id)
		}
	}
	for _, li := range LineItems(rec, KeyListingVehicles) {
		if id := strings.TrimSpace(record.String(li, "vehicleId", "vehicleID")); id != "" {
			vehicleIDs = append(vehicleIDs, id)
		}
	}
	return batteryIDs, vehicleIDs
}

func listingTag(t domain.ItemType) string {
	switch t {
	case domain.ItemBattery:
		return TagBatteryListing
	case domain.ItemVehicle:
		return TagVehicleListing
	case domain.ItemFullSet:
		return TagFullSetListing
	default:
		return TagListing
	}
}

func seller(rec domain.RawRecord) string {
	if user, ok := record.Object(rec, "user"); ok {
		if name := strings.TrimSpace(record.String(user, sellerKeys...)); name != "" {
			return name
		}
	}
	if name := strings.TrimSpace(record.String(rec, "sellerName", "userName")); name != "" {
		return name
	}
	return UnknownSeller
}
