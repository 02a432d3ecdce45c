package compose

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/voltmarket/pkg/normalize"
	"github.com/donaldgifford/voltmarket/pkg/record"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// Form is a whole compose form submitted at once, as sent by API clients.
// Each line item carries its entity id under batteryId or vehicleId next
// to its condition fields.
type Form struct {
	Title            string             `json:"title"`
	Description      string             `json:"description,omitempty"`
	Address          string             `json:"address,omitempty"`
	ItemType         string             `json:"itemType,omitempty"`
	ListingBatteries []domain.RawRecord `json:"listingBatteries,omitempty"`
	ListingVehicles  []domain.RawRecord `json:"listingVehicles,omitempty"`
}

// Apply replays f onto the draft: text fields, then the item type, then
// every line item in order. It stops at the first rejected step; the error
// names the failing line item.
func (d *Draft) Apply(f Form) error {
	d.Title = f.Title
	d.Description = f.Description
	d.Address = f.Address

	if strings.TrimSpace(f.ItemType) != "" {
		t, ok := domain.ParseItemType(f.ItemType)
		if !ok {
			return invalid("itemType", fmt.Sprintf("unknown item type %q", f.ItemType))
		}
		if err := d.SetItemType(t); err != nil {
			return err
		}
	}

	for i, li := range f.ListingBatteries {
		id := record.String(li, "batteryId", "batteryID")
		if err := d.AddLineItem(domain.KindBattery, id, li); err != nil {
			return fmt.Errorf("%s[%d]: %w", normalize.KeyListingBatteries, i, err)
		}
	}
	for i, li := range f.ListingVehicles {
		id := record.String(li, "vehicleId", "vehicleID")
		if err := d.AddLineItem(domain.KindVehicle, id, li); err != nil {
			return fmt.Errorf("%s[%d]: %w", normalize.KeyListingVehicles, i, err)
		}
	}
	return nil
}

// FromListing seeds a draft from a stored listing record for editing. The
// available lists are the entity ids the listing already references, and
// line items the stored item type does not allow are dropped.
func FromListing(rec domain.RawRecord) *Draft {
	d := NewDraft()
	d.Title = strings.TrimSpace(record.String(rec, "title"))
	d.Description = strings.TrimSpace(record.String(rec, "description"))
	d.Address = strings.TrimSpace(record.String(rec, "address"))
	if t, ok := domain.ParseItemType(record.String(rec, "itemType")); ok {
		d.itemType = t
	}

	bIDs, vIDs := normalize.LineItemIDs(rec)
	d.SetAvailableIDs(domain.KindBattery, bIDs...)
	d.SetAvailableIDs(domain.KindVehicle, vIDs...)

	if d.itemType.Allows(domain.KindBattery) {
		for _, li := range normalize.LineItems(rec, normalize.KeyListingBatteries) {
			if id := strings.TrimSpace(record.String(li, "batteryId", "batteryID")); id != "" {
				d.batteries = append(d.batteries, batteryItem(id, li))
			}
		}
	}
	if d.itemType.Allows(domain.KindVehicle) {
		for _, li := range normalize.LineItems(rec, normalize.KeyListingVehicles) {
			if id := strings.TrimSpace(record.String(li, "vehicleId", "vehicleID")); id != "" {
				d.vehicles = append(d.vehicles, vehicleItem(id, li))
			}
		}
	}
	return d
}
