package compose

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/voltmarket/pkg/normalize"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// Payload is the wire body for listing create and update.
type Payload struct {
	Title            string           `json:"title"`
	Description      string           `json:"description"`
	Address          string           `json:"address"`
	ItemType         domain.ItemType  `json:"itemType"`
	ListingBatteries []BatteryPayload `json:"listingBatteries"`
	ListingVehicles  []VehiclePayload `json:"listingVehicles"`
}

// BatteryPayload is a battery line item with its images comma-joined.
type BatteryPayload struct {
	domain.BatteryLineItem
	Imgs string `json:"imgs"`
}

// VehiclePayload is a vehicle line item with its images comma-joined.
type VehiclePayload struct {
	domain.VehicleLineItem
	Imgs string `json:"imgs"`
}

// ToPayload validates the draft and serializes it. The backend expects a
// list, so the result always holds exactly one element.
func (d *Draft) ToPayload() ([]Payload, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return nil, invalid("title", "title is required")
	}

	itemType := d.ItemType()
	switch itemType {
	case domain.ItemBattery:
		if len(d.batteries) == 0 {
			return nil, invalid(normalize.KeyListingBatteries, "at least one battery line item is required")
		}
	case domain.ItemVehicle:
		if len(d.vehicles) == 0 {
			return nil, invalid(normalize.KeyListingVehicles, "at least one vehicle line item is required")
		}
	case domain.ItemFullSet:
		if len(d.batteries) == 0 && len(d.vehicles) == 0 {
			return nil, invalid("lineItems", "at least one battery or vehicle line item is required")
		}
	default:
		return nil, invalid("itemType", fmt.Sprintf("unknown item type %q", itemType))
	}

	p := Payload{
		Title:            title,
		Description:      strings.TrimSpace(d.Description),
		Address:          strings.TrimSpace(d.Address),
		ItemType:         itemType,
		ListingBatteries: make([]BatteryPayload, 0, len(d.batteries)),
		ListingVehicles:  make([]VehiclePayload, 0, len(d.vehicles)),
	}
	for _, b := range d.batteries {
		p.ListingBatteries = append(p.ListingBatteries, BatteryPayload{
			BatteryLineItem: b,
			Imgs:            normalize.JoinImages(b.ImageURLs),
		})
	}
	for _, v := range d.vehicles {
		p.ListingVehicles = append(p.ListingVehicles, VehiclePayload{
			VehicleLineItem: v,
			Imgs:            normalize.JoinImages(v.ImageURLs),
		})
	}
	return []Payload{p}, nil
}
