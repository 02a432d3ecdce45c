// Package compose owns the mutable draft of a new or edited listing.
//
// A Draft holds the listing text fields, its declared item type and two
// ordered line-item collections. SetItemType is the only transition that
// changes the item type and it clears the collection the new type does not
// allow, immediately and without an undo buffer. A Draft is single-writer
// and not safe for concurrent use.
package compose

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/voltmarket/pkg/normalize"
	"github.com/donaldgifford/voltmarket/pkg/record"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// Line-item field names accepted by AddLineItem.
const (
	FieldHealth         = "health"
	FieldOdometer       = "odometer"
	FieldBatteryHealth  = "batteryHealth"
	FieldColor          = "color"
	FieldVIN            = "vin"
	FieldLicensePlate   = "licensePlate"
	FieldPrice          = "price"
	FieldSuggestedPrice = "suggestedPrice"
)

var (
	imageFieldKeys = []string{"imgs", "imageUrls", "images"}

	requiredFields = map[domain.Kind][]string{
		domain.KindBattery: {FieldHealth},
		domain.KindVehicle: {FieldOdometer, FieldBatteryHealth},
	}
)

// Draft is a listing under composition. The zero value is an empty Battery
// draft with no available entities.
type Draft struct {
	Title       string
	Description string
	Address     string

	itemType  domain.ItemType
	batteries []domain.BatteryLineItem
	vehicles  []domain.VehicleLineItem
	available map[domain.Kind]map[string]struct{}
}

// NewDraft returns an empty draft with item type Battery.
func NewDraft() *Draft {
	return &Draft{
		itemType:  domain.ItemBattery,
		batteries: []domain.BatteryLineItem{},
		vehicles:  []domain.VehicleLineItem{},
		available: map[domain.Kind]map[string]struct{}{},
	}
}

// ItemType returns the declared item type.
func (d *Draft) ItemType() domain.ItemType {
	if d.itemType == "" {
		return domain.ItemBattery
	}
	return d.itemType
}

// BatteryLineItems returns a copy of the battery line items.
func (d *Draft) BatteryLineItems() []domain.BatteryLineItem {
	return append([]domain.BatteryLineItem{}, d.batteries...)
}

// VehicleLineItems returns a copy of the vehicle line items.
func (d *Draft) VehicleLineItems() []domain.VehicleLineItem {
	return append([]domain.VehicleLineItem{}, d.vehicles...)
}

// SetAvailable replaces the entities of kind that line items may reference.
func (d *Draft) SetAvailable(kind domain.Kind, entities []domain.Entity) {
	ids := make([]string, 0, len(entities))
	for i := range entities {
		ids = append(ids, entities[i].ID)
	}
	d.SetAvailableIDs(kind, ids...)
}

// SetAvailableIDs replaces the entity ids of kind that line items may
// reference.
func (d *Draft) SetAvailableIDs(kind domain.Kind, ids ...string) {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = struct{}{}
		}
	}
	if d.available == nil {
		d.available = map[domain.Kind]map[string]struct{}{}
	}
	d.available[kind] = set
}

// IsAvailable reports whether id is in the available list for kind.
func (d *Draft) IsAvailable(kind domain.Kind, id string) bool {
	_, ok := d.available[kind][id]
	return ok
}

// SetItemType sets the item type and clears the line items it does not
// allow. Switching away from a type discards its line items for good.
func (d *Draft) SetItemType(t domain.ItemType) error {
	switch t {
	case domain.ItemBattery, domain.ItemVehicle, domain.ItemFullSet:
	default:
		return invalid("itemType", fmt.Sprintf("unknown item type %q", t))
	}

	d.itemType = t
	if !t.Allows(domain.KindVehicle) {
		d.vehicles = []domain.VehicleLineItem{}
	}
	if !t.Allows(domain.KindBattery) {
		d.batteries = []domain.BatteryLineItem{}
	}
	return nil
}

// AddLineItem appends a line item of kind referencing entityID. Numeric
// fields are coerced to non-negative numbers; unparseable input becomes 0.
func (d *Draft) AddLineItem(kind domain.Kind, entityID string, fields domain.RawRecord) error {
	if !kind.Valid() {
		return invalid("kind", fmt.Sprintf("unknown line item kind %q", kind))
	}
	if t := d.ItemType(); !t.Allows(kind) {
		return invalid("kind", fmt.Sprintf("%s listing cannot hold %s line items", t, kind))
	}

	entityID = strings.TrimSpace(entityID)
	if entityID == "" {
		return invalid(string(kind)+"Id", "entity id is required")
	}
	if !d.IsAvailable(kind, entityID) {
		return invalid(string(kind)+"Id", fmt.Sprintf("%s %q is not in the available list", kind, entityID))
	}

	for _, f := range requiredFields[kind] {
		if missing(fields[f]) {
			return invalid(f, "field is required")
		}
	}

	switch kind {
	case domain.KindBattery:
		d.batteries = append(d.batteries, batteryItem(entityID, fields))
	case domain.KindVehicle:
		d.vehicles = append(d.vehicles, vehicleItem(entityID, fields))
	}
	return nil
}

// RemoveLineItem removes the line item of kind at index. An out-of-range
// index or unknown kind is a no-op.
func (d *Draft) RemoveLineItem(kind domain.Kind, index int) {
	switch kind {
	case domain.KindBattery:
		if index >= 0 && index < len(d.batteries) {
			d.batteries = append(d.batteries[:index], d.batteries[index+1:]...)
		}
	case domain.KindVehicle:
		if index >= 0 && index < len(d.vehicles) {
			d.vehicles = append(d.vehicles[:index], d.vehicles[index+1:]...)
		}
	}
}

func batteryItem(id string, fields domain.RawRecord) domain.BatteryLineItem {
	return domain.BatteryLineItem{
		BatteryID:      id,
		Health:         record.NonNegative(fields[FieldHealth]),
		Price:          record.NonNegative(fields[FieldPrice]),
		SuggestedPrice: record.NonNegative(fields[FieldSuggestedPrice]),
		ImageURLs:      normalize.Images(fields, imageFieldKeys...),
	}
}

func vehicleItem(id string, fields domain.RawRecord) domain.VehicleLineItem {
	return domain.VehicleLineItem{
		VehicleID:      id,
		Odometer:       record.NonNegative(fields[FieldOdometer]),
		BatteryHealth:  record.NonNegative(fields[FieldBatteryHealth]),
		Color:          strings.TrimSpace(record.String(fields, FieldColor)),
		VIN:            strings.TrimSpace(record.String(fields, FieldVIN)),
		LicensePlate:   strings.TrimSpace(record.String(fields, FieldLicensePlate)),
		Price:          record.NonNegative(fields[FieldPrice]),
		SuggestedPrice: record.NonNegative(fields[FieldSuggestedPrice]),
		ImageURLs:      normalize.Images(fields, imageFieldKeys...),
	}
}

func missing(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}
