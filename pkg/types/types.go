// Package domain defines the core business types for the VoltMarket
// listing engine.
package domain

import "strings"

// RawRecord is a single JSON object as returned by the marketplace backend.
// No shape is guaranteed: any key may be absent, null, a string, a number
// or a bool.
type RawRecord = map[string]any

// Kind identifies the entity type behind a canonical entity or line item.
type Kind string

// Kind constants.
const (
	KindBattery Kind = "battery"
	KindVehicle Kind = "vehicle"
)

// Label returns the capitalized display name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindBattery:
		return "Battery"
	case KindVehicle:
		return "Vehicle"
	default:
		return "Item"
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindBattery || k == KindVehicle
}

// ParseKind maps a free-form kind string to a Kind. Plural and capitalized
// forms are accepted ("Batteries", "vehicles").
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "battery", "batteries":
		return KindBattery, true
	case "vehicle", "vehicles", "car", "cars":
		return KindVehicle, true
	default:
		return "", false
	}
}

// SpecField names one tracked specification of an entity.
type SpecField string

// Battery spec fields.
const (
	SpecCapacity   SpecField = "capacity"
	SpecVoltage    SpecField = "voltage"
	SpecHealth     SpecField = "health"
	SpecCycleCount SpecField = "cycle_count"
	SpecChemistry  SpecField = "chemistry"
)

// Vehicle spec fields.
const (
	SpecYearRange  SpecField = "year_range"
	SpecRange      SpecField = "range"
	SpecDrivetrain SpecField = "drivetrain"
	SpecSeats      SpecField = "seats"
	SpecBattery    SpecField = "battery"
)

// Spec is one (value, unit) pair of an entity. Value is a float64 for
// numeric inputs (including numeric strings) and a string otherwise.
type Spec struct {
	Field SpecField `json:"field"`
	Value any       `json:"value"`
	Unit  string    `json:"unit,omitempty"`
}

// Approval tags.
const (
	ApprovalApproved = "Approved"
	ApprovalPending  = "Pending"
)

// Entity is the canonical, unit-tagged representation of a battery or
// vehicle record used uniformly by search, compare and listing views.
type Entity struct {
	ID          string   `json:"id"`
	Kind        Kind     `json:"kind"`
	Title       string   `json:"title"`
	Brand       string   `json:"brand,omitempty"`
	Model       string   `json:"model,omitempty"`
	Specs       []Spec   `json:"specs"`
	ImageURLs   []string `json:"image_urls"`
	Price       *float64 `json:"price"`
	Rating      *float64 `json:"rating,omitempty"`
	ApprovalTag string   `json:"approval_tag"`
}

// Spec returns the spec for the given field, if present.
func (e *Entity) Spec(field SpecField) (Spec, bool) {
	for _, s := range e.Specs {
		if s.Field == field {
			return s, true
		}
	}
	return Spec{}, false
}

// ItemType is the declared composition of a listing.
type ItemType string

// ItemType constants. The wire value of the combined type is "FullSet".
const (
	ItemBattery ItemType = "Battery"
	ItemVehicle ItemType = "Vehicle"
	ItemFullSet ItemType = "FullSet"
)

// ParseItemType maps a case-insensitive item type string to an ItemType.
func ParseItemType(s string) (ItemType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "battery":
		return ItemBattery, true
	case "vehicle":
		return ItemVehicle, true
	case "fullset", "full_set", "full set":
		return ItemFullSet, true
	default:
		return "", false
	}
}

// Allows reports whether a listing of this type may carry line items of kind k.
func (t ItemType) Allows(k Kind) bool {
	switch t {
	case ItemBattery:
		return k == KindBattery
	case ItemVehicle:
		return k == KindVehicle
	case ItemFullSet:
		return k.Valid()
	default:
		return false
	}
}

// BatteryLineItem ties a battery to its listing-specific condition and price.
type BatteryLineItem struct {
	BatteryID      string   `json:"batteryId"`
	Health         float64  `json:"health"`
	Price          float64  `json:"price"`
	SuggestedPrice float64  `json:"suggestedPrice"`
	ImageURLs      []string `json:"-"`
}

// VehicleLineItem ties a vehicle to its listing-specific condition and price.
type VehicleLineItem struct {
	VehicleID      string   `json:"vehicleId"`
	Odometer       float64  `json:"odometer"`
	BatteryHealth  float64  `json:"batteryHealth"`
	Color          string   `json:"color"`
	VIN            string   `json:"vin"`
	LicensePlate   string   `json:"licensePlate"`
	Price          float64  `json:"price"`
	SuggestedPrice float64  `json:"suggestedPrice"`
	ImageURLs      []string `json:"-"`
}

// ListingSummary is a normalized listing record as shown in search results.
type ListingSummary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	ItemType     ItemType `json:"item_type,omitempty"`
	Tag          string   `json:"tag"`
	Description  string   `json:"description,omitempty"`
	Address      string   `json:"address,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	Price        float64  `json:"price"`
	BatteryCount int      `json:"battery_count"`
	VehicleCount int      `json:"vehicle_count"`
	SellerName   string   `json:"seller_name"`
}
