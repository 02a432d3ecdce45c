// Package catalog validates administrator edits to the battery and vehicle
// catalog and builds the backend payloads for them.
package catalog

import (
	"fmt"
	"math"
	"strings"

	"github.com/donaldgifford/voltmarket/pkg/compose"
	"github.com/donaldgifford/voltmarket/pkg/normalize"
	"github.com/donaldgifford/voltmarket/pkg/record"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// Form keys.
const (
	KeyBrand                = "brand"
	KeyModel                = "model"
	KeyCapacity             = "capacity"
	KeyVoltage              = "voltage"
	KeyStartYear            = "startYear"
	KeyEndYear              = "endYear"
	KeyCompatibleBatteryIDs = "compatibleBatteryIds"
)

var imageKeys = []string{"imgs", "imageUrls", "images"}

// BatteryPayload is the wire body for battery create and update.
type BatteryPayload struct {
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Capacity float64 `json:"capacity"`
	Voltage  string  `json:"voltage"`
	Imgs     string  `json:"imgs"`
}

// VehiclePayload is the wire body for vehicle create and update.
type VehiclePayload struct {
	Brand                string   `json:"brand"`
	Model                string   `json:"model"`
	StartYear            int      `json:"startYear"`
	EndYear              int      `json:"endYear"`
	CompatibleBatteryIDs []string `json:"compatibleBatteryIds"`
	Imgs                 string   `json:"imgs"`
}

// Battery validates a battery form. Brand, model and voltage must be
// non-blank and capacity must be a positive number.
func Battery(form domain.RawRecord) (BatteryPayload, error) {
	p := BatteryPayload{
		Brand:   strings.TrimSpace(record.String(form, KeyBrand)),
		Model:   strings.TrimSpace(record.String(form, KeyModel)),
		Voltage: strings.TrimSpace(record.String(form, KeyVoltage)),
		Imgs:    normalize.JoinImages(normalize.Images(form, imageKeys...)),
	}
	if err := requireText(p.Brand, KeyBrand, p.Model, KeyModel, p.Voltage, KeyVoltage); err != nil {
		return BatteryPayload{}, err
	}

	capacity, ok := record.Float(form, KeyCapacity)
	if !ok || capacity <= 0 {
		return BatteryPayload{}, invalid(KeyCapacity, "must be a positive number")
	}
	p.Capacity = capacity
	return p, nil
}

// Vehicle validates a vehicle form. Every compatible battery id must be in
// batteries, the catalog's current battery ids.
func Vehicle(form domain.RawRecord, batteries []string) (VehiclePayload, error) {
	p := VehiclePayload{
		Brand: strings.TrimSpace(record.String(form, KeyBrand)),
		Model: strings.TrimSpace(record.String(form, KeyModel)),
		Imgs:  normalize.JoinImages(normalize.Images(form, imageKeys...)),
	}
	if err := requireText(p.Brand, KeyBrand, p.Model, KeyModel); err != nil {
		return VehiclePayload{}, err
	}

	var err error
	if p.StartYear, err = year(form, KeyStartYear); err != nil {
		return VehiclePayload{}, err
	}
	if p.EndYear, err = year(form, KeyEndYear); err != nil {
		return VehiclePayload{}, err
	}
	if p.EndYear < p.StartYear {
		return VehiclePayload{}, invalid(KeyEndYear, fmt.Sprintf("%d is before start year %d", p.EndYear, p.StartYear))
	}

	known := make(map[string]struct{}, len(batteries))
	for _, id := range batteries {
		known[id] = struct{}{}
	}
	p.CompatibleBatteryIDs = []string{}
	seen := map[string]struct{}{}
	for _, id := range ids(form[KeyCompatibleBatteryIDs]) {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := known[id]; !ok {
			return VehiclePayload{}, invalid(KeyCompatibleBatteryIDs, fmt.Sprintf("battery %q is not in the catalog", id))
		}
		p.CompatibleBatteryIDs = append(p.CompatibleBatteryIDs, id)
	}
	return p, nil
}

// requireText takes (value, field) pairs and reports the first blank value.
func requireText(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i] == "" {
			return invalid(pairs[i+1], "field is required")
		}
	}
	return nil
}

func year(form domain.RawRecord, key string) (int, error) {
	f, ok := record.Float(form, key)
	if !ok || f <= 0 || f != math.Trunc(f) {
		return 0, invalid(key, "must be a positive whole year")
	}
	return int(f), nil
}

// ids reads an id list given as an array or a comma-separated string.
func ids(v any) []string {
	if arr, ok := v.([]any); ok {
		out := make([]string, 0, len(arr))
		for _, e := range arr {
			if s := strings.TrimSpace(record.ToString(e)); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return normalize.ParseImages(v)
}

func invalid(field, reason string) error {
	return &compose.ValidationError{Field: field, Reason: reason}
}
