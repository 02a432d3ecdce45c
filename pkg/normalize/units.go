package normalize

import (
	"strings"

	"github.com/donaldgifford/voltmarket/pkg/record"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// Unit symbols.
const (
	UnitKWh     = "kWh"
	UnitAh      = "Ah"
	UnitVolt    = "V"
	UnitPercent = "%"
	UnitMiles   = "mi"
	UnitKm      = "km"
)

// KeyUnit maps the presence of a key to a unit.
type KeyUnit struct {
	Key  string
	Unit string
}

// UnitRule is one row of the unit decision table. Resolution order: the
// explicit unit field, then the first implied key present, then Numeric
// when the value is a number or a numeric string. Otherwise no unit.
type UnitRule struct {
	Explicit string
	Implied  []KeyUnit
	Numeric  string
}

var (
	capacityUnit = UnitRule{
		Explicit: "capacityUnit",
		Implied:  []KeyUnit{{Key: "capacityAh", Unit: UnitAh}},
		Numeric:  UnitKWh,
	}
	voltageUnit = UnitRule{Explicit: "voltageUnit", Numeric: UnitVolt}
	healthUnit  = UnitRule{Numeric: UnitPercent}
	rangeUnit   = UnitRule{
		Explicit: "rangeUnit",
		Implied: []KeyUnit{
			{Key: "rangeKm", Unit: UnitKm},
			{Key: "rangeMi", Unit: UnitMiles},
			{Key: "range_miles", Unit: UnitMiles},
		},
		Numeric: UnitMiles,
	}
)

// Resolve returns the unit for value as found in rec.
func (u UnitRule) Resolve(rec domain.RawRecord, value any) string {
	if u.Explicit != "" {
		if s := strings.TrimSpace(record.String(rec, u.Explicit)); s != "" {
			return s
		}
	}
	for _, ku := range u.Implied {
		if record.Has(rec, ku.Key) {
			return ku.Unit
		}
	}
	if u.Numeric != "" && record.IsNumeric(value) {
		return u.Numeric
	}
	return ""
}

// DefaultUnit returns the unit a numeric value of field renders with when
// no unit was recorded.
func DefaultUnit(field domain.SpecField) string {
	switch field {
	case domain.SpecCapacity:
		return capacityUnit.Numeric
	case domain.SpecVoltage:
		return voltageUnit.Numeric
	case domain.SpecHealth:
		return healthUnit.Numeric
	case domain.SpecRange:
		return rangeUnit.Numeric
	default:
		return ""
	}
}
